package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/edututor/backend/internal/painter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// booksOptions configures a floating books render
type booksOptions struct {
	Frames    int
	OutDir    string
	Width     int
	Height    int
	Books     int
	Seed      int64
	FPS       int
	ApplyRoll bool
	Workers   int
}

// visualizationOptions configures a lesson visualization render
type visualizationOptions struct {
	Model   string
	Frames  int
	OutDir  string
	Size    int
	Zoom    float64
	Static  bool
	Workers int
}

// frameJob is one image waiting to be rasterized
type frameJob struct {
	index int
	draw  func(s painter.Surface)
}

// renderBooks simulates the scene frame by frame and writes books-NNNN.png files.
// The clock starts at a fixed instant so equal seeds give equal images.
func renderBooks(ctx context.Context, opts booksOptions, logger *zap.Logger) ([]string, error) {
	if opts.Frames < 1 {
		return nil, fmt.Errorf("frames must be positive")
	}
	if opts.FPS < 1 {
		return nil, fmt.Errorf("fps must be positive")
	}

	cfg := painter.DefaultConfig()
	cfg.Width = float64(opts.Width)
	cfg.Height = float64(opts.Height)
	cfg.BookCount = opts.Books
	cfg.ApplyRoll = opts.ApplyRoll

	scene := painter.NewScene(cfg, opts.Seed)
	clock := time.Unix(0, 0).UTC()
	step := time.Second / time.Duration(opts.FPS)

	jobs := make([]frameJob, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		scene.Tick(clock)
		clock = clock.Add(step)

		frame := scene.Frame()
		jobs = append(jobs, frameJob{index: i, draw: func(s painter.Surface) { painter.Render(s, frame) }})
	}

	return writeFrames(ctx, jobs, opts.OutDir, "books", opts.Width, opts.Height, opts.Workers, logger)
}

// renderVisualization writes NAME-NNNN.png files of a lesson model
func renderVisualization(ctx context.Context, opts visualizationOptions, logger *zap.Logger) ([]string, error) {
	if opts.Frames < 1 {
		return nil, fmt.Errorf("frames must be positive")
	}

	model := painter.ResolveModel(opts.Model)
	viewer := painter.NewViewer(model)
	viewer.SetZoom(opts.Zoom)
	if opts.Static {
		viewer.ToggleRotate()
	}

	jobs := make([]frameJob, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		frame := viewer.Frame(opts.Size, opts.Size, float64(i)/30)
		jobs = append(jobs, frameJob{index: i, draw: func(s painter.Surface) { painter.RenderVisualization(s, frame) }})
		viewer.Step()
	}

	return writeFrames(ctx, jobs, opts.OutDir, string(model), opts.Size, opts.Size, opts.Workers, logger)
}

// writeFrames rasterizes jobs concurrently, at most workers at a time
func writeFrames(ctx context.Context, jobs []frameJob, outDir, prefix string, width, height, workers int, logger *zap.Logger) ([]string, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if workers < 1 {
		workers = 1
	}

	paths := make([]string, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, job := range jobs {
		path := filepath.Join(outDir, fmt.Sprintf("%s-%04d.png", prefix, job.index))
		paths[job.index] = path

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			surface := painter.NewGGSurface(width, height)
			job.draw(surface)
			if err := writePNG(path, surface); err != nil {
				return err
			}
			logger.Debug("frame written", zap.String("path", path))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writePNG(path string, surface *painter.GGSurface) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := surface.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
