package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/edututor/backend/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "render",
		Short:        "Render EduTutor animations to PNG frames",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(newBooksCmd(), newVisualizationCmd())
	return root
}

func newBooksCmd() *cobra.Command {
	opts := booksOptions{}

	cmd := &cobra.Command{
		Use:   "books",
		Short: "Render the floating books background",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			paths, err := renderBooks(cmd.Context(), opts, logger.Logger)
			if err != nil {
				return err
			}
			logger.Logger.Info("books rendered",
				zap.Int("frames", len(paths)),
				zap.String("out", opts.OutDir),
				zap.Duration("took", time.Since(start)),
			)
			fmt.Fprintln(cmd.OutOrStdout(), opts.OutDir)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Frames, "frames", "n", 60, "number of frames")
	f.StringVarP(&opts.OutDir, "out", "o", "frames", "output directory")
	f.IntVar(&opts.Width, "width", 1280, "image width")
	f.IntVar(&opts.Height, "height", 720, "image height")
	f.IntVar(&opts.Books, "books", 15, "number of books")
	f.Int64Var(&opts.Seed, "seed", 1, "random seed of the book layout")
	f.IntVar(&opts.FPS, "fps", 30, "simulated frames per second")
	f.BoolVar(&opts.ApplyRoll, "roll", false, "apply the roll rotation")
	f.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "concurrent encoders")
	return cmd
}

func newVisualizationCmd() *cobra.Command {
	opts := visualizationOptions{}

	cmd := &cobra.Command{
		Use:     "visualization [model]",
		Aliases: []string{"viz"},
		Short:   "Render a 3D lesson model (fraction-circles, geometric-shapes, molecular-structure, orbit)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Model = args[0]
			paths, err := renderVisualization(cmd.Context(), opts, logger.Logger)
			if err != nil {
				return err
			}
			logger.Logger.Info("visualization rendered", zap.String("model", opts.Model), zap.Int("frames", len(paths)))
			fmt.Fprintln(cmd.OutOrStdout(), opts.OutDir)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Frames, "frames", "n", 30, "number of frames")
	f.StringVarP(&opts.OutDir, "out", "o", "frames", "output directory")
	f.IntVar(&opts.Size, "size", 400, "image width and height")
	f.Float64Var(&opts.Zoom, "zoom", 1, "zoom between 0.5 and 2")
	f.BoolVar(&opts.Static, "static", false, "do not rotate the model")
	f.IntVar(&opts.Workers, "workers", runtime.NumCPU(), "concurrent encoders")
	return cmd
}
