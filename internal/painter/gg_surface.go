package painter

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrSurfaceUnavailable is returned when encoding a surface that was never created
var ErrSurfaceUnavailable = errors.New("surface unavailable")

var (
	labelFont     *truetype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

func loadLabelFont() (*truetype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// GGSurface rasterizes frames into an RGBA image
type GGSurface struct {
	dc    *gg.Context
	faces map[int]font.Face
}

// NewGGSurface creates a transparent surface of the given size
func NewGGSurface(width, height int) *GGSurface {
	return &GGSurface{
		dc:    gg.NewContext(width, height),
		faces: make(map[int]font.Face),
	}
}

// Ready reports whether the surface has a canvas to draw on
func (g *GGSurface) Ready() bool {
	return g != nil && g.dc != nil
}

// Clear resets every pixel to transparent
func (g *GGSurface) Clear() {
	if !g.Ready() {
		return
	}
	g.dc.SetRGBA(0, 0, 0, 0)
	g.dc.Clear()
}

func (g *GGSurface) path(points []Point) {
	g.dc.NewSubPath()
	for i, p := range points {
		if i == 0 {
			g.dc.MoveTo(p.X, p.Y)
			continue
		}
		g.dc.LineTo(p.X, p.Y)
	}
	g.dc.ClosePath()
}

func (g *GGSurface) FillPolygon(points []Point, c colorful.Color, alpha float64) {
	if !g.Ready() || len(points) < 3 {
		return
	}
	g.path(points)
	g.dc.SetRGBA(c.R, c.G, c.B, alpha)
	g.dc.Fill()
}

func (g *GGSurface) StrokePolygon(points []Point, c colorful.Color, alpha, width float64) {
	if !g.Ready() || len(points) < 2 {
		return
	}
	g.path(points)
	g.dc.SetRGBA(c.R, c.G, c.B, alpha)
	g.dc.SetLineWidth(width)
	g.dc.Stroke()
}

func (g *GGSurface) FillCircle(center Point, radius float64, c colorful.Color, alpha float64) {
	if !g.Ready() {
		return
	}
	g.dc.DrawCircle(center.X, center.Y, radius)
	g.dc.SetRGBA(c.R, c.G, c.B, alpha)
	g.dc.Fill()
}

func (g *GGSurface) DrawLine(from, to Point, c colorful.Color, alpha, width float64) {
	if !g.Ready() {
		return
	}
	g.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	g.dc.SetRGBA(c.R, c.G, c.B, alpha)
	g.dc.SetLineWidth(width)
	g.dc.Stroke()
}

// DrawLabel draws text centered on at. Without a usable font the label is skipped.
func (g *GGSurface) DrawLabel(text string, at Point, size float64, c colorful.Color, alpha float64) {
	if !g.Ready() {
		return
	}
	key := int(math.Round(size))
	face, ok := g.faces[key]
	if !ok {
		f, err := loadLabelFont()
		if err != nil {
			return
		}
		face = truetype.NewFace(f, &truetype.Options{Size: float64(key)})
		if g.faces == nil {
			g.faces = make(map[int]font.Face)
		}
		g.faces[key] = face
	}
	g.dc.SetFontFace(face)
	g.dc.SetRGBA(c.R, c.G, c.B, alpha)
	g.dc.DrawStringAnchored(text, at.X, at.Y, 0.5, 0.5)
}

// Image returns the rendered image, nil when the surface is not ready
func (g *GGSurface) Image() image.Image {
	if !g.Ready() {
		return nil
	}
	return g.dc.Image()
}

// EncodePNG writes the surface as PNG
func (g *GGSurface) EncodePNG(w io.Writer) error {
	if !g.Ready() {
		return ErrSurfaceUnavailable
	}
	if err := g.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
