package painter

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Surface is a 2D drawing target
type Surface interface {
	Clear()
	FillPolygon(points []Point, c colorful.Color, alpha float64)
	StrokePolygon(points []Point, c colorful.Color, alpha, width float64)
	FillCircle(center Point, radius float64, c colorful.Color, alpha float64)
	DrawLine(from, to Point, c colorful.Color, alpha, width float64)
	DrawLabel(text string, at Point, size float64, c colorful.Color, alpha float64)
}

// available reports whether s can be drawn on. A typed nil pointer or a surface
// reporting Ready() false counts as missing.
func available(s Surface) bool {
	if s == nil {
		return false
	}
	if r, ok := s.(interface{ Ready() bool }); ok {
		return r.Ready()
	}
	return true
}

var white = colorful.Color{R: 1, G: 1, B: 1}

// Render paints a frame. Nothing happens when no surface is available.
func Render(s Surface, f Frame) {
	if !available(s) {
		return
	}
	s.Clear()
	for _, book := range f.Books {
		for _, face := range book.Faces {
			s.FillPolygon(face.Points, face.Fill, face.Opacity)
			if face.Glow {
				s.StrokePolygon(face.Points, face.GlowColor, face.GlowOpacity, 1)
			}
			if face.Label != "" {
				s.DrawLabel(face.Label, face.LabelAt, face.LabelSize, white, face.LabelOpacity)
			}
		}
	}
}
