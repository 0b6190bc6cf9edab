// Package painter draws the floating books backdrop and the rotating lesson
// visualizations. Drawing is split in two steps: a scene is projected into a
// Frame display list, then a Surface rasterizes the list.
package painter

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Depth bounds of the book volume. Books leaving the range re-enter on the opposite side.
const (
	DepthMin = -150.0
	DepthMax = 150.0

	// wrapMargin lets a book leave the visible area completely before it wraps
	wrapMargin = 100.0
)

// Config holds scene settings
type Config struct {
	Width     float64
	Height    float64
	BookCount int
	// MinScale and MaxScale are the scales at DepthMin and DepthMax, mid depth is their average
	MinScale float64
	MaxScale float64
	// LabelScale is the scale above which a front face carries the subject label
	LabelScale float64
	// GlowOpacity is the opacity above which a front face gets an outline
	GlowOpacity float64
	// ApplyRoll applies the z rotation matrix. The roll angle always advances,
	// historically it was never used for drawing, so this is off by default.
	ApplyRoll bool
}

// DefaultConfig returns the settings of the landing page backdrop
func DefaultConfig() Config {
	return Config{
		Width:       1280,
		Height:      720,
		BookCount:   15,
		MinScale:    0.5,
		MaxScale:    1.5,
		LabelScale:  1.15,
		GlowOpacity: 0.5,
	}
}

// Subject is a book category with its base color
type Subject struct {
	Name       string
	Hue        float64
	Saturation float64
	Lightness  float64
}

// Color returns the base color of the subject
func (s Subject) Color() colorful.Color {
	return colorful.Hsl(s.Hue, s.Saturation, s.Lightness)
}

// WithLightness returns the subject hue and saturation at another lightness
func (s Subject) WithLightness(l float64) colorful.Color {
	return colorful.Hsl(s.Hue, s.Saturation, l)
}

// Subjects is the palette books are drawn from
var Subjects = []Subject{
	{Name: "Math", Hue: 220, Saturation: 0.70, Lightness: 0.60},
	{Name: "Science", Hue: 140, Saturation: 0.70, Lightness: 0.55},
	{Name: "History", Hue: 340, Saturation: 0.70, Lightness: 0.60},
	{Name: "Language", Hue: 280, Saturation: 0.70, Lightness: 0.65},
	{Name: "Art", Hue: 35, Saturation: 0.70, Lightness: 0.60},
	{Name: "Music", Hue: 195, Saturation: 0.70, Lightness: 0.55},
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
