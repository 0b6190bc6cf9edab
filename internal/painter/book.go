package painter

import (
	"math"
	"math/rand"
)

// Book is one floating cuboid
type Book struct {
	X, Y, Z          float64
	RotX, RotY, RotZ float64
	VX, VY, VZ       float64

	Width     float64
	Height    float64
	Thickness float64
	Subject   Subject
}

func newBook(rng *rand.Rand, cfg Config, subject Subject) Book {
	return Book{
		X:         rng.Float64() * cfg.Width,
		Y:         rng.Float64() * cfg.Height,
		Z:         rng.Float64()*200 - 100,
		RotX:      rng.Float64() * math.Pi * 2,
		RotY:      rng.Float64() * math.Pi * 2,
		RotZ:      rng.Float64() * math.Pi * 2,
		VX:        (rng.Float64() - 0.5) * 0.5,
		VY:        (rng.Float64() - 0.5) * 0.5,
		VZ:        (rng.Float64() - 0.5) * 0.3,
		Width:     40 + rng.Float64()*20,
		Height:    60 + rng.Float64()*30,
		Thickness: 8 + rng.Float64()*6,
		Subject:   subject,
	}
}

// Update advances the book by one frame. nowMillis is wall-clock time in
// milliseconds and drives the slow wobble of the pitch and yaw speed.
func (b *Book) Update(cfg Config, nowMillis float64) {
	b.X += b.VX
	b.Y += b.VY
	b.Z += b.VZ

	b.RotX += 0.005 + math.Sin(nowMillis*0.001)*0.002
	b.RotY += 0.008 + math.Cos(nowMillis*0.0015)*0.003
	b.RotZ += 0.003

	b.X = wrap(b.X, -wrapMargin, cfg.Width+wrapMargin)
	b.Y = wrap(b.Y, -wrapMargin, cfg.Height+wrapMargin)
	b.Z = wrap(b.Z, DepthMin, DepthMax)
}

// Scale maps depth linearly onto [MinScale, MaxScale]
func (b Book) Scale(cfg Config) float64 {
	return cfg.MinScale + depthRatio(b.Z)*(cfg.MaxScale-cfg.MinScale)
}

// Opacity grows with depth and stays within [0.1, 0.8]
func (b Book) Opacity() float64 {
	return clamp(0.125+0.75*depthRatio(b.Z), 0.1, 0.8)
}

func depthRatio(z float64) float64 {
	return clamp((z-DepthMin)/(DepthMax-DepthMin), 0, 1)
}

// wrap moves v to the opposite bound once it leaves [lo, hi]
func wrap(v, lo, hi float64) float64 {
	if v < lo {
		return hi
	}
	if v > hi {
		return lo
	}
	return v
}
