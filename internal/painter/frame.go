package painter

import (
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// FaceKind tells how a face is shaded, based on its position in the depth order
type FaceKind int

const (
	FaceSide FaceKind = iota
	FaceBack
	FaceFront
)

func (k FaceKind) String() string {
	switch k {
	case FaceBack:
		return "back"
	case FaceFront:
		return "front"
	default:
		return "side"
	}
}

// FacePaint is one filled polygon of the display list
type FacePaint struct {
	Kind    FaceKind       `json:"kind"`
	Points  []Point        `json:"points"`
	Depth   float64        `json:"depth"`
	Fill    colorful.Color `json:"fill"`
	Opacity float64        `json:"opacity"`

	Glow        bool           `json:"glow,omitempty"`
	GlowColor   colorful.Color `json:"glowColor"`
	GlowOpacity float64        `json:"glowOpacity,omitempty"`

	Label        string  `json:"label,omitempty"`
	LabelAt      Point   `json:"labelAt"`
	LabelSize    float64 `json:"labelSize,omitempty"`
	LabelOpacity float64 `json:"labelOpacity,omitempty"`
}

// BookFrame holds the faces of one book in paint order
type BookFrame struct {
	Subject string      `json:"subject"`
	Faces   []FacePaint `json:"faces"`
}

// Frame is everything needed to draw one frame of the scene
type Frame struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Books  []BookFrame `json:"books"`
}

// Project rotates the book, sorts its faces back to front and shades them
func Project(b Book, cfg Config) BookFrame {
	scale := b.Scale(cfg)
	opacity := b.Opacity()

	corners := cuboid(b.Width, b.Height, b.Thickness)
	for i, v := range corners {
		v = rotateX(v, b.RotX)
		v = rotateY(v, b.RotY)
		if cfg.ApplyRoll {
			v = rotateZ(v, b.RotZ)
		}
		corners[i] = v
	}

	faces := make([]FacePaint, 0, len(cuboidFaces))
	for _, idx := range cuboidFaces {
		var depth float64
		points := make([]Point, 0, len(idx))
		for _, i := range idx {
			depth += corners[i].Z
			points = append(points, Point{X: b.X + corners[i].X*scale, Y: b.Y + corners[i].Y*scale})
		}
		faces = append(faces, FacePaint{Points: points, Depth: depth / float64(len(idx))})
	}

	sort.SliceStable(faces, func(i, j int) bool { return faces[i].Depth < faces[j].Depth })

	// the farthest face is the back, the nearest the front, the rest are sides
	base := b.Subject.Color()
	last := len(faces) - 1
	for i := range faces {
		f := &faces[i]

		switch i {
		case 0:
			f.Kind = FaceBack
			f.Fill = b.Subject.WithLightness(0.30)
			f.Opacity = opacity * 0.6
		case last:
			f.Kind = FaceFront
			f.Fill = base
			f.Opacity = opacity
			if opacity > cfg.GlowOpacity {
				f.Glow = true
				f.GlowColor = base
				f.GlowOpacity = opacity * 0.8
			}
			if scale > cfg.LabelScale {
				f.Label = b.Subject.Name
				f.LabelAt = Point{X: b.X, Y: b.Y}
				f.LabelSize = math.Max(8, 12*scale)
				f.LabelOpacity = opacity * 0.9
			}
		default:
			f.Kind = FaceSide
			f.Fill = b.Subject.WithLightness(0.45)
			f.Opacity = opacity * 0.8
		}
	}

	return BookFrame{Subject: b.Subject.Name, Faces: faces}
}
