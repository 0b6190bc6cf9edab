package painter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_DepthOrder(t *testing.T) {
	cfg := DefaultConfig()
	scene := NewScene(cfg, 7)

	for step := 0; step < 200; step++ {
		for _, bf := range scene.Frame().Books {
			require.Len(t, bf.Faces, 6)
			for i := 1; i < len(bf.Faces); i++ {
				assert.LessOrEqual(t, bf.Faces[i-1].Depth, bf.Faces[i].Depth)
			}
		}
		for i := range scene.books {
			scene.books[i].Update(cfg, float64(step)*33)
		}
	}
}

func TestProject_Kinds(t *testing.T) {
	cfg := DefaultConfig()
	b := Book{X: 100, Y: 100, Z: 0, RotX: 0.3, RotY: 0.7, Width: 50, Height: 70, Thickness: 10, Subject: Subjects[0]}

	bf := Project(b, cfg)

	kinds := make([]FaceKind, 0, len(bf.Faces))
	for _, f := range bf.Faces {
		kinds = append(kinds, f.Kind)
	}
	assert.Equal(t, []FaceKind{FaceBack, FaceSide, FaceSide, FaceSide, FaceSide, FaceFront}, kinds)
	assert.Equal(t, "Math", bf.Subject)

	opacity := b.Opacity()
	assert.InDelta(t, opacity*0.6, bf.Faces[0].Opacity, 1e-9)
	assert.InDelta(t, opacity*0.8, bf.Faces[1].Opacity, 1e-9)
	assert.InDelta(t, opacity, bf.Faces[5].Opacity, 1e-9)

	_, _, back := bf.Faces[0].Fill.Hsl()
	_, _, side := bf.Faces[1].Fill.Hsl()
	assert.InDelta(t, 0.30, back, 0.01)
	assert.InDelta(t, 0.45, side, 0.01)
}

func TestProject_GlowAndLabel(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name          string
		z             float64
		expectedGlow  bool
		expectedLabel string
	}{
		{name: "far away", z: DepthMin, expectedGlow: false, expectedLabel: ""},
		{name: "middle", z: 0, expectedGlow: false, expectedLabel: ""},
		{name: "close", z: DepthMax, expectedGlow: true, expectedLabel: "Science"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Book{Z: tt.z, Width: 50, Height: 70, Thickness: 10, Subject: Subjects[1]}
			front := Project(b, cfg).Faces[5]

			assert.Equal(t, FaceFront, front.Kind)
			assert.Equal(t, tt.expectedGlow, front.Glow)
			assert.Equal(t, tt.expectedLabel, front.Label)
			if tt.expectedLabel != "" {
				assert.InDelta(t, 18.0, front.LabelSize, 1e-9)
				assert.InDelta(t, 0.72, front.LabelOpacity, 1e-9)
				assert.InDelta(t, 0.64, front.GlowOpacity, 1e-9)
			}
		})
	}
}

func TestProject_ApplyRoll(t *testing.T) {
	cfg := DefaultConfig()
	b := Book{X: 0, Y: 0, Z: 0, RotX: 0.2, RotY: 0.4, RotZ: 1.1, Width: 50, Height: 70, Thickness: 10, Subject: Subjects[2]}

	plain := Project(b, cfg)
	cfg.ApplyRoll = true
	rolled := Project(b, cfg)

	assert.NotEqual(t, plain.Faces[5].Points, rolled.Faces[5].Points)

	// roll happens around the view axis so face depths do not change
	for i := range plain.Faces {
		assert.InDelta(t, plain.Faces[i].Depth, rolled.Faces[i].Depth, 1e-9)
	}
}

func TestProject_ScaleApplied(t *testing.T) {
	cfg := DefaultConfig()
	b := Book{X: 200, Y: 100, Z: 0, Width: 40, Height: 60, Thickness: 10, Subject: Subjects[0]}

	bf := Project(b, cfg)
	front := bf.Faces[len(bf.Faces)-1]

	// unrotated at scale 1 the front face spans exactly the book size
	assert.Equal(t, FaceFront, front.Kind)
	assert.InDelta(t, 5.0, front.Depth, 1e-9)
	assert.Equal(t, []Point{{180, 70}, {220, 70}, {220, 130}, {180, 130}}, front.Points)
}
