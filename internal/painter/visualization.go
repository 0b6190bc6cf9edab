package painter

import (
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Model names a lesson visualization
type Model string

const (
	ModelFractionCircles    Model = "fraction-circles"
	ModelGeometricShapes    Model = "geometric-shapes"
	ModelMolecularStructure Model = "molecular-structure"
	ModelOrbit              Model = "orbit"
)

// Zoom limits of the viewer
const (
	MinZoom  = 0.5
	MaxZoom  = 2.0
	zoomStep = 0.2
)

// ResolveModel picks the model drawn for a name, unknown names fall back to the orbit
func ResolveModel(name string) Model {
	switch {
	case strings.Contains(name, "fraction"):
		return ModelFractionCircles
	case strings.Contains(name, "geometric"):
		return ModelGeometricShapes
	case strings.Contains(name, "molecular"):
		return ModelMolecularStructure
	default:
		return ModelOrbit
	}
}

// Rotation is the viewer rotation in hundredths of a radian
type Rotation struct {
	X, Y, Z float64
}

// Viewer is the interactive state of a visualization
type Viewer struct {
	Model    Model
	Rotating bool
	Zoom     float64
	Rotation Rotation
}

// NewViewer creates a rotating viewer at zoom 1
func NewViewer(model Model) *Viewer {
	return &Viewer{Model: model, Rotating: true, Zoom: 1}
}

// Step advances the rotation by one frame when rotating
func (v *Viewer) Step() {
	if !v.Rotating {
		return
	}
	v.Rotation.X += 0.5
	v.Rotation.Y += 1
	v.Rotation.Z += 0.3
}

func (v *Viewer) ZoomIn() {
	v.SetZoom(v.Zoom + zoomStep)
}

func (v *Viewer) ZoomOut() {
	v.SetZoom(v.Zoom - zoomStep)
}

// SetZoom sets the zoom clamped to [MinZoom, MaxZoom]. NaN leaves the zoom unchanged.
func (v *Viewer) SetZoom(z float64) {
	if math.IsNaN(z) {
		return
	}
	v.Zoom = clamp(z, MinZoom, MaxZoom)
}

func (v *Viewer) ToggleRotate() {
	v.Rotating = !v.Rotating
}

// Reset restores zoom 1, zero rotation and turns rotation back on
func (v *Viewer) Reset() {
	v.Zoom = 1
	v.Rotation = Rotation{}
	v.Rotating = true
}

// ShapeKind is the primitive of a visualization shape
type ShapeKind int

const (
	ShapePolygon ShapeKind = iota
	ShapeCircle
	ShapeLine
)

// Shape is one primitive of a visualization display list. A zero StrokeWidth means no outline.
type Shape struct {
	Kind   ShapeKind
	Points []Point
	Center Point
	Radius float64

	Fill      colorful.Color
	FillAlpha float64

	Stroke      colorful.Color
	StrokeAlpha float64
	StrokeWidth float64
}

// VisualFrame is the display list of one visualization frame
type VisualFrame struct {
	Width  int
	Height int
	Shapes []Shape
}

// Frame draws the current state centered on a width x height surface.
// seconds is the animation clock used by the orbit model.
func (v *Viewer) Frame(width, height int, seconds float64) VisualFrame {
	c := &canvas{
		origin: Point{X: float64(width) / 2, Y: float64(height) / 2},
		zoom:   v.Zoom,
	}

	switch v.Model {
	case ModelFractionCircles:
		c.fractions(v.Rotation)
	case ModelGeometricShapes:
		c.geometric(v.Rotation)
	case ModelMolecularStructure:
		c.molecular(v.Rotation)
	default:
		c.orbit(v.Rotation, seconds)
	}

	return VisualFrame{Width: width, Height: height, Shapes: c.shapes}
}

// RenderVisualization paints a visualization frame. Nothing happens when no surface is available.
func RenderVisualization(s Surface, f VisualFrame) {
	if !available(s) {
		return
	}
	s.Clear()
	for _, sh := range f.Shapes {
		switch sh.Kind {
		case ShapeCircle:
			s.FillCircle(sh.Center, sh.Radius, sh.Fill, sh.FillAlpha)
			if sh.StrokeWidth > 0 {
				pts := circlePoints(sh.Center, sh.Radius, 32)
				s.StrokePolygon(pts, sh.Stroke, sh.StrokeAlpha, sh.StrokeWidth)
			}
		case ShapeLine:
			if len(sh.Points) == 2 {
				s.DrawLine(sh.Points[0], sh.Points[1], sh.Stroke, sh.StrokeAlpha, sh.StrokeWidth)
			}
		default:
			if sh.FillAlpha > 0 {
				s.FillPolygon(sh.Points, sh.Fill, sh.FillAlpha)
			}
			if sh.StrokeWidth > 0 {
				s.StrokePolygon(sh.Points, sh.Stroke, sh.StrokeAlpha, sh.StrokeWidth)
			}
		}
	}
}

func circlePoints(c Point, r float64, n int) []Point {
	pts := make([]Point, n)
	for i := range pts {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = Point{X: c.X + math.Cos(a)*r, Y: c.Y + math.Sin(a)*r}
	}
	return pts
}

// canvas collects shapes in model coordinates centered on origin and scaled by zoom
type canvas struct {
	origin Point
	zoom   float64
	shapes []Shape
}

func (c *canvas) at(x, y float64) Point {
	return Point{X: c.origin.X + x*c.zoom, Y: c.origin.Y + y*c.zoom}
}

func (c *canvas) circle(x, y, r float64, fill colorful.Color, alpha float64, strokeAlpha, strokeWidth float64) {
	c.shapes = append(c.shapes, Shape{
		Kind:        ShapeCircle,
		Center:      c.at(x, y),
		Radius:      math.Max(0, r*c.zoom),
		Fill:        fill,
		FillAlpha:   clamp(alpha, 0, 1),
		Stroke:      white,
		StrokeAlpha: strokeAlpha,
		StrokeWidth: strokeWidth * c.zoom,
	})
}

// perspective is the scale of an element at depth z
func perspective(z float64) float64 {
	return (z + 100) / 200
}

func (c *canvas) fractions(rot Rotation) {
	const (
		radius   = 80.0
		segments = 8
	)
	tilt := rot.X * 0.01
	for i := 0; i < segments; i++ {
		angle := float64(i)/segments*2*math.Pi + rot.Y*0.01
		x := math.Cos(angle) * radius * math.Cos(tilt)
		y := math.Sin(angle) * radius
		z := math.Cos(angle) * radius * math.Sin(tilt)

		s := perspective(z)
		hue := float64(i) / segments * 360
		c.circle(x*s, y*s, 20*s, colorful.Hsl(hue, 0.7, 0.6), s, 0.5, 2*s)
	}
}

type solid struct {
	index    int
	x, y     float64
	color    colorful.Color
	vertices []Vec3
	faces    [][]int
}

func (c *canvas) geometric(rot Rotation) {
	cube := cuboid(30, 30, 30)
	solids := []solid{
		{index: 0, x: -60, y: -40, color: colorful.Hsl(220, 0.7, 0.6), vertices: cube[:], faces: cubeFaceList()},
		{index: 2, x: 0, y: 40, color: colorful.Hsl(140, 0.7, 0.6), vertices: pyramid(35), faces: pyramidFaces},
	}

	for _, s := range solids {
		c.solid(s, rot.X*0.01+float64(s.index)*0.5, rot.Y*0.01+float64(s.index)*0.3)
	}

	// a sphere looks the same from every angle, the highlight stands in for shading
	base := colorful.Hsl(340, 0.7, 0.6)
	c.circle(60, -40, 25, base, 1, 0.3, 2)
	c.circle(55, -45, 12, white, 0.3, 0, 0)
}

func (c *canvas) solid(s solid, rx, ry float64) {
	rotated := make([]Vec3, len(s.vertices))
	for i, v := range s.vertices {
		rotated[i] = rotateY(rotateX(v, rx), ry)
	}

	type face struct {
		points []Point
		depth  float64
	}
	faces := make([]face, 0, len(s.faces))
	for _, idx := range s.faces {
		f := face{points: make([]Point, 0, len(idx))}
		for _, i := range idx {
			f.depth += rotated[i].Z
			f.points = append(f.points, c.at(s.x+rotated[i].X, s.y+rotated[i].Y))
		}
		f.depth /= float64(len(idx))
		faces = append(faces, f)
	}
	sort.SliceStable(faces, func(i, j int) bool { return faces[i].depth < faces[j].depth })

	for i, f := range faces {
		// faces further back are darker
		l := 0.35 + 0.25*float64(i)/float64(len(faces)-1)
		h, sat, _ := s.color.Hsl()
		c.shapes = append(c.shapes, Shape{
			Kind:        ShapePolygon,
			Points:      f.points,
			Fill:        colorful.Hsl(h, sat, l),
			FillAlpha:   0.9,
			Stroke:      white,
			StrokeAlpha: 0.3,
			StrokeWidth: 2 * c.zoom,
		})
	}
}

func cubeFaceList() [][]int {
	out := make([][]int, len(cuboidFaces))
	for i, f := range cuboidFaces {
		out[i] = f[:]
	}
	return out
}

// pyramid has its apex at -size and a square base at size/2
func pyramid(size float64) []Vec3 {
	h := size / 2
	return []Vec3{
		{0, -size, 0},
		{-h, h, -h},
		{h, h, -h},
		{h, h, h},
		{-h, h, h},
	}
}

var pyramidFaces = [][]int{
	{1, 2, 3, 4},
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 4},
	{0, 4, 1},
}

type atom struct {
	pos  Vec3
	hue  float64
	size float64
}

var molecule = []atom{
	{pos: Vec3{0, 0, 0}, hue: 0, size: 15},
	{pos: Vec3{40, 20, 10}, hue: 120, size: 12},
	{pos: Vec3{-40, 20, -10}, hue: 240, size: 12},
	{pos: Vec3{0, -40, 15}, hue: 60, size: 10},
}

// rotateMolecule pitches around x, then turns around y the other way round than rotateY
func rotateMolecule(p Vec3, rot Rotation) Vec3 {
	return rotateY(rotateX(p, rot.X*0.01), -rot.Y*0.01)
}

func (c *canvas) molecular(rot Rotation) {
	rotated := make([]Vec3, len(molecule))
	for i, a := range molecule {
		rotated[i] = rotateMolecule(a.pos, rot)
	}

	for i := 0; i < len(rotated); i++ {
		for j := i + 1; j < len(rotated); j++ {
			c.shapes = append(c.shapes, Shape{
				Kind:        ShapeLine,
				Points:      []Point{c.at(rotated[i].X, rotated[i].Y), c.at(rotated[j].X, rotated[j].Y)},
				Stroke:      white,
				StrokeAlpha: 0.4,
				StrokeWidth: 3 * c.zoom,
			})
		}
	}

	for i, a := range molecule {
		p := rotated[i]
		s := perspective(p.Z)
		c.circle(p.X, p.Y, a.size*s, colorful.Hsl(a.hue, 0.7, 0.3), 1, 0.5, 2*s)
		c.circle(p.X, p.Y, a.size*s*0.6, colorful.Hsl(a.hue, 0.7, 0.6), 1, 0, 0)
	}
}

func (c *canvas) orbit(rot Rotation, t float64) {
	const dots = 20
	tilt := rot.X * 0.01
	for i := 0; i < dots; i++ {
		angle := float64(i)/dots*2*math.Pi + t
		radius := 60 + math.Sin(t+float64(i))*20
		x := math.Cos(angle) * radius
		y := math.Sin(angle) * radius * math.Cos(tilt)
		z := math.Sin(angle) * radius * math.Sin(tilt)

		s := perspective(z)
		hue := math.Mod(float64(i)/dots*360+t*50, 360)
		c.circle(x*s, y*s, 8*s, colorful.Hsl(hue, 0.7, 0.6), s, 0, 0)
	}
}
