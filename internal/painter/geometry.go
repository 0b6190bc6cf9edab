package painter

import "math"

// Vec3 is a point in model space
type Vec3 struct {
	X, Y, Z float64
}

// Point is a point on the drawing surface
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func rotateX(v Vec3, a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{X: v.X, Y: c*v.Y - s*v.Z, Z: s*v.Y + c*v.Z}
}

func rotateY(v Vec3, a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{X: c*v.X + s*v.Z, Y: v.Y, Z: -s*v.X + c*v.Z}
}

func rotateZ(v Vec3, a float64) Vec3 {
	c, s := math.Cos(a), math.Sin(a)
	return Vec3{X: c*v.X - s*v.Y, Y: s*v.X + c*v.Y, Z: v.Z}
}

// cuboid returns the corners of a box centered on the origin.
// 0..3 is the front face (z = +d/2), 4..7 the back face in the same order.
func cuboid(w, h, d float64) [8]Vec3 {
	hw, hh, hd := w/2, h/2, d/2
	return [8]Vec3{
		{-hw, -hh, hd},
		{hw, -hh, hd},
		{hw, hh, hd},
		{-hw, hh, hd},
		{-hw, -hh, -hd},
		{hw, -hh, -hd},
		{hw, hh, -hd},
		{-hw, hh, -hd},
	}
}

// cuboidFaces indexes the corners of each face: back, right, left, front, top, bottom
var cuboidFaces = [6][4]int{
	{4, 5, 6, 7},
	{1, 5, 6, 2},
	{0, 4, 7, 3},
	{0, 1, 2, 3},
	{0, 1, 5, 4},
	{3, 2, 6, 7},
}
