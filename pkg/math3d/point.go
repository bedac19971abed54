package math3d

// Point is a 2D screen-space coordinate produced by projection. Coordinates
// are real-valued and may be negative or exceed the framebuffer bounds;
// clipping happens later, at the paint primitive.
type Point struct {
	X, Y float64
}

// Pt creates a new Point.
func Pt(x, y float64) Point {
	return Point{x, y}
}
