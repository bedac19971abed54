package render

import "github.com/gliderman/3D-Maze-Game/pkg/math3d"

// Triangle is a single colored triangle in world space.
type Triangle struct {
	P1, P2, P3 math3d.Vec3
	Color      Color
}

// Centroid returns the arithmetic mean of the three vertices, the triangle's
// representative position for depth sorting.
func (t Triangle) Centroid() math3d.Vec3 {
	return t.P1.Add(t.P2).Add(t.P3).Div(3)
}

// World is the read-only scene input for a frame: an ordered triangle list
// plus the background color the framebuffer is cleared to. The renderer never
// mutates it, so a caller may reuse the same World across frames.
type World struct {
	Triangles  []Triangle
	Background Color
}
