package render

import (
	"testing"

	"github.com/gliderman/3D-Maze-Game/pkg/math3d"
)

// testCamera looks down +X from the origin with a 90 degree field of view in
// both axes, so a 4x4 framebuffer gets pi/8 of angle per pixel.
func testCamera() *Camera {
	return &Camera{
		FOVHorizontal: 90,
		FOVVertical:   90,
	}
}

// edgeOnTriangle builds a triangle whose vertices share a horizontal
// direction and differ only vertically, at the given distance down +X. All
// scales of it project to the identical screen column.
func edgeOnTriangle(dist float64, c Color) Triangle {
	return Triangle{
		P1:    math3d.V3(dist, 0, -dist/2),
		P2:    math3d.V3(dist, 0, 0),
		P3:    math3d.V3(dist, 0, dist/2),
		Color: c,
	}
}

func TestRenderFrameClearsToBackground(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Clear(Red)

	NewRenderer().RenderFrame(&World{Background: Blue}, testCamera(), fb)

	for i, c := range fb.Pixels {
		if c != Blue {
			t.Fatalf("pixel %d = %v, want background %v", i, c, Blue)
		}
	}
}

func TestRenderFrameSkipsBehindCamera(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	world := &World{
		Background: Blue,
		Triangles: []Triangle{{
			P1:    math3d.V3(-1, 0, -1),
			P2:    math3d.V3(-1, 0, 0),
			P3:    math3d.V3(-1, 0, 1),
			Color: Red,
		}},
	}

	NewRenderer().RenderFrame(world, testCamera(), fb)

	for i, c := range fb.Pixels {
		if c != Blue {
			t.Fatalf("pixel %d = %v, want background %v", i, c, Blue)
		}
	}
}

func TestRenderFramePaintsTriangle(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	world := &World{
		Background: Black,
		Triangles:  []Triangle{edgeOnTriangle(1, Red)},
	}

	NewRenderer().RenderFrame(world, testCamera(), fb)

	// The vertices project to column 2 at rows spanning +-pi/4 of vertical
	// angle, two pixels either side of center.
	expectCells(t, fb, [][2]int{{2, 1}, {2, 2}, {2, 3}}, Red)
}

func TestRenderFrameNearerWins(t *testing.T) {
	far := edgeOnTriangle(1, Red)
	near := edgeOnTriangle(0.5, Green)

	for name, world := range map[string]*World{
		"far first":  {Background: Black, Triangles: []Triangle{far, near}},
		"near first": {Background: Black, Triangles: []Triangle{near, far}},
	} {
		t.Run(name, func(t *testing.T) {
			fb := NewFramebuffer(4, 4)
			NewRenderer().RenderFrame(world, testCamera(), fb)
			expectCells(t, fb, [][2]int{{2, 1}, {2, 2}, {2, 3}}, Green)
		})
	}
}

func TestRenderFrameLeavesWorldOrder(t *testing.T) {
	world := &World{
		Triangles: []Triangle{edgeOnTriangle(2, Red), edgeOnTriangle(1, Green)},
	}
	fb := NewFramebuffer(4, 4)

	NewRenderer().RenderFrame(world, testCamera(), fb)

	if world.Triangles[0].Color != Red || world.Triangles[1].Color != Green {
		t.Error("RenderFrame reordered the world's triangle slice")
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	world := &World{
		Background: Blue,
		Triangles: []Triangle{
			edgeOnTriangle(1, Red),
			edgeOnTriangle(2, Green),
			edgeOnTriangle(3, Yellow),
		},
	}
	camera := testCamera()
	r := NewRenderer()

	first := NewFramebuffer(4, 4)
	r.RenderFrame(world, camera, first)

	for range 3 {
		fb := NewFramebuffer(4, 4)
		r.RenderFrame(world, camera, fb)
		for i := range fb.Pixels {
			if fb.Pixels[i] != first.Pixels[i] {
				t.Fatalf("pixel %d differs between identical renders", i)
			}
		}
	}
}
