package render

import (
	"testing"

	"github.com/gliderman/3D-Maze-Game/pkg/math3d"
)

func benchmarkWorld(n int) *World {
	world := &World{Background: Blue}
	for i := range n {
		d := 2 + float64(i)*0.1
		world.Triangles = append(world.Triangles, Triangle{
			P1:    math3d.V3(d, -0.5, -0.5),
			P2:    math3d.V3(d, 0.5, -0.5),
			P3:    math3d.V3(d, 0, 0.5),
			Color: Color(40 + i%8),
		})
	}
	return world
}

func BenchmarkRenderFrame(b *testing.B) {
	fb := NewFramebuffer(80, 24)
	world := benchmarkWorld(64)
	camera := &Camera{FOVHorizontal: 100, FOVVertical: 75}
	r := NewRenderer()

	for b.Loop() {
		r.RenderFrame(world, camera, fb)
	}
}

func BenchmarkRasterize(b *testing.B) {
	fb := NewFramebuffer(80, 24)
	p1 := math3d.Pt(10.3, 20.1)
	p2 := math3d.Pt(40.7, 2.4)
	p3 := math3d.Pt(70.2, 18.9)

	for b.Loop() {
		rasterize(fb, p1, p2, p3, Green)
	}
}
