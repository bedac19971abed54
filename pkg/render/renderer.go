package render

import (
	"cmp"
	"math"
	"slices"
)

// Renderer draws worlds into framebuffers. It owns a scratch buffer for the
// visible-triangle working set, reused between frames, so rendering allocates
// nothing once the buffer has grown to the scene size. A Renderer is not safe
// for concurrent use; the calling environment serializes frames.
type Renderer struct {
	visible []sortedTriangle
}

// sortedTriangle pairs a visible triangle with its squared camera distance so
// the sort does not recompute centroids on every comparison.
type sortedTriangle struct {
	tri    Triangle
	distSq float64
}

// NewRenderer creates a renderer with an empty working buffer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame renders the world from the camera's viewpoint into the
// framebuffer. The framebuffer is cleared to the world background first, then
// visible triangles are painted far-to-near so nearer geometry overwrites
// farther geometry (painter's algorithm; no depth buffer). The world and
// camera are read-only; the framebuffer is overwritten entirely.
//
// Rendering is synchronous and blocking. Triangles wholly behind the camera
// are skipped; a triangle with any vertex in front is projected and painted
// in full, without near-plane clipping.
func (r *Renderer) RenderFrame(world *World, camera *Camera, fb *Framebuffer) {
	// Integer half-extents, matching the index-addressable cell grid.
	halfW := float64(fb.Width / 2)
	halfH := float64(fb.Height / 2)
	anglePerPixelH := (camera.FOVHorizontal * math.Pi) / (float64(fb.Width) * 180)
	anglePerPixelV := (camera.FOVVertical * math.Pi) / (float64(fb.Height) * 180)

	yaw := camera.yaw()
	pitch := camera.pitch()
	direction := camera.direction()

	fb.Clear(world.Background)

	// Visibility filter: keep triangles with at least one vertex strictly in
	// front of the camera. The world's own order is never touched.
	r.visible = r.visible[:0]
	for _, tri := range world.Triangles {
		d1 := tri.P1.Sub(camera.Location)
		d2 := tri.P2.Sub(camera.Location)
		d3 := tri.P3.Sub(camera.Location)
		if d1.Dot(direction) <= 0 && d2.Dot(direction) <= 0 && d3.Dot(direction) <= 0 {
			continue
		}
		r.visible = append(r.visible, sortedTriangle{
			tri:    tri,
			distSq: tri.Centroid().DistanceSq(camera.Location),
		})
	}

	// Farthest first. Stable, so equidistant triangles keep their world
	// order and identical scenes render identically.
	slices.SortStableFunc(r.visible, func(a, b sortedTriangle) int {
		return cmp.Compare(b.distSq, a.distSq)
	})

	for _, st := range r.visible {
		tri := st.tri
		p1 := pointToScreen(tri.P1.Sub(camera.Location), yaw, pitch, anglePerPixelH, anglePerPixelV, halfW, halfH)
		p2 := pointToScreen(tri.P2.Sub(camera.Location), yaw, pitch, anglePerPixelH, anglePerPixelV, halfW, halfH)
		p3 := pointToScreen(tri.P3.Sub(camera.Location), yaw, pitch, anglePerPixelH, anglePerPixelV, halfW, halfH)
		rasterize(fb, p1, p2, p3, tri.Color)
	}
}
