// Package render implements the 3D render engine: projecting world-space
// triangles into screen space through a yaw/pitch camera, ordering them with
// the painter's algorithm, and scanline-filling them into a color-indexed
// framebuffer.
package render

// Framebuffer is a fixed-size 2D grid of color indices, row-major from the
// top-left. It is owned by the caller and reused across frames; a render call
// treats it as scratch space and overwrites every cell. Width and height must
// each fit in 255 so cells stay index-addressable on the wire. No concurrent
// renders into the same framebuffer.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []Color
}

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills every cell with the given color.
func (fb *Framebuffer) Clear(c Color) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// At returns the color at (x, y), or Black if out of bounds.
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Black
	}
	return fb.Pixels[y*fb.Width+x]
}

// Paint writes a color at integer coordinates, silently dropping writes
// outside the grid.
func (fb *Framebuffer) Paint(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// PaintF writes a color at continuous screen coordinates: negative
// coordinates are dropped, non-negative ones truncate toward zero. This is
// the single clipping point for all rasterizer output; off-screen geometry is
// expected, not an error.
func (fb *Framebuffer) PaintF(x, y float64, c Color) {
	if x < 0 || y < 0 {
		return
	}
	fb.Paint(int(x), int(y), c)
}
