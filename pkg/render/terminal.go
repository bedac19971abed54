package render

import (
	uv "github.com/charmbracelet/ultraviolet"
)

// Draw renders the framebuffer onto an ultraviolet screen as solid colored
// cells, one terminal cell per framebuffer cell. Cells past the screen edge
// are the screen's problem. This is the host-side presentation path; serial
// targets go through the term package instead.
func (fb *Framebuffer) Draw(scr uv.Screen, p Palette) {
	for row := 0; row < fb.Height; row++ {
		for col := 0; col < fb.Width; col++ {
			cell := &uv.Cell{
				Content: " ",
				Width:   1,
				Style: uv.Style{
					Bg: p.RGBA(fb.At(col, row)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}
