package render

import "image/color"

// Color is an index into the terminal palette. The index value doubles as the
// SGR code the terminal encoder emits, so the default entries sit in the ANSI
// background-color range. The full 8-bit space is addressable but only
// registered entries display meaningfully.
type Color uint8

// Default palette, matching the standard ANSI background colors.
const (
	Black Color = 40 + iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

// Palette maps color indices to display colors for host-side presentation.
// The encoder never consults it (indices go on the wire as-is); it exists so
// screen-backed displays and model loaders can translate indices to RGB.
type Palette map[Color]color.RGBA

// DefaultPalette returns a palette covering the eight standard ANSI colors.
func DefaultPalette() Palette {
	return Palette{
		Black:   {0, 0, 0, 255},
		Red:     {205, 49, 49, 255},
		Green:   {13, 188, 121, 255},
		Yellow:  {229, 229, 16, 255},
		Blue:    {36, 114, 200, 255},
		Magenta: {188, 63, 188, 255},
		Cyan:    {17, 168, 205, 255},
		White:   {229, 229, 229, 255},
	}
}

// Register adds or replaces a palette entry. This is the extension point for
// wider color ranges (256-color or RGB terminals) once the encoder grows the
// matching select sequences.
func (p Palette) Register(c Color, rgba color.RGBA) {
	p[c] = rgba
}

// RGBA returns the display color for an index. Unregistered indices come back
// as opaque black.
func (p Palette) RGBA(c Color) color.RGBA {
	if rgba, ok := p[c]; ok {
		return rgba
	}
	return color.RGBA{A: 255}
}

// Nearest returns the registered index closest to the given RGB value by
// squared distance.
func (p Palette) Nearest(r, g, b uint8) Color {
	best := Black
	bestDist := -1
	for c, rgba := range p {
		dr := int(rgba.R) - int(r)
		dg := int(rgba.G) - int(g)
		db := int(rgba.B) - int(b)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist || (dist == bestDist && c < best) {
			best = c
			bestDist = dist
		}
	}
	return best
}
