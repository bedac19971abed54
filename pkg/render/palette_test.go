package render

import (
	"image/color"
	"testing"
)

func TestPaletteNearest(t *testing.T) {
	p := DefaultPalette()
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"pure black", 0, 0, 0, Black},
		{"near white", 240, 240, 240, White},
		{"strong red", 200, 40, 40, Red},
		{"strong blue", 40, 110, 210, Blue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Nearest(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Nearest(%d, %d, %d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestPaletteRegister(t *testing.T) {
	p := DefaultPalette()
	orange := color.RGBA{255, 140, 0, 255}
	p.Register(Color(100), orange)

	if got := p.RGBA(Color(100)); got != orange {
		t.Errorf("RGBA(100) = %v, want %v", got, orange)
	}
	if got := p.Nearest(255, 140, 0); got != Color(100) {
		t.Errorf("Nearest(orange) = %v, want registered index 100", got)
	}
}

func TestPaletteRGBAFallback(t *testing.T) {
	p := DefaultPalette()
	if got := p.RGBA(Color(200)); got != (color.RGBA{A: 255}) {
		t.Errorf("RGBA(200) = %v, want opaque black", got)
	}
}
