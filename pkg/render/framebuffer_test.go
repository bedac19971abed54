package render

import "testing"

func TestFramebufferClear(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(Cyan)
	for i, c := range fb.Pixels {
		if c != Cyan {
			t.Fatalf("pixel %d = %v, want %v", i, c, Cyan)
		}
	}
}

func TestFramebufferAtOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(White)
	for _, cell := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 2}} {
		if c := fb.At(cell[0], cell[1]); c != Black {
			t.Errorf("At(%d, %d) = %v, want Black", cell[0], cell[1], c)
		}
	}
}

func TestFramebufferPaintDropsOutOfBounds(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Clear(Black)
	fb.Paint(-1, 0, Red)
	fb.Paint(3, 0, Red)
	fb.Paint(0, 2, Red)
	for i, c := range fb.Pixels {
		if c != Black {
			t.Errorf("pixel %d = %v after out-of-bounds paints", i, c)
		}
	}
}

func TestFramebufferPaintF(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		painted bool
		px, py  int
	}{
		{"truncates toward zero", 0.9, 0.9, true, 0, 0},
		{"interior", 2.5, 1.2, true, 2, 1},
		{"negative x dropped", -0.5, 1, false, 0, 0},
		{"negative y dropped", 1, -0.1, false, 0, 0},
		{"past right edge dropped", 3.1, 0, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := NewFramebuffer(3, 2)
			fb.PaintF(tt.x, tt.y, Green)

			painted := false
			for y := 0; y < fb.Height; y++ {
				for x := 0; x < fb.Width; x++ {
					if fb.At(x, y) != Green {
						continue
					}
					painted = true
					if x != tt.px || y != tt.py {
						t.Errorf("painted (%d, %d), want (%d, %d)", x, y, tt.px, tt.py)
					}
				}
			}
			if painted != tt.painted {
				t.Errorf("painted = %v, want %v", painted, tt.painted)
			}
		})
	}
}
