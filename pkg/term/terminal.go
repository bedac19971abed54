package term

import (
	"github.com/gliderman/3D-Maze-Game/pkg/render"
)

const escape = 0x1b

// Terminal encodes framebuffers and cursor/color commands as ANSI escape
// sequences on a Port. DisplayFrame is blocking: it busy-polls the port's
// backpressure signals with no timeout, so a stalled transport stalls the
// caller indefinitely. That trade-off belongs to the embedded target; hosts
// should hand it a port that cannot stall.
type Terminal struct {
	port Port
}

// NewTerminal creates a terminal on the given port.
func NewTerminal(port Port) *Terminal {
	return &Terminal{port: port}
}

// DisplayFrame streams the framebuffer as colored blocks, row-major from the
// top-left. It waits for any in-flight transmission to finish, homes the
// cursor so successive frames overwrite each other instead of scrolling, and
// emits one space per cell with a color-select sequence only where the color
// changes from the previous cell. The color cache starts at zero, which no
// palette entry uses, so the first cell always selects its color.
func (t *Terminal) DisplayFrame(fb *render.Framebuffer) {
	for t.port.Transmitting() {
	}

	t.MoveCursor(0, 0)

	last := render.Color(0)
	for i, c := range fb.Pixels {
		if i > 0 && i%fb.Width == 0 {
			t.transmit('\r')
			t.transmit('\n')
		}
		if c != last {
			last = c
			t.SetColor(c)
		}
		t.transmit(' ')
	}
}

// MoveCursor positions the cursor at a 0-based cell; the wire format is
// 1-based.
func (t *Terminal) MoveCursor(x, y int) {
	t.transmit(escape)
	t.transmit('[')
	t.writeNumber(uint8(y + 1))
	t.transmit(';')
	t.writeNumber(uint8(x + 1))
	t.transmit('H')
}

// SetColor emits a color-select sequence. The palette index doubles as the
// SGR code, which covers only the small default terminal palette for now.
// TODO Support wider range of colors than default terminal colors
func (t *Terminal) SetColor(c render.Color) {
	t.transmit(escape)
	t.transmit('[')
	t.writeNumber(uint8(c))
	t.transmit('m')
}

// ClearScreen erases the whole display.
func (t *Terminal) ClearScreen() {
	t.transmit(escape)
	t.transmit('[')
	t.transmit('2')
	t.transmit('J')
}

// HideCursor makes the cursor invisible so it does not flicker over frames.
func (t *Terminal) HideCursor() {
	t.transmit(escape)
	t.transmit('[')
	t.transmit('?')
	t.transmit('2')
	t.transmit('5')
	t.transmit('l')
}

// ShowCursor makes the cursor visible again.
func (t *Terminal) ShowCursor() {
	t.transmit(escape)
	t.transmit('[')
	t.transmit('?')
	t.transmit('2')
	t.transmit('5')
	t.transmit('h')
}

// writeNumber emits a decimal number without leading zeros. Zero itself
// emits no digits; every value used by the protocol (1-based cursor
// coordinates, palette codes) is nonzero.
func (t *Terminal) writeNumber(number uint8) {
	atDigits := false

	hundreds := (number / 100) % 10
	if hundreds > 0 {
		atDigits = true
		t.transmit(hundreds + '0')
	}

	tens := (number / 10) % 10
	if tens > 0 || atDigits {
		atDigits = true
		t.transmit(tens + '0')
	}

	ones := number % 10
	if ones > 0 || atDigits {
		t.transmit(ones + '0')
	}
}

// transmit sends one byte, busy-polling until the port has space.
func (t *Terminal) transmit(b byte) {
	for !t.port.SpaceAvailable() {
	}
	t.port.TransmitByte(b)
}
