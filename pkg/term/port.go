// Package term serializes framebuffers into ANSI escape streams for
// character terminals reached over a byte transport.
package term

import "io"

// Port is the transmit side of a UART-like byte channel. The encoder drives
// it with two levels of backpressure: Transmitting gates whole frames (a new
// frame waits for the previous one to drain) and SpaceAvailable gates
// individual bytes. Implementations are provided by the platform; the
// encoder only consumes the interface.
type Port interface {
	// Transmitting reports whether a previous transmission is still
	// draining.
	Transmitting() bool

	// SpaceAvailable reports whether the channel can accept one more byte.
	SpaceAvailable() bool

	// TransmitByte queues one byte for transmission.
	TransmitByte(b byte)
}

// WriterPort adapts an io.Writer into a Port that always has space and is
// never mid-transmission, for hosts where the OS buffers the stream. Write
// errors are dropped; a Port has no error path, matching the fire-and-forget
// UART it stands in for.
type WriterPort struct {
	w io.Writer
}

// NewWriterPort wraps a writer as a Port.
func NewWriterPort(w io.Writer) *WriterPort {
	return &WriterPort{w: w}
}

// Transmitting always reports false.
func (p *WriterPort) Transmitting() bool { return false }

// SpaceAvailable always reports true.
func (p *WriterPort) SpaceAvailable() bool { return true }

// TransmitByte writes one byte to the underlying writer.
func (p *WriterPort) TransmitByte(b byte) {
	buf := [1]byte{b}
	_, _ = p.w.Write(buf[:])
}
