// Package decoder turns the incoming serial byte stream into pixel
// writes and hands completed frames to the exchange.
package decoder

import (
	"context"
	"fmt"
	"io"

	"github.com/fkcurrie/matrix-serial-golang/pkg/frame"
	"github.com/fkcurrie/matrix-serial-golang/pkg/pixel"
)

// Resync is the control byte that resets the write cursor to the
// start of a frame. It never encodes a pixel value.
const Resync = 0xFF

// Decoder fills a receive frame byte by byte. There is no error path:
// malformed input is either corrected by a resync byte or bounded by
// the fixed cursor range.
type Decoder struct {
	exchange *frame.Exchange
	target   *frame.Frame
	cursor   int
}

// New creates a decoder writing into recv. Completed frames go to ex,
// which hands back a fresh frame to keep receiving into.
func New(ex *frame.Exchange, recv *frame.Frame) *Decoder {
	return &Decoder{exchange: ex, target: recv}
}

// Feed consumes one wire byte. Bounded work per call, no blocking
// beyond the exchange pointer swap.
func (d *Decoder) Feed(b byte) {
	if b == Resync {
		d.cursor = 0
		return
	}
	if d.cursor < frame.NumBytes {
		d.target.SetByte(d.cursor, b)
		d.cursor++
		if d.cursor == frame.NumBytes {
			d.target = d.exchange.Publish(d.target)
			// Start the next receive frame visibly patterned, not
			// black, so a stalled sender shows up on the panel.
			d.target.Gradient(pixel.Blue)
			d.cursor = 0
		}
	}
}

// Cursor reports the current write position in [0, 192).
func (d *Decoder) Cursor() int {
	return d.cursor
}

// Run feeds bytes from r until ctx is cancelled or the reader fails.
// Cancellation is observed once the blocking read returns, so the
// caller should close the underlying port on shutdown.
func (d *Decoder) Run(ctx context.Context, r io.Reader) error {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			d.Feed(b)
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to read serial stream: %v", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
