// Package scheduler paces the display: one matrix row per tick at a
// fixed cadence, with frame swaps only at row boundaries.
package scheduler

import (
	"context"
	"time"

	"github.com/fkcurrie/matrix-serial-golang/pkg/frame"
	"github.com/fkcurrie/matrix-serial-golang/pkg/pixel"
)

// DefaultFps is the full-frame refresh rate. Eight rows per frame
// puts the row rate at 480 Hz.
const DefaultFps = 60

// RowSender streams one row of pixels to the hardware.
// *matrix.Driver implements it.
type RowSender interface {
	SendRow(row int, pixels []pixel.Color)
}

// Scheduler owns the current frame while its rows stream out. The
// frame is replaced wholesale at row-1 ticks, never mutated, so a
// frame is never partially displayed.
type Scheduler struct {
	exchange *frame.Exchange
	sender   RowSender
	current  *frame.Frame
	nextRow  int
	interval time.Duration
	deadline time.Time
}

// New creates a scheduler displaying current until a newer frame
// arrives on ex.
func New(ex *frame.Exchange, sender RowSender, current *frame.Frame, fps int) *Scheduler {
	if fps <= 0 {
		fps = DefaultFps
	}
	return &Scheduler{
		exchange: ex,
		sender:   sender,
		current:  current,
		nextRow:  1,
		interval: time.Second / time.Duration(8*fps),
	}
}

// Tick swaps in a pending frame when the row counter is back at 1,
// sends the next row, and advances the deadline by exactly one
// interval from the previous deadline so late ticks do not accumulate
// drift.
func (s *Scheduler) Tick() {
	if s.nextRow == 1 {
		s.current = s.exchange.TakePending(s.current)
	}
	s.sender.SendRow(s.nextRow, s.current.Row(s.nextRow))
	if s.nextRow < frame.Size {
		s.nextRow++
	} else {
		s.nextRow = 1
	}
	s.deadline = s.deadline.Add(s.interval)
}

// Run ticks at the fixed cadence until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.deadline = time.Now().Add(s.interval)
	timer := time.NewTimer(s.interval)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			s.Tick()
			timer.Reset(time.Until(s.deadline))
		}
	}
}
