// Package matrix bit-bangs the LED driver chip's shift-register
// protocol over GPIO lines: a serial data line clocked MSB first, a
// latch commit pulse, a blanking line and one select line per row.
package matrix

import (
	"time"

	"github.com/fkcurrie/matrix-serial-golang/pkg/frame"
	"github.com/fkcurrie/matrix-serial-golang/pkg/pixel"
)

// LineSetter drives a single digital output line. *gpiocdev.Line
// implements it.
type LineSetter interface {
	SetValue(value int) error
}

// Pins holds the output lines wired to the matrix.
type Pins struct {
	SB   LineSetter // enable/blank
	LAT  LineSetter // latch
	RST  LineSetter // reset
	SCK  LineSetter // shift clock
	SDA  LineSetter // serial data
	Rows [8]LineSetter
}

// Driver owns the matrix pins and emits the row protocol. Its methods
// are infallible by contract: every byte sent is self-generated and
// the lines were validated when they were requested, so set errors on
// the hot path are not propagated.
type Driver struct {
	pins Pins
}

// New drives the control lines to their idle states (SB and LAT high,
// everything else low), waits 100 ms for the driver chip to
// stabilize, releases reset and runs the one-time bank
// initialization.
func New(pins Pins) *Driver {
	d := &Driver{pins: pins}
	pins.SB.SetValue(1)
	pins.LAT.SetValue(1)
	pins.RST.SetValue(0)
	pins.SCK.SetValue(0)
	pins.SDA.SetValue(0)
	for _, r := range pins.Rows {
		r.SetValue(0)
	}

	time.Sleep(100 * time.Millisecond)
	pins.RST.SetValue(1)

	d.initBank0()
	return d
}

// pulseSCK clocks one bit into the shift register.
func (d *Driver) pulseSCK() {
	d.pins.SCK.SetValue(1)
	d.pins.SCK.SetValue(0)
}

// pulseLAT commits the shift-register contents to the outputs.
func (d *Driver) pulseLAT() {
	d.pins.LAT.SetValue(0)
	d.pins.LAT.SetValue(1)
}

// rowSelect drives the select line of the 1-based row. Out-of-range
// rows fall back to the last line; SendRow relies on this for the
// wrap from row 1 back to row 8 when blanking the previous row.
func (d *Driver) rowSelect(row, value int) {
	if row < 1 || row > frame.Size {
		row = frame.Size
	}
	d.pins.Rows[row-1].SetValue(value)
}

// sendByte shifts out one byte, most significant bit first, pulsing
// SCK after each bit.
func (d *Driver) sendByte(b uint8) {
	for i := 7; i >= 0; i-- {
		v := 0
		if b&(1<<uint(i)) != 0 {
			v = 1
		}
		d.pins.SDA.SetValue(v)
		d.pulseSCK()
	}
}

// SendRow shifts out one row of pixels and lights its select line.
// Pixels go out in reverse column order, gamma-corrected, blue byte
// first then green then red. Midway through the fifth reversed pixel
// the previously lit row is blanked so the latch does not smear stale
// data across two rows.
func (d *Driver) SendRow(row int, pixels []pixel.Color) {
	for i := len(pixels) - 1; i >= 0; i-- {
		c := pixels[i].Gamma()
		d.sendByte(c.B)
		d.sendByte(c.G)
		if len(pixels)-1-i == 4 {
			d.rowSelect((row+7)%8, 0)
		}
		d.sendByte(c.R)
	}
	d.pulseLAT()
	d.rowSelect(row, 1)
}

// initBank0 arms the driver chip's internal shift registers: SB held
// low while 144 one bits are clocked out, then one latch pulse.
func (d *Driver) initBank0() {
	d.pins.SB.SetValue(0)
	for i := 0; i < 144; i++ {
		d.pins.SDA.SetValue(1)
		d.pulseSCK()
	}
	d.pulseLAT()
	d.pins.SB.SetValue(1)
}

// DisplayFull sends all eight rows back to back. Diagnostics only:
// the production path paces one row per scheduler tick instead so the
// refresh cadence stays fixed.
func (d *Driver) DisplayFull(f *frame.Frame) {
	for row := 1; row <= frame.Size; row++ {
		d.SendRow(row, f.Row(row))
	}
}
