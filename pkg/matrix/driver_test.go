package matrix

import (
	"testing"

	"github.com/fkcurrie/matrix-serial-golang/pkg/frame"
	"github.com/fkcurrie/matrix-serial-golang/pkg/pixel"
)

type lineOp struct {
	line  string
	value int
}

// fakeLine records every SetValue call into a shared log so tests can
// check the exact pulse sequences.
type fakeLine struct {
	name string
	log  *[]lineOp
}

func (l *fakeLine) SetValue(value int) error {
	*l.log = append(*l.log, lineOp{l.name, value})
	return nil
}

func fakePins() (Pins, *[]lineOp) {
	log := &[]lineOp{}
	pins := Pins{
		SB:  &fakeLine{"SB", log},
		LAT: &fakeLine{"LAT", log},
		RST: &fakeLine{"RST", log},
		SCK: &fakeLine{"SCK", log},
		SDA: &fakeLine{"SDA", log},
	}
	rows := []string{"R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8"}
	for i, name := range rows {
		pins.Rows[i] = &fakeLine{name, log}
	}
	return pins, log
}

// dataBits extracts the bit stream shifted out in ops: the SDA level
// at each rising SCK edge.
func dataBits(ops []lineOp) []int {
	var bits []int
	sda := 0
	for _, op := range ops {
		switch op.line {
		case "SDA":
			sda = op.value
		case "SCK":
			if op.value == 1 {
				bits = append(bits, sda)
			}
		}
	}
	return bits
}

func countOps(ops []lineOp, line string, value int) int {
	n := 0
	for _, op := range ops {
		if op.line == line && op.value == value {
			n++
		}
	}
	return n
}

// TestNewBringUp tests the idle states and the bank initialization
func TestNewBringUp(t *testing.T) {
	pins, log := fakePins()
	New(pins)
	ops := *log

	// Idle states first: SB and LAT high, everything else low,
	// reset released only after the settle delay.
	wantHead := []lineOp{
		{"SB", 1}, {"LAT", 1}, {"RST", 0}, {"SCK", 0}, {"SDA", 0},
		{"R1", 0}, {"R2", 0}, {"R3", 0}, {"R4", 0},
		{"R5", 0}, {"R6", 0}, {"R7", 0}, {"R8", 0},
		{"RST", 1},
	}
	if len(ops) < len(wantHead) {
		t.Fatalf("only %d line operations recorded", len(ops))
	}
	for i, want := range wantHead {
		if ops[i] != want {
			t.Fatalf("op %d = %v, want %v", i, ops[i], want)
		}
	}

	// Bank init clocks out exactly 144 one bits with SB low, then
	// pulses the latch.
	bank := ops[len(wantHead):]
	if bank[0] != (lineOp{"SB", 0}) {
		t.Fatalf("bank init does not start by lowering SB: %v", bank[0])
	}
	bits := dataBits(bank)
	if len(bits) != 144 {
		t.Fatalf("bank init shifted %d bits, want 144", len(bits))
	}
	for i, b := range bits {
		if b != 1 {
			t.Fatalf("bank init bit %d = %d, want 1", i, b)
		}
	}
	tail := bank[len(bank)-3:]
	wantTail := []lineOp{{"LAT", 0}, {"LAT", 1}, {"SB", 1}}
	for i, want := range wantTail {
		if tail[i] != want {
			t.Fatalf("bank init tail op %d = %v, want %v", i, tail[i], want)
		}
	}
}

// TestSendRowBitStream tests reverse column order, BGR byte order and
// MSB-first shifting
func TestSendRowBitStream(t *testing.T) {
	pins, log := fakePins()
	d := New(pins)
	*log = (*log)[:0]

	// Only the last column is lit; values 0 and 255 are fixed points
	// of the gamma curve so the expected bit pattern is exact.
	row := make([]pixel.Color, frame.Size)
	row[7] = pixel.Color{R: 255, G: 0, B: 255}
	d.SendRow(3, row)

	bits := dataBits(*log)
	if len(bits) != 192 {
		t.Fatalf("shifted %d bits, want 192", len(bits))
	}
	// Column 8 goes first: blue 0xFF, green 0x00, red 0xFF.
	for i := 0; i < 24; i++ {
		want := 1
		if i >= 8 && i < 16 {
			want = 0
		}
		if bits[i] != want {
			t.Fatalf("bit %d = %d, want %d", i, bits[i], want)
		}
	}
	for i := 24; i < 192; i++ {
		if bits[i] != 0 {
			t.Fatalf("bit %d = %d, want 0 for unlit columns", i, bits[i])
		}
	}
}

// TestSendRowLatchAndSelect tests blanking of the previous row, the
// latch pulse and the final row select
func TestSendRowLatchAndSelect(t *testing.T) {
	pins, log := fakePins()
	d := New(pins)
	*log = (*log)[:0]

	d.SendRow(3, make([]pixel.Color, frame.Size))
	ops := *log

	if n := countOps(ops, "R2", 0); n != 1 {
		t.Errorf("previous row R2 blanked %d times, want 1", n)
	}
	// Blanking happens mid-transfer, strictly before the latch.
	blankAt, latAt := -1, -1
	for i, op := range ops {
		if op.line == "R2" && op.value == 0 && blankAt == -1 {
			blankAt = i
		}
		if op.line == "LAT" && op.value == 0 && latAt == -1 {
			latAt = i
		}
	}
	if blankAt == -1 || latAt == -1 || blankAt >= latAt {
		t.Errorf("blank at %d, latch at %d; want blank before latch", blankAt, latAt)
	}

	// The transfer ends with a low-high latch pulse and the new row
	// select going high.
	tail := ops[len(ops)-3:]
	wantTail := []lineOp{{"LAT", 0}, {"LAT", 1}, {"R3", 1}}
	for i, want := range wantTail {
		if tail[i] != want {
			t.Errorf("tail op %d = %v, want %v", i, tail[i], want)
		}
	}
}

// TestSendRowOneWrapsToLastRow tests that row 1 blanks row 8 through
// the select clamp
func TestSendRowOneWrapsToLastRow(t *testing.T) {
	pins, log := fakePins()
	d := New(pins)
	*log = (*log)[:0]

	d.SendRow(1, make([]pixel.Color, frame.Size))

	if n := countOps(*log, "R8", 0); n != 1 {
		t.Errorf("row 8 blanked %d times while sending row 1, want 1", n)
	}
}

// TestDisplayFull tests that a full frame streams all eight rows
func TestDisplayFull(t *testing.T) {
	pins, log := fakePins()
	d := New(pins)
	*log = (*log)[:0]

	var f frame.Frame
	f.Gradient(pixel.Green)
	d.DisplayFull(&f)

	if got := len(dataBits(*log)); got != 8*192 {
		t.Errorf("full frame shifted %d bits, want %d", got, 8*192)
	}
	for r := 1; r <= 8; r++ {
		name := []string{"R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8"}[r-1]
		if n := countOps(*log, name, 1); n != 1 {
			t.Errorf("row %d selected %d times, want 1", r, n)
		}
	}
}
