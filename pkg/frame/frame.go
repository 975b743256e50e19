// Package frame holds the fixed 8×8 frame type plus the preallocated
// pool and the single-slot exchange that move frames between the
// serial decoder and the display task.
package frame

import (
	"fmt"

	"github.com/fkcurrie/matrix-serial-golang/pkg/pixel"
)

const (
	// Size is the matrix edge length in pixels.
	Size = 8
	// Cells is the number of pixels in one frame.
	Cells = Size * Size
	// NumBytes is the length of the serialized wire form, three
	// bytes per cell.
	NumBytes = Cells * 3
)

// Frame is one complete 8×8 grid of pixel colors, stored row-major.
// Rows and columns are addressed 1-based to match the wire protocol;
// out-of-range access is a programming error and panics.
type Frame struct {
	cells [Cells]pixel.Color
}

func cellIndex(row, col int) int {
	if row < 1 || row > Size || col < 1 || col > Size {
		panic(fmt.Sprintf("frame: cell (%d, %d) out of range", row, col))
	}
	return (row-1)*Size + col - 1
}

// At returns the color of the 1-based cell (row, col).
func (f *Frame) At(row, col int) pixel.Color {
	return f.cells[cellIndex(row, col)]
}

// Set stores c at the 1-based cell (row, col).
func (f *Frame) Set(row, col int, c pixel.Color) {
	f.cells[cellIndex(row, col)] = c
}

// Row returns the eight colors of row n in column order 1..8. The
// slice aliases the frame storage.
func (f *Frame) Row(n int) []pixel.Color {
	if n < 1 || n > Size {
		panic(fmt.Sprintf("frame: row %d out of range", n))
	}
	start := (n - 1) * Size
	return f.cells[start : start+Size]
}

// Solid fills every cell with c.
func (f *Frame) Solid(c pixel.Color) {
	for i := range f.cells {
		f.cells[i] = c
	}
}

// Gradient fills the frame with the diagnostic gradient derived from
// base, brightest at (1, 1).
func (f *Frame) Gradient(base pixel.Color) {
	for row := 1; row <= Size; row++ {
		for col := 1; col <= Size; col++ {
			f.Set(row, col, pixel.GradientAt(base, row, col))
		}
	}
}

// SetByte writes one wire byte at the given cursor position in
// [0, NumBytes). The wire form is row-major, three bytes per cell in
// R, G, B order. No validation beyond the range check: the caller owns
// the layout.
func (f *Frame) SetByte(cursor int, b byte) {
	if cursor < 0 || cursor >= NumBytes {
		panic(fmt.Sprintf("frame: byte cursor %d out of range", cursor))
	}
	c := &f.cells[cursor/3]
	switch cursor % 3 {
	case 0:
		c.R = b
	case 1:
		c.G = b
	case 2:
		c.B = b
	}
}

// SetBytes deserializes a full 192-byte wire frame.
func (f *Frame) SetBytes(b []byte) {
	if len(b) != NumBytes {
		panic(fmt.Sprintf("frame: expected %d bytes, got %d", NumBytes, len(b)))
	}
	for i, v := range b {
		f.SetByte(i, v)
	}
}

// Bytes serializes the frame into its 192-byte wire form.
func (f *Frame) Bytes() []byte {
	b := make([]byte, 0, NumBytes)
	for i := range f.cells {
		c := f.cells[i]
		b = append(b, c.R, c.G, c.B)
	}
	return b
}
