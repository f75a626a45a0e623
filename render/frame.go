package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/raysphere/parameter"
)

var ErrInvalidDimensions = errors.New("render: invalid frame dimensions")

// Frame is a row-major grid of cells, allocated once and overwritten in place
type Frame struct {
	width  int
	height int
	cells  []Cell
}

// NewFrame allocates a w*h frame filled with blank cells
func NewFrame(w, h int) (*Frame, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	// Division form avoids overflow of w*h
	if w > parameter.MaxCells/h {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, w, h, parameter.MaxCells)
	}
	f := &Frame{width: w, height: h, cells: make([]Cell, w*h)}
	f.Fill(BlankCell)
	return f, nil
}

func (f *Frame) Size() (int, int) { return f.width, f.height }

func (f *Frame) Width() int { return f.width }

func (f *Frame) Height() int { return f.height }

// Row returns row y backed by the frame storage
func (f *Frame) Row(y int) []Cell {
	start := y * f.width
	return f.cells[start : start+f.width : start+f.width]
}

func (f *Frame) At(x, y int) Cell { return f.cells[y*f.width+x] }

func (f *Frame) Set(x, y int, c Cell) { f.cells[y*f.width+x] = c }

func (f *Frame) Fill(c Cell) {
	for i := range f.cells {
		f.cells[i] = c
	}
}

// Equal reports whether both frames have the same size and cells
func (f *Frame) Equal(o *Frame) bool {
	if f.width != o.width || f.height != o.height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders glyphs only, one line per row
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow((f.width + 1) * f.height)
	for y := 0; y < f.height; y++ {
		for _, c := range f.Row(y) {
			sb.WriteRune(c.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
