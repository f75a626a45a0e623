// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"fmt"
	"io"
)

// ANSISink writes whole frames to a stream as clear-screen + rows of ANSI text
// Works on any io.Writer; no raw mode, no input
type ANSISink struct {
	writer    *bufio.Writer
	colorMode ColorMode
	clear     bool
}

// NewANSISink creates a sink writing to w in the given color mode
func NewANSISink(w io.Writer, colorMode ColorMode) *ANSISink {
	return &ANSISink{
		writer:    bufio.NewWriterSize(w, 65536),
		colorMode: colorMode,
		clear:     true,
	}
}

// SetClear toggles the clear-screen prefix and cursor control, off yields plain scrolling output
func (s *ANSISink) SetClear(clear bool) {
	s.clear = clear
}

// ColorMode returns the encoding used for colored cells
func (s *ANSISink) ColorMode() ColorMode {
	return s.colorMode
}

// Init hides the cursor; plain output writes nothing
func (s *ANSISink) Init() error {
	if !s.clear {
		return nil
	}
	s.writer.Write(csiCursorHide)
	return s.writer.Flush()
}

// Present clears prior output and writes the grid top to bottom
// The frame is flushed in one write burst; write errors are returned
func (s *ANSISink) Present(g Grid) error {
	w := s.writer
	if s.clear {
		w.Write(csiClear)
	}

	width, height := g.Size()
	for y := 0; y < height; y++ {
		row := g.Row(y)
		if len(row) < width {
			return fmt.Errorf("terminal: row %d has %d cells, want %d", y, len(row), width)
		}
		s.writeRow(row[:width])
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("terminal: write frame: %w", err)
	}
	return nil
}

// writeRow emits one row, coalescing runs of identical style
func (s *ANSISink) writeRow(row []Cell) {
	w := s.writer
	var active Cell // zero value: default style

	for _, c := range row {
		if !sameStyle(active, c) {
			if c.Attrs == AttrNone {
				w.Write(csiSGR0)
			} else {
				writeSGR(w, c, s.colorMode)
			}
			active = c
		}

		r := c.Glyph()
		if r < 0x80 {
			w.WriteByte(byte(r))
		} else {
			w.WriteRune(r)
		}
	}

	// Reset before newline so background color does not bleed to the row end
	if active.Attrs != AttrNone {
		w.Write(csiSGR0)
	}
	w.WriteByte('\n')
}

// Close resets attributes and restores the cursor
// Plain output only flushes, rows already end in the default style
func (s *ANSISink) Close() error {
	if !s.clear {
		return s.writer.Flush()
	}
	s.writer.Write(csiSGR0)
	s.writer.Write(csiCursorShow)
	return s.writer.Flush()
}
