package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
	AttrFgColor   Attr = 1 << 6 // Fg is set, otherwise terminal default foreground
	AttrBgColor   Attr = 1 << 7 // Bg is set, otherwise terminal default background
)

// AttrStyle masks only the style bits (excludes color flags)
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// Cell represents a single terminal cell
// Zero value is a blank cell in terminal default colors
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Glyph returns the rune to draw, blank for the zero rune
func (c Cell) Glyph() rune {
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}

// Grid is a read-only row-major view of cells handed to a sink
type Grid interface {
	Size() (width, height int)
	// Row returns the cells of row y; callers must not retain or modify it
	Row(y int) []Cell
}
