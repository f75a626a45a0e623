package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/raysphere/terminal"
)

var (
	ErrEmptyPalette   = errors.New("render: palette has no levels")
	ErrWideGlyph      = errors.New("render: palette glyph is not one column wide")
	ErrUnknownPalette = errors.New("render: unknown palette")
	ErrGlyphRamp      = errors.New("render: palette does not take a glyph ramp")
)

// cellWidth measures glyphs with ambiguous-width runes as narrow, independent of locale
var cellWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// Palette is an immutable ramp of cells ordered by increasing light
// Background is drawn where no surface was hit
type Palette struct {
	name       string
	levels     []Cell
	background Cell
}

// NewPalette validates and copies levels
func NewPalette(name string, levels []Cell) (Palette, error) {
	if len(levels) == 0 {
		return Palette{}, fmt.Errorf("%w: %q", ErrEmptyPalette, name)
	}
	for _, c := range levels {
		if w := cellWidth.RuneWidth(c.Glyph()); w != 1 {
			return Palette{}, fmt.Errorf("%w: %q in %q has width %d", ErrWideGlyph, c.Glyph(), name, w)
		}
	}
	return Palette{
		name:       name,
		levels:     append([]Cell(nil), levels...),
		background: BlankCell,
	}, nil
}

// GlyphPalette builds a monochrome palette, one level per rune of ramp
func GlyphPalette(name, ramp string) (Palette, error) {
	levels := make([]Cell, 0, len(ramp))
	for _, r := range ramp {
		levels = append(levels, Cell{Rune: r})
	}
	return NewPalette(name, levels)
}

// BlendSpace selects the interpolation space of a gradient
type BlendSpace uint8

const (
	BlendRGB BlendSpace = iota
	BlendLab
)

// GradientPalette builds a ramp of colored-space swatches from dark to bright
func GradientPalette(name string, dark, bright terminal.RGB, steps int, space BlendSpace) (Palette, error) {
	if steps <= 0 {
		return Palette{}, fmt.Errorf("%w: %q has %d steps", ErrEmptyPalette, name, steps)
	}

	from, to := toColorful(dark), toColorful(bright)
	levels := make([]Cell, steps)
	for i := range levels {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		var c colorful.Color
		switch space {
		case BlendLab:
			c = from.BlendLab(to, t).Clamped()
		default:
			c = from.BlendRgb(to, t)
		}
		levels[i] = Swatch(fromColorful(c))
	}
	return NewPalette(name, levels)
}

// Swatch is a blank cell with a background color
func Swatch(bg terminal.RGB) Cell {
	return Cell{Rune: ' ', Bg: bg, Attrs: terminal.AttrBgColor}
}

func toColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) terminal.RGB {
	r, g, b := c.RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

func (p Palette) Name() string { return p.name }

func (p Palette) Len() int { return len(p.levels) }

// At returns level i; i must be in [0, Len())
func (p Palette) At(i int) Cell { return p.levels[i] }

// First is the darkest level, used for degenerate normals
func (p Palette) First() Cell { return p.levels[0] }

func (p Palette) Background() Cell { return p.background }

// Levels returns a copy of the ramp
func (p Palette) Levels() []Cell { return append([]Cell(nil), p.levels...) }

// Contains reports whether c is a level or the background
func (p Palette) Contains(c Cell) bool {
	if c == p.background {
		return true
	}
	for _, l := range p.levels {
		if l == c {
			return true
		}
	}
	return false
}

// Index maps diffuse intensity to a level: floor((d+1)/2 * n) mod n
// Any input, including NaN and out-of-range values, yields an index in [0, n)
func (p Palette) Index(diffuse float64) int {
	n := float64(len(p.levels))
	f := math.Floor((diffuse + 1) / 2 * n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Mod(f, n)
	if f < 0 {
		f += n
	}
	return int(f)
}

// Cell returns the level for diffuse intensity
func (p Palette) Cell(diffuse float64) Cell {
	return p.levels[p.Index(diffuse)]
}
