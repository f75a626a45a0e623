package visual

import (
	"github.com/lixenwraith/raysphere/terminal"
)

// Glyph ramps, darkest to brightest
const (
	GlyphRampMono   = " .:+|0#"
	GlyphRampBlocks = " ░▒▓█"
)

// SwatchLevels is the number of background shades in gradient palettes
const SwatchLevels = 7

// Ocean: the blue background ramp, 60..180 in steps of 20
var (
	OceanDark   = terminal.RGB{R: 0, G: 0, B: 60}
	OceanBright = terminal.RGB{R: 0, G: 0, B: 180}
)

// Ember: dark red to amber, blended in Lab for even perceived steps
var (
	EmberDark   = terminal.RGB{R: 45, G: 8, B: 0}
	EmberBright = terminal.RGB{R: 255, G: 176, B: 64}
)

// Mint: deep teal to pale mint
var (
	MintDark   = terminal.RGB{R: 0, G: 40, B: 32}
	MintBright = terminal.RGB{R: 160, G: 255, B: 210}
)
