package render

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/raysphere/parameter/visual"
)

// Built-in palette names
const (
	PaletteMono   = "mono"
	PaletteOcean  = "ocean"
	PaletteBlocks = "blocks"
	PaletteEmber  = "ember"
	PaletteMint   = "mint"
)

var paletteBuilders = map[string]func() (Palette, error){
	PaletteMono: func() (Palette, error) {
		return GlyphPalette(PaletteMono, visual.GlyphRampMono)
	},
	PaletteBlocks: func() (Palette, error) {
		return GlyphPalette(PaletteBlocks, visual.GlyphRampBlocks)
	},
	PaletteOcean: func() (Palette, error) {
		return GradientPalette(PaletteOcean, visual.OceanDark, visual.OceanBright, visual.SwatchLevels, BlendRGB)
	},
	PaletteEmber: func() (Palette, error) {
		return GradientPalette(PaletteEmber, visual.EmberDark, visual.EmberBright, visual.SwatchLevels, BlendLab)
	},
	PaletteMint: func() (Palette, error) {
		return GradientPalette(PaletteMint, visual.MintDark, visual.MintBright, visual.SwatchLevels, BlendLab)
	},
}

// PaletteNames returns the built-in palette names in sorted order
func PaletteNames() []string {
	names := make([]string, 0, len(paletteBuilders))
	for name := range paletteBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPalette builds a palette by name
// A non-empty glyphs ramp replaces the built-in ramp and is only valid for glyph palettes
func LookupPalette(name, glyphs string) (Palette, error) {
	if glyphs != "" {
		switch name {
		case PaletteMono, PaletteBlocks, "":
			return GlyphPalette("custom", glyphs)
		default:
			return Palette{}, fmt.Errorf("%w: %q", ErrGlyphRamp, name)
		}
	}
	build, ok := paletteBuilders[name]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return build()
}
