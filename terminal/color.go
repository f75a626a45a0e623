package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// RGBTo256 converts RGB to the nearest xterm-256 palette index
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)

	cr, cg, cb := cubeIndex[c.R], cubeIndex[c.G], cubeIndex[c.B]
	cubeDist := abs(r-int(cubeValues[cr])) + abs(g-int(cubeValues[cg])) + abs(b-int(cubeValues[cb]))
	cube := Cube256(cr, cg, cb)

	// Grayscale ramp 232-255 covers luminance 8..238 in steps of 10
	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 || gray < 4 || gray > 243 {
		return cube
	}
	step := (gray - 8 + 5) / 10
	step = max(0, min(23, step))
	level := 8 + step*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	if grayDist < cubeDist {
		return Gray256(uint8(step))
	}
	return cube
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("KONSOLE_VERSION") != "" ||
		os.Getenv("ITERM_SESSION_ID") != "" ||
		os.Getenv("ALACRITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves a -color flag value; "auto" defers to DetectColorMode
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256, true
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, true
	case "auto", "":
		return DetectColorMode(), true
	}
	return ColorMode256, false
}
