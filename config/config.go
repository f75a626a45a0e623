// Package config resolves run settings from defaults, a dotenv file, the
// process environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/raysphere/parameter"
	"github.com/lixenwraith/raysphere/render"
	"github.com/lixenwraith/raysphere/terminal"
)

// Sink names
const (
	SinkANSI  = "ansi"
	SinkTcell = "tcell"
)

const (
	EnvPrefix  = "RAYSPHERE_"
	EnvFileVar = EnvPrefix + "ENV_FILE"
	DefaultEnv = ".env"
)

var ErrInvalidConfig = errors.New("config: invalid value")

// Config is resolved once at startup and treated as immutable afterwards
type Config struct {
	// Width and Height of the frame; 0 fits the terminal
	Width  int
	Height int

	FPS          float64
	Steps        int
	Epsilon      float64
	Bound        float64
	GradientStep float64

	Palette string
	Glyphs  string // custom glyph ramp, overrides the palette's ramp

	Workers int
	Sink    string
	Color   string // auto, 256, truecolor

	// Frames stops after N frames, 0 runs until interrupted
	Frames int
	Debug  bool
}

func Default() Config {
	return Config{
		Width:        parameter.DefaultWidth,
		Height:       parameter.DefaultHeight,
		FPS:          parameter.DefaultFPS,
		Steps:        parameter.StepBudget,
		Epsilon:      parameter.HitEpsilon,
		Bound:        parameter.DivergenceBound,
		GradientStep: parameter.GradientStep,
		Palette:      render.PaletteMono,
		Workers:      1,
		Sink:         SinkANSI,
		Color:        "auto",
	}
}

// EnvPath returns the dotenv file to read
func EnvPath() string {
	if p := os.Getenv(EnvFileVar); p != "" {
		return p
	}
	return DefaultEnv
}

// LoadEnv applies RAYSPHERE_* keys from the dotenv file at path, then from the
// process environment, which takes precedence. A missing file is not an error.
func (c *Config) LoadEnv(path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		values = map[string]string{}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, EnvPrefix) {
			values[k] = v
		}
	}
	return c.apply(values)
}

func (c *Config) apply(values map[string]string) error {
	for _, f := range c.fields() {
		raw, ok := values[EnvPrefix+f.env]
		if !ok {
			continue
		}
		if err := f.set(raw); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, f.env, raw, err)
		}
	}
	return nil
}

// field binds one setting to its env key and flag
type field struct {
	env   string
	flag  string
	usage string
	set   func(string) error
	value flag.Value
}

func (c *Config) fields() []field {
	return []field{
		intField("WIDTH", "width", "frame width in cells, 0 fits the terminal", &c.Width),
		intField("HEIGHT", "height", "frame height in cells, 0 fits the terminal", &c.Height),
		floatField("FPS", "fps", "target frames per second", &c.FPS),
		intField("STEPS", "steps", "march step budget per ray", &c.Steps),
		floatField("EPSILON", "epsilon", "hit distance threshold", &c.Epsilon),
		floatField("BOUND", "bound", "coordinate magnitude past which a ray escapes", &c.Bound),
		floatField("GRADIENT_STEP", "gradient-step", "finite-difference step for normals", &c.GradientStep),
		stringField("PALETTE", "palette", "palette: "+strings.Join(render.PaletteNames(), ", "), &c.Palette),
		stringField("GLYPHS", "glyphs", "custom glyph ramp, darkest first", &c.Glyphs),
		intField("WORKERS", "workers", "row render goroutines, 1 renders sequentially", &c.Workers),
		stringField("SINK", "sink", "display sink: ansi, tcell", &c.Sink),
		stringField("COLOR", "color", "color mode: auto, truecolor, 256", &c.Color),
		intField("FRAMES", "frames", "stop after N frames, 0 runs until interrupted", &c.Frames),
		boolField("DEBUG", "debug", "write a debug log to logs/", &c.Debug),
	}
}

func intField(env, name, usage string, p *int) field {
	return field{env: env, flag: name, usage: usage, value: (*intValue)(p), set: (*intValue)(p).Set}
}

func floatField(env, name, usage string, p *float64) field {
	return field{env: env, flag: name, usage: usage, value: (*floatValue)(p), set: (*floatValue)(p).Set}
}

func stringField(env, name, usage string, p *string) field {
	return field{env: env, flag: name, usage: usage, value: (*stringValue)(p), set: (*stringValue)(p).Set}
}

func boolField(env, name, usage string, p *bool) field {
	return field{env: env, flag: name, usage: usage, value: (*boolValue)(p), set: (*boolValue)(p).Set}
}

// RegisterFlags binds every setting to flags with the current values as defaults
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	for _, f := range c.fields() {
		flags.Var(f.value, f.flag, f.usage)
	}
}

// Validate rejects settings the renderer cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case !(c.FPS > 0):
		return fmt.Errorf("%w: fps %v", ErrInvalidConfig, c.FPS)
	case c.Steps <= 0:
		return fmt.Errorf("%w: steps %d", ErrInvalidConfig, c.Steps)
	case !(c.Epsilon > 0):
		return fmt.Errorf("%w: epsilon %v", ErrInvalidConfig, c.Epsilon)
	case !(c.Bound > 0):
		return fmt.Errorf("%w: bound %v", ErrInvalidConfig, c.Bound)
	case !(c.GradientStep > 0):
		return fmt.Errorf("%w: gradient step %v", ErrInvalidConfig, c.GradientStep)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalidConfig, c.Frames)
	case c.Sink != SinkANSI && c.Sink != SinkTcell:
		return fmt.Errorf("%w: sink %q", ErrInvalidConfig, c.Sink)
	}
	if _, ok := terminal.ParseColorMode(c.Color); !ok {
		return fmt.Errorf("%w: color %q", ErrInvalidConfig, c.Color)
	}
	if _, err := render.LookupPalette(c.Palette, c.Glyphs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Interval is the frame spacing for FPS
func (c Config) Interval() time.Duration {
	return time.Duration(float64(time.Second) / c.FPS)
}

// MarchConfig derives the tracing configuration; width and height are not part of it
func (c Config) MarchConfig() render.MarchConfig {
	mc := render.DefaultMarchConfig()
	mc.StepBudget = c.Steps
	mc.HitEpsilon = c.Epsilon
	mc.DivergenceBound = c.Bound
	mc.GradientStep = c.GradientStep
	mc.Workers = c.Workers
	return mc
}

type intValue int

func (v *intValue) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*v = intValue(n)
	return nil
}

func (v *intValue) String() string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(int(*v))
}

type floatValue float64

func (v *floatValue) Set(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return err
	}
	*v = floatValue(f)
	return nil
}

func (v *floatValue) String() string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(float64(*v), 'g', -1, 64)
}

type stringValue string

func (v *stringValue) Set(s string) error {
	*v = stringValue(s)
	return nil
}

func (v *stringValue) String() string {
	if v == nil {
		return ""
	}
	return string(*v)
}

type boolValue bool

func (v *boolValue) Set(s string) error {
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*v = boolValue(b)
	return nil
}

func (v *boolValue) String() string {
	if v == nil {
		return "false"
	}
	return strconv.FormatBool(bool(*v))
}

// IsBoolFlag lets -debug be passed without a value
func (v *boolValue) IsBoolFlag() bool { return true }
