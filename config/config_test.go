package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/raysphere/parameter"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.Interval() != parameter.FrameInterval {
		t.Errorf("Interval() = %v, want %v", c.Interval(), parameter.FrameInterval)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	c := Default()
	if err := c.LoadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c != Default() {
		t.Errorf("missing file changed config: %+v", c)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := writeEnv(t, `# render settings
RAYSPHERE_WIDTH=40
RAYSPHERE_HEIGHT=12
RAYSPHERE_PALETTE=ocean
RAYSPHERE_FPS=30
RAYSPHERE_GLYPHS=" .#"
RAYSPHERE_DEBUG=true
UNRELATED=1
`)

	c := Default()
	if err := c.LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.Width != 40 || c.Height != 12 || c.Palette != "ocean" || c.FPS != 30 || !c.Debug {
		t.Errorf("config = %+v", c)
	}
	if c.Glyphs != " .#" {
		t.Errorf("glyphs = %q, want leading space kept", c.Glyphs)
	}
}

func TestLoadEnvProcessOverridesFile(t *testing.T) {
	path := writeEnv(t, "RAYSPHERE_WIDTH=40\nRAYSPHERE_SINK=tcell\n")
	t.Setenv("RAYSPHERE_WIDTH", "50")

	c := Default()
	if err := c.LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if c.Width != 50 {
		t.Errorf("width = %d, want env value 50", c.Width)
	}
	if c.Sink != SinkTcell {
		t.Errorf("sink = %q, want file value", c.Sink)
	}
}

func TestLoadEnvInvalidValue(t *testing.T) {
	path := writeEnv(t, "RAYSPHERE_FPS=fast\n")
	c := Default()
	if err := c.LoadEnv(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestEnvPath(t *testing.T) {
	t.Setenv(EnvFileVar, "")
	if got := EnvPath(); got != DefaultEnv {
		t.Errorf("EnvPath() = %q, want %q", got, DefaultEnv)
	}
	t.Setenv(EnvFileVar, "/etc/raysphere.env")
	if got := EnvPath(); got != "/etc/raysphere.env" {
		t.Errorf("EnvPath() = %q", got)
	}
}

func TestRegisterFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("raysphere", flag.ContinueOnError)
	c.RegisterFlags(fs)

	if def := fs.Lookup("fps").DefValue; def != "60" {
		t.Errorf("fps default = %q, want 60", def)
	}

	args := []string{"-width", "30", "-debug", "-palette", "ember", "-workers=4", "-epsilon", "1e-5"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Width != 30 || !c.Debug || c.Palette != "ember" || c.Workers != 4 || c.Epsilon != 1e-5 {
		t.Errorf("config = %+v", c)
	}

	mc := c.MarchConfig()
	if mc.Workers != 4 || mc.HitEpsilon != 1e-5 || mc.StepBudget != parameter.StepBudget {
		t.Errorf("MarchConfig = %+v", mc)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"fit terminal", func(c *Config) { c.Width, c.Height = 0, 0 }, true},
		{"tcell truecolor", func(c *Config) { c.Sink, c.Color = SinkTcell, "truecolor" }, true},
		{"custom glyphs", func(c *Config) { c.Glyphs = " -=#" }, true},
		{"negative width", func(c *Config) { c.Width = -1 }, false},
		{"zero fps", func(c *Config) { c.FPS = 0 }, false},
		{"zero steps", func(c *Config) { c.Steps = 0 }, false},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }, false},
		{"zero bound", func(c *Config) { c.Bound = 0 }, false},
		{"zero gradient step", func(c *Config) { c.GradientStep = 0 }, false},
		{"negative workers", func(c *Config) { c.Workers = -2 }, false},
		{"negative frames", func(c *Config) { c.Frames = -1 }, false},
		{"unknown sink", func(c *Config) { c.Sink = "x11" }, false},
		{"unknown color", func(c *Config) { c.Color = "cga" }, false},
		{"unknown palette", func(c *Config) { c.Palette = "plaid" }, false},
		{"wide glyphs", func(c *Config) { c.Glyphs = "世界" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}
