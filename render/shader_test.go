package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/raysphere/sdf"
	"github.com/lixenwraith/raysphere/vmath"
)

func newTestShader(t testing.TB, field sdf.Field, palette string) *Shader {
	t.Helper()
	return NewShader(field, mustPalette(t, palette), DefaultMarchConfig())
}

func TestLightDir(t *testing.T) {
	s := newTestShader(t, sdf.DefaultScene(), PaletteMono)

	tests := []struct {
		t    float64
		want vmath.Vec3
	}{
		{0, vmath.V3(0, 20, 50)},
		{math.Pi / 2, vmath.V3(50, 20, 0)},
		{math.Pi, vmath.V3(0, 20, -50)},
	}
	for _, tt := range tests {
		want, _ := tt.want.Normalized()
		got := s.LightDir(tt.t)
		if got.Sub(want).MaxAbs() > 1e-12 {
			t.Errorf("LightDir(%v) = %v, want %v", tt.t, got, want)
		}
	}
}

func TestNormalOnSphere(t *testing.T) {
	s := newTestShader(t, sdf.DefaultScene(), PaletteMono)

	tests := []struct {
		name string
		p    vmath.Vec3
		want vmath.Vec3
	}{
		{"+x", vmath.V3(0.2, 0, 0), vmath.V3(1, 0, 0)},
		{"+y", vmath.V3(0, 0.2, 0), vmath.V3(0, 1, 0)},
		{"-z", vmath.V3(0, 0, -0.2), vmath.V3(0, 0, -1)},
		{"diagonal", vmath.V3(0.1, 0.1, -0.1), vmath.V3(1, 1, -1).Scale(1 / math.Sqrt(3))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := s.Normal(tt.p)
			if !ok {
				t.Fatal("degenerate normal")
			}
			if n.Sub(tt.want).MaxAbs() > 1e-4 {
				t.Errorf("Normal(%v) = %v, want %v", tt.p, n, tt.want)
			}
		})
	}
}

func TestShadeDegenerateGradient(t *testing.T) {
	flat := sdf.Field(func(vmath.Vec3) float64 { return 1 })
	s := newTestShader(t, flat, PaletteOcean)

	if _, ok := s.Normal(vmath.V3(1, 2, 3)); ok {
		t.Error("constant field should give degenerate normal")
	}
	if got := s.Shade(vmath.V3(1, 2, 3), 0); got != s.Palette().First() {
		t.Errorf("Shade = %+v, want first palette entry", got)
	}
}

func TestShadeAlwaysPaletteMember(t *testing.T) {
	points := []vmath.Vec3{
		vmath.V3(0, 0, -0.2),
		vmath.V3(0.2, 0, 0),
		vmath.V3(0, 0, 0),
		vmath.V3(0.05, -0.1, 0.02),
		vmath.V3(1e6, -1e6, 1e6),
		vmath.V3(math.NaN(), 0, 0),
		vmath.V3(math.Inf(1), 0, 0),
	}
	times := []float64{0, 0.5, math.Pi, -7, 1e9, math.NaN()}

	for _, name := range PaletteNames() {
		s := newTestShader(t, sdf.DefaultScene(), name)
		for _, p := range points {
			for _, tm := range times {
				if c := s.Shade(p, tm); !s.Palette().Contains(c) {
					t.Errorf("%s: Shade(%v, %v) = %+v not in palette", name, p, tm, c)
				}
			}
		}
	}
}

func TestShadeLitSide(t *testing.T) {
	s := newTestShader(t, sdf.DefaultScene(), PaletteMono)

	// At t=0 the light sits at +z, so the -z cap faces away and the +y cap is partly lit
	if got := s.Shade(vmath.V3(0, 0, -0.2), 0); got != s.Palette().At(0) {
		t.Errorf("far side = %q, want level 0", got.Rune)
	}
	if got := s.Shade(vmath.V3(0, 0.2, 0), 0); got != s.Palette().At(4) {
		t.Errorf("top = %q, want level 4", got.Rune)
	}
}
