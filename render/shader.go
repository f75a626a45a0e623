package render

import (
	"math"

	"github.com/lixenwraith/raysphere/sdf"
	"github.com/lixenwraith/raysphere/vmath"
)

// Shader turns a surface point into a palette cell using one orbiting light
type Shader struct {
	field       sdf.Field
	palette     Palette
	orbitRadius float64
	lightHeight float64
	gradStep    float64
}

func NewShader(field sdf.Field, palette Palette, cfg MarchConfig) *Shader {
	return &Shader{
		field:       field,
		palette:     palette,
		orbitRadius: cfg.LightOrbitRadius,
		lightHeight: cfg.LightHeight,
		gradStep:    cfg.GradientStep,
	}
}

// LightDir returns the unit light direction at animation time t
// L(t) = normalize(R sin t, H, R cos t)
func (s *Shader) LightDir(t float64) vmath.Vec3 {
	l := vmath.V3(s.orbitRadius*math.Sin(t), s.lightHeight, s.orbitRadius*math.Cos(t))
	// Non-zero height or radius is enforced by MarchConfig.Validate
	_ = l.Normalize()
	return l
}

// Normal estimates the unit surface normal at p by forward differences
// Each component subtracts f(p); the older (f(p+dt) - p.x)/dt form that
// subtracted the point coordinate is not reproduced, so its shading differs
// Returns false when the gradient is degenerate
func (s *Shader) Normal(p vmath.Vec3) (vmath.Vec3, bool) {
	dt := s.gradStep
	base := s.field(p)
	n := vmath.V3(
		(s.field(vmath.V3(p.X+dt, p.Y, p.Z))-base)/dt,
		(s.field(vmath.V3(p.X, p.Y+dt, p.Z))-base)/dt,
		(s.field(vmath.V3(p.X, p.Y, p.Z+dt))-base)/dt,
	)
	if err := n.Normalize(); err != nil {
		return vmath.Vec3{}, false
	}
	return n, true
}

// Shade returns the palette cell for surface point p at time t
// The result is always a palette level
func (s *Shader) Shade(p vmath.Vec3, t float64) Cell {
	n, ok := s.Normal(p)
	if !ok {
		return s.palette.First()
	}
	return s.palette.Cell(s.LightDir(t).Dot(n))
}

func (s *Shader) Palette() Palette { return s.palette }
