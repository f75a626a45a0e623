package render

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/lixenwraith/raysphere/core"
	"github.com/lixenwraith/raysphere/parameter"
	"github.com/lixenwraith/raysphere/sdf"
	"github.com/lixenwraith/raysphere/vmath"
)

var ErrInvalidConfig = errors.New("render: invalid march config")

// Outcome is how a single ray march ended
type Outcome uint8

const (
	Hit Outcome = iota
	Escaped
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Escaped:
		return "escaped"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// MarchResult reports the final position and number of distance evaluations
type MarchResult struct {
	Outcome  Outcome
	Position vmath.Vec3
	Steps    int
}

// MarchConfig is the immutable tracing configuration
type MarchConfig struct {
	Camera           Camera
	StepBudget       int
	HitEpsilon       float64
	DivergenceBound  float64
	GradientStep     float64
	LightOrbitRadius float64
	LightHeight      float64

	// Workers <= 1 renders rows sequentially
	Workers int
}

func DefaultMarchConfig() MarchConfig {
	return MarchConfig{
		Camera:           DefaultCamera(),
		StepBudget:       parameter.StepBudget,
		HitEpsilon:       parameter.HitEpsilon,
		DivergenceBound:  parameter.DivergenceBound,
		GradientStep:     parameter.GradientStep,
		LightOrbitRadius: parameter.LightOrbitRadius,
		LightHeight:      parameter.LightHeight,
		Workers:          1,
	}
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 1) }

func (c MarchConfig) Validate() error {
	switch {
	case c.StepBudget <= 0:
		return fmt.Errorf("%w: step budget %d", ErrInvalidConfig, c.StepBudget)
	case !positive(c.HitEpsilon):
		return fmt.Errorf("%w: hit epsilon %v", ErrInvalidConfig, c.HitEpsilon)
	case !positive(c.DivergenceBound):
		return fmt.Errorf("%w: divergence bound %v", ErrInvalidConfig, c.DivergenceBound)
	case !positive(c.GradientStep):
		return fmt.Errorf("%w: gradient step %v", ErrInvalidConfig, c.GradientStep)
	case c.Camera.PlaneZ == c.Camera.Origin.Z:
		return fmt.Errorf("%w: image plane at camera depth %v", ErrInvalidConfig, c.Camera.PlaneZ)
	case !c.Camera.Origin.IsFinite() || math.IsNaN(c.Camera.PlaneZ) || math.IsNaN(c.Camera.YScale):
		return fmt.Errorf("%w: non-finite camera", ErrInvalidConfig)
	case c.LightOrbitRadius == 0 && c.LightHeight == 0:
		return fmt.Errorf("%w: light at origin", ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Marcher sphere-traces a distance field into frames
type Marcher struct {
	field  sdf.Field
	shader *Shader
	cfg    MarchConfig
}

func NewMarcher(field sdf.Field, palette Palette, cfg MarchConfig) (*Marcher, error) {
	if field == nil {
		return nil, fmt.Errorf("%w: nil field", ErrInvalidConfig)
	}
	if palette.Len() == 0 {
		return nil, ErrEmptyPalette
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Marcher{
		field:  field,
		shader: NewShader(field, palette, cfg),
		cfg:    cfg,
	}, nil
}

func (m *Marcher) Shader() *Shader { return m.shader }

func (m *Marcher) Config() MarchConfig { return m.cfg }

// March advances from origin along unit dir by the field distance each step
// The escape check precedes each evaluation
func (m *Marcher) March(origin, dir vmath.Vec3) MarchResult {
	pos := origin
	for i := 0; i < m.cfg.StepBudget; i++ {
		if !pos.IsFinite() || pos.MaxAbs() > m.cfg.DivergenceBound {
			return MarchResult{Outcome: Escaped, Position: pos, Steps: i}
		}
		d := m.field(pos)
		if d < m.cfg.HitEpsilon {
			return MarchResult{Outcome: Hit, Position: pos, Steps: i + 1}
		}
		pos = pos.Add(dir.Scale(d))
	}
	return MarchResult{Outcome: Exhausted, Position: pos, Steps: m.cfg.StepBudget}
}

// Pixel returns the cell for pixel (x, y) of a w*h grid at time t
func (m *Marcher) Pixel(x, y, w, h int, t float64) Cell {
	origin, dir := m.cfg.Camera.Ray(x, y, w, h)
	r := m.March(origin, dir)
	if r.Outcome != Hit {
		return m.shader.palette.Background()
	}
	return m.shader.Shade(r.Position, t)
}

// Render overwrites every cell of f for time t
func (m *Marcher) Render(f *Frame, t float64) {
	w, h := f.Size()
	workers := m.cfg.Workers
	if workers > h {
		workers = h
	}
	if workers <= 1 {
		for y := 0; y < h; y++ {
			m.renderRow(f, y, w, h, t)
		}
		return
	}

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	// Each row is owned by exactly one worker
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		core.Go(func() {
			defer wg.Done()
			for y := range rows {
				m.renderRow(f, y, w, h, t)
			}
		})
	}
	wg.Wait()
}

func (m *Marcher) renderRow(f *Frame, y, w, h int, t float64) {
	row := f.Row(y)
	for x := range row {
		row[x] = m.Pixel(x, y, w, h, t)
	}
}
