package parameter

import "time"

// Scene
const (
	// SphereRadius is the radius of the sphere at the origin
	SphereRadius = 0.2
)

// Camera
// Rays start at (0, 0, CameraZ) and pass through an image plane at ImagePlaneZ
const (
	CameraZ     = -3.0
	ImagePlaneZ = -1.5

	// ImagePlaneYScale stretches the vertical axis after H/W aspect correction
	// Compensates for terminal cells being roughly twice as tall as wide
	ImagePlaneYScale = 1.5
)

// Sphere tracing
const (
	// StepBudget is the maximum number of march steps per ray
	StepBudget = 15000

	// HitEpsilon is the distance below which a ray counts as converged
	HitEpsilon = 1e-6

	// DivergenceBound is the coordinate magnitude past which a ray has escaped
	DivergenceBound = 9999.0

	// GradientStep is the forward-difference offset for normal estimation
	GradientStep = 1e-6
)

// Light orbit: L(t) = (R sin t, H, R cos t)
const (
	LightOrbitRadius = 50.0
	LightHeight      = 20.0
)

// Frame defaults
const (
	DefaultWidth  = 100
	DefaultHeight = 20

	// FallbackWidth/Height apply when fitting to a terminal that cannot be queried
	FallbackWidth  = 80
	FallbackHeight = 24

	DefaultFPS = 60.0

	// FrameInterval is the target spacing between frame starts at DefaultFPS
	FrameInterval = time.Second / 60

	// MaxCells bounds frame allocation
	MaxCells = 1 << 22

	// StatsEveryFrames is the frame-stat logging period in debug mode
	StatsEveryFrames = 60
)
