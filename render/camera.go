package render

import (
	"github.com/lixenwraith/raysphere/parameter"
	"github.com/lixenwraith/raysphere/vmath"
)

// Camera is a fixed pinhole looking down +Z through an image plane at PlaneZ
type Camera struct {
	Origin vmath.Vec3
	PlaneZ float64
	YScale float64
}

func DefaultCamera() Camera {
	return Camera{
		Origin: vmath.V3(0, 0, parameter.CameraZ),
		PlaneZ: parameter.ImagePlaneZ,
		YScale: parameter.ImagePlaneYScale,
	}
}

// Ray returns the origin and unit direction through pixel (x, y) of a w*h grid
// target = (x/w - 0.5, (y/h - 0.5) * (h/w) * YScale, PlaneZ)
func (c Camera) Ray(x, y, w, h int) (vmath.Vec3, vmath.Vec3) {
	fw, fh := float64(w), float64(h)
	target := vmath.V3(
		float64(x)/fw-0.5,
		(float64(y)/fh-0.5)*(fh/fw)*c.YScale,
		c.PlaneZ,
	)
	dir := target.Sub(c.Origin)
	// PlaneZ != Origin.Z is checked by MarchConfig.Validate, so dir is never zero
	_ = dir.Normalize()
	return c.Origin, dir
}
