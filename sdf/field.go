// Package sdf provides signed distance fields as plain function values.
//
// A Field maps a point to its signed distance from the nearest surface:
// negative inside, zero on the surface, positive outside. Callers only rely
// on that contract, so primitives can be swapped or combined without touching
// the ray marcher.
package sdf

import (
	"math"

	"github.com/lixenwraith/raysphere/parameter"
	"github.com/lixenwraith/raysphere/vmath"
)

// Field is a signed distance function
type Field func(p vmath.Vec3) float64

// Sphere returns the field of a sphere
func Sphere(center vmath.Vec3, radius float64) Field {
	return func(p vmath.Vec3) float64 {
		return p.Sub(center).Length() - radius
	}
}

// Union returns the closest-surface combination of fields
// Panics when called without fields
func Union(fields ...Field) Field {
	if len(fields) == 0 {
		panic("sdf: Union requires at least one field")
	}
	if len(fields) == 1 {
		return fields[0]
	}
	members := append([]Field(nil), fields...)
	return func(p vmath.Vec3) float64 {
		d := math.Inf(1)
		for _, f := range members {
			d = math.Min(d, f(p))
		}
		return d
	}
}

// Translate moves a field by offset
func Translate(f Field, offset vmath.Vec3) Field {
	return func(p vmath.Vec3) float64 {
		return f(p.Sub(offset))
	}
}

// DefaultScene is the single sphere the renderer ships with
func DefaultScene() Field {
	return Sphere(vmath.Vec3{}, parameter.SphereRadius)
}
