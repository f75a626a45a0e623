package vmath

import (
	"errors"
	"math"
)

// DegenerateLength is the magnitude at or below which a vector has no usable direction
const DegenerateLength = 1e-9

// ErrDegenerateVector is returned when normalizing a vector with no direction
var ErrDegenerateVector = errors.New("vmath: cannot normalize zero-length vector")

// Vec3 is a float64 3D vector, passed by value
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{x, y, z}
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// LengthSq avoids the sqrt when only comparisons are needed
func (v Vec3) LengthSq() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean norm
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Normalize scales v in place to unit length
// Degenerate vectors are left untouched and ErrDegenerateVector is returned
func (v *Vec3) Normalize() error {
	mag := v.Length()
	if !(mag > DegenerateLength) {
		return ErrDegenerateVector
	}
	inv := 1.0 / mag
	v.X *= inv
	v.Y *= inv
	v.Z *= inv
	return nil
}

// Normalized returns a unit-length copy of v
func (v Vec3) Normalized() (Vec3, error) {
	err := v.Normalize()
	return v, err
}

// MaxAbs returns the largest absolute component
func (v Vec3) MaxAbs() float64 {
	return max(math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z))
}

// IsFinite reports whether no component is NaN or infinite
func (v Vec3) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0) &&
		!math.IsNaN(v.Z) && !math.IsInf(v.Z, 0)
}
