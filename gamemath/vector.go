package gamemath

import "math"

// Vec is a 2D vector in world units. The world origin is the arena center.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle builds a vector with the given direction and magnitude.
// A negative magnitude flips the direction.
func FromAngle(angle, magnitude float64) Vec {
	return Vec{math.Cos(angle) * magnitude, math.Sin(angle) * magnitude}
}

func Distance(a, b Vec) float64 {
	return a.Sub(b).Length()
}

// IsFinite reports whether both components are real numbers.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}
