package gamemath

import "math"

// MoveToward shifts current toward target by at most maxDelta, without
// overshooting. maxDelta must be non-negative.
func MoveToward(current, target, maxDelta float64) float64 {
	diff := target - current
	if math.Abs(diff) <= maxDelta {
		return target
	}
	if diff > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

// ClampMagnitude limits the length of v to max, preserving direction.
func ClampMagnitude(v Vec, max float64) Vec {
	if max <= 0 {
		return Vec{}
	}
	lsq := v.LengthSq()
	if lsq <= max*max {
		return v
	}
	return v.Scale(max / math.Sqrt(lsq))
}

// Clamp restricts a value to [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(a Vec, ar float64, b Vec, br float64) bool {
	r := ar + br
	return a.Sub(b).LengthSq() < r*r
}

// AngularDistance returns the smallest absolute difference between two
// angles, in [0, Pi].
func AngularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
