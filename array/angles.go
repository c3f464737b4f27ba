package array

import (
	"math"

	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
)

// Radian converts degree to radians
func Radian(degree float64) float64 {
	return degree * math.Pi / 180.0
}

// Degree converts radians to degree
func Degree(radian float64) float64 {
	return radian * 180.0 / math.Pi
}

// Wrap0To180 wraps the input angle to 0 to 180
func Wrap0To180(degree float64) float64 {
	if degree >= 0 && degree <= 180 {
		return degree
	}
	if degree < 0 {
		degree = -degree
	}
	if degree >= 360 {
		degree = math.Mod(degree, 360)
	}
	if degree > 180 {
		degree = 360 - degree
	}
	return degree
}

// Wrap180To180 wraps the input angle to -180 to 180
func Wrap180To180(degree float64) float64 {
	if degree >= -180 && degree <= 180 {
		return degree
	}
	if degree > 180 {
		rem := math.Mod(degree, 180.0)
		degree = -180 + rem
	} else if degree < -180 {
		rem := math.Mod(degree, 180.0)
		degree = 180 + rem
	}
	return degree
}

// Sweep returns n angles evenly spaced over [from,to] degree, both ends
// included.
func Sweep(from, to float64, n int) vlib.VectorF {
	angles := vlib.NewVectorF(n)
	if n == 1 {
		angles[0] = from
		return angles
	}
	floats.Span(angles, from, to)
	return angles
}

// DefaultSweep spans the forward half plane the way the interactive callers
// sample it.
func DefaultSweep() vlib.VectorF {
	return Sweep(-90, 90, 500)
}
