package launchtime

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// Rotate applies the rotations to v in order, so Rotate(v, A, B) is B·A·v. v is left untouched.
func Rotate(v []float64, rots ...*mat64.Dense) []float64 {
	cur := mat64.NewVector(len(v), append([]float64(nil), v...))
	for _, r := range rots {
		next := mat64.NewVector(len(v), nil)
		next.MulVec(r, cur)
		cur = next
	}
	o := make([]float64, cur.Len())
	for k := range o {
		o[k] = cur.At(k, 0)
	}
	return o
}

// GEO2Unit returns the inertial unit vector of a point at latitude φ whose meridian sits at the
// sidereal angle θ. Both angles in radians.
func GEO2Unit(φ, θ float64) []float64 {
	sθ, cθ := math.Sincos(θ)
	sφ, cφ := math.Sincos(φ)
	return []float64{cφ * cθ, cφ * sθ, sφ}
}
