package launchtime

import (
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	deg2rad = math.Pi / 180
	r2d     = 1 / deg2rad

	// SiderealDay is the mean sidereal day in seconds (23h 56m 4.0916s).
	SiderealDay = 86164.0916
	// NodeTolerance is the half-width in degrees of the band around each node azimuth
	// within which an observed azimuth is attributed to that node.
	NodeTolerance = 10.0
)

// Deg2rad converts degrees to radians. Unlike Rad2deg the sign is kept.
func Deg2rad(a float64) float64 {
	return a * deg2rad
}

// Rad2deg converts radians to degrees.
func Rad2deg(a float64) float64 {
	return a * r2d
}

// NormalizeDeg reduces an angle in degrees into [0, 360).
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		// -1e-14 + 360 rounds to 360.
		a = 0
	}
	return a
}

// AngleDiff returns the signed smallest difference a-b in degrees, in [-180, 180).
func AngleDiff(a, b float64) float64 {
	return NormalizeDeg(a-b+180) - 180
}

// anglesEqual returns whether two angles in degrees are within ε of each other, modulo 360.
func anglesEqual(a, b, ε float64) bool {
	return floats.EqualWithinAbs(AngleDiff(a, b), 0, ε)
}

// lstToSeconds converts a sidereal angle in degrees into seconds elapsed since the equinox reference.
func lstToSeconds(lst float64) float64 {
	return lst / 360 * SiderealDay
}

// secondsToLST is the inverse of lstToSeconds.
func secondsToLST(t float64) float64 {
	return t * 360 / SiderealDay
}

// cosAngle returns the cosine of the angle between a and b, clamped to [-1, 1].
func cosAngle(a, b []float64) float64 {
	va, vb := mat64.NewVector(len(a), a), mat64.NewVector(len(b), b)
	c := mat64.Dot(va, vb) / (mat64.Norm(va, 2) * mat64.Norm(vb, 2))
	return math.Max(-1, math.Min(1, c))
}
