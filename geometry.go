package launchtime

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// Geometry holds the angles (in degrees) derived from an inclination and a site latitude.
// It is a pure function of (i, φ).
type Geometry struct {
	Inclination, Latitude float64
	Γ                     float64 // direction auxiliary angle: sin γ = cos i / cos φ
	Δ                     float64 // launch-window location angle: cos δ = cos γ / sin i
	AzimuthAN             float64 // launch azimuth at the ascending node
	AzimuthDN             float64 // launch azimuth at the descending node
}

// NewGeometry computes the launch geometry for the inclination i and latitude φ given in degrees.
// It fails with ErrInvalidInput if no window exists and with ErrGeometryUnreachable if either
// identity leaves the domain of asin/acos.
func NewGeometry(i, φ float64) (Geometry, error) {
	if err := checkFeasible(i, φ); err != nil {
		return Geometry{}, err
	}
	sinγ, err := ratio(math.Cos(Deg2rad(i)), math.Cos(Deg2rad(φ)))
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: sin γ = cos(%f)/cos(%f): %s", ErrGeometryUnreachable, i, φ, err)
	}
	γ := Rad2deg(math.Asin(sinγ))
	cosδ, err := ratio(math.Cos(Deg2rad(γ)), math.Sin(Deg2rad(i)))
	if err != nil {
		return Geometry{}, fmt.Errorf("%w: cos δ = cos(%f)/sin(%f): %s", ErrGeometryUnreachable, γ, i, err)
	}
	δ := Rad2deg(math.Acos(cosδ))
	return Geometry{Inclination: i, Latitude: φ, Γ: γ, Δ: δ, AzimuthAN: δ, AzimuthDN: 180 - γ}, nil
}

// Azimuth returns the launch azimuth of the provided node.
func (g Geometry) Azimuth(node NodeKind) float64 {
	if node == DescendingNode {
		return g.AzimuthDN
	}
	return g.AzimuthAN
}

// NodeLST returns the local sidereal time (in degrees) at which the site crosses the given node
// of an orbit whose RAAN is Ω.
func (g Geometry) NodeLST(node NodeKind, Ω float64) float64 {
	if node == DescendingNode {
		return NormalizeDeg(Ω + 180 - g.Δ)
	}
	return NormalizeDeg(Ω + g.Δ)
}

func (g Geometry) String() string {
	return fmt.Sprintf("γ=%.4f° δ=%.4f° β(AN)=%.4f° β(DN)=%.4f°", g.Γ, g.Δ, g.AzimuthAN, g.AzimuthDN)
}

// ratio returns num/den, or an error if the result is not a valid sine or cosine.
// A denominator within rounding of zero (sin 180° is 1.2e-16) counts as zero.
func ratio(num, den float64) (float64, error) {
	if floats.EqualWithinAbs(den, 0, 1e-12) {
		return 0, fmt.Errorf("zero denominator")
	}
	r := num / den
	if math.IsNaN(r) || math.Abs(r) > 1 {
		return 0, fmt.Errorf("ratio %f outside [-1, 1]", r)
	}
	return r, nil
}
