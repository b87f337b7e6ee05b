package launchtime

import (
	"fmt"
	"math"
)

// OrbitSpec is the target orbit plane. Angles are in degrees.
type OrbitSpec struct {
	Inclination float64 // i, in [0, 180]
	RAAN        float64 // Ω, in [0, 360)
}

// NewOrbitSpec returns a new orbit plane after validating the inclination. The RAAN is reduced into [0, 360).
func NewOrbitSpec(i, Ω float64) (OrbitSpec, error) {
	if math.IsNaN(i) || i < 0 || i > 180 {
		return OrbitSpec{}, fmt.Errorf("%w: inclination %f outside [0, 180]", ErrInvalidInput, i)
	}
	if math.IsNaN(Ω) || math.IsInf(Ω, 0) {
		return OrbitSpec{}, fmt.Errorf("%w: RAAN %f", ErrInvalidInput, Ω)
	}
	return OrbitSpec{Inclination: i, RAAN: NormalizeDeg(Ω)}, nil
}

// Retrograde returns whether the orbit is retrograde (i ≥ 90°).
func (o OrbitSpec) Retrograde() bool {
	return o.Inclination >= 90
}

// Normal returns the unit vector of the orbital angular momentum in the inertial frame.
func (o OrbitSpec) Normal() []float64 {
	// Tilt the equatorial pole by i about the node line, then turn the node line to Ω.
	return Rotate([]float64{0, 0, 1}, R1(-Deg2rad(o.Inclination)), R3(-Deg2rad(o.RAAN)))
}

func (o OrbitSpec) String() string {
	dir := "prograde"
	if o.Retrograde() {
		dir = "retrograde"
	}
	return fmt.Sprintf("i=%.4f° Ω=%.4f° (%s)", o.Inclination, o.RAAN, dir)
}
