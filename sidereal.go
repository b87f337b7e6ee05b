package launchtime

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
)

// The solvers measure sidereal time from 0h UTC of the launch date. The functions below give the
// conventional sidereal times of an instant, for reporting only.

// JulianDate returns the Julian date of dt.
func JulianDate(dt time.Time) float64 {
	return julian.TimeToJD(dt.UTC())
}

// GMST returns the Greenwich mean sidereal time of dt, in degrees.
func GMST(dt time.Time) float64 {
	// sidereal.Mean is in seconds of sidereal time.
	return NormalizeDeg(float64(sidereal.Mean(JulianDate(dt))) / 86400 * 360)
}

// LocalMeanSidereal returns the mean sidereal time at the meridian of the site at dt, in degrees.
// Longitudes are positive east.
func (s LaunchSite) LocalMeanSidereal(dt time.Time) float64 {
	return NormalizeDeg(GMST(dt) + s.Longθ)
}
