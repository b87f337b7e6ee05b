package launchtime

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestJulianDate(t *testing.T) {
	j2000 := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	if jd := JulianDate(j2000); !floats.EqualWithinAbs(jd, 2451545.0, 1e-6) {
		t.Fatalf("JD(J2000)=%f", jd)
	}
	if jd := JulianDate(j2000.In(time.FixedZone("IST", 19800))); !floats.EqualWithinAbs(jd, 2451545.0, 1e-6) {
		t.Fatalf("JD depends on the time zone: %f", jd)
	}
}

func TestGMST(t *testing.T) {
	// IAU 1982 mean sidereal time at J2000.0.
	if θ := GMST(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)); !floats.EqualWithinAbs(θ, 280.46061837, 1e-5) {
		t.Fatalf("GMST(J2000)=%f", θ)
	}
	// One mean sidereal day later the Earth is back to the same orientation.
	dt := time.Date(2013, 7, 1, 18, 31, 25, 0, time.UTC)
	θ0 := GMST(dt)
	θ1 := GMST(dt.Add(time.Duration(SiderealDay * float64(time.Second))))
	if !anglesEqual(θ0, θ1, 1e-3) {
		t.Fatalf("GMST drifted over a sidereal day: %f -> %f", θ0, θ1)
	}
}

func TestLocalMeanSidereal(t *testing.T) {
	dt := time.Date(2013, 7, 1, 18, 31, 25, 0, time.UTC)
	θ := SHAR.LocalMeanSidereal(dt)
	if !anglesEqual(θ, GMST(dt)+80.25, 1e-9) {
		t.Fatalf("LMST=%f GMST=%f", θ, GMST(dt))
	}
	if θ < 0 || θ >= 360 {
		t.Fatalf("LMST %f not in [0, 360)", θ)
	}
}
