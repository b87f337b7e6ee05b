package launchtime

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNormalizeDeg(t *testing.T) {
	for _, tc := range [][2]float64{
		{0, 0}, {360, 0}, {720.5, 0.5}, {-1, 359}, {-360, 0}, {-721, 359}, {192.093, 192.093}, {-1e-14, 0},
	} {
		if got := NormalizeDeg(tc[0]); !floats.EqualWithinAbs(got, tc[1], 1e-9) {
			t.Fatalf("NormalizeDeg(%f) = %f expected %f", tc[0], got, tc[1])
		}
	}
	for a := -1000.0; a < 1000; a += 0.37 {
		if n := NormalizeDeg(a); n < 0 || n >= 360 {
			t.Fatalf("NormalizeDeg(%f) = %f", a, n)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	for _, tc := range [][3]float64{{10, 350, 20}, {350, 10, -20}, {147.708, 143, 4.708}, {0, 180, -180}} {
		if got := AngleDiff(tc[0], tc[1]); !floats.EqualWithinAbs(got, tc[2], 1e-9) {
			t.Fatalf("AngleDiff(%f, %f) = %f expected %f", tc[0], tc[1], got, tc[2])
		}
	}
	if !anglesEqual(359.9995, 0.0001, 1e-3) {
		t.Fatal("angles across 0 should be equal")
	}
}

func TestDegRad(t *testing.T) {
	for a := -720.0; a <= 720; a += 15 {
		if !floats.EqualWithinAbs(Rad2deg(Deg2rad(a)), a, 1e-12) {
			t.Fatalf("round trip failed for %f", a)
		}
	}
	if !floats.EqualWithinAbs(Deg2rad(180), math.Pi, 1e-15) {
		t.Fatal("Deg2rad(180) != π")
	}
}

func TestSiderealSeconds(t *testing.T) {
	if s := lstToSeconds(360); s != SiderealDay {
		t.Fatalf("a full turn lasts %f s", s)
	}
	if lst := secondsToLST(66685); !floats.EqualWithinAbs(lst, 278.614903, 1e-6) {
		t.Fatalf("LST=%f", lst)
	}
	for s := 0.0; s < SiderealDay; s += 997 {
		if !floats.EqualWithinAbs(lstToSeconds(secondsToLST(s)), s, 1e-9) {
			t.Fatalf("round trip failed for %f", s)
		}
	}
}
