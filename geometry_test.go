package launchtime

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestGeometryIRNSS(t *testing.T) {
	g, err := NewGeometry(17.877, 13.7)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !floats.EqualWithinAbs(g.Γ, 78.403589, 1e-6) {
		t.Fatalf("γ=%f", g.Γ)
	}
	if !floats.EqualWithinAbs(g.Δ, 49.093146, 1e-6) {
		t.Fatalf("δ=%f", g.Δ)
	}
	if !floats.EqualWithinAbs(g.AzimuthAN, 49.0931, 1e-4) || g.AzimuthAN != g.Δ {
		t.Fatalf("β(AN)=%f", g.AzimuthAN)
	}
	if !floats.EqualWithinAbs(g.AzimuthDN, 101.5964, 1e-4) || g.AzimuthDN != 180-g.Γ {
		t.Fatalf("β(DN)=%f", g.AzimuthDN)
	}
	if g.Azimuth(AscendingNode) != g.AzimuthAN || g.Azimuth(DescendingNode) != g.AzimuthDN {
		t.Fatal("Azimuth does not match the node azimuths")
	}
}

func TestGeometryIdentities(t *testing.T) {
	for _, tc := range [][2]float64{{17.877, 13.7}, {51.6, 45.6}, {98, 13.7}, {162.123, 13.7}, {63.4, -5.2}} {
		i, φ := tc[0], tc[1]
		g, err := NewGeometry(i, φ)
		if err != nil {
			t.Fatalf("i=%f φ=%f: %s", i, φ, err)
		}
		// cos(i) = sin(γ) cos(φ)
		if lhs, rhs := math.Cos(Deg2rad(i)), math.Sin(Deg2rad(g.Γ))*math.Cos(Deg2rad(φ)); !floats.EqualWithinAbs(lhs, rhs, 1e-12) {
			t.Fatalf("i=%f φ=%f: cos i=%f sin γ cos φ=%f", i, φ, lhs, rhs)
		}
		// cos(γ) = cos(δ) sin(i)
		if lhs, rhs := math.Cos(Deg2rad(g.Γ)), math.Cos(Deg2rad(g.Δ))*math.Sin(Deg2rad(i)); !floats.EqualWithinAbs(lhs, rhs, 1e-12) {
			t.Fatalf("i=%f φ=%f: cos γ=%f cos δ sin i=%f", i, φ, lhs, rhs)
		}
	}
}

func TestGeometryErrors(t *testing.T) {
	for _, tc := range []struct {
		i, φ float64
		err  error
	}{
		{17.877, 170, ErrInvalidInput},
		{17.877, 50, ErrGeometryUnreachable},
		{17.877, -30, ErrGeometryUnreachable},
		{0, 0, ErrGeometryUnreachable},
		{180, 0, ErrGeometryUnreachable},
		{180, 1e-9, ErrGeometryUnreachable},
		{math.NaN(), 10, ErrInvalidInput},
	} {
		g, err := NewGeometry(tc.i, tc.φ)
		if !errors.Is(err, tc.err) {
			t.Fatalf("NewGeometry(%f, %f): expected %s, got %v", tc.i, tc.φ, tc.err, err)
		}
		if g != (Geometry{}) {
			t.Fatalf("NewGeometry(%f, %f) returned a partial result %s", tc.i, tc.φ, g)
		}
	}
}

func TestGeometryNeverNaN(t *testing.T) {
	for i := 0.0; i <= 180; i += 1.5 {
		for φ := -89.5; φ <= 89.5; φ += 1.5 {
			g, err := NewGeometry(i, φ)
			if err != nil {
				continue
			}
			if math.IsNaN(g.Γ) || math.IsNaN(g.Δ) || math.IsNaN(g.AzimuthAN) || math.IsNaN(g.AzimuthDN) {
				t.Fatalf("NaN geometry for i=%f φ=%f: %s", i, φ, g)
			}
		}
	}
}

func TestNodeLST(t *testing.T) {
	g, _ := NewGeometry(17.877, 13.7)
	if lst := g.NodeLST(AscendingNode, 143); !floats.EqualWithinAbs(lst, 192.093146, 1e-6) {
		t.Fatalf("LST(AN)=%f", lst)
	}
	if lst := g.NodeLST(DescendingNode, 143); !floats.EqualWithinAbs(lst, 273.906854, 1e-6) {
		t.Fatalf("LST(DN)=%f", lst)
	}
	if lst := g.NodeLST(AscendingNode, 350); lst < 0 || lst >= 360 || !floats.EqualWithinAbs(lst, 350+g.Δ-360, 1e-9) {
		t.Fatalf("LST(AN) not reduced: %f", lst)
	}
}
