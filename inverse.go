package launchtime

import (
	"fmt"
	"time"

	"github.com/gonum/floats"
)

// SecondsSince0h returns the whole seconds elapsed since 0h UTC of the date of dt.
// Sub-second precision is dropped.
func SecondsSince0h(dt time.Time) float64 {
	dt = dt.UTC()
	return float64(dt.Hour()*3600 + dt.Minute()*60 + dt.Second())
}

// ClassifyNode attributes an observed azimuth to a node when it lies within tolerance degrees of
// that node's azimuth. The ascending node is checked first and wins when both bands match.
func ClassifyNode(g Geometry, azimuth, tolerance float64) (NodeKind, error) {
	if floats.EqualWithinAbs(azimuth, g.AzimuthAN, tolerance) {
		return AscendingNode, nil
	}
	if floats.EqualWithinAbs(azimuth, g.AzimuthDN, tolerance) {
		return DescendingNode, nil
	}
	return 0, fmt.Errorf("%w: β=%.4f° vs β(AN)=%.4f° β(DN)=%.4f° ±%.1f°", ErrAmbiguousNode, azimuth, g.AzimuthAN, g.AzimuthDN, tolerance)
}

// SolveRAAN estimates the RAAN (in degrees, in [0, 360)) of the orbit with inclination i reached
// from a site at latitude φ by a launch at launchTime with the observed azimuth.
func SolveRAAN(launchTime time.Time, i, φ, azimuth float64) (float64, error) {
	Ω, _, err := solveRAAN(launchTime, i, φ, azimuth, NodeTolerance)
	return Ω, err
}

// solveRAAN also returns the node the azimuth was attributed to.
func solveRAAN(launchTime time.Time, i, φ, azimuth, tolerance float64) (float64, NodeKind, error) {
	lst := secondsToLST(SecondsSince0h(launchTime))
	g, err := NewGeometry(i, φ)
	if err != nil {
		return 0, 0, err
	}
	node, err := ClassifyNode(g, azimuth, tolerance)
	if err != nil {
		return 0, 0, err
	}
	if node == AscendingNode {
		return NormalizeDeg(lst - azimuth), node, nil
	}
	return NormalizeDeg(lst + g.Δ - 180), node, nil
}
