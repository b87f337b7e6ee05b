package launchtime

import (
	"fmt"
	"time"
)

// NodeKind is the orbit node at which the site crosses the orbit plane.
type NodeKind uint8

const (
	// AscendingNode opportunity.
	AscendingNode NodeKind = iota + 1
	// DescendingNode opportunity.
	DescendingNode
)

func (n NodeKind) String() string {
	switch n {
	case AscendingNode:
		return "ascending"
	case DescendingNode:
		return "descending"
	default:
		panic(fmt.Errorf("unknown node kind %d", uint8(n)))
	}
}

// LaunchOpportunity is one launch solution.
type LaunchOpportunity struct {
	Node    NodeKind
	Azimuth float64   // launch azimuth in degrees
	LST     float64   // local sidereal time of the node crossing, in degrees
	Launch  time.Time // launch instant (UTC)
}

func (o LaunchOpportunity) String() string {
	return fmt.Sprintf("%s node: β=%.4f° LST=%.4f° @ %s", o.Node, o.Azimuth, o.LST, o.Launch.Format(DateFormat))
}

// Day0h returns 0h UTC of the UTC date of dt.
func Day0h(dt time.Time) time.Time {
	y, m, d := dt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SolveLaunchTimes returns the launch opportunities into the orbit plane (i, Ω) from a site at
// latitude φ whose azimuth corridor is bounds. The epoch is reduced to 0h UTC of its date, and the
// time since the equinox reference is added to it. Opportunities are returned ascending node first.
func SolveLaunchTimes(epoch time.Time, i, φ float64, bounds AzimuthBounds, Ω float64) ([]LaunchOpportunity, error) {
	g, err := NewGeometry(i, φ)
	if err != nil {
		return nil, err
	}
	epoch0h := Day0h(epoch)
	var opps []LaunchOpportunity
	for _, node := range []NodeKind{AscendingNode, DescendingNode} {
		β := g.Azimuth(node)
		if !bounds.Contains(β) {
			continue
		}
		lst := g.NodeLST(node, Ω)
		t := lstToSeconds(lst)
		opps = append(opps, LaunchOpportunity{
			Node:    node,
			Azimuth: β,
			LST:     lst,
			Launch:  epoch0h.Add(time.Duration(t * float64(time.Second))),
		})
	}
	if len(opps) == 0 {
		return nil, fmt.Errorf("%w: β(AN)=%.4f° β(DN)=%.4f° corridor %s", ErrNoFeasibleAzimuth, g.AzimuthAN, g.AzimuthDN, bounds)
	}
	return opps, nil
}
