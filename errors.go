package launchtime

import "errors"

// Every error returned by the solvers wraps exactly one of these, use errors.Is to tell them apart.
var (
	// ErrInvalidInput is returned when the site latitude cannot see the orbit plane at all.
	ErrInvalidInput = errors.New("no launch window for this inclination and latitude")
	// ErrGeometryUnreachable is returned when a spherical identity leaves the asin/acos domain.
	ErrGeometryUnreachable = errors.New("orbit geometry unreachable from this latitude")
	// ErrNoFeasibleAzimuth is returned when neither node azimuth lies in the site corridor.
	ErrNoFeasibleAzimuth = errors.New("no launch azimuth within the site corridor")
	// ErrAmbiguousNode is returned when an observed azimuth cannot be attributed to a node.
	ErrAmbiguousNode = errors.New("azimuth matches neither the ascending nor the descending node")
)
