package launchtime

import "math"

// PlaneOffset returns the signed angular distance in degrees between a site at latitude φ and the
// orbit plane, when the site meridian sits at the local sidereal time lst (degrees).
// It is positive on the side of the orbit normal. A launch instant is when this offset is zero.
func PlaneOffset(o OrbitSpec, φ, lst float64) float64 {
	// The elevation above the plane is the complement of the angle to the orbit normal.
	return Rad2deg(math.Asin(cosAngle(GEO2Unit(Deg2rad(φ), Deg2rad(lst)), o.Normal())))
}
