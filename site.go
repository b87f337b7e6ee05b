package launchtime

import (
	"fmt"
	"math"
	"strings"
)

// AzimuthBounds is the launch corridor of a site, inclusive, in degrees from north (clockwise).
type AzimuthBounds struct {
	Min, Max float64
}

// NewAzimuthBounds returns a new corridor, and fails if min > max.
func NewAzimuthBounds(min, max float64) (AzimuthBounds, error) {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		return AzimuthBounds{}, fmt.Errorf("%w: azimuth corridor [%f, %f]", ErrInvalidInput, min, max)
	}
	return AzimuthBounds{min, max}, nil
}

// Contains returns whether the azimuth lies within the corridor (bounds included).
func (b AzimuthBounds) Contains(azimuth float64) bool {
	return b.Min <= azimuth && azimuth <= b.Max
}

func (b AzimuthBounds) String() string {
	return fmt.Sprintf("[%.4f°, %.4f°]", b.Min, b.Max)
}

var (
	// SHAR is the Satish Dhawan Space Centre at Sriharikota.
	SHAR = LaunchSite{"SHAR", 13.7, 80.25, AzimuthBounds{0, 140}}
	// CapeCanaveral is the Cape Canaveral launch complex.
	CapeCanaveral = LaunchSite{"CapeCanaveral", 28.5, -80.6, AzimuthBounds{35, 120}}
)

// LaunchSite defines a launch site. Angles in degrees; the longitude is only used for reporting.
type LaunchSite struct {
	Name     string
	LatΦ     float64
	Longθ    float64
	Azimuths AzimuthBounds
}

// NewLaunchSite returns a new launch site after validating its latitude and corridor.
func NewLaunchSite(name string, latΦ, longθ float64, azimuths AzimuthBounds) (LaunchSite, error) {
	if math.IsNaN(latΦ) || latΦ < -90 || latΦ > 90 {
		return LaunchSite{}, fmt.Errorf("%w: latitude %f outside [-90, 90]", ErrInvalidInput, latΦ)
	}
	if azimuths.Min > azimuths.Max {
		return LaunchSite{}, fmt.Errorf("%w: azimuth corridor %s", ErrInvalidInput, azimuths)
	}
	return LaunchSite{name, latΦ, longθ, azimuths}, nil
}

func (s LaunchSite) String() string {
	return fmt.Sprintf("%s (%f,%f); corridor %s", s.Name, s.LatΦ, s.Longθ, s.Azimuths)
}

// BuiltinSiteFromName returns one of the predefined sites.
func BuiltinSiteFromName(name string) (LaunchSite, error) {
	switch strings.ToLower(name) {
	case "shar", "sriharikota":
		return SHAR, nil
	case "capecanaveral", "ccafs", "cape":
		return CapeCanaveral, nil
	default:
		return LaunchSite{}, fmt.Errorf("unknown launch site `%s`", name)
	}
}
