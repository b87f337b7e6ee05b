package launchtime

import (
	"fmt"
	"time"
	_ "time/tzdata" // display time zones must resolve without a system database

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

// Observation is an observed launch used to recover the RAAN.
type Observation struct {
	Azimuth float64
	Time    time.Time
}

// Scenario is everything needed to run both solvers for one site and orbit.
type Scenario struct {
	Site       LaunchSite
	Orbit      OrbitSpec
	Epoch      time.Time    // forward solve date, reduced to 0h UTC
	Reverse    *Observation // optional
	Location   *time.Location
	Tolerance  float64
	Dispersion *Dispersion // optional, needs Reverse
}

const defaultTimezone = "Asia/Kolkata"

// LoadScenario reads a TOML scenario file.
//
//	[site]        name, and optionally latitude, longitude, azimuth_min, azimuth_max
//	[orbit]       inclination, RAAN
//	[launch]      date (Julian date or timestamp)
//	[reverse]     azimuth, time (optional)
//	[display]     timezone (default Asia/Kolkata)
//	[general]     tolerance (default NodeTolerance)
//	[dispersion]  azimuth_sigma, time_sigma, samples, seed (optional)
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("display.timezone", defaultTimezone)
	v.SetDefault("general.tolerance", NodeTolerance)
	v.SetDefault("dispersion.samples", 1000)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %s", path, err)
	}
	var sc Scenario
	var err error

	if sc.Site, err = readSite(v); err != nil {
		return Scenario{}, err
	}
	if sc.Orbit, err = NewOrbitSpec(v.GetFloat64("orbit.inclination"), v.GetFloat64("orbit.RAAN")); err != nil {
		return Scenario{}, err
	}
	if !v.IsSet("launch.date") {
		return Scenario{}, fmt.Errorf("%s: missing launch.date", path)
	}
	sc.Epoch = Day0h(confReadJDEorTime(v, "launch.date"))
	if v.IsSet("reverse.azimuth") {
		if !v.IsSet("reverse.time") {
			return Scenario{}, fmt.Errorf("%s: missing reverse.time", path)
		}
		sc.Reverse = &Observation{v.GetFloat64("reverse.azimuth"), confReadJDEorTime(v, "reverse.time")}
	}
	if sc.Location, err = time.LoadLocation(v.GetString("display.timezone")); err != nil {
		return Scenario{}, fmt.Errorf("display.timezone: %s", err)
	}
	sc.Tolerance = v.GetFloat64("general.tolerance")
	if sc.Tolerance <= 0 {
		return Scenario{}, fmt.Errorf("general.tolerance must be positive, got %f", sc.Tolerance)
	}
	if v.IsSet("dispersion.azimuth_sigma") {
		if sc.Reverse == nil {
			return Scenario{}, fmt.Errorf("dispersion requires a [reverse] observation")
		}
		d, err := NewDispersion(v.GetFloat64("dispersion.azimuth_sigma"), v.GetDuration("dispersion.time_sigma"), v.GetInt("dispersion.samples"), v.GetInt64("dispersion.seed"))
		if err != nil {
			return Scenario{}, err
		}
		d.Tolerance = sc.Tolerance
		sc.Dispersion = &d
	}
	return sc, nil
}

func readSite(v *viper.Viper) (LaunchSite, error) {
	name := v.GetString("site.name")
	if !v.IsSet("site.latitude") {
		return BuiltinSiteFromName(name)
	}
	bounds, err := NewAzimuthBounds(v.GetFloat64("site.azimuth_min"), v.GetFloat64("site.azimuth_max"))
	if err != nil {
		return LaunchSite{}, err
	}
	return NewLaunchSite(name, v.GetFloat64("site.latitude"), v.GetFloat64("site.longitude"), bounds)
}

// confReadJDEorTime reads a date which is either a Julian date or a timestamp.
func confReadJDEorTime(v *viper.Viper, key string) (dt time.Time) {
	jde := v.GetFloat64(key)
	if jde == 0 {
		dt = v.GetTime(key)
	} else {
		dt = julian.JDToTime(jde)
	}
	return dt.UTC()
}
