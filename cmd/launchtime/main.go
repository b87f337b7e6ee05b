package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/ravi4ram/launchtime"
)

// This computes the launch times of a scenario, and optionally recovers the RAAN of an observed launch.

const defaultScenario = "~~unset~~"

var (
	scenario string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "launch scenario TOML file (defaults to the IRNSS-1A case)")
	flag.BoolVar(&verbose, "verbose", false, "log the intermediate angles")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	if verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowWarn())
	}

	sc, err := loadScenario()
	if err != nil {
		level.Error(logger).Log("msg", "could not load scenario", "err", err)
		os.Exit(1)
	}
	if err := run(sc, logger, os.Stdout); err != nil {
		os.Exit(1)
	}
}

func loadScenario() (launchtime.Scenario, error) {
	if scenario == defaultScenario {
		return irnss1a()
	}
	return launchtime.LoadScenario(scenario)
}

// run solves the scenario and writes the report to w. Every failure is logged before being returned.
func run(sc launchtime.Scenario, logger kitlog.Logger, w io.Writer) error {
	report := launchtime.NewReport(w, sc.Location)
	planner := launchtime.NewPlanner(sc.Site, sc.Orbit, logger)
	planner.Tolerance = sc.Tolerance
	reportFailed := func(err error) error {
		level.Error(logger).Log("msg", "could not write report", "err", err)
		return err
	}

	// The planner logs its own errors.
	opps, err := planner.LaunchTimes(sc.Epoch)
	if err != nil {
		return err
	}
	if err := report.LaunchTimes(sc.Site, sc.Orbit, opps); err != nil {
		return reportFailed(err)
	}
	if sc.Reverse == nil {
		return nil
	}
	Ω, node, err := planner.RAAN(sc.Reverse.Time, sc.Reverse.Azimuth)
	if err != nil {
		return err
	}
	if err := report.RAAN(sc.Orbit.Inclination, sc.Reverse.Azimuth, sc.Reverse.Time, node, Ω); err != nil {
		return reportFailed(err)
	}
	if sc.Dispersion == nil {
		return nil
	}
	res, err := sc.Dispersion.RAAN(sc.Reverse.Time, sc.Orbit.Inclination, sc.Site.LatΦ, sc.Reverse.Azimuth)
	if err != nil {
		level.Error(logger).Log("msg", "dispersion failed", "err", err)
		return err
	}
	if err := report.Dispersion(res); err != nil {
		return reportFailed(err)
	}
	return nil
}

// irnss1a is PSLV-C22/IRNSS-1A, launched from Sriharikota at 18:31 UTC on July 1st, 2013.
func irnss1a() (launchtime.Scenario, error) {
	orbit, err := launchtime.NewOrbitSpec(17.877, 143)
	if err != nil {
		return launchtime.Scenario{}, err
	}
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return launchtime.Scenario{}, fmt.Errorf("could not load IST: %s", err)
	}
	return launchtime.Scenario{
		Site:      launchtime.SHAR,
		Orbit:     orbit,
		Epoch:     time.Date(2013, 7, 1, 0, 0, 0, 0, time.UTC),
		Reverse:   &launchtime.Observation{Azimuth: 101.5964, Time: time.Date(2013, 7, 1, 18, 31, 25, 0, time.UTC)},
		Location:  ist,
		Tolerance: launchtime.NodeTolerance,
	}, nil
}
