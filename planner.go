package launchtime

import (
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Planner binds a launch site to a target orbit and logs the intermediate angles of each solve.
// The results are exactly those of SolveLaunchTimes and SolveRAAN.
type Planner struct {
	Site      LaunchSite
	Orbit     OrbitSpec
	Tolerance float64       // node band used by the RAAN recovery, in degrees
	logger    kitlog.Logger // logger
}

// NewPlanner returns a new Planner. A nil logger discards everything.
func NewPlanner(site LaunchSite, orbit OrbitSpec, logger kitlog.Logger) *Planner {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	logger = kitlog.With(logger, "site", site.Name)
	return &Planner{site, orbit, NodeTolerance, logger}
}

// Geometry returns the launch geometry of this site and orbit.
func (p *Planner) Geometry() (Geometry, error) {
	level.Debug(p.logger).Log("windows", Windows(p.Orbit.Inclination, p.Site.LatΦ), "i", p.Orbit.Inclination, "φ", p.Site.LatΦ)
	g, err := NewGeometry(p.Orbit.Inclination, p.Site.LatΦ)
	if err != nil {
		level.Error(p.logger).Log("msg", "invalid geometry", "err", err)
		return g, err
	}
	level.Debug(p.logger).Log("γ", fmt4(g.Γ), "δ", fmt4(g.Δ), "βAN", fmt4(g.AzimuthAN), "βDN", fmt4(g.AzimuthDN))
	return g, nil
}

// LaunchTimes returns the launch opportunities on the UTC date of epoch.
func (p *Planner) LaunchTimes(epoch time.Time) ([]LaunchOpportunity, error) {
	if _, err := p.Geometry(); err != nil {
		return nil, err
	}
	opps, err := SolveLaunchTimes(epoch, p.Orbit.Inclination, p.Site.LatΦ, p.Site.Azimuths, p.Orbit.RAAN)
	if err != nil {
		level.Error(p.logger).Log("msg", "no launch opportunity", "epoch", Day0h(epoch).Format(DateFormat), "err", err)
		return nil, err
	}
	for _, opp := range opps {
		level.Debug(p.logger).Log("node", opp.Node, "β", fmt4(opp.Azimuth), "LST", fmt4(opp.LST), "offset", fmt4(PlaneOffset(p.Orbit, p.Site.LatΦ, opp.LST)))
		level.Info(p.logger).Log("node", opp.Node, "launch", opp.Launch.Format(DateFormat))
	}
	return opps, nil
}

// RAAN recovers the RAAN of the orbit reached by a launch at launchTime with the observed azimuth.
// Only the inclination of the planner's orbit is used.
func (p *Planner) RAAN(launchTime time.Time, azimuth float64) (float64, NodeKind, error) {
	if _, err := p.Geometry(); err != nil {
		return 0, 0, err
	}
	Ω, node, err := solveRAAN(launchTime, p.Orbit.Inclination, p.Site.LatΦ, azimuth, p.Tolerance)
	if err != nil {
		level.Error(p.logger).Log("msg", "RAAN recovery failed", "β", azimuth, "err", err)
		return 0, 0, err
	}
	level.Info(p.logger).Log("node", node, "β", fmt4(azimuth), "launch", launchTime.UTC().Format(DateFormat), "Ω", fmt4(Ω))
	return Ω, node, nil
}
