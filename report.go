package launchtime

import (
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	// DateFormat is the layout of every instant printed by the reports.
	DateFormat = "2006-01-02 15:04:05"
)

// fmt4 formats an angle with four decimals.
func fmt4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// Report writes human readable summaries. Local instants are shown in Location.
type Report struct {
	w        io.Writer
	Location *time.Location
}

// NewReport returns a new Report writing to w. A nil location means UTC.
func NewReport(w io.Writer, loc *time.Location) Report {
	if loc == nil {
		loc = time.UTC
	}
	return Report{w, loc}
}

// LaunchTimes writes the forward solution.
func (r Report) LaunchTimes(site LaunchSite, orbit OrbitSpec, opps []LaunchOpportunity) error {
	if _, err := fmt.Fprintf(r.w, "launch time from %s\nRAAN = %s,  inclination = %s (%s)\n%s\n", site.Name, fmt4(orbit.RAAN), fmt4(orbit.Inclination), Windows(orbit.Inclination, site.LatΦ), separator); err != nil {
		return err
	}
	for _, opp := range opps {
		_, err := fmt.Fprintf(r.w, "%s node for launch azimuth: %s°  (LST %s°)\nlaunch time UTC : [%s]  %s : [%s]  JD %.5f  LMST %s°\n",
			opp.Node, fmt4(opp.Azimuth), fmt4(opp.LST),
			opp.Launch.UTC().Format(DateFormat), r.zone(opp.Launch), opp.Launch.In(r.Location).Format(DateFormat),
			JulianDate(opp.Launch), fmt4(site.LocalMeanSidereal(opp.Launch)))
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.w, "%s\n\n", separator)
	return err
}

// RAAN writes the reverse solution.
func (r Report) RAAN(inclination, azimuth float64, launchTime time.Time, node NodeKind, Ω float64) error {
	_, err := fmt.Fprintf(r.w, "reverse calculation (RAAN from azimuth and launch time)\ninclination = %s\nazimuth = %s,  launch time UTC = [%s]\n%s\n%s node, RAAN = %s°\n%s\n\n",
		fmt4(inclination), fmt4(azimuth), launchTime.UTC().Format(DateFormat), separator, node, fmt4(Ω), separator)
	return err
}

// Dispersion writes a dispersion analysis result.
func (r Report) Dispersion(res DispersionResult) error {
	_, err := fmt.Fprintf(r.w, "RAAN dispersion: nominal = %s°, mean = %s°, σ = %s° (%d samples, %d rejected)\n",
		fmt4(res.Nominal), fmt4(res.Mean), fmt4(res.StdDev), res.Accepted, res.Rejected)
	return err
}

func (r Report) zone(dt time.Time) string {
	name, _ := dt.In(r.Location).Zone()
	return name
}

const separator = "---------------------------------"
