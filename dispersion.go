package launchtime

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat"
	"github.com/gonum/stat/distmv"
)

// Dispersion configures a Monte Carlo estimate of the RAAN uncertainty caused by errors on the
// observed azimuth and on the recorded launch time.
type Dispersion struct {
	σAzimuth  float64 // degrees
	σTime     float64 // seconds
	Samples   int
	Tolerance float64 // node band, in degrees
	seed      int64
}

// NewDispersion returns a new dispersion analysis. The standard deviations must be strictly positive.
func NewDispersion(σAzimuth float64, σTime time.Duration, samples int, seed int64) (Dispersion, error) {
	if σAzimuth <= 0 || σTime <= 0 || samples < 2 {
		return Dispersion{}, fmt.Errorf("invalid dispersion: σβ=%f σt=%s samples=%d", σAzimuth, σTime, samples)
	}
	return Dispersion{σAzimuth, σTime.Seconds(), samples, NodeTolerance, seed}, nil
}

// DispersionResult summarizes the recovered RAAN samples.
type DispersionResult struct {
	Nominal  float64 // RAAN from the unperturbed observation
	Mean     float64
	StdDev   float64
	Accepted int
	Rejected int // samples whose azimuth fell outside both node bands
}

func (r DispersionResult) String() string {
	return fmt.Sprintf("Ω=%.4f° mean=%.4f° σ=%.4f° (%d accepted, %d rejected)", r.Nominal, r.Mean, r.StdDev, r.Accepted, r.Rejected)
}

// RAAN runs the analysis around the observation (launchTime, azimuth) for the orbit inclination i
// and site latitude φ.
func (d Dispersion) RAAN(launchTime time.Time, i, φ, azimuth float64) (DispersionResult, error) {
	nominal, _, err := solveRAAN(launchTime, i, φ, azimuth, d.Tolerance)
	if err != nil {
		return DispersionResult{}, err
	}
	seed := rand.New(rand.NewSource(d.seed))
	cov := mat64.NewSymDense(2, []float64{d.σAzimuth * d.σAzimuth, 0, 0, d.σTime * d.σTime})
	noise, ok := distmv.NewNormal([]float64{0, 0}, cov, seed)
	if !ok {
		return DispersionResult{}, fmt.Errorf("covariance is not positive definite")
	}
	// Samples are kept as offsets from the nominal so that the statistics do not straddle 0/360.
	offsets := make([]float64, 0, d.Samples)
	rejected := 0
	for k := 0; k < d.Samples; k++ {
		δx := noise.Rand(nil)
		dt := launchTime.Add(time.Duration(δx[1] * float64(time.Second)))
		Ω, _, err := solveRAAN(dt, i, φ, azimuth+δx[0], d.Tolerance)
		if err != nil {
			rejected++
			continue
		}
		offsets = append(offsets, AngleDiff(Ω, nominal))
	}
	if len(offsets) < 2 {
		return DispersionResult{}, fmt.Errorf("%w: %d of %d samples rejected", ErrAmbiguousNode, rejected, d.Samples)
	}
	mean, σ := stat.MeanStdDev(offsets, nil)
	return DispersionResult{
		Nominal:  nominal,
		Mean:     NormalizeDeg(nominal + mean),
		StdDev:   σ,
		Accepted: len(offsets),
		Rejected: rejected,
	}, nil
}
