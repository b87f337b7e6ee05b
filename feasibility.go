package launchtime

import "fmt"

// LaunchWindows is the number of daily launch windows a site has into an orbit plane.
type LaunchWindows uint8

const (
	// NoWindow means the site never passes through the orbit plane.
	NoWindow LaunchWindows = iota
	// OneWindow means the site grazes the orbit plane (φ equals i or 180-i).
	OneWindow
	// TwoWindows means the site crosses the orbit plane twice per sidereal day.
	TwoWindows
)

func (w LaunchWindows) String() string {
	switch w {
	case NoWindow:
		return "no launch window"
	case OneWindow:
		return "one launch window"
	case TwoWindows:
		return "two launch windows"
	default:
		panic(fmt.Errorf("unknown launch window count %d", uint8(w)))
	}
}

// Windows classifies the inclination i and latitude φ (both in degrees).
// The branches are evaluated in order and the first match wins.
func Windows(i, φ float64) LaunchWindows {
	retro := 180 - i
	switch {
	case φ > i && φ > retro:
		return NoWindow
	case φ == i || φ == retro:
		return OneWindow
	case φ < i || φ < retro:
		return TwoWindows
	default:
		// NaN inputs.
		return NoWindow
	}
}

// IsFeasible returns whether at least one launch window exists.
func IsFeasible(i, φ float64) bool {
	return Windows(i, φ) != NoWindow
}

// checkFeasible is the precondition shared by both solvers.
func checkFeasible(i, φ float64) error {
	if !IsFeasible(i, φ) {
		return fmt.Errorf("%w: φ=%f i=%f", ErrInvalidInput, φ, i)
	}
	return nil
}
