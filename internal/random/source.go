// Package random supplies the single source of randomness for a
// competition. A Source answers three kinds of draws, each labelled with
// a context string so an interactive backend can explain what it is
// asking for. The seeded backend makes runs reproducible; the oracle
// backend hands every draw to the player.
package random

import (
	"fmt"
	"io"
)

// Source answers the battle engine's random draws.
type Source interface {
	// Chance decides a percentage check. Rates outside 0..100 are
	// clamped with an in-band warning.
	Chance(context string, percent int) bool
	// Float draws a real number from [min,max].
	Float(context string, min, max float64) float64
	// Int draws an integer from [min,max], both inclusive.
	Int(context string, min, max int) int
}

const (
	errOutOfRange   = "Error, out of range."
	warnClampFormat = "Warning: %s Clamping hitRate to valid range [0-100]."
	warnRangeFormat = "Warning: %s Clamping range to valid bounds."
)

// clampRate forces a hit rate into 0..100, warning on out when it had to
// clamp. The warning is part of the game transcript, not a diagnostic.
func clampRate(out io.Writer, percent int) (clamped int, wasClamped bool) {
	if percent >= 0 && percent <= 100 {
		return percent, false
	}
	fmt.Fprintf(out, warnClampFormat+"\n", errOutOfRange)
	if percent < 0 {
		return 0, true
	}
	return 100, true
}

// clampFloatRange collapses a degenerate max<min range onto min, warning
// on out. A bad range never aborts a match.
func clampFloatRange(out io.Writer, min, max float64) float64 {
	if max >= min {
		return max
	}
	fmt.Fprintf(out, warnRangeFormat+"\n", errOutOfRange)
	return min
}

// clampIntRange collapses a degenerate max<min range onto min, warning
// on out.
func clampIntRange(out io.Writer, min, max int) int {
	if max >= min {
		return max
	}
	fmt.Fprintf(out, warnRangeFormat+"\n", errOutOfRange)
	return min
}
