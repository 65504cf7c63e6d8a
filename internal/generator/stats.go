package generator

import (
	"math"
	"time"
)

// Stats is a snapshot of the search counters.
type Stats struct {
	Mnemonics uint64 // mnemonics processed (1 in fixed-mnemonic mode)
	Addresses uint64 // addresses derived and tested
	Skipped   uint64 // indices skipped because the derived scalar was invalid
	Elapsed   time.Duration
}

// Rate is addresses per second.
func (s Stats) Rate() float64 { return Rate(s.Addresses, s.Elapsed) }

// Progress is handed to Options.OnProgress on every tick.
type Progress struct {
	Stats    Stats
	Rate     float64 // addresses per second
	Expected float64 // mean attempts for the pattern
	ETA      float64 // seconds, +Inf while the rate is unknown
}

func Rate(addresses uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(addresses) / elapsed.Seconds()
}

// ETA is the expected seconds to a match at the given rate.
func ETA(expected, rate float64) float64 {
	if rate <= 0 {
		return math.Inf(1)
	}
	return expected / rate
}

func newProgress(s Stats, expected float64) Progress {
	rate := s.Rate()
	return Progress{Stats: s, Rate: rate, Expected: expected, ETA: ETA(expected, rate)}
}
