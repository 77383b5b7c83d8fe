// Package dice provides the randomness abstraction used by the combat and
// encounter rules.
package dice

import "math"

// Source is the randomness provider for every roll the engine makes.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// FloatResolution is the number of distinct values Float can produce. It is
// the largest n every GOARCH can pass to Intn.
const FloatResolution = math.MaxInt32

// Float draws a uniformly distributed float in [0, 1) from src.
//
// Precondition: src must be non-nil.
// Postcondition: 0 <= result < 1.
func Float(src Source) float64 {
	return float64(src.Intn(FloatResolution)) / FloatResolution
}

// Between draws a uniformly distributed integer in [lo, hi] from src.
// When hi < lo the bounds are swapped.
//
// Precondition: src must be non-nil.
// Postcondition: min(lo,hi) <= result <= max(lo,hi).
func Between(src Source, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + src.Intn(hi-lo+1)
}
