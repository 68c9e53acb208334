package vg

import (
	"math/rand"
	"sync"
	"time"
)

// Randomness is explicit and caller-controlled: the wiggle and scatter
// operations take an optional seed, and a given seed always reproduces the
// same output. When the seed is omitted, one process-wide seed is drawn on
// first use; output is then stable within a process but not across runs.

var (
	autoSeedOnce sync.Once
	autoSeedVal  int64
)

// autoSeed returns the process-wide fallback seed, drawn once.
func autoSeed() int64 {
	autoSeedOnce.Do(func() {
		autoSeedVal = time.Now().UnixNano()
	})
	return autoSeedVal
}

// newRand builds the generator backing one seeded operation call.
func newRand(seed []int64) *rand.Rand {
	if len(seed) > 0 {
		return rand.New(rand.NewSource(seed[0]))
	}
	return rand.New(rand.NewSource(autoSeed()))
}

// jitter draws a uniform offset in [-offset.X, +offset.X] x
// [-offset.Y, +offset.Y].
func jitter(rng *rand.Rand, offset Point) Point {
	return Point{
		X: (rng.Float64() - 0.5) * 2 * offset.X,
		Y: (rng.Float64() - 0.5) * 2 * offset.Y,
	}
}
