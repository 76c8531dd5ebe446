// Package randutil generates reproducible random event logs for property
// tests of the betting engine and its consumers.
package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/handnotes/internal/hand"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// splitmix64 finaliser.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Sizes mixes usable raise sizes with text the engine must ignore.
var Sizes = []string{"", "0", "-1", "x", "1", "2.5", "3", "7", "12.25", "40"}

// Log builds n events mixing valid and malformed ones: unknown seats and
// action kinds, unusable sizes, and boards for any street including
// preflop and out-of-range values.
func Log(rng *rand.Rand, n int) []hand.Event {
	events := make([]hand.Event, 0, n)
	for i := 0; i < n; i++ {
		if rng.IntN(8) == 0 {
			events = append(events, hand.BoardEvent{Street: hand.Street(rng.IntN(5))})
			continue
		}
		events = append(events, hand.ActionEvent{
			Position: hand.Position(rng.IntN(hand.SeatCount + 1)),
			Action:   hand.ActionKind(rng.IntN(6)),
			Size:     Sizes[rng.IntN(len(Sizes))],
		})
	}
	return events
}
