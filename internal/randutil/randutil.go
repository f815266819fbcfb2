// Package randutil provides the shuffle and sampling helpers shared by the
// flashcard filter and the game round setups. Every function takes an
// explicit *rand.Rand so callers can seed it for deterministic tests.
package randutil

import "math/rand"

// Shuffle returns a new slice with the elements of in permuted uniformly
// at random (Fisher–Yates). The input slice is not mutated.
func Shuffle[T any](rng *rand.Rand, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns n distinct elements drawn from in without replacement, in
// randomized order. If n >= len(in), a full shuffled copy is returned.
func Sample[T any](rng *rand.Rand, in []T, n int) []T {
	out := Shuffle(rng, in)
	if n < 0 {
		n = 0
	}
	if n >= len(out) {
		return out
	}
	return out[:n]
}
