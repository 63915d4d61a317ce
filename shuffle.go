package swot

import "math/rand"

// shuffled returns a new slice holding the entries in uniformly random
// order. The input is not modified. Fisher–Yates guarantees every
// permutation is equally likely for an unbiased source.
func shuffled(entries []Entry, rng *rand.Rand) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
