package seeds

import (
	"math/rand"
	"time"
)

// Shuffle permutes items in place with a uniform Fisher-Yates pass.
//
// The bracket uses it twice with distinct purposes: once to seed the
// entrant order at construction, and once per round to pick the display
// order matches are dealt onto courts in. The two permutations are never
// shared.
func Shuffle[T any](items []T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := len(items) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
