package core

import "math/rand"

// Pick returns a uniformly random element of items
func Pick[T any](rng *rand.Rand, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptySelection
	}
	return items[rng.Intn(len(items))], nil
}
