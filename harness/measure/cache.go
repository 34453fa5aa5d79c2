package measure

import (
	"github.com/pkg/errors"

	"github.com/bigo-lab/bigo/harness/catalog"
)

// This file holds the input cache used by the engine during a single
// measurement run

//////////////////// PUBLIC STRUCT TYPES ////////////////////

// InputCache stores the inputs built by a descriptor's SetupFunc, keyed by
// input size. An InputCache belongs to one Measure call and is dropped at its
// end, so inputs are never shared between algorithms or runs.
type InputCache struct {
	// The cached inputs. The key is the input size
	entries map[int][]int

	setup catalog.SetupFunc

	// Number of times setup has actually been called
	builds int
}

//////////////////// PUBLIC METHODS ////////////////////

// NewInputCache creates an empty cache for the given setup function. setup can
// be nil, in which case Get always returns a nil input.
func NewInputCache(setup catalog.SetupFunc) *InputCache {
	return &InputCache{
		entries: map[int][]int{},
		setup:   setup,
	}
}

// Get returns the input for size n, building it on the first request
func (cache *InputCache) Get(n int) ([]int, error) {
	if cache.setup == nil {
		return nil, nil
	}

	input, present := cache.entries[n]
	if present {
		return input, nil
	}

	input, err := cache.setup(n)
	if err != nil {
		return nil, errors.Wrapf(err, "Error while building the input of size %d", n)
	}

	cache.entries[n] = input
	cache.builds++

	return input, nil
}

// Len returns the number of cached inputs
func (cache *InputCache) Len() int {
	return len(cache.entries)
}

// Builds returns how many times the setup function has been called
func (cache *InputCache) Builds() int {
	return cache.builds
}
