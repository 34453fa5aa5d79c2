// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// Package catalog holds the static configuration of the harness: which
// algorithms exist, with which input sizes they are measured (the size
// schedule) and how many times each call is repeated to average out timer noise
// (the repeat policy).
//
// The catalog is built once at startup. Nothing else in the harness maps
// algorithm names to code.
package catalog

import (
	"math/rand"
	"sort"

	"github.com/bigo-lab/bigo/harness/algorithms"
	"github.com/bigo-lab/bigo/harness/constants"
)

//////////////////// PUBLIC TYPES ////////////////////

// SetupFunc builds the input for size n. It is called outside of the timed
// section, and its result is reused for every repeat at the same size.
type SetupFunc func(n int) ([]int, error)

// RunFunc is the timed call. It receives the size and the input built by the
// SetupFunc (nil if the descriptor has no SetupFunc). The returned int is a
// digest of the result, which the engine keeps to make sure the call is not
// optimized away.
type RunFunc func(n int, input []int) (int, error)

// Descriptor describes one algorithm to measure.
type Descriptor struct {
	// Unique name, also used for file names and CSV rows
	Name string
	// Growth class, e.g. "O(n log n)"
	Class string
	// Input sizes, in non-decreasing order. Never empty
	Sizes []int
	// Number of back-to-back calls per size. Always >= 1
	Repeats int

	// Optional input builder, may be nil
	Setup SetupFunc
	// The measured callable
	Run RunFunc
}

//////////////////// SIZE SCHEDULE AND REPEAT POLICY ////////////////////

// Sizes returns the input-size schedule of every algorithm. Constant and
// logarithmic algorithms get huge sizes (the size does not change the cost),
// while quadratic and exponential ones get small sizes so that a single call
// completes in bounded time.
func Sizes(fast bool) map[string][]int {
	return map[string][]int{
		// O(1): the list length doesn't affect the lookup cost
		constants.FirstElement: {1_000_000, 1_000_000, 1_000_000},
		constants.IsEven:       {10, 100_000_000, 1_000_000_000_000},

		// O(log n)
		constants.BinarySearch: {10, 10_000, 10_000_000},

		// O(n)
		constants.LinearSum: pick(fast, []int{5_000, 20_000}, []int{10_000, 50_000, 100_000}),

		// O(n log n)
		constants.MergeSort: pick(fast, []int{2_000, 10_000}, []int{5_000, 20_000, 50_000}),

		// O(n^2)
		constants.QuadraticPairs: pick(fast, []int{300, 600}, []int{600, 1_000, 1_400}),

		// O(2^n), always below constants.FibExpMaxN
		constants.FibExp: pick(fast, []int{24, 26}, []int{28, 30}),
	}
}

// Repeats returns how many times each call is repeated for a single sample.
// Very fast calls are repeated many times to reduce the timer noise, while
// calls that already take a measurable time run once.
func Repeats(fast bool) map[string]int {
	return map[string]int{
		constants.FirstElement:   pick(fast, 50_000, 100_000),
		constants.IsEven:         pick(fast, 50_000, 100_000),
		constants.BinarySearch:   pick(fast, 20_000, 50_000),
		constants.LinearSum:      1,
		constants.MergeSort:      1,
		constants.QuadraticPairs: 1,
		constants.FibExp:         1,
	}
}

//////////////////// DESCRIPTORS ////////////////////

// Descriptors returns the descriptor of every known algorithm, keyed by name.
func Descriptors(fast bool) map[string]Descriptor {
	sizes := Sizes(fast)
	repeats := Repeats(fast)

	descrs := map[string]Descriptor{}
	add := func(name, class string, setup SetupFunc, run RunFunc) {
		descrs[name] = Descriptor{
			Name:    name,
			Class:   class,
			Sizes:   sizes[name],
			Repeats: repeats[name],
			Setup:   setup,
			Run:     run,
		}
	}

	add(constants.FirstElement, constants.ClassConstant, buildRange, runFirstElement)
	add(constants.IsEven, constants.ClassConstant, nil, runIsEven)
	add(constants.BinarySearch, constants.ClassLogarithmic, nil, runBinarySearch)
	add(constants.LinearSum, constants.ClassLinear, nil, runLinearSum)
	add(constants.MergeSort, constants.ClassLinearithmic, buildRandom, runMergeSort)
	add(constants.QuadraticPairs, constants.ClassQuadratic, nil, runQuadraticPairs)
	add(constants.FibExp, constants.ClassExponential, nil, runFibExp)

	return descrs
}

// Names returns the names of all known algorithms, sorted.
func Names() []string {
	descrs := Descriptors(false)

	names := make([]string, 0, len(descrs))
	for name := range descrs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

//////////////////// PRIVATE FUNCTIONS ////////////////////

func pick[T any](fast bool, fastValue, normalValue T) T {
	if fast {
		return fastValue
	}
	return normalValue
}

// buildRange returns [0, 1, ..., n-1]
func buildRange(n int) ([]int, error) {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i
	}
	return arr, nil
}

// buildRandom returns n random values in [0, constants.MergeSortMaxValue]
func buildRandom(n int) ([]int, error) {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = rand.Intn(constants.MergeSortMaxValue + 1)
	}
	return arr, nil
}

func runFirstElement(_ int, input []int) (int, error) {
	v, _ := algorithms.FirstElement(input)
	return v, nil
}

func runIsEven(n int, _ []int) (int, error) {
	if algorithms.IsEven(n) {
		return 1, nil
	}
	return 0, nil
}

func runBinarySearch(n int, _ []int) (int, error) {
	return algorithms.BinarySearchSteps(n), nil
}

func runLinearSum(n int, _ []int) (int, error) {
	return algorithms.LinearSum(n), nil
}

func runMergeSort(_ int, input []int) (int, error) {
	return len(algorithms.MergeSort(input)), nil
}

func runQuadraticPairs(n int, _ []int) (int, error) {
	return algorithms.QuadraticPairs(n), nil
}

func runFibExp(n int, _ []int) (int, error) {
	return algorithms.FibExp(n), nil
}
