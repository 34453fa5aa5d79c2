// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// Package algorithms contains the reference implementations whose running time
// is measured by the harness, one for each growth class. They are written for
// teaching purposes: each one is the plain textbook version.
package algorithms

//////////////////// O(1) ////////////////////

// FirstElement returns the first element of arr. The second return value is
// false if arr is empty.
func FirstElement(arr []int) (int, bool) {
	if len(arr) == 0 {
		return 0, false
	}
	return arr[0], true
}

// IsEven reports whether n is even.
func IsEven(n int) bool {
	return n%2 == 0
}

//////////////////// O(log n) ////////////////////

// BinarySearchSteps returns the number of iterations a binary search needs to
// find the last element of a sorted list of length n. The list is never built,
// because building it would cost O(n) and hide the logarithmic curve.
func BinarySearchSteps(n int) int {
	steps := 0
	lo := 0
	hi := max(1, n-1)
	target := hi

	for lo <= hi {
		steps++
		mid := lo + (hi-lo)/2
		if mid == target {
			break
		} else if mid < target {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return steps
}

//////////////////// O(n) ////////////////////

// LinearSum returns the sum of 0..n-1 by visiting every number once.
func LinearSum(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += i
	}
	return total
}

//////////////////// O(n^2) ////////////////////

// Pair is an unordered pair of indexes, always with I < J.
type Pair struct {
	I, J int
}

// QuadraticPairs counts the pairs (i, j) with 0 <= i < j < n using two nested
// loops.
func QuadraticPairs(n int) int {
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			count++
		}
	}
	return count
}

// QuadraticPairsList is like QuadraticPairs, but also returns the visited
// pairs in lexicographic order.
func QuadraticPairsList(n int) (int, []Pair) {
	pairs := []Pair{}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}
	return len(pairs), pairs
}

//////////////////// O(2^n) ////////////////////

// FibExp returns the n-th Fibonacci number (FibExp(0) = 0, FibExp(1) = 1) with
// the naive doubly recursive definition. Negative n is treated as 0.
func FibExp(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}
	return FibExp(n-1) + FibExp(n-2)
}
