// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package algorithms

import (
	"github.com/gammazero/deque"
)

// MergeSort returns a sorted copy of data in O(n log n) time. The input slice
// is not modified.
//
// Instead of recursing, every element starts as a run of length one in a FIFO
// queue. The two runs at the front are merged and the result is pushed to the
// back, until a single run is left. Each round over the queue halves the number
// of runs, so there are log n rounds of O(n) merging.
func MergeSort(data []int) []int {
	if len(data) == 0 {
		return []int{}
	}

	var runs deque.Deque[[]int]
	for _, v := range data {
		runs.PushBack([]int{v})
	}

	for runs.Len() > 1 {
		left := runs.PopFront()
		right := runs.PopFront()
		runs.PushBack(merge(left, right))
	}

	return runs.PopFront()
}

// merge merges two sorted slices into a new sorted slice. On equal elements the
// one from left comes first.
func merge(left, right []int) []int {
	merged := make([]int, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			j++
		}
	}

	merged = append(merged, left[i:]...)
	merged = append(merged, right[j:]...)

	return merged
}
