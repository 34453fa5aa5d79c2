// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// Package euclid computes the greatest common divisor with Euclid's algorithm,
// in an iterative and in a recursive form. Both can write a step by step trace
// of the computation, which is what the euclid-* commands print.
package euclid

import (
	"fmt"
	"io"
)

// Iterative returns gcd(a, b) using a loop. If trace is not nil, every
// iteration is written to it. The result is never negative and
// Iterative(a, 0) == |a|. Both operands must be greater than math.MinInt.
func Iterative(a, b int, trace io.Writer) int {
	tracef(trace, "Finding the GCD for: (%d, %d)\n", a, b)

	step := 1
	for b != 0 {
		tracef(trace, "Step %d: a = %d, b = %d -> a %% b = %d\n", step, a, b, a%b)
		a, b = b, a%b
		step++
	}

	tracef(trace, "Final step: a = %d, b = %d -> GCD = %d\n", a, b, abs(a))
	return abs(a)
}

// Recursive returns gcd(a, b) using recursion, one call per step. If trace is
// not nil, every call is written to it together with its depth. The operands
// have the same range as in Iterative.
func Recursive(a, b int, trace io.Writer) int {
	return recursive(a, b, 1, trace)
}

func recursive(a, b, depth int, trace io.Writer) int {
	tracef(trace, "Call %d: gcd(%d, %d)\n", depth, a, b)

	if b == 0 {
		tracef(trace, "Base case reached at depth %d: GCD = %d\n", depth, abs(a))
		return abs(a)
	}

	return recursive(b, a%b, depth+1, trace)
}

func tracef(trace io.Writer, format string, args ...any) {
	if trace == nil {
		return
	}
	fmt.Fprintf(trace, format, args...)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
