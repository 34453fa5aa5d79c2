// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package euclid

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// GCDFunc is the signature shared by Iterative and Recursive
type GCDFunc func(a, b int, trace io.Writer) int

// ParseArgs parses the two integer operands of a euclid-* command
func ParseArgs(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("Expected 2 arguments, got %d", len(args))
	}

	a, err := parseOperand(args[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "Error while parsing the first operand")
	}

	b, err := parseOperand(args[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "Error while parsing the second operand")
	}

	return a, b, nil
}

// parseOperand rejects math.MinInt, whose absolute value does not fit in an int
func parseOperand(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, err
	}
	if n == math.MinInt {
		return 0, errors.Errorf("Operand out of range: %s", arg)
	}
	return n, nil
}

// RunCommand runs a euclid-* command with the given arguments (program name
// excluded) and returns its exit code. The trace and the result go to stdout,
// the usage and the errors go to stderr.
func RunCommand(prog string, args []string, gcd GCDFunc, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintf(stderr, "Usage: %s <a> <b>\n", prog)
		return 1
	}

	a, b, err := ParseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	result := gcd(a, b, stdout)
	fmt.Fprintf(stdout, "Result: %d\n", result)

	return 0
}
