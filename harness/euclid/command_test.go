// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package euclid

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	ass := require.New(t)

	a, b, err := ParseArgs([]string{"48", "-18"})
	ass.NoError(err)
	ass.Equal(48, a)
	ass.Equal(-18, b)

	_, _, err = ParseArgs([]string{"48"})
	ass.Error(err)

	_, _, err = ParseArgs([]string{"48", "x"})
	ass.Error(err)
}

func TestParseArgsMinInt(t *testing.T) {
	minInt := strconv.Itoa(math.MinInt)

	tests := [][]string{
		{minInt, "0"},
		{"0", minInt},
		{minInt, minInt},
	}

	for _, args := range tests {
		_, _, err := ParseArgs(args)
		require.Error(t, err)
		require.Contains(t, err.Error(), "out of range")

		var stdout, stderr bytes.Buffer
		code := RunCommand("euclid", args, Iterative, &stdout, &stderr)
		require.Equal(t, 1, code)
		require.Empty(t, stdout.String())
		require.Contains(t, stderr.String(), "out of range")
	}

	a, b, err := ParseArgs([]string{strconv.Itoa(math.MinInt + 1), "0"})
	require.NoError(t, err)
	require.Equal(t, math.MinInt+1, a)
	require.Equal(t, 0, b)
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		gcd      GCDFunc
		exitCode int
		stdout   string
		stderr   string
	}{
		{"iterative", []string{"48", "18"}, Iterative, 0, "Result: 6", ""},
		{"recursive", []string{"48", "18"}, Recursive, 0, "Result: 6", ""},
		{"zero", []string{"0", "0"}, Iterative, 0, "Result: 0", ""},
		{"no args", nil, Iterative, 1, "", "Usage: euclid <a> <b>"},
		{"too many args", []string{"1", "2", "3"}, Recursive, 1, "", "Usage: euclid <a> <b>"},
		{"not a number", []string{"12", "abc"}, Iterative, 1, "", "second operand"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := RunCommand("euclid", tt.args, tt.gcd, &stdout, &stderr)
			require.Equal(t, tt.exitCode, code)

			if tt.stdout == "" {
				require.Empty(t, stdout.String())
			} else {
				lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
				require.Equal(t, tt.stdout, lines[len(lines)-1])
			}

			if tt.stderr == "" {
				require.Empty(t, stderr.String())
			} else {
				require.Contains(t, stderr.String(), tt.stderr)
			}
		})
	}
}
