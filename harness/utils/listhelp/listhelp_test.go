// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package listhelp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	ass := require.New(t)

	var tests = []struct {
		list, sep string
		want      []string
	}{
		{" linear_sum", ",", []string{"linear_sum"}},
		{" \n linear_sum  \r  \n  , \t merge_sort,, ,", ",", []string{"linear_sum", "merge_sort"}},
		{" \n fib_exp  \n  \t\t is_even    \n", "\n", []string{"fib_exp", "is_even"}},
		{" \n fib_exp  \r\n  \t\t is_even\r\n", "\n", []string{"fib_exp", "is_even"}},
		{"", ",", []string{}},
		{" , ,", ",", []string{}},
	}

	for _, tt := range tests {
		ass.Equal(tt.want, ParseList(tt.list, tt.sep))
	}
}

func TestParseComma(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, ParseComma("a, b,"))
}

func TestParseFile(t *testing.T) {
	ass := require.New(t)

	path := filepath.Join(t.TempDir(), "names.txt")
	ass.NoError(os.WriteFile(path, []byte("merge_sort\r\n\nfib_exp\n"), 0644))

	names, err := ParseFile(path)
	ass.NoError(err)
	ass.Equal([]string{"merge_sort", "fib_exp"}, names)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	ass.Error(err)
}
