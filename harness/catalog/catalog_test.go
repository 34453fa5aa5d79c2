// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigo-lab/bigo/harness/constants"
)

func TestNamesSortedAndComplete(t *testing.T) {
	names := Names()

	assert.True(t, sort.StringsAreSorted(names))
	assert.Equal(t, []string{
		constants.BinarySearch,
		constants.FibExp,
		constants.FirstElement,
		constants.IsEven,
		constants.LinearSum,
		constants.MergeSort,
		constants.QuadraticPairs,
	}, names)
}

func TestSchedulesAndRepeatsCoverSameNames(t *testing.T) {
	for _, fast := range []bool{false, true} {
		sizes := Sizes(fast)
		repeats := Repeats(fast)

		require.Len(t, sizes, len(Names()))
		require.Len(t, repeats, len(Names()))

		for _, name := range Names() {
			require.Contains(t, sizes, name)
			require.Contains(t, repeats, name)
		}
	}
}

func TestDescriptorInvariants(t *testing.T) {
	for _, fast := range []bool{false, true} {
		for name, d := range Descriptors(fast) {
			assert.Equal(t, name, d.Name)
			assert.NotEmpty(t, d.Class, name)
			assert.NotNil(t, d.Run, name)
			assert.GreaterOrEqual(t, d.Repeats, 1, name)

			require.NotEmpty(t, d.Sizes, name)
			assert.True(t, sort.IntsAreSorted(d.Sizes), "%s sizes %v", name, d.Sizes)
		}
	}
}

func TestFibExpBelowCeiling(t *testing.T) {
	for _, fast := range []bool{false, true} {
		for _, n := range Sizes(fast)[constants.FibExp] {
			assert.LessOrEqual(t, n, constants.FibExpMaxN)
		}
	}
}

func TestFastModeIsNotSlower(t *testing.T) {
	normal := Sizes(false)
	fast := Sizes(true)

	for _, name := range Names() {
		assert.LessOrEqual(t, fast[name][len(fast[name])-1], normal[name][len(normal[name])-1], name)
	}

	assert.Less(t, Repeats(true)[constants.FirstElement], Repeats(false)[constants.FirstElement])
	assert.Equal(t, 1, Repeats(true)[constants.FibExp])
}

func TestDescriptorsRun(t *testing.T) {
	descrs := Descriptors(true)

	var tests = []struct {
		name string
		n    int
		want int
	}{
		{constants.FirstElement, 5, 0},
		{constants.IsEven, 4, 1},
		{constants.IsEven, 5, 0},
		{constants.BinarySearch, 8, 4},
		{constants.LinearSum, 10, 45},
		{constants.MergeSort, 100, 100},
		{constants.QuadraticPairs, 4, 6},
		{constants.FibExp, 9, 34},
	}

	for _, tt := range tests {
		d := descrs[tt.name]

		var input []int
		if d.Setup != nil {
			var err error
			input, err = d.Setup(tt.n)
			require.NoError(t, err)
			require.Len(t, input, tt.n)
		}

		got, err := d.Run(tt.n, input)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}
