// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// Package selector resolves which algorithms a run measures, from an optional
// allow-list given by the user.
package selector

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/bigo-lab/bigo/harness/utils/listhelp"
)

// filePrefix marks an allow-list read from a newline-separated file
const filePrefix = "file:"

// UsageError is returned when the user asks for something the harness does not
// know. The run must stop before producing any output.
type UsageError struct {
	Unknown []string
	Known   []string
}

func (err *UsageError) Error() string {
	return fmt.Sprintf("Unknown function: %s (known functions: %s)",
		strings.Join(err.Unknown, ", "), strings.Join(err.Known, ", "))
}

// Parse splits the allow-list into names. The list can be given inline
// ("linear_sum,merge_sort") or as "file:<path>" pointing to a file with one
// name per line.
func Parse(only string) ([]string, error) {
	only = strings.TrimSpace(only)

	if strings.HasPrefix(only, filePrefix) {
		return listhelp.ParseFile(strings.TrimPrefix(only, filePrefix))
	}

	return listhelp.ParseComma(only), nil
}

// Resolve returns the sorted, de-duplicated names to run. An empty request
// selects every known name. If any requested name is unknown, a *UsageError
// is returned.
func Resolve(requested []string, known []string) ([]string, error) {
	selected := lo.Uniq(requested)
	if len(selected) == 0 {
		selected = append([]string{}, known...)
	}

	unknown := lo.Without(selected, known...)
	if len(unknown) > 0 {
		sort.Strings(unknown)

		knownSorted := append([]string{}, known...)
		sort.Strings(knownSorted)

		return nil, &UsageError{Unknown: unknown, Known: knownSorted}
	}

	sort.Strings(selected)

	return selected, nil
}
