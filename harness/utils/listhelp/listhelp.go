// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// This package contains some helpers for separated lists given on the command
// line or in environment variables
package listhelp

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ParseList parses a sep-separated list of names. Surrounding whitespace is
// trimmed and empty items are dropped
func ParseList(list, sep string) []string {
	items := []string{}
	pieces := strings.Split(list, sep)

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)

		if piece == "" {
			continue
		}

		items = append(items, piece)
	}

	return items
}

// ParseComma parses a comma-separated list of names
func ParseComma(list string) []string {
	return ParseList(list, ",")
}

// ParseFile parses a newline-separated list of names from a file
func ParseFile(filepath string) ([]string, error) {
	bytes, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "Error while reading list file")
	}

	// We don't need to remove '\r' characters because in ParseList we use
	// the strings.TrimSpace function

	return ParseList(string(bytes), "\n"), nil
}
