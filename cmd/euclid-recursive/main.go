// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package main

import (
	"os"
	"path/filepath"

	"github.com/bigo-lab/bigo/harness/euclid"
)

func main() {
	prog := filepath.Base(os.Args[0])
	os.Exit(euclid.RunCommand(prog, os.Args[1:], euclid.Recursive, os.Stdout, os.Stderr))
}
