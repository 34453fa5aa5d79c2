// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package main

import (
	"github.com/bigo-lab/bigo/harness"
)

func main() {
	harness.Main()
}
