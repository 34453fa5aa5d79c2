// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bigo-lab/bigo/harness/cliflags"
)

func parse(t *testing.T, args ...string) *cliflags.ParsedValues {
	t.Helper()
	vals, err := cliflags.Parse("bigo", args)
	require.NoError(t, err)
	return vals
}

func TestLoadConfigDefaults(t *testing.T) {
	ass := require.New(t)

	cfg, err := LoadConfig(parse(t))
	ass.NoError(err)

	ass.False(cfg.Fast)
	ass.Equal("plots", cfg.OutDir)
	ass.Equal("png", cfg.Format)
	ass.Empty(cfg.CSVPath)
	ass.Empty(cfg.Only)
	ass.False(cfg.NoCharts)
}

func TestLoadConfigPrecedence(t *testing.T) {
	ass := require.New(t)

	t.Setenv("BIGO_OUTDIR", "from-env")
	t.Setenv("BIGO_CSV", "env.csv")

	// Environment wins over defaults
	cfg, err := LoadConfig(parse(t))
	ass.NoError(err)
	ass.Equal("from-env", cfg.OutDir)
	ass.Equal("env.csv", cfg.CSVPath)

	// Explicit flags win over environment
	cfg, err = LoadConfig(parse(t, "--outdir", "from-flag"))
	ass.NoError(err)
	ass.Equal("from-flag", cfg.OutDir)
	ass.Equal("env.csv", cfg.CSVPath)
}

func TestLoadConfigFastEnv(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"1", true},
		{"yes", true},
		{"0", true},
		{"false", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FAST", tt.value)

			cfg, err := LoadConfig(parse(t))
			require.NoError(t, err)
			require.Equal(t, tt.expected, cfg.Fast)
		})
	}
}

func TestLoadConfigFastFlag(t *testing.T) {
	cfg, err := LoadConfig(parse(t, "-f"))
	require.NoError(t, err)
	require.True(t, cfg.Fast)
}

func TestLoadConfigEnvFile(t *testing.T) {
	ass := require.New(t)

	path := filepath.Join(t.TempDir(), "bigo.env")
	content := "BIGO_ONLY=linear_sum,fib_exp\nBIGO_FORMAT=SVG\nBIGO_DEBUG=true\n"
	ass.NoError(os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(parse(t, "--config", path))
	ass.NoError(err)
	ass.Equal("linear_sum,fib_exp", cfg.Only)
	ass.Equal("svg", cfg.Format)
	ass.True(cfg.DebugMode)

	// A missing .env file is ignored
	_, err = LoadConfig(parse(t, "--config", filepath.Join(t.TempDir(), "missing.env")))
	ass.NoError(err)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		valid bool
	}{
		{"format with dot", []string{"--format", ".PDF"}, true},
		{"unknown format", []string{"--format", "bmp"}, false},
		{"empty outdir", []string{"--outdir", ""}, false},
		{"empty outdir without charts", []string{"--outdir", "", "--no-charts"}, true},
		{"missing summary template", []string{"--summary-template", "/nonexistent/summary.tmpl"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(parse(t, tt.args...))
			if tt.valid {
				require.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.Error(t, err)
			require.True(t, errors.As(err, &validationErr))
			require.Contains(t, err.Error(), "Invalid configuration")
		})
	}
}

func TestLoadConfigUndecodableEnv(t *testing.T) {
	t.Setenv("BIGO_FAST", "yes")

	_, err := LoadConfig(parse(t))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Contains(t, err.Error(), "Error while decoding the configuration")
}
