// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package config

import (
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/bigo-lab/bigo/harness/cliflags"
)

// Configuration holds the post-processed configuration values.
//
// Each field is bound to the environment variable named by its mapstructure
// tag and, when it has a flag tag, to the command line flag with that name.
// An explicitly set flag wins over the environment, which wins over the .env
// file, which wins over the flag defaults.
type Configuration struct {
	DebugMode bool `mapstructure:"BIGO_DEBUG" flag:"debug"`
	DateTime  bool `mapstructure:"BIGO_LOG_DATETIME" flag:"datetime"`
	LogColors bool `mapstructure:"BIGO_LOG_COLORS" flag:"colors"`

	// Use the reduced size schedule. Also enabled by FastEnv.
	Fast bool `mapstructure:"BIGO_FAST" flag:"fast"`

	// Raw value of the FAST variable. Any non-empty value enables fast mode,
	// "0" and "false" included.
	FastEnv string `mapstructure:"FAST"`

	// Comma-separated list of function names, or "file:<path>". Empty means
	// all of them.
	Only string `mapstructure:"BIGO_ONLY" flag:"only"`

	// Directory where the charts are saved.
	OutDir string `mapstructure:"BIGO_OUTDIR" flag:"outdir" validate:"required_unless=NoCharts true"`

	// Chart image format, as a file extension.
	Format string `mapstructure:"BIGO_FORMAT" flag:"format" validate:"oneof=png svg pdf jpg jpeg tif tiff"`

	NoCharts bool `mapstructure:"BIGO_NO_CHARTS" flag:"no-charts"`

	// Optional path of the CSV file to append the results to.
	CSVPath string `mapstructure:"BIGO_CSV" flag:"csv"`

	SummaryPath     string `mapstructure:"BIGO_SUMMARY" flag:"summary"`
	SummaryTemplate string `mapstructure:"BIGO_SUMMARY_TEMPLATE" flag:"summary-template" validate:"omitempty,file"`

	MetricsFile string `mapstructure:"BIGO_METRICS_FILE" flag:"metrics-file"`
}

// ValidationError is returned by LoadConfig when the merged configuration is
// not acceptable. It is a usage error, like an unknown flag.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "Invalid configuration: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// viperBindConfig binds each field of the Configuration struct with its
// corresponding environment variable, and with its command line flag if any.
//
// This is necessary because of a bug in the Viper library. See viper's bug
// [188] for more information.
//
// [188]: https://github.com/spf13/viper/issues/188#issuecomment-1273983955
func viperBindConfig(v *viper.Viper, flags *cliflags.ParsedValues) error {
	var cfg Configuration

	t := reflect.TypeOf(cfg)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue // Skip field without mapstructure tag.
		}
		// Bind the environment variable.
		_ = v.BindEnv(tag, tag)

		flagName := field.Tag.Get("flag")
		if flagName == "" || flags == nil || flags.FlagSet == nil {
			continue
		}
		flag := flags.FlagSet.Lookup(flagName)
		if flag == nil {
			return errors.Errorf("No command line flag named %q for %s", flagName, tag)
		}
		if err := v.BindPFlag(tag, flag); err != nil {
			return errors.Wrap(err, "Error while binding the command line flag "+flagName)
		}
	}

	return nil
}

// LoadConfig reads the configuration from the command line flags and the
// environment variables, optionally completed with the .env file specified
// by the --config command line argument. The result is post-processed and
// validated.
func LoadConfig(flags *cliflags.ParsedValues) (config Configuration, err error) {
	v := viper.New()
	v.AllowEmptyEnv(true)

	if err = viperBindConfig(v, flags); err != nil {
		return
	}

	if flags != nil && flags.ConfigFile != "" {
		if _, statErr := os.Stat(flags.ConfigFile); statErr == nil {
			v.SetConfigFile(flags.ConfigFile)
			v.SetConfigType("env")

			if err = v.ReadInConfig(); err != nil {
				err = errors.Wrap(err, "Error while reading the .env file")
				return
			}
		} else if !os.IsNotExist(statErr) {
			// If error is not "file does not exist", return statErr
			err = errors.Wrap(statErr, "Error while checking the .env file")
			return
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		err = &ValidationError{Err: errors.Wrap(err, "Error while decoding the configuration")}
		return
	}

	config.postProcess()

	if err = Validate(config); err != nil {
		return
	}

	return
}

func (c *Configuration) postProcess() {
	c.Fast = c.Fast || c.FastEnv != ""
	c.Format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(c.Format), "."))
	c.OutDir = strings.TrimSpace(c.OutDir)
}

// Validate checks the configuration values, returning a *ValidationError
func Validate(config Configuration) error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(config); err != nil {
		return &ValidationError{Err: err}
	}

	return nil
}
