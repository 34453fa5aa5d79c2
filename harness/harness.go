// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package harness

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/bigo-lab/bigo/harness/catalog"
	"github.com/bigo-lab/bigo/harness/cliflags"
	"github.com/bigo-lab/bigo/harness/config"
	"github.com/bigo-lab/bigo/harness/logging"
	"github.com/bigo-lab/bigo/harness/measure"
	"github.com/bigo-lab/bigo/harness/metrics"
	"github.com/bigo-lab/bigo/harness/report"
	"github.com/bigo-lab/bigo/harness/selector"
)

//////////////////// PRIVATE FUNCTIONS ////////////////////

// resolveSelection turns the --only value into the sorted list of names to
// run. It runs before any measurement, so that a usage error leaves no output
// behind.
func resolveSelection(only string) ([]string, error) {
	requested, err := selector.Parse(only)
	if err != nil {
		return nil, errors.Wrap(err, "Error while reading the list of functions")
	}

	return selector.Resolve(requested, catalog.Names())
}

// newSummarySink returns nil if no summary was requested
func newSummarySink(cfg config.Configuration) (*report.SummarySink, error) {
	if cfg.SummaryPath == "" {
		return nil, nil
	}

	sink := report.NewSummarySink(cfg.SummaryPath)
	if cfg.SummaryTemplate != "" {
		if err := sink.LoadTemplate(cfg.SummaryTemplate); err != nil {
			return nil, err
		}
	}

	return sink, nil
}

//////////////////// PUBLIC FUNCTIONS ////////////////////

// Run measures the selected algorithms one after the other, feeding each
// series to the enabled sinks, and finally prints the results table to
// stdout. Measurement stops at the first failure.
func Run(cfg config.Configuration, stdout io.Writer) error {
	logger := logging.Logger()

	names, err := resolveSelection(cfg.Only)
	if err != nil {
		return err
	}

	summarySink, err := newSummarySink(cfg)
	if err != nil {
		return err
	}

	descriptors := catalog.Descriptors(cfg.Fast)
	recorder := metrics.NewRecorder()
	engine := measure.NewEngine(recorder)

	var chartSink *report.ChartSink
	if !cfg.NoCharts {
		chartSink = &report.ChartSink{OutDir: cfg.OutDir, Format: cfg.Format}
	}

	var csvSink *report.CSVSink
	if cfg.CSVPath != "" {
		csvSink = &report.CSVSink{Path: cfg.CSVPath}
	}

	logger.Debugf("Running %d functions (fast mode: %t): %v", len(names), cfg.Fast, names)

	allSeries := make([]measure.Series, 0, len(names))
	charts := map[string]string{}

	for _, name := range names {
		logger.Info("Measuring ", name)

		series, err := engine.Measure(descriptors[name])
		if err != nil {
			return errors.Wrap(err, "Error while measuring "+name)
		}
		allSeries = append(allSeries, series)

		if chartSink != nil {
			chartPath, err := chartSink.Write(series)
			if err != nil {
				return err
			}
			charts[name] = chartPath
		}

		if csvSink != nil {
			if err := csvSink.Append(series); err != nil {
				return err
			}
		}
	}

	if err := report.WriteTable(stdout, allSeries); err != nil {
		return err
	}

	if summarySink != nil {
		data, err := report.BuildSummaryData(allSeries, cfg.Fast, charts, time.Now())
		if err != nil {
			return err
		}
		if err := summarySink.Write(data); err != nil {
			return err
		}
	}

	if cfg.MetricsFile != "" {
		if err := recorder.WriteTextfile(cfg.MetricsFile); err != nil {
			return err
		}
		logger.Info("Saved ", cfg.MetricsFile)
	}

	return nil
}

// IsUsageError reports whether err is caused by a bad invocation rather than
// by a failure while measuring or writing the results
func IsUsageError(err error) bool {
	var usageErr *selector.UsageError
	var validationErr *config.ValidationError

	return errors.As(err, &usageErr) || errors.As(err, &validationErr)
}

// Main is the main function of the harness
func Main() {
	prog := filepath.Base(os.Args[0])

	flags, err := cliflags.Parse(prog, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cliflags.PrintUsage(os.Stderr, prog)
		os.Exit(2)
	}

	if flags.ShowHelp {
		cliflags.PrintUsage(os.Stdout, prog)
		os.Exit(0)
	}

	// Load configuration.
	_config, err := config.LoadConfig(flags)
	if err != nil {
		if IsUsageError(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}

	// Setup logging engine.
	logger, err := logging.Initialize(_config.DateTime, _config.DebugMode, _config.LogColors)
	if err != nil {
		log.Fatal(err)
	}

	// Run harness.
	logger.Debugf("Running harness with configuration: %+v", _config)
	if err := Run(_config, os.Stdout); err != nil {
		if IsUsageError(err) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		logger.Fatal(err)
	}
}
