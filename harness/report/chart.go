// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

// Package report contains the sinks the measured series are written to: one
// growth chart per algorithm, the append-only CSV log, a table printed at the
// end of the run and an optional Markdown summary.
package report

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/bigo-lab/bigo/harness/logging"
	"github.com/bigo-lab/bigo/harness/measure"
)

// Chart size
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// ChartSink renders one chart per algorithm into OutDir.
type ChartSink struct {
	// Directory the charts are written to. Created if absent
	OutDir string
	// Image file extension, which also selects the encoder (png, svg, pdf, ...)
	Format string
}

// Path returns the file the chart of algorithm is written to
func (sink *ChartSink) Path(algorithm string) string {
	return filepath.Join(sink.OutDir, algorithm+"."+sink.Format)
}

// Write renders the chart of series (x: input size, y: seconds, a line with a
// marker on every sample) and saves it, overwriting any previous file. It
// returns the path of the written file.
func (sink *ChartSink) Write(series measure.Series) (string, error) {
	logger := logging.Logger()

	err := os.MkdirAll(sink.OutDir, 0755)
	if err != nil {
		return "", errors.Wrap(err, "Error while creating the charts output directory")
	}

	p := plot.New()
	p.Title.Text = "Runtime growth: " + series.Algorithm
	p.X.Label.Text = "n"
	p.Y.Label.Text = "seconds"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(series.Samples))
	for i, s := range series.Samples {
		pts[i].X = float64(s.N)
		pts[i].Y = s.Seconds
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", errors.Wrap(err, "Error while building the chart line for "+series.Algorithm)
	}
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)

	outPath := sink.Path(series.Algorithm)
	err = p.Save(chartWidth, chartHeight, outPath)
	if err != nil {
		return "", errors.Wrap(err, "Error while saving the chart to "+outPath)
	}

	logger.Info("Saved ", outPath)

	return outPath, nil
}
