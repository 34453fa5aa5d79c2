// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"github.com/bigo-lab/bigo/harness/constants"
	"github.com/bigo-lab/bigo/harness/logging"
	"github.com/bigo-lab/bigo/harness/measure"
)

// CSVSink appends timing rows to a CSV file. Only one writer is expected at a
// time.
type CSVSink struct {
	Path string
}

// Append appends one row per sample of series. If the file does not exist, or
// is empty, the header row is written first.
func (sink *CSVSink) Append(series measure.Series) error {
	logger := logging.Logger()

	if dir := filepath.Dir(sink.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "Error while creating the CSV parent directory")
		}
	}

	file, err := os.OpenFile(sink.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "Error while opening the CSV file for appending")
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return errors.Wrap(err, "Error while reading the CSV file info")
	}

	writer := csv.NewWriter(file)

	if stat.Size() == 0 {
		if err = writer.Write(constants.CSVHeader); err != nil {
			return errors.Wrap(err, "Error while writing the CSV header")
		}
	}

	for _, s := range series.Samples {
		row := []string{
			s.Algorithm,
			strconv.Itoa(s.N),
			strconv.FormatFloat(s.Seconds, 'g', -1, 64),
		}
		if err = writer.Write(row); err != nil {
			return errors.Wrap(err, "Error while writing a CSV row")
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return errors.Wrap(err, "Error while flushing the CSV file")
	}

	logger.Debugf("Appended %d rows for %s to %s", len(series.Samples), series.Algorithm, sink.Path)

	return nil
}
