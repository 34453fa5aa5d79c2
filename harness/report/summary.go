// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright 2025 The BigO Authors. All rights reserved.
// This file is licensed under the AGPL v3.0 or later license. See LICENSE and
// AUTHORS file for more information.

package report

import (
	"os"
	"path"
	"path/filepath"
	"text/template"
	"time"

	"github.com/Masterminds/sprig"
	"github.com/pkg/errors"

	"github.com/bigo-lab/bigo/harness/logging"
	"github.com/bigo-lab/bigo/harness/measure"
)

// defaultSummaryTemplate is used when no template file is given
const defaultSummaryTemplate = `# Runtime growth report

Generated: {{ .GeneratedAt | date "2006-01-02 15:04:05" }}
Mode: {{ if .Fast }}fast{{ else }}full{{ end }}
Algorithms: {{ .Names | join ", " }}

{{ range .Entries -}}
## {{ .Series.Algorithm }} ({{ .Series.Class }})

- samples: {{ len .Series.Samples }}, repeats per sample: {{ .Series.Repeats }}
- time growth from smallest to largest n: {{ printf "%.2f" .Growth }}x
- chart: {{ .Chart | default "not rendered" }}

{{ end -}}
## All samples

{{ .Table }}
`

// SummaryEntry is the data of one algorithm in the summary
type SummaryEntry struct {
	Series measure.Series
	// Last sample time divided by the first one, 0 if not computable
	Growth float64
	// Path of the chart, empty if charts were not rendered
	Chart string
}

// SummaryData is the data the summary template is applied to
type SummaryData struct {
	GeneratedAt time.Time
	Fast        bool
	Names       []string
	Entries     []SummaryEntry
	Table       string
}

// SummarySink writes a Markdown report of the whole run from a template
type SummarySink struct {
	// Loaded template to use for writing the summary
	template *template.Template

	// Path of the summary file to write
	Path string
}

// NewSummarySink returns a sink using the built-in template
func NewSummarySink(outPath string) *SummarySink {
	tmpl := template.Must(template.New("summary").Funcs(sprig.TxtFuncMap()).Parse(defaultSummaryTemplate))
	return &SummarySink{template: tmpl, Path: outPath}
}

// LoadTemplate loads the template from file
func (sink *SummarySink) LoadTemplate(templateFilePath string) error {
	tmpl := template.New(path.Base(templateFilePath)) // Create new empty template
	tmpl = tmpl.Funcs(sprig.TxtFuncMap())             // Add sprig functions
	tmpl, err := tmpl.ParseFiles(templateFilePath)    // Parse the template file
	if err != nil {
		return errors.Wrap(err, "Error while loading the summary template from file")
	}

	sink.template = tmpl

	return nil
}

// BuildSummaryData collects the template data for the given series. charts
// maps algorithm names to chart paths and can be nil.
func BuildSummaryData(series []measure.Series, fast bool, charts map[string]string, now time.Time) (SummaryData, error) {
	table, err := FormatTable(series)
	if err != nil {
		return SummaryData{}, err
	}

	data := SummaryData{
		GeneratedAt: now,
		Fast:        fast,
		Names:       make([]string, 0, len(series)),
		Entries:     make([]SummaryEntry, 0, len(series)),
		Table:       table,
	}

	for _, ser := range series {
		data.Names = append(data.Names, ser.Algorithm)
		data.Entries = append(data.Entries, SummaryEntry{
			Series: ser,
			Growth: growth(ser),
			Chart:  charts[ser.Algorithm],
		})
	}

	return data, nil
}

// Write applies the template to data and writes the result to sink.Path,
// overwriting it
func (sink *SummarySink) Write(data SummaryData) error {
	logger := logging.Logger()

	if dir := filepath.Dir(sink.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "Error while creating the summary parent directory")
		}
	}

	f, err := os.Create(sink.Path)
	if err != nil {
		return errors.Wrap(err, "Error while opening the summary file for writing")
	}
	defer f.Close()

	err = sink.template.Execute(f, data)
	if err != nil {
		return errors.Wrap(err, "Error while applying the summary template to the data")
	}

	logger.Info("Saved ", sink.Path)

	return nil
}

func growth(series measure.Series) float64 {
	if len(series.Samples) < 2 {
		return 0
	}

	first := series.Samples[0].Seconds
	last := series.Samples[len(series.Samples)-1].Seconds
	if first <= 0 {
		return 0
	}

	return last / first
}
