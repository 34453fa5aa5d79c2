package cliflags

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/bigo-lab/bigo/harness/constants"
)

// This package is for parsing the harness' CLI flags

// We use the "github.com/spf13/pflag" library instead of the default Go "flag"
// library, because we want POSIX/GNU-style --flags

// Flag names. The config package binds each of them to an environment variable
const (
	FlagFast            = "fast"
	FlagOnly            = "only"
	FlagOutDir          = "outdir"
	FlagFormat          = "format"
	FlagNoCharts        = "no-charts"
	FlagCSV             = "csv"
	FlagSummary         = "summary"
	FlagSummaryTemplate = "summary-template"
	FlagMetricsFile     = "metrics-file"
	FlagDebug           = "debug"
	FlagDateTime        = "datetime"
	FlagColors          = "colors"
)

// ParsedValues holds the result of parsing the command line
type ParsedValues struct {
	// The parsed flag set. Values are read through it by the config package,
	// so that only explicitly set flags override environment variables
	FlagSet *pflag.FlagSet

	// Path to an optional .env file
	ConfigFile string

	ShowHelp bool
}

func newFlagSet(name string) (*pflag.FlagSet, *string, *bool) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false

	// Errors are returned to the caller, which prints them along with the usage
	fs.SetOutput(io.Discard)

	descrOnly := "Comma-separated list of function names to include. Can be one of the following:\n"
	descrOnly += "  - inline comma-separated list:            \"linear_sum,merge_sort\"\n"
	descrOnly += "  - txt file path (newline-separated list): \"file:./only.txt\"\n"
	descrOnly += "  - empty:                                  all functions"

	fs.BoolP(FlagFast, "f", false, "Use smaller input sizes. Setting the FAST environment variable to any non-empty value does the same")
	fs.StringP(FlagOnly, "o", "", descrOnly)
	fs.StringP(FlagOutDir, "d", constants.DefaultOutDir, "Directory to save the charts to. Created if missing")
	fs.String(FlagFormat, constants.DefaultChartFormat, "Chart image format (png, svg, pdf, jpg, jpeg, tif, tiff)")
	fs.Bool(FlagNoCharts, false, "Do not render the charts")
	fs.String(FlagCSV, "", "Optional path to append timing results as CSV")
	fs.String(FlagSummary, "", "Optional path to write a Markdown summary of the run to")
	fs.String(FlagSummaryTemplate, "", "Optional text/template file used for the summary instead of the built-in one")
	fs.String(FlagMetricsFile, "", "Optional path to write Prometheus metrics of the run to (textfile collector format)")

	fs.BoolP(FlagDebug, "v", false, "Enable debug/verbose mode")
	fs.BoolP(FlagDateTime, "t", false, "Enable date and time in logging")
	fs.BoolP(FlagColors, "c", false, "Enable colored logging levels")

	configFile := fs.String("config", "", "Path to .env file with values for the environment variables")
	showHelp := fs.BoolP("help", "h", false, "Shows the help message")

	return fs, configFile, showHelp
}

// Parse parses args (without the program name)
func Parse(name string, args []string) (*ParsedValues, error) {
	fs, configFile, showHelp := newFlagSet(name)

	err := fs.Parse(args)
	if err != nil {
		return nil, errors.Wrap(err, "Error while parsing the command line")
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("Unexpected arguments: %v", fs.Args())
	}

	return &ParsedValues{
		FlagSet:    fs,
		ConfigFile: *configFile,
		ShowHelp:   *showHelp,
	}, nil
}

// PrintUsage writes the help message to w
func PrintUsage(w io.Writer, name string) {
	fs, _, _ := newFlagSet(name)

	fmt.Fprintln(w, "BigO runtime growth harness")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage: %s [flags]\n", name)
	fmt.Fprintln(w)
	fmt.Fprint(w, fs.FlagUsages())
}
