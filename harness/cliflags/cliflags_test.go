package cliflags

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	ass := require.New(t)

	vals, err := Parse("bigo", []string{"--fast", "-o", "linear_sum,fib_exp", "--csv=out.csv", "--config", "my.env"})
	ass.NoError(err)
	ass.False(vals.ShowHelp)
	ass.Equal("my.env", vals.ConfigFile)

	fast, err := vals.FlagSet.GetBool(FlagFast)
	ass.NoError(err)
	ass.True(fast)
	ass.True(vals.FlagSet.Changed(FlagFast))

	only, err := vals.FlagSet.GetString(FlagOnly)
	ass.NoError(err)
	ass.Equal("linear_sum,fib_exp", only)

	// Defaults are available but not marked as changed
	outDir, err := vals.FlagSet.GetString(FlagOutDir)
	ass.NoError(err)
	ass.Equal("plots", outDir)
	ass.False(vals.FlagSet.Changed(FlagOutDir))
}

func TestParseHelp(t *testing.T) {
	vals, err := Parse("bigo", []string{"-h"})
	require.NoError(t, err)
	require.True(t, vals.ShowHelp)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("bigo", []string{"--no-such-flag"})
	require.Error(t, err)

	_, err = Parse("bigo", []string{"stray"})
	require.Error(t, err)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	PrintUsage(&buf, "bigo")

	out := buf.String()
	require.Contains(t, out, "Usage: bigo [flags]")
	require.Contains(t, out, "--fast")
	require.Contains(t, out, "--metrics-file")
	require.Contains(t, out, "file:./only.txt")
}
