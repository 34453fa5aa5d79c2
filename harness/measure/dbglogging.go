package measure

import (
	"strings"

	"github.com/bigo-lab/bigo/harness/catalog"
	"github.com/bigo-lab/bigo/harness/logging"
)

//////////////////// PRIVATE FUNCTIONS FOR LOGGING ////////////////////

func debugSchedule(desc catalog.Descriptor) {
	if !logging.GetDebugMode() {
		return
	}

	logger := logging.Logger()

	logger.Debugf("Measuring %s (%s), %d sizes, %d repeats per size:",
		desc.Name, desc.Class, len(desc.Sizes), desc.Repeats)
	for i, n := range desc.Sizes {
		logger.Debugf("  %d. n=%d", i+1, n)
	}
}

func debugSeries(series Series, cache *InputCache) {
	if !logging.GetDebugMode() {
		return
	}

	logger := logging.Logger()

	var b strings.Builder

	b.WriteString("Series " + series.Algorithm + ":")

	if len(series.Samples) == 0 {
		b.WriteString(" (empty)")
	}

	logger.Debug(b.String())
	for _, s := range series.Samples {
		logger.Debugf("  - n=%d: %.3f us/call", s.N, s.Seconds*1e6)
	}

	if cache.Len() > 0 {
		logger.Debugf("  %d inputs built once and reused across repeats", cache.Builds())
	}
}
