package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fbiville/markdown-table-formatter/pkg/markdown"
	"github.com/pkg/errors"

	"github.com/bigo-lab/bigo/harness/measure"
)

var tableHeaders = []string{"function", "class", "n", "seconds", "repeats"}

// FormatTable renders all samples of all series as a Markdown table, one row
// per sample, in the given series order.
func FormatTable(series []measure.Series) (string, error) {
	tableFormatter := markdown.NewTableFormatterBuilder().
		WithPrettyPrint().
		Build(tableHeaders...)

	rows := make([][]string, 0)
	for _, ser := range series {
		for _, s := range ser.Samples {
			rows = append(rows, []string{
				ser.Algorithm,
				ser.Class,
				strconv.Itoa(s.N),
				fmt.Sprintf("%.9f", s.Seconds),
				strconv.Itoa(ser.Repeats),
			})
		}
	}

	formatted, err := tableFormatter.Format(rows)
	if err != nil {
		return "", errors.Wrap(err, "Error while formatting the results table")
	}

	return formatted, nil
}

// WriteTable writes the table of FormatTable to w
func WriteTable(w io.Writer, series []measure.Series) error {
	formatted, err := FormatTable(series)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, formatted+"\n")
	if err != nil {
		return errors.Wrap(err, "Error while printing the results table")
	}

	return nil
}
