package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const tablePadding = 2

// writeTable prints an aligned table. Header names are given in lowercase
// and uppercased on output.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', 0)
	if len(headers) > 0 {
		upper := make([]string, len(headers))
		for i, header := range headers {
			upper[i] = strings.ToUpper(header)
		}
		fmt.Fprintln(writer, strings.Join(upper, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// orDash substitutes a dash for empty cell values.
func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
