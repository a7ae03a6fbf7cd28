// Package table renders records as aligned text tables.
package table

import (
	"errors"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes rows to w as a left-aligned table.
//
// Column order follows headers. Rows are name-to-value maps; a field absent
// from a row renders as an empty cell, never an error. An empty header list
// is rejected for any rows, including none.
func Render(w io.Writer, headers []string, rows []map[string]string) error {
	if len(headers) == 0 {
		return errors.New("headers list is empty, can't print the table")
	}

	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i] = row[h]
		}
		t.Append(cells)
	}

	t.Render()
	return nil
}
