package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Separator joins the cells of a row.
const Separator = " | "

// Writer renders pipe-delimited tables with a dashed rule under the header row.
//
//	id | name
//	-- | -----------
//	1  | Engineering
//
// Column widths grow to fit the widest cell; nothing is ever truncated.
// Cell values containing Separator are written as-is, which misaligns that row.
type Writer struct {
	// headers contains the column labels, in display order
	headers []string
	// rows contains the table data rows
	rows [][]string
	// columnWidths tracks the display width of each column
	columnWidths []int
	// output is the writer to output to
	output io.Writer
}

// NewWriter creates a table writer that renders to output.
func NewWriter(output io.Writer) *Writer {
	return &Writer{
		headers:      []string{},
		rows:         [][]string{},
		columnWidths: []int{},
		output:       output,
	}
}

// SetHeaders sets the column labels and resets the widths to the label widths.
func (w *Writer) SetHeaders(headers []string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		w.headers[i] = h
		w.columnWidths[i] = runewidth.StringWidth(h)
	}
}

// AppendRow adds a row of already stringified cells.
func (w *Writer) AppendRow(row []string) {
	// Ensure row has same number of columns as headers
	normalizedRow := make([]string, len(w.headers))
	for i := range w.headers {
		if i < len(row) {
			normalizedRow[i] = row[i]
			if width := runewidth.StringWidth(row[i]); width > w.columnWidths[i] {
				w.columnWidths[i] = width
			}
		}
	}
	w.rows = append(w.rows, normalizedRow)
}

// AppendRecord adds a record, picking its values by header name.
// Fields missing from the record render as empty cells.
func (w *Writer) AppendRecord(rec Record) {
	row := make([]string, len(w.headers))
	for i, h := range w.headers {
		v, _ := rec.Get(h)
		row[i] = Stringify(v)
	}
	w.AppendRow(row)
}

// ColumnWidths returns a copy of the current column widths.
func (w *Writer) ColumnWidths() []int {
	out := make([]int, len(w.columnWidths))
	copy(out, w.columnWidths)
	return out
}

// Render writes the header row, the dashed rule and every data row.
// A writer without headers renders nothing.
func (w *Writer) Render() error {
	if len(w.headers) == 0 {
		return nil
	}

	if err := w.printRow(w.headers); err != nil {
		return err
	}

	rule := make([]string, len(w.columnWidths))
	for i, width := range w.columnWidths {
		rule[i] = strings.Repeat("-", width)
	}
	if err := w.printRow(rule); err != nil {
		return err
	}

	for _, row := range w.rows {
		if err := w.printRow(row); err != nil {
			return err
		}
	}
	return nil
}

// printRow pads every cell to its column width and joins them with Separator.
func (w *Writer) printRow(row []string) error {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = runewidth.FillRight(cell, w.columnWidths[i])
	}
	_, err := fmt.Fprintln(w.output, strings.Join(cells, Separator))
	return err
}

// Render formats records as a table on output. The columns are the field names
// of the first record. An empty slice produces no output.
func Render(output io.Writer, records []Record) error {
	if len(records) == 0 {
		return nil
	}

	tw := NewWriter(output)
	tw.SetHeaders(records[0].Names())
	for _, rec := range records {
		tw.AppendRecord(rec)
	}
	return tw.Render()
}
