// Copyright 2022 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bndr/gotabulate"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp/date"
)

// Row is a single table row. Cells are nil (missing), string, float64, bool,
// time.Time, or a nested JSON value (map[string]any, []any).
type Row []any

// CSV is an encoding/csv compatible row representation.
func (r Row) CSV() []string {
	res := make([]string, len(r))
	for i, v := range r {
		res[i] = FormatValue(v)
	}
	return res
}

// FormatValue renders a cell value as a string.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(date.Layout)
		}
		return x.Format("2006-01-02 15:04:05")
	case map[string]any, []any:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(b)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Table container with named columns.
//
// A typical use:
//   t := NewTable("symbol", "price")
//   t.AddRow(Row{"AAPL", 190.5}, Row{"MSFT", 410.0})
//   price, ok := t.Value(0, "price")
//
// Every row is expected to have exactly len(Header) cells.
type Table struct {
	Header []string
	Rows   []Row
}

// NewTable creates a new Table instance with the given column names.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Len is the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Width is the number of columns.
func (t *Table) Width() int { return len(t.Header) }

// Column returns the index of the named column, or -1 if it doesn't exist.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Value returns the cell in row i under the named column. The second value is
// false when either the row or the column doesn't exist.
func (t *Table) Value(i int, column string) (any, bool) {
	j := t.Column(column)
	if j < 0 || i < 0 || i >= len(t.Rows) || j >= len(t.Rows[i]) {
		return nil, false
	}
	return t.Rows[i][j], true
}

// Records converts the table back to a slice of JSON-like records. Nil cells
// are omitted from the records.
func (t *Table) Records() []map[string]any {
	res := make([]map[string]any, len(t.Rows))
	for i, r := range t.Rows {
		m := make(map[string]any)
		for j, h := range t.Header {
			if j < len(r) && r[j] != nil {
				m[h] = r[j]
			}
		}
		res[i] = m
	}
	return res
}

// ParseDates converts string cells in the named columns to time.Time. Columns
// absent from the table and nil or empty cells are skipped.
func (t *Table) ParseDates(columns ...string) error {
	for _, c := range columns {
		j := t.Column(c)
		if j < 0 {
			continue
		}
		for i, r := range t.Rows {
			s, ok := r[j].(string)
			if !ok || s == "" {
				continue
			}
			tm, err := date.ParseTimestamp(s)
			if err != nil {
				return errors.Annotate(err, "column '%s', row %d", c, i)
			}
			r[j] = tm
		}
	}
	return nil
}

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to print the header, default - yes
	MaxColWidth int  // for WriteText only; 0 = unlimited, otherwise must be >= 4
}

// WriteCSV writes the entire table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	cw := csv.NewWriter(w)
	if !p.NoHeader && len(t.Header) > 0 {
		if err := cw.Write(t.Header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		if err := cw.Write(r.CSV()); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// WriteText writes the table as a text formatted for ease of reading.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	var widths []int
	update := func(row []string) error {
		if len(row) == 0 {
			return errors.Reason("row size = 0")
		}
		if len(widths) == 0 {
			widths = make([]int, len(row))
		}
		if len(row) != len(widths) {
			return errors.Reason("row size [%d] != expected size [%d]",
				len(row), len(widths))
		}
		for i := range widths {
			if l := len([]rune(row[i])); widths[i] < l {
				widths[i] = l
				if p.MaxColWidth > 0 && widths[i] > p.MaxColWidth {
					widths[i] = p.MaxColWidth
				}
			}
		}
		return nil
	}

	write := func(row []string) error {
		trimmed := make([]string, len(row))
		for i, s := range row {
			trimmed[i] = s
			if len([]rune(s)) > widths[i] {
				r := []rune(s)[:widths[i]-2]
				trimmed[i] = string(r) + ".."
			}
			trimmed[i] = fmt.Sprintf("%[2]*[1]s", trimmed[i], widths[i])
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.Join(trimmed, " | "))
		return err
	}

	dashedRow := func() []string {
		row := make([]string, len(widths))
		for i, w := range widths {
			row[i] = strings.Repeat("-", w)
		}
		return row
	}

	if !p.NoHeader && len(t.Header) > 0 {
		if err := update(t.Header); err != nil {
			return errors.Annotate(err, "failed to update header widths")
		}
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		if err := update(r.CSV()); err != nil {
			return errors.Annotate(err, "failed to update row widths")
		}
	}

	if !p.NoHeader && len(t.Header) > 0 {
		if err := write(t.Header); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
		if err := write(dashedRow()); err != nil {
			return errors.Annotate(err, "failed to write header separator")
		}
	}
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		if err := write(r.CSV()); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}

// Render formats the table as a grid using one of the gotabulate formats
// ("grid", "simple", "plain"). An empty table renders as an empty string.
func (t *Table) Render(format string, p Params) string {
	if len(t.Rows) == 0 {
		return ""
	}
	var rows [][]string
	for i, r := range t.Rows {
		if p.Rows > 0 && i >= p.Rows {
			break
		}
		rows = append(rows, r.CSV())
	}
	tab := gotabulate.Create(rows)
	if !p.NoHeader {
		tab.SetHeaders(t.Header)
	}
	tab.SetAlign("left")
	if p.MaxColWidth > 0 {
		tab.SetWrapStrings(true)
		tab.SetMaxCellSize(p.MaxColWidth)
	}
	return tab.Render(format)
}
