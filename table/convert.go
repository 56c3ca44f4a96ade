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
	"io"
	"strconv"
	"strings"

	"github.com/stockparfait/errors"
)

// FromJSON projects a decoded JSON value into a table. A single object
// becomes a one-row table. An array of objects becomes one row per object,
// with the columns being the union of the keys in the order of their first
// appearance; keys missing from an object leave nil cells. An empty array
// yields an empty table. Any other value is rejected.
//
// Decoded Go maps don't retain the key order of the JSON text, so the caller
// may supply the column order in the optional order argument (see
// api.KeyOrder). Keys not listed there follow in alphabetical order of each
// record.
func FromJSON(v any, order ...string) (*Table, error) {
	switch x := v.(type) {
	case map[string]any:
		return fromRecords([]map[string]any{x}, order), nil
	case []map[string]any:
		return fromRecords(x, order), nil
	case []any:
		records := make([]map[string]any, len(x))
		for i, e := range x {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, errors.Reason("element %d is %T, not an object", i, e)
			}
			records[i] = m
		}
		return fromRecords(records, order), nil
	default:
		return nil, errors.Reason("cannot convert %T to a table: expected an object or an array of objects", v)
	}
}

func fromRecords(records []map[string]any, order []string) *Table {
	t := NewTable()
	index := make(map[string]int)
	add := func(k string) {
		if _, ok := index[k]; !ok {
			index[k] = len(t.Header)
			t.Header = append(t.Header, k)
		}
	}
	for _, k := range order {
		for _, r := range records {
			if _, ok := r[k]; ok {
				add(k)
				break
			}
		}
	}
	for _, r := range records {
		for _, k := range sortedKeys(r) {
			add(k)
		}
	}
	for _, r := range records {
		row := make(Row, len(t.Header))
		for k, v := range r {
			row[index[k]] = v
		}
		t.AddRow(row)
	}
	return t
}

// Concat stacks the rows of the tables into a new table. Its header is the
// union of the headers in the order of first appearance; cells of columns
// missing from a table are nil.
func Concat(tables ...*Table) *Table {
	res := NewTable()
	index := make(map[string]int)
	for _, t := range tables {
		for _, h := range t.Header {
			if _, ok := index[h]; !ok {
				index[h] = len(res.Header)
				res.Header = append(res.Header, h)
			}
		}
	}
	for _, t := range tables {
		for _, r := range t.Rows {
			row := make(Row, len(res.Header))
			for j, v := range r {
				if j < len(t.Header) {
					row[index[t.Header[j]]] = v
				}
			}
			res.AddRow(row)
		}
	}
	return res
}

// ParseCSV parses delimiter-separated text with a header row. Each column
// whose non-empty cells all parse as numbers is converted to float64; empty
// cells become nil. Rows shorter than the header are padded with nil cells,
// and longer rows are an error.
func ParseCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Reason("no columns to parse")
	}
	if err != nil {
		return nil, errors.Annotate(err, "failed to read CSV header")
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	t := NewTable(header...)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Annotate(err, "failed to read CSV row %d", t.Len()+1)
		}
		if len(rec) > len(header) {
			return nil, errors.Reason("CSV row %d has %d fields, expected at most %d",
				t.Len()+1, len(rec), len(header))
		}
		row := make(Row, len(header))
		for i, s := range rec {
			if s != "" {
				row[i] = s
			}
		}
		t.AddRow(row)
	}
	for j := range t.Header {
		if numericColumn(t, j) {
			for _, r := range t.Rows {
				if s, ok := r[j].(string); ok {
					r[j], _ = strconv.ParseFloat(s, 64)
				}
			}
		}
	}
	return t, nil
}

// ParseCSVString is ParseCSV over a string.
func ParseCSVString(s string) (*Table, error) {
	return ParseCSV(strings.NewReader(s))
}

func numericColumn(t *Table, j int) bool {
	seen := false
	for _, r := range t.Rows {
		s, ok := r[j].(string)
		if !ok {
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return false
		}
		seen = true
	}
	return seen
}
