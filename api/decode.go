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

package api

import (
	"bytes"
	"encoding/json"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp/date"
	"github.com/stockparfait/fmp/table"
	"github.com/tidwall/gjson"
)

// Response is a decoded response body. Exactly one of JSON and Table is set;
// Raw is the body as received.
type Response struct {
	// JSON is a map[string]any for a single record, []any for a list, or a
	// non-empty scalar. Empty scalars are normalized to an empty []any.
	JSON  any
	Table *table.Table
	Raw   []byte
}

// Decode a response body. With expectTable the body must be CSV. Otherwise it
// is parsed as JSON, and if that fails, a body starting with '"' or ','
// and containing a ',' is tried as CSV. This sniffing rule is a heuristic: a
// CSV body not matching it is reported as an API failure.
func Decode(body []byte, expectTable bool) (*Response, error) {
	if expectTable {
		t, err := table.ParseCSV(bytes.NewReader(body))
		if err != nil {
			return nil, apiError(body, err, "invalid CSV response: %s...", snippet(body))
		}
		return &Response{Table: t, Raw: body}, nil
	}
	var v any
	jsonErr := json.Unmarshal(body, &v)
	if jsonErr == nil {
		if isEmptyScalar(v) {
			v = []any{}
		}
		return &Response{JSON: v, Raw: body}, nil
	}
	if looksLikeCSV(body) {
		if t, err := table.ParseCSV(bytes.NewReader(body)); err == nil {
			return &Response{Table: t, Raw: body}, nil
		}
	}
	return nil, apiError(body, jsonErr, "invalid JSON response: %s...", snippet(body))
}

func looksLikeCSV(body []byte) bool {
	if len(body) == 0 {
		return false
	}
	return (body[0] == '"' || body[0] == ',') && bytes.IndexByte(body, ',') >= 0
}

func isEmptyScalar(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return x == 0
	case bool:
		return !x
	}
	return false
}

// IsTable is true when the body was decoded as CSV.
func (r *Response) IsTable() bool { return r.Table != nil }

// ToTable returns the CSV table, or projects the JSON value into one. Columns
// follow the key order of the JSON text.
func (r *Response) ToTable() (*table.Table, error) {
	if r.Table != nil {
		return r.Table, nil
	}
	t, err := table.FromJSON(r.JSON, KeyOrder(r.Raw)...)
	if err != nil {
		return nil, apiError(r.Raw, err, "cannot project response into a table")
	}
	return t, nil
}

// Records returns the response as a list of records: the CSV rows, a single
// JSON object, or the objects of a JSON array.
func (r *Response) Records() ([]map[string]any, error) {
	t, err := r.ToTable()
	if err != nil {
		return nil, err
	}
	return t.Records(), nil
}

// Get queries the raw JSON body using gjson path syntax, e.g. "0.price" or
// "#.symbol". It returns a non-existent result for CSV bodies.
func (r *Response) Get(path string) gjson.Result {
	if !gjson.ValidBytes(r.Raw) {
		return gjson.Result{}
	}
	return gjson.GetBytes(r.Raw, path)
}

// Decode the JSON value into out, typically a pointer to a struct or a slice
// of structs with json field tags. Numeric strings convert to numbers and
// date strings to date.Date and time.Time fields.
func (r *Response) Decode(out any) error {
	var in any = r.JSON
	if r.Table != nil {
		in = r.Table.Records()
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       dateHook,
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           out,
	})
	if err != nil {
		return errors.Annotate(err, "failed to create decoder for %T", out)
	}
	if err := dec.Decode(in); err != nil {
		return apiError(r.Raw, err, "failed to decode response into %T", out)
	}
	return nil
}

var (
	dateType = reflect.TypeOf(date.Date{})
	timeType = reflect.TypeOf(time.Time{})
)

func dateHook(from, to reflect.Type, data any) (any, error) {
	if to != dateType && to != timeType {
		return data, nil
	}
	var t time.Time
	switch x := data.(type) {
	case string:
		if x == "" {
			break
		}
		var err error
		if t, err = date.ParseTimestamp(x); err != nil {
			return nil, err
		}
	case time.Time:
		t = x
	default:
		return data, nil
	}
	if to == dateType {
		if t.IsZero() {
			return date.Date{}, nil
		}
		return date.NewDateFromTime(t), nil
	}
	return t, nil
}

// KeyOrder lists the object keys of a JSON body in order of first appearance:
// the keys of a single object, or the union of the keys of the objects in an
// array.
func KeyOrder(raw []byte) []string {
	res := gjson.ParseBytes(raw)
	var keys []string
	seen := make(map[string]bool)
	collect := func(obj gjson.Result) {
		obj.ForEach(func(k, _ gjson.Result) bool {
			if !seen[k.String()] {
				seen[k.String()] = true
				keys = append(keys, k.String())
			}
			return true
		})
	}
	switch {
	case res.IsObject():
		collect(res)
	case res.IsArray():
		res.ForEach(func(_, v gjson.Result) bool {
			if v.IsObject() {
				collect(v)
			}
			return true
		})
	}
	return keys
}
