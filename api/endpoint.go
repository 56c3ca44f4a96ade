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
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// ParamKind determines how an endpoint parameter is validated and rendered.
type ParamKind int

// Values of ParamKind.
const (
	String  ParamKind = iota
	Symbols           // a symbol or a list of symbols, sent comma-separated
	Date              // YYYY-MM-DD
	Int
	Float
	Bool
)

func (k ParamKind) String() string {
	switch k {
	case String:
		return "string"
	case Symbols:
		return "symbols"
	case Date:
		return "date"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	}
	return "unknown"
}

// Param declares a query parameter of an endpoint.
type Param struct {
	Name     string
	Kind     ParamKind
	Required bool
	Default  any // sent when the argument is unset; nil = not sent
}

// Endpoint declares a remote endpoint: its path, parameters and the columns
// converted to time.Time in the tabular form.
type Endpoint struct {
	Group       string // facade group, e.g. "quote"
	Name        string // method name within the group, e.g. "real-time"
	Path        string // relative to the base URL
	Doc         string
	Params      []Param
	DateColumns []string
	CSV         bool // the endpoint returns CSV
}

// FullName is "group.name", the identifier used by Lookup.
func (e *Endpoint) FullName() string { return e.Group + "." + e.Name }

// Param returns the declared parameter by name.
func (e *Endpoint) Param(name string) (Param, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Normalize validates args against the declared parameters and renders them
// as strings: dates as YYYY-MM-DD, symbol lists comma-joined. Unset optional
// arguments are dropped, defaults are applied, and a missing required or an
// undeclared argument is a ValidationFailure.
func (e *Endpoint) Normalize(args Args) (Args, error) {
	for _, k := range args.Keys() {
		if _, ok := e.Param(k); !ok {
			return nil, validationError("%s: unknown parameter '%s'", e.FullName(), k)
		}
	}
	res := make(Args, len(e.Params))
	for _, p := range e.Params {
		v := args[p.Name]
		if isUnset(v) {
			v = p.Default
		}
		if isUnset(v) {
			if p.Required {
				return nil, validationError("%s: missing required parameter '%s'", e.FullName(), p.Name)
			}
			continue
		}
		s, err := p.format(v)
		if err != nil {
			return nil, &Error{Kind: ValidationFailure,
				Err: errors.Annotate(err, "%s: parameter '%s'", e.FullName(), p.Name)}
		}
		// An empty rendering, e.g. of an empty []any symbol list, is unset too.
		if s == "" {
			if p.Required {
				return nil, validationError("%s: missing required parameter '%s'", e.FullName(), p.Name)
			}
			continue
		}
		res[p.Name] = s
	}
	return res, nil
}

func isUnset(v any) bool {
	_, ok, err := argString(v)
	return err == nil && !ok
}

func (p Param) format(v any) (string, error) {
	switch p.Kind {
	case Date:
		return FormatDate(v)
	case Symbols:
		return JoinSymbols(v)
	case Int:
		if s, ok := v.(string); ok {
			if _, err := strconv.ParseInt(s, 10, 64); err != nil {
				return "", validationError("'%s' is not an integer", s)
			}
			return s, nil
		}
		switch v.(type) {
		case int, int32, int64, uint, uint16, uint32, uint64:
		default:
			return "", validationError("expected an integer, got %T", v)
		}
	case Float:
		if s, ok := v.(string); ok {
			if _, err := strconv.ParseFloat(s, 64); err != nil {
				return "", validationError("'%s' is not a number", s)
			}
			return s, nil
		}
		switch v.(type) {
		case float64, float32, int, int32, int64, uint, uint16, uint32, uint64:
		default:
			return "", validationError("expected a number, got %T", v)
		}
	case Bool:
		if s, ok := v.(string); ok {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return "", validationError("'%s' is not a boolean", s)
			}
			return strconv.FormatBool(b), nil
		}
		if _, ok := v.(bool); !ok {
			return "", validationError("expected a boolean, got %T", v)
		}
	}
	s, _, err := argString(v)
	if err != nil {
		return "", validationError("%s", err.Error())
	}
	return s, nil
}

// Call performs exactly one request to the endpoint with the normalized args.
// With asTable the result is projected into a table, and its DateColumns are
// parsed into time.Time; a body that cannot be projected or a malformed date
// cell is an APIFailure. CSV endpoints always return a table.
func (c *Client) Call(ctx context.Context, e *Endpoint, args Args, asTable bool) (*Response, error) {
	norm, err := e.Normalize(args)
	if err != nil {
		return nil, err
	}
	res, err := c.Execute(ctx, &Request{Path: e.Path, Args: norm, Table: e.CSV})
	if err != nil {
		return nil, err
	}
	if !asTable {
		return res, nil
	}
	t, err := res.ToTable()
	if err != nil {
		return nil, err
	}
	if err := t.ParseDates(e.DateColumns...); err != nil {
		return nil, apiError(res.Raw, err, "%s: invalid date column", e.FullName())
	}
	logging.Debugf(ctx, "FMP: %s returned %d rows", e.FullName(), t.Len())
	return &Response{Table: t, Raw: res.Raw}, nil
}

// Endpoints is a list of endpoint declarations of one API generation.
type Endpoints []*Endpoint

// Lookup an endpoint by its full name "group.name".
func (es Endpoints) Lookup(name string) (*Endpoint, bool) {
	for _, e := range es {
		if e.FullName() == name {
			return e, true
		}
	}
	return nil, false
}

// Group returns the endpoints of the group, in declaration order.
func (es Endpoints) Group(group string) Endpoints {
	var res Endpoints
	for _, e := range es {
		if e.Group == group {
			res = append(res, e)
		}
	}
	return res
}

// Groups lists the distinct group names in sorted order.
func (es Endpoints) Groups() []string {
	seen := make(map[string]bool)
	var res []string
	for _, e := range es {
		if !seen[e.Group] {
			seen[e.Group] = true
			res = append(res, e.Group)
		}
	}
	sort.Strings(res)
	return res
}

// Usage is a one-line description of the endpoint parameters, e.g.
// "symbol* period=annual limit". Required parameters are starred.
func (e *Endpoint) Usage() string {
	var parts []string
	for _, p := range e.Params {
		s := p.Name
		if p.Required {
			s += "*"
		}
		if p.Default != nil {
			d, _, _ := argString(p.Default)
			s += "=" + d
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
