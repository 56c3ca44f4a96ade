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
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp/date"
	"golang.org/x/exp/maps"
)

// Args are the query parameters of a request. Values may be strings, string
// slices (joined with commas), numbers, booleans, date.Date or time.Time.
// Unset values (nil, "", empty slices, zero dates) are not sent. Zero numbers
// are sent.
type Args map[string]any

// Keys of the arguments in sorted order.
func (a Args) Keys() []string {
	keys := maps.Keys(a)
	sort.Strings(keys)
	return keys
}

// Values renders the arguments as query values, dropping the unset ones. An
// argument of an unsupported type is a ValidationFailure.
func (a Args) Values() (url.Values, error) {
	v := make(url.Values, len(a))
	for _, k := range a.Keys() {
		s, ok, err := argString(a[k])
		if err != nil {
			return nil, &Error{Kind: ValidationFailure, Err: errors.Annotate(err, "argument '%s'", k)}
		}
		if ok {
			v.Set(k, s)
		}
	}
	return v, nil
}

// argString renders a single argument. It returns false for an unset value.
func argString(x any) (string, bool, error) {
	switch v := x.(type) {
	case nil:
		return "", false, nil
	case string:
		return v, v != "", nil
	case []string:
		if len(v) == 0 {
			return "", false, nil
		}
		s, err := JoinSymbols(v)
		return s, true, err
	case date.Date:
		if v.IsZero() {
			return "", false, nil
		}
		return v.String(), true, nil
	case *date.Date:
		if v == nil || v.IsZero() {
			return "", false, nil
		}
		return v.String(), true, nil
	case time.Time:
		if v.IsZero() {
			return "", false, nil
		}
		return v.Format(date.Layout), true, nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return "", false, nil
		}
		return v.Format(date.Layout), true, nil
	case int:
		return strconv.Itoa(v), true, nil
	case int32:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true, nil
	case bool:
		return strconv.FormatBool(v), true, nil
	case fmt.Stringer:
		return v.String(), true, nil
	}
	return "", false, errors.Reason("unsupported type %T", x)
}

// FormatDate normalizes a date argument to YYYY-MM-DD. A string must already
// be a valid date in that format; time.Time and date.Date values are
// formatted. Anything else is a ValidationFailure.
func FormatDate(v any) (string, error) {
	switch x := v.(type) {
	case string:
		if _, err := date.NewDateFromString(x); err != nil {
			return "", validationError("invalid date '%s': expected YYYY-MM-DD", x)
		}
		return x, nil
	case date.Date:
		return x.String(), nil
	case *date.Date:
		if x != nil {
			return x.String(), nil
		}
	case time.Time:
		return x.Format(date.Layout), nil
	case *time.Time:
		if x != nil {
			return x.Format(date.Layout), nil
		}
	}
	return "", validationError("date must be a string, time.Time or date.Date, got %T", v)
}

// JoinSymbols normalizes a symbol list argument: a string is kept as is, and
// a list of strings is joined with commas. Anything else is a
// ValidationFailure.
func JoinSymbols(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []string:
		return strings.Join(x, ","), nil
	case []any:
		s := make([]string, len(x))
		for i, e := range x {
			str, ok := e.(string)
			if !ok {
				return "", validationError("symbol %d must be a string, got %T", i, e)
			}
			s[i] = str
		}
		return strings.Join(s, ","), nil
	}
	return "", validationError("symbols must be a string or a list of strings, got %T", v)
}
