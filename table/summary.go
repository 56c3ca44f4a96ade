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
	"sort"

	"github.com/stockparfait/errors"
	"golang.org/x/exp/maps"
	"gonum.org/v1/gonum/stat"
)

// Summary of a numeric column.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
}

// Describe computes a Summary of the numeric cells of the named column.
// Non-numeric cells are skipped.
func (t *Table) Describe(column string) (Summary, error) {
	j := t.Column(column)
	if j < 0 {
		return Summary{}, errors.Reason("no such column: '%s'", column)
	}
	var xs []float64
	for _, r := range t.Rows {
		if x, ok := r[j].(float64); ok {
			xs = append(xs, x)
		}
	}
	if len(xs) == 0 {
		return Summary{}, errors.Reason("column '%s' has no numeric values", column)
	}
	sort.Float64s(xs)
	s := Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Min:    xs[0],
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Max:    xs[len(xs)-1],
	}
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s, nil
}

func sortedKeys(m map[string]any) []string {
	keys := maps.Keys(m)
	sort.Strings(keys)
	return keys
}
