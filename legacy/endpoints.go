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

package legacy

import (
	"github.com/stockparfait/fmp/api"
)

// GroupBulk is the only endpoint group of the legacy generation.
const GroupBulk = "bulk"

var (
	year   = api.Param{Name: "year", Kind: api.Int, Required: true}
	period = api.Param{Name: "period", Kind: api.String, Required: true}
	part   = api.Param{Name: "part", Kind: api.Int, Default: 0}
)

// csv declares a bulk export. The legacy bulk exports are always CSV.
func csv(name, path, doc string, params ...api.Param) *api.Endpoint {
	return &api.Endpoint{Group: GroupBulk, Name: name, Path: path, Doc: doc, Params: params, CSV: true}
}

// Endpoints of the legacy API generation.
var Endpoints = api.Endpoints{
	{Group: GroupBulk, Name: "batch-eod", Path: "batch-historical-eod",
		Doc:         "End of day prices of all stocks on a date",
		Params:      []api.Param{{Name: "date", Kind: api.Date, Required: true}},
		DateColumns: []string{"date"}},
	csv("income-statement", "income-statement-bulk", "Income statements", year, period),
	csv("balance-sheet", "balance-sheet-statement-bulk", "Balance sheet statements", year, period),
	csv("cash-flow", "cash-flow-statement-bulk", "Cash flow statements", year, period),
	csv("ratios", "ratios-bulk", "Financial ratios", year, period),
	csv("key-metrics", "key-metrics-bulk", "Key metrics", year, period),
	csv("financial-growth", "financial-growth-bulk", "Financial growth", year, period),
	csv("income-statement-growth", "income-statement-growth-bulk", "Income statement growth", year, period),
	csv("balance-sheet-growth", "balance-sheet-statement-growth-bulk", "Balance sheet growth", year, period),
	csv("cash-flow-growth", "cash-flow-statement-growth-bulk", "Cash flow growth", year, period),
	csv("earnings-surprises", "earnings-surprises-bulk", "Earnings surprises of all companies"),
	csv("profile", "profile-bulk", "Profiles of all companies, partitioned", part),
	csv("rating", "rating-bulk", "Ratings of all companies"),
	csv("dcf", "dcf-bulk", "DCF valuations of all companies"),
	csv("key-metrics-ttm", "key-metrics-ttm-bulk", "TTM key metrics of all companies"),
	csv("ratios-ttm", "ratios-ttm-bulk", "TTM ratios of all companies"),
	csv("scores", "scores-bulk", "Financial scores of all companies"),
	csv("price-target-summary", "price-target-summary-bulk", "Price target summaries"),
	csv("upgrades-downgrades-consensus", "upgrades-downgrades-consensus-bulk",
		"Analyst rating consensus of all companies"),
	csv("etf-holder", "etf-holder-bulk", "ETF holdings, partitioned", part),
	csv("peers", "stock_peers_bulk", "Peers of all companies"),
}

// Lookup a legacy endpoint by its full name, e.g. "bulk.ratios".
func Lookup(name string) (*api.Endpoint, bool) {
	return Endpoints.Lookup(name)
}
