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

// Package legacy implements the bulk endpoints of the legacy ("/api/v3/") FMP
// API generation, which are being phased out in favor of package stable.
//
// Bulk exports always request CSV, so their responses carry a Table whether
// or not asTable is set.
package legacy

import (
	"context"

	"github.com/stockparfait/fmp/api"
)

// Client of the legacy API.
type Client struct {
	*api.Client
	Bulk *BulkFacade
}

// New creates a legacy API client. The base URL defaults to api.LegacyURL.
func New(cfg api.Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = api.LegacyURL
	}
	c, err := api.New(cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Wrap an existing pipeline client into the legacy facades.
func Wrap(c *api.Client) *Client {
	return &Client{Client: c, Bulk: &BulkFacade{client: c}}
}

// BulkFacade serves the legacy bulk exports.
type BulkFacade struct {
	client *api.Client
}

func (f *BulkFacade) call(ctx context.Context, name string, args api.Args, asTable bool) (*api.Response, error) {
	e, ok := Endpoints.Lookup(GroupBulk + "." + name)
	if !ok {
		return nil, api.NewError(api.ValidationFailure, "unknown endpoint %s.%s", GroupBulk, name)
	}
	return f.client.Call(ctx, e, args, asTable)
}

func (f *BulkFacade) statement(ctx context.Context, name string, year int, period string, asTable bool) (*api.Response, error) {
	return f.call(ctx, name, api.Args{"year": year, "period": period}, asTable)
}

// BatchEOD returns end of day prices of all stocks on the date. The date is
// anything api.FormatDate accepts.
func (f *BulkFacade) BatchEOD(ctx context.Context, d any, asTable bool) (*api.Response, error) {
	return f.call(ctx, "batch-eod", api.Args{"date": d}, asTable)
}

// IncomeStatements downloads income statements of all companies as CSV.
func (f *BulkFacade) IncomeStatements(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "income-statement", year, period, asTable)
}

// BalanceSheetStatements downloads all balance sheets for the year and period.
func (f *BulkFacade) BalanceSheetStatements(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "balance-sheet", year, period, asTable)
}

// CashFlowStatements downloads all cash flow statements for the year and period.
func (f *BulkFacade) CashFlowStatements(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "cash-flow", year, period, asTable)
}

// Ratios downloads financial ratios of all companies.
func (f *BulkFacade) Ratios(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "ratios", year, period, asTable)
}

// KeyMetrics downloads key metrics of all companies.
func (f *BulkFacade) KeyMetrics(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "key-metrics", year, period, asTable)
}

// FinancialGrowth downloads growth metrics of all companies.
func (f *BulkFacade) FinancialGrowth(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "financial-growth", year, period, asTable)
}

// IncomeStatementGrowth downloads income statement growth of all companies.
func (f *BulkFacade) IncomeStatementGrowth(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "income-statement-growth", year, period, asTable)
}

// BalanceSheetGrowth downloads balance sheet growth of all companies.
func (f *BulkFacade) BalanceSheetGrowth(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "balance-sheet-growth", year, period, asTable)
}

// CashFlowGrowth downloads cash flow growth of all companies.
func (f *BulkFacade) CashFlowGrowth(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "cash-flow-growth", year, period, asTable)
}

// EarningsSurprises downloads all earnings surprises.
func (f *BulkFacade) EarningsSurprises(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "earnings-surprises", nil, asTable)
}

// CompanyProfiles of all companies in the 0-based part.
func (f *BulkFacade) CompanyProfiles(ctx context.Context, part int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "profile", api.Args{"part": part}, asTable)
}

// StockRatings downloads ratings of all companies (rating-bulk).
func (f *BulkFacade) StockRatings(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "rating", nil, asTable)
}

// DCFValuations downloads DCF valuations of all companies.
func (f *BulkFacade) DCFValuations(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "dcf", nil, asTable)
}

// KeyMetricsTTM downloads trailing key metrics of all companies.
func (f *BulkFacade) KeyMetricsTTM(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "key-metrics-ttm", nil, asTable)
}

// RatiosTTM downloads trailing ratios of all companies.
func (f *BulkFacade) RatiosTTM(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ratios-ttm", nil, asTable)
}

// FinancialScores downloads financial scores of all companies.
func (f *BulkFacade) FinancialScores(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "scores", nil, asTable)
}

// PriceTargetSummary downloads price target summaries of all companies.
func (f *BulkFacade) PriceTargetSummary(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "price-target-summary", nil, asTable)
}

// UpgradesDowngradesConsensus downloads grade consensus of all companies.
func (f *BulkFacade) UpgradesDowngradesConsensus(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "upgrades-downgrades-consensus", nil, asTable)
}

// ETFHolders holdings of all ETFs in the 0-based part.
func (f *BulkFacade) ETFHolders(ctx context.Context, part int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "etf-holder", api.Args{"part": part}, asTable)
}

// StockPeers downloads peer lists of all companies.
func (f *BulkFacade) StockPeers(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "peers", nil, asTable)
}
