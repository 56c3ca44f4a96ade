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

package stable

import (
	"context"

	"github.com/stockparfait/fmp/api"
	"github.com/stockparfait/fmp/date"
)

// Report periods of the financial statements.
const (
	Annual  = "annual"
	Quarter = "quarter"
)

// StatementsFacade serves financial statements. An empty period means
// Annual, and limit <= 0 means the server default.
type StatementsFacade struct{ facade }

func (f *StatementsFacade) statement(ctx context.Context, name, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, name, api.Args{"symbol": symbol, "period": period, "limit": opt(limit)}, asTable)
}

// Income returns income statements.
func (f *StatementsFacade) Income(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "income", symbol, period, limit, asTable)
}

// BalanceSheet returns balance sheet statements.
func (f *StatementsFacade) BalanceSheet(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "balance-sheet", symbol, period, limit, asTable)
}

// CashFlow returns cash flow statements.
func (f *StatementsFacade) CashFlow(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "cash-flow", symbol, period, limit, asTable)
}

// KeyMetrics returns key financial metrics per period.
func (f *StatementsFacade) KeyMetrics(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "key-metrics", symbol, period, limit, asTable)
}

// Ratios returns financial ratios per period.
func (f *StatementsFacade) Ratios(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "ratios", symbol, period, limit, asTable)
}

// OwnerEarnings returns owner earnings.
func (f *StatementsFacade) OwnerEarnings(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "owner-earnings", symbol, period, limit, asTable)
}

// EnterpriseValues returns enterprise value per period.
func (f *StatementsFacade) EnterpriseValues(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "enterprise-values", symbol, period, limit, asTable)
}

// IncomeGrowth returns period over period growth of income statement items.
func (f *StatementsFacade) IncomeGrowth(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "income-growth", symbol, period, limit, asTable)
}

// BalanceSheetGrowth is IncomeGrowth for the balance sheet.
func (f *StatementsFacade) BalanceSheetGrowth(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "balance-sheet-growth", symbol, period, limit, asTable)
}

// CashFlowGrowth is IncomeGrowth for the cash flow statement.
func (f *StatementsFacade) CashFlowGrowth(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "cash-flow-growth", symbol, period, limit, asTable)
}

// FinancialGrowth returns combined growth metrics.
func (f *StatementsFacade) FinancialGrowth(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.statement(ctx, "financial-growth", symbol, period, limit, asTable)
}

// Latest pages through the most recently filed statements.
func (f *StatementsFacade) Latest(ctx context.Context, page, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "latest", api.Args{"page": opt(page), "limit": opt(limit)}, asTable)
}

// IncomeTTM returns the trailing twelve months income statement.
func (f *StatementsFacade) IncomeTTM(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "income-ttm", api.Args{"symbol": symbol}, asTable)
}

// BalanceSheetTTM returns the trailing twelve months balance sheet.
func (f *StatementsFacade) BalanceSheetTTM(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "balance-sheet-ttm", api.Args{"symbol": symbol}, asTable)
}

// CashFlowTTM returns the trailing twelve months cash flow.
func (f *StatementsFacade) CashFlowTTM(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "cash-flow-ttm", api.Args{"symbol": symbol}, asTable)
}

// KeyMetricsTTM returns trailing twelve months key metrics.
func (f *StatementsFacade) KeyMetricsTTM(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "key-metrics-ttm", api.Args{"symbol": symbol}, asTable)
}

// RatiosTTM returns trailing twelve months ratios.
func (f *StatementsFacade) RatiosTTM(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ratios-ttm", api.Args{"symbol": symbol}, asTable)
}

// Scores returns Altman Z and Piotroski scores (financial-scores).
func (f *StatementsFacade) Scores(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "scores", api.Args{"symbol": symbol}, asTable)
}

// AnalystFacade serves estimates, ratings, price targets and grades.
type AnalystFacade struct{ facade }

// Estimates returns analyst estimates for the period type.
func (f *AnalystFacade) Estimates(ctx context.Context, symbol, period string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "estimates", api.Args{"symbol": symbol, "period": period, "limit": opt(limit)}, asTable)
}

// RatingsSnapshot returns the current rating.
func (f *AnalystFacade) RatingsSnapshot(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ratings-snapshot", api.Args{"symbol": symbol}, asTable)
}

// RatingsHistorical returns past ratings.
func (f *AnalystFacade) RatingsHistorical(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ratings-historical", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// PriceTargetSummary averages price targets over several horizons.
func (f *AnalystFacade) PriceTargetSummary(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "price-target-summary", api.Args{"symbol": symbol}, asTable)
}

// PriceTargetConsensus returns the high, low and consensus targets.
func (f *AnalystFacade) PriceTargetConsensus(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "price-target-consensus", api.Args{"symbol": symbol}, asTable)
}

// PriceTargetNews returns price target announcements for the symbol.
func (f *AnalystFacade) PriceTargetNews(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "price-target-news", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// PriceTargetLatestNews returns the latest price target announcements.
func (f *AnalystFacade) PriceTargetLatestNews(ctx context.Context, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "price-target-latest-news", api.Args{"limit": opt(limit)}, asTable)
}

// Grades returns analyst grades.
func (f *AnalystFacade) Grades(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "grades", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// GradesHistorical returns grade counts over time.
func (f *AnalystFacade) GradesHistorical(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "grades-historical", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// GradesConsensus summarizes current grades.
func (f *AnalystFacade) GradesConsensus(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "grades-consensus", api.Args{"symbol": symbol}, asTable)
}

// GradesNews returns grade change announcements for the symbol.
func (f *AnalystFacade) GradesNews(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "grades-news", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// GradesLatestNews returns the latest grade change announcements.
func (f *AnalystFacade) GradesLatestNews(ctx context.Context, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "grades-latest-news", api.Args{"limit": opt(limit)}, asTable)
}

// CalendarFacade serves dividends, earnings, IPOs and splits. Zero dates are
// not sent.
type CalendarFacade struct{ facade }

// Dividends returns the dividend history of the symbol.
func (f *CalendarFacade) Dividends(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "dividends", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// DividendsCalendar lists dividends in the date range.
func (f *CalendarFacade) DividendsCalendar(ctx context.Context, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "dividends-calendar", api.Args{"from": from, "to": to}, asTable)
}

// Earnings returns reported and expected earnings of the symbol.
func (f *CalendarFacade) Earnings(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "earnings", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// EarningsCalendar lists earnings releases in the date range.
func (f *CalendarFacade) EarningsCalendar(ctx context.Context, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "earnings-calendar", api.Args{"from": from, "to": to}, asTable)
}

// IPOs lists upcoming initial public offerings (ipos-calendar).
func (f *CalendarFacade) IPOs(ctx context.Context, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ipos", api.Args{"from": from, "to": to}, asTable)
}

// IPOsDisclosure lists IPO disclosure filings.
func (f *CalendarFacade) IPOsDisclosure(ctx context.Context, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ipos-disclosure", api.Args{"from": from, "to": to}, asTable)
}

// IPOsProspectus lists IPO prospectus filings.
func (f *CalendarFacade) IPOsProspectus(ctx context.Context, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ipos-prospectus", api.Args{"from": from, "to": to}, asTable)
}

// Splits returns the split history of the symbol.
func (f *CalendarFacade) Splits(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "splits", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// SplitsCalendar lists splits in the date range.
func (f *CalendarFacade) SplitsCalendar(ctx context.Context, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "splits-calendar", api.Args{"from": from, "to": to}, asTable)
}

// NewsFacade serves news and press releases.
type NewsFacade struct{ facade }

// Articles published by FMP. The page is 0-based; size <= 0 means 10.
func (f *NewsFacade) Articles(ctx context.Context, page, size int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "articles", api.Args{"page": page, "size": opt(size)}, asTable)
}

// General returns the latest general market news.
func (f *NewsFacade) General(ctx context.Context, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "general", api.Args{"limit": opt(limit)}, asTable)
}

// PressReleases returns the latest press releases.
func (f *NewsFacade) PressReleases(ctx context.Context, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "press-releases", api.Args{"limit": opt(limit)}, asTable)
}

// Stock returns the latest stock news.
func (f *NewsFacade) Stock(ctx context.Context, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "stock", api.Args{"limit": opt(limit)}, asTable)
}

// Crypto returns the latest cryptocurrency news.
func (f *NewsFacade) Crypto(ctx context.Context, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "crypto", api.Args{"limit": opt(limit)}, asTable)
}

// Forex returns the latest forex news.
func (f *NewsFacade) Forex(ctx context.Context, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "forex", api.Args{"limit": opt(limit)}, asTable)
}

// SearchPressReleases returns press releases of the given symbols.
func (f *NewsFacade) SearchPressReleases(ctx context.Context, symbols []string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "search-press-releases", api.Args{"symbols": symbols, "limit": opt(limit)}, asTable)
}

// SearchStock returns stock news of the given symbols.
func (f *NewsFacade) SearchStock(ctx context.Context, symbols []string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "search-stock", api.Args{"symbols": symbols, "limit": opt(limit)}, asTable)
}

// SearchCrypto returns news of the given crypto pairs.
func (f *NewsFacade) SearchCrypto(ctx context.Context, symbols []string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "search-crypto", api.Args{"symbols": symbols, "limit": opt(limit)}, asTable)
}

// SearchForex returns news of the given currency pairs.
func (f *NewsFacade) SearchForex(ctx context.Context, symbols []string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "search-forex", api.Args{"symbols": symbols, "limit": opt(limit)}, asTable)
}

// ETFFacade serves ETF and mutual fund data.
type ETFFacade struct{ facade }

// Holdings lists the fund's positions.
func (f *ETFFacade) Holdings(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "holdings", api.Args{"symbol": symbol}, asTable)
}

// Info returns fund details such as expense ratio and AUM.
func (f *ETFFacade) Info(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "info", api.Args{"symbol": symbol}, asTable)
}

// CountryWeightings breaks the fund down by country.
func (f *ETFFacade) CountryWeightings(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "country-weightings", api.Args{"symbol": symbol}, asTable)
}

// AssetExposure lists the funds that hold the symbol.
func (f *ETFFacade) AssetExposure(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "asset-exposure", api.Args{"symbol": symbol}, asTable)
}

// SectorWeightings breaks the fund down by sector.
func (f *ETFFacade) SectorWeightings(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "sector-weightings", api.Args{"symbol": symbol}, asTable)
}

// DisclosureHoldersLatest returns the latest fund disclosure of holders.
func (f *ETFFacade) DisclosureHoldersLatest(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "disclosure-holders-latest", api.Args{"symbol": symbol}, asTable)
}

// Disclosure returns fund holdings disclosed for the year and quarter.
func (f *ETFFacade) Disclosure(ctx context.Context, symbol string, year, quarter int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "disclosure", api.Args{"symbol": symbol, "year": year, "quarter": quarter}, asTable)
}

// DisclosureHoldersSearch finds disclosing funds by name.
func (f *ETFFacade) DisclosureHoldersSearch(ctx context.Context, name string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "disclosure-holders-search", api.Args{"name": name}, asTable)
}

// DisclosureDates lists the dates of available disclosures.
func (f *ETFFacade) DisclosureDates(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "disclosure-dates", api.Args{"symbol": symbol}, asTable)
}

// SECFacade serves SEC filings. Zero dates are not sent.
type SECFacade struct{ facade }

// Filings8K lists 8-K filings in the date range.
func (f *SECFacade) Filings8K(ctx context.Context, from, to date.Date, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "filings-8k", api.Args{"from": from, "to": to, "limit": opt(limit)}, asTable)
}

// FilingsFinancials lists financial report filings in the date range.
func (f *SECFacade) FilingsFinancials(ctx context.Context, from, to date.Date, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "filings-financials", api.Args{"from": from, "to": to, "limit": opt(limit)}, asTable)
}

// SearchFormType lists filings of the form type.
func (f *SECFacade) SearchFormType(ctx context.Context, formType string, from, to date.Date, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "search-form-type",
		api.Args{"formType": formType, "from": from, "to": to, "limit": opt(limit)}, asTable)
}

// SearchSymbol lists filings of the symbol.
func (f *SECFacade) SearchSymbol(ctx context.Context, symbol string, from, to date.Date, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "search-symbol",
		api.Args{"symbol": symbol, "from": from, "to": to, "limit": opt(limit)}, asTable)
}

// SearchCIK lists filings of the CIK.
func (f *SECFacade) SearchCIK(ctx context.Context, cik string, from, to date.Date, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "search-cik", api.Args{"cik": cik, "from": from, "to": to, "limit": opt(limit)}, asTable)
}

// CompanySearchName finds SEC registrants by name.
func (f *SECFacade) CompanySearchName(ctx context.Context, company string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "company-search-name", api.Args{"company": company}, asTable)
}

// CompanySearchSymbol finds SEC registrants by symbol.
func (f *SECFacade) CompanySearchSymbol(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "company-search-symbol", api.Args{"symbol": symbol}, asTable)
}

// CompanySearchCIK finds SEC registrants by CIK.
func (f *SECFacade) CompanySearchCIK(ctx context.Context, cik string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "company-search-cik", api.Args{"cik": cik}, asTable)
}

// Profile returns the SEC profile of the company.
func (f *SECFacade) Profile(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "profile", api.Args{"symbol": symbol}, asTable)
}

// BulkFacade serves bulk exports of the whole universe. The server may answer
// in CSV, which is detected and returned as a table.
type BulkFacade struct{ facade }

// Profile of all companies in the 0-based part.
func (f *BulkFacade) Profile(ctx context.Context, part int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "profile", api.Args{"part": part}, asTable)
}

// Rating returns ratings of all companies.
func (f *BulkFacade) Rating(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "rating", nil, asTable)
}

// DCF returns discounted cash flow valuations of all companies.
func (f *BulkFacade) DCF(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "dcf", nil, asTable)
}

// Scores returns financial scores of all companies.
func (f *BulkFacade) Scores(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "scores", nil, asTable)
}

// PriceTargetSummary returns price target summaries of all companies.
func (f *BulkFacade) PriceTargetSummary(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "price-target-summary", nil, asTable)
}

// ETFHolder holdings of all ETFs in the 0-based part.
func (f *BulkFacade) ETFHolder(ctx context.Context, part int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "etf-holder", api.Args{"part": part}, asTable)
}

// UpgradesDowngradesConsensus returns grade consensus of all companies.
func (f *BulkFacade) UpgradesDowngradesConsensus(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "upgrades-downgrades-consensus", nil, asTable)
}

// KeyMetricsTTM returns trailing key metrics of all companies.
func (f *BulkFacade) KeyMetricsTTM(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "key-metrics-ttm", nil, asTable)
}

// RatiosTTM returns trailing ratios of all companies.
func (f *BulkFacade) RatiosTTM(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ratios-ttm", nil, asTable)
}

// Peers returns peer lists of all companies.
func (f *BulkFacade) Peers(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "peers", nil, asTable)
}

// EarningsSurprises returns the year's earnings surprises of all companies.
func (f *BulkFacade) EarningsSurprises(ctx context.Context, year int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "earnings-surprises", api.Args{"year": year}, asTable)
}

// IncomeStatement returns income statements of all companies for the year and period.
func (f *BulkFacade) IncomeStatement(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "income-statement", api.Args{"year": year, "period": period}, asTable)
}

// IncomeStatementGrowth is the growth counterpart of IncomeStatement.
func (f *BulkFacade) IncomeStatementGrowth(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "income-statement-growth", api.Args{"year": year, "period": period}, asTable)
}

// BalanceSheet returns balance sheets of all companies for the year and period.
func (f *BulkFacade) BalanceSheet(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "balance-sheet", api.Args{"year": year, "period": period}, asTable)
}

// BalanceSheetGrowth is the growth counterpart of BalanceSheet.
func (f *BulkFacade) BalanceSheetGrowth(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "balance-sheet-growth", api.Args{"year": year, "period": period}, asTable)
}

// CashFlow returns cash flow statements of all companies for the year and period.
func (f *BulkFacade) CashFlow(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "cash-flow", api.Args{"year": year, "period": period}, asTable)
}

// CashFlowGrowth is the growth counterpart of CashFlow.
func (f *BulkFacade) CashFlowGrowth(ctx context.Context, year int, period string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "cash-flow-growth", api.Args{"year": year, "period": period}, asTable)
}
