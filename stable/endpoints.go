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
	"github.com/stockparfait/fmp/api"
)

// Endpoint groups, one per facade.
const (
	GroupSearch     = "search"
	GroupCompany    = "company"
	GroupQuote      = "quote"
	GroupChart      = "chart"
	GroupStatements = "statements"
	GroupAnalyst    = "analyst"
	GroupCalendar   = "calendar"
	GroupNews       = "news"
	GroupETF        = "etf"
	GroupCrypto     = "crypto"
	GroupForex      = "forex"
	GroupSEC        = "sec"
	GroupBulk       = "bulk"
	GroupDirectory  = "directory"
)

// Commonly used parameters.
var (
	symbol   = api.Param{Name: "symbol", Kind: api.Symbols, Required: true}
	symbols  = api.Param{Name: "symbols", Kind: api.Symbols, Required: true}
	limit    = api.Param{Name: "limit", Kind: api.Int}
	page     = api.Param{Name: "page", Kind: api.Int}
	from     = api.Param{Name: "from", Kind: api.Date}
	to       = api.Param{Name: "to", Kind: api.Date}
	period   = api.Param{Name: "period", Kind: api.String, Default: "annual"}
	part     = api.Param{Name: "part", Kind: api.Int, Default: 0}
	year     = api.Param{Name: "year", Kind: api.Int, Required: true}
	cik      = api.Param{Name: "cik", Kind: api.String, Required: true}
	exchange = api.Param{Name: "exchange", Kind: api.String}
)

func ps(p ...api.Param) []api.Param { return p }

func required(name string, kind api.ParamKind) api.Param {
	return api.Param{Name: name, Kind: kind, Required: true}
}

func optional(name string, kind api.ParamKind) api.Param {
	return api.Param{Name: name, Kind: kind}
}

var (
	dateCol      = []string{"date"}
	publishedCol = []string{"publishedDate"}
	reportCol    = []string{"reportDate"}
	filingCol    = []string{"filingDate"}
	dividendCols = []string{"date", "recordDate", "paymentDate", "declarationDate"}
)

// Intervals of the intraday charts.
var Intervals = []string{"1min", "5min", "15min", "30min", "1hour", "4hour"}

func intraday(group string, intervals ...string) []*api.Endpoint {
	var res []*api.Endpoint
	for _, iv := range intervals {
		res = append(res, &api.Endpoint{
			Group:       group,
			Name:        iv,
			Path:        "historical-chart/" + iv,
			Doc:         iv + " intraday price chart",
			Params:      ps(symbol, from, to),
			DateColumns: dateCol,
		})
	}
	return res
}

// Endpoints of the stable API generation.
var Endpoints = concat(
	searchEndpoints,
	companyEndpoints,
	quoteEndpoints,
	chartEndpoints,
	intraday(GroupChart, Intervals...),
	statementsEndpoints,
	analystEndpoints,
	calendarEndpoints,
	newsEndpoints,
	etfEndpoints,
	marketEndpoints(GroupCrypto, "cryptocurrency-list", "batch-crypto-quotes"),
	intraday(GroupCrypto, "1min", "5min", "1hour"),
	marketEndpoints(GroupForex, "forex-list", "batch-forex-quotes"),
	intraday(GroupForex, "1min", "5min", "1hour"),
	secEndpoints,
	bulkEndpoints,
	directoryEndpoints,
)

func concat(lists ...[]*api.Endpoint) api.Endpoints {
	var res api.Endpoints
	for _, l := range lists {
		res = append(res, l...)
	}
	return res
}

// Lookup a stable endpoint by its full name, e.g. "quote.real-time".
func Lookup(name string) (*api.Endpoint, bool) {
	return Endpoints.Lookup(name)
}

var searchEndpoints = []*api.Endpoint{
	{Group: GroupSearch, Name: "symbol", Path: "search-symbol", Doc: "Search ticker symbols",
		Params: ps(required("query", api.String), limit, exchange)},
	{Group: GroupSearch, Name: "name", Path: "search-name", Doc: "Search companies by name",
		Params: ps(required("query", api.String), limit, exchange)},
	{Group: GroupSearch, Name: "cik", Path: "search-cik", Doc: "Search companies by CIK",
		Params: ps(cik, limit)},
	{Group: GroupSearch, Name: "cusip", Path: "search-cusip", Doc: "Search by CUSIP",
		Params: ps(required("cusip", api.String))},
	{Group: GroupSearch, Name: "isin", Path: "search-isin", Doc: "Search by ISIN",
		Params: ps(required("isin", api.String))},
	{Group: GroupSearch, Name: "exchange-variants", Path: "search-exchange-variants",
		Doc: "Listings of a symbol on all exchanges", Params: ps(symbol)},
	{Group: GroupSearch, Name: "screener", Path: "company-screener", Doc: "Screen companies by criteria",
		Params: ps(
			optional("marketCapMoreThan", api.Float),
			optional("marketCapLowerThan", api.Float),
			optional("sector", api.String),
			optional("industry", api.String),
			optional("betaMoreThan", api.Float),
			optional("betaLowerThan", api.Float),
			optional("priceMoreThan", api.Float),
			optional("priceLowerThan", api.Float),
			optional("dividendMoreThan", api.Float),
			optional("dividendLowerThan", api.Float),
			optional("volumeMoreThan", api.Float),
			optional("volumeLowerThan", api.Float),
			exchange,
			optional("country", api.String),
			optional("isEtf", api.Bool),
			optional("isFund", api.Bool),
			optional("isActivelyTrading", api.Bool),
			limit,
			optional("includeAllShareClasses", api.Bool),
		)},
}

var companyEndpoints = []*api.Endpoint{
	{Group: GroupCompany, Name: "profile", Path: "profile", Doc: "Company profiles", Params: ps(symbol)},
	{Group: GroupCompany, Name: "profile-cik", Path: "profile-cik", Doc: "Company profile by CIK",
		Params: ps(cik)},
	{Group: GroupCompany, Name: "notes", Path: "company-notes", Doc: "Company notes", Params: ps(symbol)},
	{Group: GroupCompany, Name: "peers", Path: "stock-peers", Doc: "Peer companies", Params: ps(symbol)},
	{Group: GroupCompany, Name: "delisted", Path: "delisted-companies", Doc: "Delisted companies",
		Params: ps(page, limit)},
	{Group: GroupCompany, Name: "employee-count", Path: "employee-count", Doc: "Employee count",
		Params: ps(symbol, limit)},
	{Group: GroupCompany, Name: "historical-employee-count", Path: "historical-employee-count",
		Doc: "Historical employee count", Params: ps(symbol, limit)},
	{Group: GroupCompany, Name: "market-cap", Path: "market-capitalization", Doc: "Market capitalization",
		Params: ps(symbol)},
	{Group: GroupCompany, Name: "market-cap-batch", Path: "market-capitalization-batch",
		Doc: "Market capitalization of several companies", Params: ps(symbols)},
	{Group: GroupCompany, Name: "historical-market-cap", Path: "historical-market-capitalization",
		Doc: "Historical market capitalization", Params: ps(symbol, from, to, limit), DateColumns: dateCol},
	{Group: GroupCompany, Name: "shares-float", Path: "shares-float", Doc: "Share float",
		Params: ps(symbol)},
	{Group: GroupCompany, Name: "shares-float-all", Path: "shares-float-all",
		Doc: "Share float of all companies", Params: ps(page, limit)},
	{Group: GroupCompany, Name: "executives", Path: "key-executives", Doc: "Key executives",
		Params: ps(symbol)},
	{Group: GroupCompany, Name: "executive-compensation", Path: "governance-executive-compensation",
		Doc: "Executive compensation", Params: ps(symbol)},
	{Group: GroupCompany, Name: "compensation-benchmark", Path: "executive-compensation-benchmark",
		Doc: "Executive compensation benchmarks", Params: ps(optional("year", api.Int))},
}

var quoteEndpoints = []*api.Endpoint{
	{Group: GroupQuote, Name: "real-time", Path: "quote", Doc: "Real-time quotes", Params: ps(symbol)},
	{Group: GroupQuote, Name: "short", Path: "quote-short", Doc: "Short quotes", Params: ps(symbol)},
	{Group: GroupQuote, Name: "aftermarket-trade", Path: "aftermarket-trade", Doc: "Aftermarket trades",
		Params: ps(symbol)},
	{Group: GroupQuote, Name: "aftermarket-quote", Path: "aftermarket-quote", Doc: "Aftermarket quotes",
		Params: ps(symbol)},
	{Group: GroupQuote, Name: "price-change", Path: "stock-price-change", Doc: "Price change over periods",
		Params: ps(symbol)},
	{Group: GroupQuote, Name: "batch", Path: "batch-quote", Doc: "Quotes of several symbols",
		Params: ps(symbols)},
	{Group: GroupQuote, Name: "batch-short", Path: "batch-quote-short", Doc: "Short quotes of several symbols",
		Params: ps(symbols)},
	{Group: GroupQuote, Name: "batch-aftermarket-trade", Path: "batch-aftermarket-trade",
		Doc: "Aftermarket trades of several symbols", Params: ps(symbols)},
	{Group: GroupQuote, Name: "batch-aftermarket-quote", Path: "batch-aftermarket-quote",
		Doc: "Aftermarket quotes of several symbols", Params: ps(symbols)},
	{Group: GroupQuote, Name: "exchange", Path: "batch-exchange-quote", Doc: "Quotes of an exchange",
		Params: ps(required("exchange", api.String))},
	{Group: GroupQuote, Name: "mutual-funds", Path: "batch-mutualfund-quotes", Doc: "Mutual fund quotes"},
	{Group: GroupQuote, Name: "etfs", Path: "batch-etf-quotes", Doc: "ETF quotes"},
	{Group: GroupQuote, Name: "commodities", Path: "batch-commodity-quotes", Doc: "Commodity quotes"},
	{Group: GroupQuote, Name: "crypto", Path: "batch-crypto-quotes", Doc: "Cryptocurrency quotes"},
	{Group: GroupQuote, Name: "forex", Path: "batch-forex-quotes", Doc: "Forex quotes"},
	{Group: GroupQuote, Name: "indexes", Path: "batch-index-quotes", Doc: "Index quotes"},
}

var chartEndpoints = []*api.Endpoint{
	{Group: GroupChart, Name: "light", Path: "historical-price-eod/light", Doc: "Daily close and volume",
		Params: ps(symbol, from, to), DateColumns: dateCol},
	{Group: GroupChart, Name: "full", Path: "historical-price-eod/full", Doc: "Daily OHLCV prices",
		Params: ps(symbol, from, to), DateColumns: dateCol},
	{Group: GroupChart, Name: "unadjusted", Path: "historical-price-eod/non-split-adjusted",
		Doc: "Daily prices not adjusted for splits", Params: ps(symbol, from, to), DateColumns: dateCol},
	{Group: GroupChart, Name: "dividend-adjusted", Path: "historical-price-eod/dividend-adjusted",
		Doc: "Daily prices adjusted for dividends", Params: ps(symbol, from, to), DateColumns: dateCol},
	{Group: GroupChart, Name: "batch-eod", Path: "batch-eod", Doc: "EOD prices of all stocks on a date",
		Params: ps(required("date", api.Date))},
}

func statement(name, path, doc string) *api.Endpoint {
	return &api.Endpoint{Group: GroupStatements, Name: name, Path: path, Doc: doc,
		Params: ps(symbol, period, limit), DateColumns: dateCol}
}

func ttm(name, path, doc string) *api.Endpoint {
	return &api.Endpoint{Group: GroupStatements, Name: name, Path: path, Doc: doc,
		Params: ps(symbol, limit)}
}

var statementsEndpoints = []*api.Endpoint{
	statement("income", "income-statement", "Income statements"),
	statement("balance-sheet", "balance-sheet-statement", "Balance sheet statements"),
	statement("cash-flow", "cash-flow-statement", "Cash flow statements"),
	statement("key-metrics", "key-metrics", "Key financial metrics"),
	statement("ratios", "ratios", "Financial ratios"),
	statement("owner-earnings", "owner-earnings", "Owner earnings"),
	statement("enterprise-values", "enterprise-values", "Enterprise values"),
	statement("income-growth", "income-statement-growth", "Income statement growth"),
	statement("balance-sheet-growth", "balance-sheet-statement-growth", "Balance sheet growth"),
	statement("cash-flow-growth", "cash-flow-statement-growth", "Cash flow growth"),
	statement("financial-growth", "financial-growth", "Financial statement growth"),
	{Group: GroupStatements, Name: "latest", Path: "latest-financial-statements",
		Doc: "Latest financial statements", Params: ps(page, limit), DateColumns: dateCol},
	ttm("income-ttm", "income-statement-ttm", "Trailing twelve months income statement"),
	ttm("balance-sheet-ttm", "balance-sheet-statement-ttm", "Trailing twelve months balance sheet"),
	ttm("cash-flow-ttm", "cash-flow-statement-ttm", "Trailing twelve months cash flow"),
	ttm("key-metrics-ttm", "key-metrics-ttm", "Trailing twelve months key metrics"),
	ttm("ratios-ttm", "ratios-ttm", "Trailing twelve months ratios"),
	{Group: GroupStatements, Name: "scores", Path: "financial-scores",
		Doc: "Altman Z-score and Piotroski score", Params: ps(symbol)},
}

var analystEndpoints = []*api.Endpoint{
	{Group: GroupAnalyst, Name: "estimates", Path: "analyst-estimates", Doc: "Analyst estimates",
		Params: ps(symbol, period, page, limit), DateColumns: dateCol},
	{Group: GroupAnalyst, Name: "ratings-snapshot", Path: "ratings-snapshot", Doc: "Current rating",
		Params: ps(symbol, limit)},
	{Group: GroupAnalyst, Name: "ratings-historical", Path: "ratings-historical", Doc: "Historical ratings",
		Params: ps(symbol, limit), DateColumns: dateCol},
	{Group: GroupAnalyst, Name: "price-target-summary", Path: "price-target-summary",
		Doc: "Price target summary", Params: ps(symbol)},
	{Group: GroupAnalyst, Name: "price-target-consensus", Path: "price-target-consensus",
		Doc: "Price target consensus", Params: ps(symbol)},
	{Group: GroupAnalyst, Name: "price-target-news", Path: "price-target-news", Doc: "Price target news",
		Params: ps(symbol, page, limit), DateColumns: publishedCol},
	{Group: GroupAnalyst, Name: "price-target-latest-news", Path: "price-target-latest-news",
		Doc: "Latest price target news", Params: ps(page, limit), DateColumns: publishedCol},
	{Group: GroupAnalyst, Name: "grades", Path: "grades", Doc: "Analyst grades",
		Params: ps(symbol, limit), DateColumns: dateCol},
	{Group: GroupAnalyst, Name: "grades-historical", Path: "grades-historical", Doc: "Historical grades",
		Params: ps(symbol, limit), DateColumns: dateCol},
	{Group: GroupAnalyst, Name: "grades-consensus", Path: "grades-consensus", Doc: "Grades consensus",
		Params: ps(symbol)},
	{Group: GroupAnalyst, Name: "grades-news", Path: "grades-news", Doc: "Grade change news",
		Params: ps(symbol, page, limit), DateColumns: publishedCol},
	{Group: GroupAnalyst, Name: "grades-latest-news", Path: "grades-latest-news",
		Doc: "Latest grade change news", Params: ps(page, limit), DateColumns: publishedCol},
}

var calendarEndpoints = []*api.Endpoint{
	{Group: GroupCalendar, Name: "dividends", Path: "dividends", Doc: "Dividends of a company",
		Params: ps(symbol, limit), DateColumns: dividendCols},
	{Group: GroupCalendar, Name: "dividends-calendar", Path: "dividends-calendar", Doc: "Dividends calendar",
		Params: ps(from, to), DateColumns: dividendCols},
	{Group: GroupCalendar, Name: "earnings", Path: "earnings", Doc: "Earnings of a company",
		Params: ps(symbol, limit), DateColumns: dateCol},
	{Group: GroupCalendar, Name: "earnings-calendar", Path: "earnings-calendar", Doc: "Earnings calendar",
		Params: ps(from, to), DateColumns: dateCol},
	{Group: GroupCalendar, Name: "ipos", Path: "ipos-calendar", Doc: "IPO calendar",
		Params: ps(from, to), DateColumns: dateCol},
	{Group: GroupCalendar, Name: "ipos-disclosure", Path: "ipos-disclosure", Doc: "IPO disclosures",
		Params: ps(from, to), DateColumns: []string{"filingDate", "effectivenessDate"}},
	{Group: GroupCalendar, Name: "ipos-prospectus", Path: "ipos-prospectus", Doc: "IPO prospectuses",
		Params: ps(from, to), DateColumns: dateCol},
	{Group: GroupCalendar, Name: "splits", Path: "splits", Doc: "Stock splits of a company",
		Params: ps(symbol, limit), DateColumns: dateCol},
	{Group: GroupCalendar, Name: "splits-calendar", Path: "splits-calendar", Doc: "Stock splits calendar",
		Params: ps(from, to), DateColumns: dateCol},
}

func latestNews(name, path, doc string) *api.Endpoint {
	return &api.Endpoint{Group: GroupNews, Name: name, Path: path, Doc: doc,
		Params: ps(from, to, page, limit), DateColumns: publishedCol}
}

func symbolNews(name, path, doc string) *api.Endpoint {
	return &api.Endpoint{Group: GroupNews, Name: name, Path: path, Doc: doc,
		Params: ps(symbols, from, to, page, limit), DateColumns: publishedCol}
}

var newsEndpoints = []*api.Endpoint{
	{Group: GroupNews, Name: "articles", Path: "fmp-articles", Doc: "FMP articles",
		Params: ps(api.Param{Name: "page", Kind: api.Int, Default: 0},
			api.Param{Name: "size", Kind: api.Int, Default: 10}),
		DateColumns: publishedCol},
	latestNews("general", "news/general-latest", "Latest general news"),
	latestNews("press-releases", "news/press-releases-latest", "Latest press releases"),
	latestNews("stock", "news/stock-latest", "Latest stock news"),
	latestNews("crypto", "news/crypto-latest", "Latest crypto news"),
	latestNews("forex", "news/forex-latest", "Latest forex news"),
	symbolNews("search-press-releases", "news/press-releases", "Press releases of companies"),
	symbolNews("search-stock", "news/stock", "Stock news of companies"),
	symbolNews("search-crypto", "news/crypto", "News of cryptocurrencies"),
	symbolNews("search-forex", "news/forex", "News of currency pairs"),
}

var etfEndpoints = []*api.Endpoint{
	{Group: GroupETF, Name: "holdings", Path: "etf/holdings", Doc: "ETF holdings", Params: ps(symbol)},
	{Group: GroupETF, Name: "info", Path: "etf/info", Doc: "ETF information", Params: ps(symbol)},
	{Group: GroupETF, Name: "country-weightings", Path: "etf/country-weightings",
		Doc: "ETF country weightings", Params: ps(symbol)},
	{Group: GroupETF, Name: "asset-exposure", Path: "etf/asset-exposure", Doc: "ETFs holding a stock",
		Params: ps(symbol)},
	{Group: GroupETF, Name: "sector-weightings", Path: "etf/sector-weightings",
		Doc: "ETF sector weightings", Params: ps(symbol)},
	{Group: GroupETF, Name: "disclosure-holders-latest", Path: "funds/disclosure-holders-latest",
		Doc: "Latest fund disclosure holders", Params: ps(symbol), DateColumns: reportCol},
	{Group: GroupETF, Name: "disclosure", Path: "funds/disclosure", Doc: "Fund disclosure",
		Params: ps(symbol, year, required("quarter", api.Int))},
	{Group: GroupETF, Name: "disclosure-holders-search", Path: "funds/disclosure-holders-search",
		Doc: "Search fund disclosure holders by name", Params: ps(required("name", api.String))},
	{Group: GroupETF, Name: "disclosure-dates", Path: "funds/disclosure-dates",
		Doc: "Fund disclosure dates", Params: ps(symbol), DateColumns: reportCol},
}

// marketEndpoints are the endpoints shared by the crypto and forex groups.
func marketEndpoints(group, listPath, batchPath string) []*api.Endpoint {
	return []*api.Endpoint{
		{Group: group, Name: "list", Path: listPath, Doc: "Available " + group + " symbols"},
		{Group: group, Name: "quote", Path: "quote", Doc: "Quote", Params: ps(symbol)},
		{Group: group, Name: "quote-short", Path: "quote-short", Doc: "Short quote", Params: ps(symbol)},
		{Group: group, Name: "batch-quotes", Path: batchPath, Doc: "Quotes of all " + group + " symbols"},
		{Group: group, Name: "light", Path: "historical-price-eod/light", Doc: "Daily close and volume",
			Params: ps(symbol, from, to), DateColumns: dateCol},
		{Group: group, Name: "full", Path: "historical-price-eod/full", Doc: "Daily OHLCV prices",
			Params: ps(symbol, from, to), DateColumns: dateCol},
	}
}

func secSearch(name, path, doc string, key api.Param) *api.Endpoint {
	return &api.Endpoint{Group: GroupSEC, Name: name, Path: path, Doc: doc,
		Params: ps(key, from, to, page, limit), DateColumns: filingCol}
}

var secEndpoints = []*api.Endpoint{
	{Group: GroupSEC, Name: "filings-8k", Path: "sec-filings-8k", Doc: "Latest 8-K filings",
		Params: ps(from, to, page, limit), DateColumns: filingCol},
	{Group: GroupSEC, Name: "filings-financials", Path: "sec-filings-financials",
		Doc: "Latest financial filings", Params: ps(from, to, page, limit), DateColumns: filingCol},
	secSearch("search-form-type", "sec-filings-search/form-type", "Filings by form type",
		required("formType", api.String)),
	secSearch("search-symbol", "sec-filings-search/symbol", "Filings by symbol", symbol),
	secSearch("search-cik", "sec-filings-search/cik", "Filings by CIK", cik),
	{Group: GroupSEC, Name: "company-search-name", Path: "sec-filings-company-search/name",
		Doc: "SEC companies by name", Params: ps(required("company", api.String))},
	{Group: GroupSEC, Name: "company-search-symbol", Path: "sec-filings-company-search/symbol",
		Doc: "SEC company by symbol", Params: ps(symbol)},
	{Group: GroupSEC, Name: "company-search-cik", Path: "sec-filings-company-search/cik",
		Doc: "SEC company by CIK", Params: ps(cik)},
	{Group: GroupSEC, Name: "profile", Path: "sec-profile", Doc: "SEC company profile",
		Params: ps(symbol)},
}

func bulk(name, path, doc string, params ...api.Param) *api.Endpoint {
	return &api.Endpoint{Group: GroupBulk, Name: name, Path: path, Doc: doc, Params: params}
}

var statementPeriod = api.Param{Name: "period", Kind: api.String, Required: true}

var bulkEndpoints = []*api.Endpoint{
	bulk("profile", "profile-bulk", "Profiles of all companies, partitioned", part),
	bulk("rating", "rating-bulk", "Ratings of all companies"),
	bulk("dcf", "dcf-bulk", "DCF valuations of all companies"),
	bulk("scores", "scores-bulk", "Financial scores of all companies"),
	bulk("price-target-summary", "price-target-summary-bulk", "Price target summaries"),
	bulk("etf-holder", "etf-holder-bulk", "ETF holdings, partitioned", part),
	bulk("upgrades-downgrades-consensus", "upgrades-downgrades-consensus-bulk",
		"Upgrades and downgrades consensus"),
	bulk("key-metrics-ttm", "key-metrics-ttm-bulk", "TTM key metrics of all companies"),
	bulk("ratios-ttm", "ratios-ttm-bulk", "TTM ratios of all companies"),
	bulk("peers", "peers-bulk", "Peers of all companies"),
	bulk("earnings-surprises", "earnings-surprises-bulk", "Earnings surprises in a year", year),
	bulk("income-statement", "income-statement-bulk", "Income statements", year, statementPeriod),
	bulk("income-statement-growth", "income-statement-growth-bulk", "Income statement growth",
		year, statementPeriod),
	bulk("balance-sheet", "balance-sheet-statement-bulk", "Balance sheet statements",
		year, statementPeriod),
	bulk("balance-sheet-growth", "balance-sheet-statement-growth-bulk", "Balance sheet growth",
		year, statementPeriod),
	bulk("cash-flow", "cash-flow-statement-bulk", "Cash flow statements", year, statementPeriod),
	bulk("cash-flow-growth", "cash-flow-statement-growth-bulk", "Cash flow growth",
		year, statementPeriod),
}

func directory(name, path, doc string) *api.Endpoint {
	return &api.Endpoint{Group: GroupDirectory, Name: name, Path: path, Doc: doc}
}

var directoryEndpoints = []*api.Endpoint{
	directory("stocks", "stock-list", "All stock symbols"),
	directory("financial-statement-symbols", "financial-statement-symbol-list",
		"Symbols with financial statements"),
	directory("ciks", "cik-list", "CIK numbers"),
	directory("symbol-changes", "symbol-change", "Symbol changes"),
	directory("etfs", "etf-list", "All ETF symbols"),
	directory("actively-trading", "actively-trading-list", "Actively traded symbols"),
	directory("earnings-transcripts", "earnings-transcript-list", "Symbols with earnings transcripts"),
	directory("exchanges", "available-exchanges", "Available exchanges"),
	directory("sectors", "available-sectors", "Available sectors"),
	directory("industries", "available-industries", "Available industries"),
	directory("countries", "available-countries", "Available countries"),
}
