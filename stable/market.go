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

// SearchFacade finds symbols and companies.
type SearchFacade struct{ facade }

// Symbol searches ticker symbols matching the query.
func (f *SearchFacade) Symbol(ctx context.Context, query string, limit int, exchange string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "symbol", api.Args{"query": query, "limit": opt(limit), "exchange": exchange}, asTable)
}

// Name searches companies by name.
func (f *SearchFacade) Name(ctx context.Context, query string, limit int, exchange string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "name", api.Args{"query": query, "limit": opt(limit), "exchange": exchange}, asTable)
}

// CIK looks up companies by their SEC CIK number.
func (f *SearchFacade) CIK(ctx context.Context, cik string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "cik", api.Args{"cik": cik, "limit": opt(limit)}, asTable)
}

// CUSIP looks up a security by CUSIP (search-cusip).
func (f *SearchFacade) CUSIP(ctx context.Context, cusip string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "cusip", api.Args{"cusip": cusip}, asTable)
}

// ISIN looks up a security by ISIN.
func (f *SearchFacade) ISIN(ctx context.Context, isin string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "isin", api.Args{"isin": isin}, asTable)
}

// ExchangeVariants lists the listings of the symbol on other exchanges.
func (f *SearchFacade) ExchangeVariants(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "exchange-variants", api.Args{"symbol": symbol}, asTable)
}

// ScreenerQuery are the criteria of the company screener. Zero values are
// not sent; use pointers for the flags to send an explicit false.
type ScreenerQuery struct {
	MarketCapMoreThan      float64
	MarketCapLowerThan     float64
	Sector                 string
	Industry               string
	BetaMoreThan           float64
	BetaLowerThan          float64
	PriceMoreThan          float64
	PriceLowerThan         float64
	DividendMoreThan       float64
	DividendLowerThan      float64
	VolumeMoreThan         float64
	VolumeLowerThan        float64
	Exchange               string
	Country                string
	IsETF                  *bool
	IsFund                 *bool
	IsActivelyTrading      *bool
	Limit                  int
	IncludeAllShareClasses *bool
}

// Args of the screener request.
func (q ScreenerQuery) Args() api.Args {
	a := api.Args{
		"sector":   q.Sector,
		"industry": q.Industry,
		"exchange": q.Exchange,
		"country":  q.Country,
		"limit":    opt(q.Limit),
	}
	for k, v := range map[string]float64{
		"marketCapMoreThan":  q.MarketCapMoreThan,
		"marketCapLowerThan": q.MarketCapLowerThan,
		"betaMoreThan":       q.BetaMoreThan,
		"betaLowerThan":      q.BetaLowerThan,
		"priceMoreThan":      q.PriceMoreThan,
		"priceLowerThan":     q.PriceLowerThan,
		"dividendMoreThan":   q.DividendMoreThan,
		"dividendLowerThan":  q.DividendLowerThan,
		"volumeMoreThan":     q.VolumeMoreThan,
		"volumeLowerThan":    q.VolumeLowerThan,
	} {
		if v != 0 {
			a[k] = v
		}
	}
	for k, v := range map[string]*bool{
		"isEtf":                  q.IsETF,
		"isFund":                 q.IsFund,
		"isActivelyTrading":      q.IsActivelyTrading,
		"includeAllShareClasses": q.IncludeAllShareClasses,
	} {
		if v != nil {
			a[k] = *v
		}
	}
	return a
}

// Screener runs the company-screener endpoint with the query filters.
func (f *SearchFacade) Screener(ctx context.Context, q ScreenerQuery, asTable bool) (*api.Response, error) {
	return f.call(ctx, "screener", q.Args(), asTable)
}

// CompanyFacade serves company information.
type CompanyFacade struct{ facade }

// Profile of one or more companies.
func (f *CompanyFacade) Profile(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "profile", api.Args{"symbol": symbols}, asTable)
}

// Profiles is Profile decoded into records.
func (f *CompanyFacade) Profiles(ctx context.Context, symbols ...string) ([]Profile, error) {
	res, err := f.Profile(ctx, symbols, false)
	if err != nil {
		return nil, err
	}
	var ps []Profile
	if err := res.Decode(&ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// ProfileByCIK is Profile keyed by CIK.
func (f *CompanyFacade) ProfileByCIK(ctx context.Context, cik string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "profile-cik", api.Args{"cik": cik}, asTable)
}

// Notes returns company-notes for the symbol.
func (f *CompanyFacade) Notes(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "notes", api.Args{"symbol": symbol}, asTable)
}

// Peers returns peer companies (stock-peers).
func (f *CompanyFacade) Peers(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "peers", api.Args{"symbol": symbol}, asTable)
}

// Delisted pages through delisted companies.
func (f *CompanyFacade) Delisted(ctx context.Context, page, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "delisted", api.Args{"page": opt(page), "limit": opt(limit)}, asTable)
}

// EmployeeCount returns the latest reported employee counts.
func (f *CompanyFacade) EmployeeCount(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "employee-count", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// HistoricalEmployeeCount returns past employee counts.
func (f *CompanyFacade) HistoricalEmployeeCount(ctx context.Context, symbol string, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "historical-employee-count", api.Args{"symbol": symbol, "limit": opt(limit)}, asTable)
}

// MarketCap returns the current market capitalization.
func (f *CompanyFacade) MarketCap(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "market-cap", api.Args{"symbol": symbol}, asTable)
}

// MarketCapBatch is MarketCap for several symbols in one call.
func (f *CompanyFacade) MarketCapBatch(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "market-cap-batch", api.Args{"symbols": symbols}, asTable)
}

// HistoricalMarketCap returns daily market capitalization in the date range.
func (f *CompanyFacade) HistoricalMarketCap(ctx context.Context, symbol string, from, to date.Date, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "historical-market-cap",
		api.Args{"symbol": symbol, "from": from, "to": to, "limit": opt(limit)}, asTable)
}

// SharesFloat returns the free float of the symbol.
func (f *CompanyFacade) SharesFloat(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "shares-float", api.Args{"symbol": symbol}, asTable)
}

// SharesFloatAll pages through float data of all companies.
func (f *CompanyFacade) SharesFloatAll(ctx context.Context, page, limit int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "shares-float-all", api.Args{"page": opt(page), "limit": opt(limit)}, asTable)
}

// Executives lists key executives (key-executives).
func (f *CompanyFacade) Executives(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "executives", api.Args{"symbol": symbol}, asTable)
}

// ExecutiveCompensation returns reported executive pay.
func (f *CompanyFacade) ExecutiveCompensation(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "executive-compensation", api.Args{"symbol": symbol}, asTable)
}

// CompensationBenchmark for the year; year <= 0 means the latest.
func (f *CompanyFacade) CompensationBenchmark(ctx context.Context, year int, asTable bool) (*api.Response, error) {
	return f.call(ctx, "compensation-benchmark", api.Args{"year": opt(year)}, asTable)
}

// QuoteFacade serves quotes.
type QuoteFacade struct{ facade }

// RealTime returns full quotes for one or more symbols.
func (f *QuoteFacade) RealTime(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "real-time", api.Args{"symbol": symbols}, asTable)
}

// Quotes is RealTime decoded into records.
func (f *QuoteFacade) Quotes(ctx context.Context, symbols ...string) ([]Quote, error) {
	res, err := f.RealTime(ctx, symbols, false)
	if err != nil {
		return nil, err
	}
	var qs []Quote
	if err := res.Decode(&qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// Short returns abbreviated quotes (quote-short).
func (f *QuoteFacade) Short(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "short", api.Args{"symbol": symbols}, asTable)
}

// AftermarketTrade returns the last after-hours trade.
func (f *QuoteFacade) AftermarketTrade(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "aftermarket-trade", api.Args{"symbol": symbol}, asTable)
}

// AftermarketQuote returns the after-hours bid and ask.
func (f *QuoteFacade) AftermarketQuote(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "aftermarket-quote", api.Args{"symbol": symbol}, asTable)
}

// PriceChange returns price changes over standard horizons.
func (f *QuoteFacade) PriceChange(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "price-change", api.Args{"symbol": symbol}, asTable)
}

// Batch quotes a list of symbols.
func (f *QuoteFacade) Batch(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "batch", api.Args{"symbols": symbols}, asTable)
}

// BatchShort is Batch with abbreviated quotes.
func (f *QuoteFacade) BatchShort(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "batch-short", api.Args{"symbols": symbols}, asTable)
}

// BatchAftermarketTrade is AftermarketTrade for several symbols.
func (f *QuoteFacade) BatchAftermarketTrade(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "batch-aftermarket-trade", api.Args{"symbols": symbols}, asTable)
}

// BatchAftermarketQuote is AftermarketQuote for several symbols.
func (f *QuoteFacade) BatchAftermarketQuote(ctx context.Context, symbols []string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "batch-aftermarket-quote", api.Args{"symbols": symbols}, asTable)
}

// Exchange quotes every symbol listed on the exchange.
func (f *QuoteFacade) Exchange(ctx context.Context, exchange string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "exchange", api.Args{"exchange": exchange}, asTable)
}

// MutualFunds quotes all mutual funds.
func (f *QuoteFacade) MutualFunds(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "mutual-funds", nil, asTable)
}

// ETFs quotes all ETFs (batch-etf-quotes).
func (f *QuoteFacade) ETFs(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "etfs", nil, asTable)
}

// Commodities quotes all commodities.
func (f *QuoteFacade) Commodities(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "commodities", nil, asTable)
}

// Crypto quotes all cryptocurrencies.
func (f *QuoteFacade) Crypto(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "crypto", nil, asTable)
}

// Forex quotes all currency pairs.
func (f *QuoteFacade) Forex(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "forex", nil, asTable)
}

// Indexes quotes all market indexes.
func (f *QuoteFacade) Indexes(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "indexes", nil, asTable)
}

// ChartFacade serves historical prices. Zero from and to dates are not sent.
type ChartFacade struct{ facade }

// Light returns daily prices and volume only (historical-price-eod/light).
func (f *ChartFacade) Light(ctx context.Context, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "light", api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// Full returns daily OHLCV bars with change statistics.
func (f *ChartFacade) Full(ctx context.Context, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "full", api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// Prices is Full decoded into records.
func (f *ChartFacade) Prices(ctx context.Context, symbol string, from, to date.Date) ([]HistoricalPrice, error) {
	res, err := f.Full(ctx, symbol, from, to, false)
	if err != nil {
		return nil, err
	}
	var ps []HistoricalPrice
	if err := res.Decode(&ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// Unadjusted returns daily bars not adjusted for splits.
func (f *ChartFacade) Unadjusted(ctx context.Context, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "unadjusted", api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// DividendAdjusted returns daily bars adjusted for dividends.
func (f *ChartFacade) DividendAdjusted(ctx context.Context, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "dividend-adjusted", api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// Intraday prices at one of the Intervals, e.g. "5min".
func (f *ChartFacade) Intraday(ctx context.Context, interval, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, interval, api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// BatchEOD prices of all stocks on the date.
func (f *ChartFacade) BatchEOD(ctx context.Context, d date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "batch-eod", api.Args{"date": d}, asTable)
}

// MarketFacade serves the crypto and forex groups, which share their
// endpoints.
type MarketFacade struct{ facade }

// List returns all symbols of the market.
func (f *MarketFacade) List(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "list", nil, asTable)
}

// Quote returns the full quote of the symbol.
func (f *MarketFacade) Quote(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "quote", api.Args{"symbol": symbol}, asTable)
}

// QuoteShort returns an abbreviated quote.
func (f *MarketFacade) QuoteShort(ctx context.Context, symbol string, asTable bool) (*api.Response, error) {
	return f.call(ctx, "quote-short", api.Args{"symbol": symbol}, asTable)
}

// BatchQuotes quotes every symbol of the market.
func (f *MarketFacade) BatchQuotes(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "batch-quotes", nil, asTable)
}

// Light returns daily closing prices in the date range.
func (f *MarketFacade) Light(ctx context.Context, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "light", api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// Full returns daily OHLCV bars in the date range.
func (f *MarketFacade) Full(ctx context.Context, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, "full", api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// Intraday prices at "1min", "5min" or "1hour" intervals.
func (f *MarketFacade) Intraday(ctx context.Context, interval, symbol string, from, to date.Date, asTable bool) (*api.Response, error) {
	return f.call(ctx, interval, api.Args{"symbol": symbol, "from": from, "to": to}, asTable)
}

// DirectoryFacade lists symbols and reference data.
type DirectoryFacade struct{ facade }

// Stocks lists all stock symbols (stock-list).
func (f *DirectoryFacade) Stocks(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "stocks", nil, asTable)
}

// FinancialStatementSymbols lists symbols with financial statements.
func (f *DirectoryFacade) FinancialStatementSymbols(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "financial-statement-symbols", nil, asTable)
}

// CIKs lists known CIK numbers.
func (f *DirectoryFacade) CIKs(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "ciks", nil, asTable)
}

// SymbolChanges lists ticker renames.
func (f *DirectoryFacade) SymbolChanges(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "symbol-changes", nil, asTable)
}

// ETFs lists all ETF symbols.
func (f *DirectoryFacade) ETFs(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "etfs", nil, asTable)
}

// ActivelyTrading lists symbols that currently trade.
func (f *DirectoryFacade) ActivelyTrading(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "actively-trading", nil, asTable)
}

// EarningsTranscripts lists symbols with earnings call transcripts.
func (f *DirectoryFacade) EarningsTranscripts(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "earnings-transcripts", nil, asTable)
}

// Exchanges lists available exchanges.
func (f *DirectoryFacade) Exchanges(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "exchanges", nil, asTable)
}

// Sectors lists available sectors.
func (f *DirectoryFacade) Sectors(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "sectors", nil, asTable)
}

// Industries lists available industries.
func (f *DirectoryFacade) Industries(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "industries", nil, asTable)
}

// Countries lists available countries.
func (f *DirectoryFacade) Countries(ctx context.Context, asTable bool) (*api.Response, error) {
	return f.call(ctx, "countries", nil, asTable)
}
