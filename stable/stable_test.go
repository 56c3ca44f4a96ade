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
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stockparfait/fmp/api"
	"github.com/stockparfait/fmp/date"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	Convey("Endpoint table is consistent", t, func() {
		names := make(map[string]bool)
		for _, e := range Endpoints {
			So(names[e.FullName()], ShouldBeFalse)
			names[e.FullName()] = true
			So(e.Path, ShouldNotBeEmpty)
			So(strings.HasPrefix(e.Path, "/"), ShouldBeFalse)
			So(e.Doc, ShouldNotBeEmpty)
			So(e.CSV, ShouldBeFalse)
			params := make(map[string]bool)
			for _, p := range e.Params {
				So(params[p.Name], ShouldBeFalse)
				params[p.Name] = true
			}
		}
		So(Endpoints.Groups(), ShouldResemble, []string{
			"analyst", "bulk", "calendar", "chart", "company", "crypto", "directory",
			"etf", "forex", "news", "quote", "search", "sec", "statements",
		})
	})

	Convey("Lookup", t, func() {
		e, ok := Lookup("quote.real-time")
		So(ok, ShouldBeTrue)
		So(e.Path, ShouldEqual, "quote")

		e, ok = Lookup("chart.15min")
		So(ok, ShouldBeTrue)
		So(e.Path, ShouldEqual, "historical-chart/15min")

		e, ok = Lookup("statements.income")
		So(ok, ShouldBeTrue)
		So(e.Usage(), ShouldEqual, "symbol* period=annual limit")

		_, ok = Lookup("crypto.15min")
		So(ok, ShouldBeFalse)
	})
}

func TestFacades(t *testing.T) {
	t.Parallel()

	Convey("Facades against a test server", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()
		server.ResponseBody = []string{"[]"}

		c, err := New(api.Config{
			APIKey:     "testkey",
			BaseURL:    server.URL() + "/stable/",
			HTTPClient: server.Client(),
		})
		So(err, ShouldBeNil)
		ctx := context.Background()
		d1 := date.NewDate(2024, 1, 2)
		d2 := date.NewDate(2024, 2, 1)

		Convey("quotes with a symbol list", func() {
			server.ResponseBody = []string{`[
  {"symbol": "AAPL", "price": 190.5, "volume": 1000, "timestamp": 1704200000},
  {"symbol": "MSFT", "price": 370.1}
]`}
			qs, err := c.Quote.Quotes(ctx, "AAPL", "MSFT")
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/stable/quote")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"symbol": {"AAPL,MSFT"},
				"apikey": {"testkey"},
			})
			So(qs, ShouldResemble, []Quote{
				{Symbol: "AAPL", Price: 190.5, Volume: 1000, Timestamp: 1704200000},
				{Symbol: "MSFT", Price: 370.1},
			})
		})

		Convey("prices as records and as a table", func() {
			server.ResponseBody = []string{`[
  {"symbol": "AAPL", "date": "2024-01-03", "open": 184.2, "close": 184.25, "volume": 58414460},
  {"symbol": "AAPL", "date": "2024-01-02", "open": 187.15, "close": 185.64, "volume": 82488700}
]`}

			Convey("records", func() {
				ps, err := c.Chart.Prices(ctx, "AAPL", d1, date.Date{})
				So(err, ShouldBeNil)
				So(server.RequestQuery, ShouldResemble, url.Values{
					"symbol": {"AAPL"},
					"from":   {"2024-01-02"},
					"apikey": {"testkey"},
				})
				So(len(ps), ShouldEqual, 2)
				So(ps[1].Date, ShouldResemble, d1)
				So(ps[1].Close, ShouldEqual, 185.64)
			})

			Convey("table", func() {
				res, err := c.Chart.Full(ctx, "AAPL", d1, d2, true)
				So(err, ShouldBeNil)
				So(res.Table.Header, ShouldResemble, []string{"symbol", "date", "open", "close", "volume"})
				So(res.Table.Rows[1][1], ShouldResemble, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
			})
		})

		Convey("profiles", func() {
			server.ResponseBody = []string{`[{"symbol": "AAPL", "companyName": "Apple Inc.",
  "fullTimeEmployees": "164000", "ipoDate": "1980-12-12", "isEtf": false}]`}
			ps, err := c.Company.Profiles(ctx, "AAPL")
			So(err, ShouldBeNil)
			So(ps, ShouldResemble, []Profile{{
				Symbol:            "AAPL",
				CompanyName:       "Apple Inc.",
				FullTimeEmployees: 164000,
				IPODate:           date.NewDate(1980, 12, 12),
			}})
		})

		Convey("statements default to annual", func() {
			_, err := c.Statements.Income(ctx, "AAPL", "", 0, false)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/stable/income-statement")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"symbol": {"AAPL"},
				"period": {"annual"},
				"apikey": {"testkey"},
			})
		})

		Convey("statements with an explicit period and limit", func() {
			_, err := c.Statements.Income(ctx, "AAPL", Quarter, 4, false)
			So(err, ShouldBeNil)
			So(server.RequestQuery.Get("period"), ShouldEqual, "quarter")
			So(server.RequestQuery.Get("limit"), ShouldEqual, "4")
		})

		Convey("articles default to the first page of 10", func() {
			_, err := c.News.Articles(ctx, 0, 0, false)
			So(err, ShouldBeNil)
			So(server.RequestQuery, ShouldResemble, url.Values{
				"page":   {"0"},
				"size":   {"10"},
				"apikey": {"testkey"},
			})
		})

		Convey("bulk CSV is detected", func() {
			server.ResponseBody = []string{"\"symbol\",\"rating\"\n\"AAPL\",\"A\"\n"}
			res, err := c.Bulk.Profile(ctx, 0, false)
			So(err, ShouldBeNil)
			So(server.RequestQuery.Get("part"), ShouldEqual, "0")
			So(res.IsTable(), ShouldBeTrue)
			So(res.Table.Header, ShouldResemble, []string{"symbol", "rating"})
		})

		Convey("screener sends only the set criteria", func() {
			yes := true
			_, err := c.Search.Screener(ctx, ScreenerQuery{
				MarketCapMoreThan: 1e9,
				Sector:            "Technology",
				IsETF:             &yes,
				Limit:             5,
			}, false)
			So(err, ShouldBeNil)
			So(server.RequestQuery, ShouldResemble, url.Values{
				"marketCapMoreThan": {"1000000000"},
				"sector":            {"Technology"},
				"isEtf":             {"true"},
				"limit":             {"5"},
				"apikey":            {"testkey"},
			})
		})

		Convey("missing required arguments fail without a request", func() {
			_, err := c.Chart.Full(ctx, "", d1, d2, false)
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
			_, err = c.Quote.RealTime(ctx, nil, false)
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
			So(server.RequestPath, ShouldEqual, "")
		})

		Convey("unknown interval", func() {
			_, err := c.Crypto.Intraday(ctx, "15min", "BTCUSD", d1, d2, false)
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
		})
	})
}

func TestFacadePaths(t *testing.T) {
	t.Parallel()

	Convey("Every facade method resolves to its endpoint", t, func() {
		var lastPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			w.Write([]byte("[]"))
		}))
		defer server.Close()

		c, err := New(api.Config{APIKey: "testkey", BaseURL: server.URL + "/stable/"})
		So(err, ShouldBeNil)
		ctx := context.Background()
		d1 := date.NewDate(2024, 1, 2)
		d2 := date.NewDate(2024, 2, 1)

		type call func() (*api.Response, error)
		syms := []string{"AAPL"}
		calls := map[string]call{
			"search-symbol":            func() (*api.Response, error) { return c.Search.Symbol(ctx, "app", 5, "", false) },
			"search-name":              func() (*api.Response, error) { return c.Search.Name(ctx, "apple", 0, "NASDAQ", false) },
			"search-cik":               func() (*api.Response, error) { return c.Search.CIK(ctx, "320193", 0, false) },
			"search-cusip":             func() (*api.Response, error) { return c.Search.CUSIP(ctx, "037833100", false) },
			"search-isin":              func() (*api.Response, error) { return c.Search.ISIN(ctx, "US0378331005", false) },
			"search-exchange-variants": func() (*api.Response, error) { return c.Search.ExchangeVariants(ctx, "AAPL", false) },
			"profile":                  func() (*api.Response, error) { return c.Company.Profile(ctx, syms, false) },
			"profile-cik":              func() (*api.Response, error) { return c.Company.ProfileByCIK(ctx, "320193", false) },
			"company-notes":            func() (*api.Response, error) { return c.Company.Notes(ctx, "AAPL", false) },
			"stock-peers":              func() (*api.Response, error) { return c.Company.Peers(ctx, "AAPL", false) },
			"delisted-companies":       func() (*api.Response, error) { return c.Company.Delisted(ctx, 1, 10, false) },
			"employee-count":           func() (*api.Response, error) { return c.Company.EmployeeCount(ctx, "AAPL", 0, false) },
			"historical-employee-count": func() (*api.Response, error) {
				return c.Company.HistoricalEmployeeCount(ctx, "AAPL", 0, false)
			},
			"market-capitalization":       func() (*api.Response, error) { return c.Company.MarketCap(ctx, "AAPL", false) },
			"market-capitalization-batch": func() (*api.Response, error) { return c.Company.MarketCapBatch(ctx, syms, false) },
			"historical-market-capitalization": func() (*api.Response, error) {
				return c.Company.HistoricalMarketCap(ctx, "AAPL", d1, d2, 0, true)
			},
			"shares-float":                      func() (*api.Response, error) { return c.Company.SharesFloat(ctx, "AAPL", false) },
			"shares-float-all":                  func() (*api.Response, error) { return c.Company.SharesFloatAll(ctx, 0, 0, false) },
			"key-executives":                    func() (*api.Response, error) { return c.Company.Executives(ctx, "AAPL", false) },
			"governance-executive-compensation": func() (*api.Response, error) { return c.Company.ExecutiveCompensation(ctx, "AAPL", false) },
			"executive-compensation-benchmark":  func() (*api.Response, error) { return c.Company.CompensationBenchmark(ctx, 2024, false) },
			"quote-short":                       func() (*api.Response, error) { return c.Quote.Short(ctx, syms, false) },
			"aftermarket-trade":                 func() (*api.Response, error) { return c.Quote.AftermarketTrade(ctx, "AAPL", false) },
			"aftermarket-quote":                 func() (*api.Response, error) { return c.Quote.AftermarketQuote(ctx, "AAPL", false) },
			"stock-price-change":                func() (*api.Response, error) { return c.Quote.PriceChange(ctx, "AAPL", false) },
			"batch-quote":                       func() (*api.Response, error) { return c.Quote.Batch(ctx, syms, false) },
			"batch-quote-short":                 func() (*api.Response, error) { return c.Quote.BatchShort(ctx, syms, false) },
			"batch-aftermarket-trade":           func() (*api.Response, error) { return c.Quote.BatchAftermarketTrade(ctx, syms, false) },
			"batch-aftermarket-quote":           func() (*api.Response, error) { return c.Quote.BatchAftermarketQuote(ctx, syms, false) },
			"batch-exchange-quote":              func() (*api.Response, error) { return c.Quote.Exchange(ctx, "NASDAQ", false) },
			"batch-mutualfund-quotes":           func() (*api.Response, error) { return c.Quote.MutualFunds(ctx, false) },
			"batch-etf-quotes":                  func() (*api.Response, error) { return c.Quote.ETFs(ctx, false) },
			"batch-commodity-quotes":            func() (*api.Response, error) { return c.Quote.Commodities(ctx, false) },
			"batch-crypto-quotes":               func() (*api.Response, error) { return c.Crypto.BatchQuotes(ctx, false) },
			"batch-forex-quotes":                func() (*api.Response, error) { return c.Quote.Forex(ctx, false) },
			"batch-index-quotes":                func() (*api.Response, error) { return c.Quote.Indexes(ctx, false) },
			"historical-price-eod/light":        func() (*api.Response, error) { return c.Chart.Light(ctx, "AAPL", d1, d2, true) },
			"historical-price-eod/non-split-adjusted": func() (*api.Response, error) {
				return c.Chart.Unadjusted(ctx, "AAPL", d1, d2, false)
			},
			"historical-price-eod/dividend-adjusted": func() (*api.Response, error) {
				return c.Chart.DividendAdjusted(ctx, "AAPL", d1, d2, false)
			},
			"historical-chart/4hour":              func() (*api.Response, error) { return c.Chart.Intraday(ctx, "4hour", "AAPL", d1, d2, false) },
			"historical-chart/1hour":              func() (*api.Response, error) { return c.Forex.Intraday(ctx, "1hour", "EURUSD", d1, d2, false) },
			"batch-eod":                           func() (*api.Response, error) { return c.Chart.BatchEOD(ctx, d1, false) },
			"cryptocurrency-list":                 func() (*api.Response, error) { return c.Crypto.List(ctx, false) },
			"forex-list":                          func() (*api.Response, error) { return c.Forex.List(ctx, false) },
			"balance-sheet-statement":             func() (*api.Response, error) { return c.Statements.BalanceSheet(ctx, "AAPL", "", 0, false) },
			"cash-flow-statement":                 func() (*api.Response, error) { return c.Statements.CashFlow(ctx, "AAPL", "", 0, false) },
			"key-metrics":                         func() (*api.Response, error) { return c.Statements.KeyMetrics(ctx, "AAPL", "", 0, false) },
			"ratios":                              func() (*api.Response, error) { return c.Statements.Ratios(ctx, "AAPL", "", 0, false) },
			"owner-earnings":                      func() (*api.Response, error) { return c.Statements.OwnerEarnings(ctx, "AAPL", "", 0, false) },
			"enterprise-values":                   func() (*api.Response, error) { return c.Statements.EnterpriseValues(ctx, "AAPL", "", 0, false) },
			"income-statement-growth":             func() (*api.Response, error) { return c.Statements.IncomeGrowth(ctx, "AAPL", "", 0, false) },
			"balance-sheet-statement-growth":      func() (*api.Response, error) { return c.Statements.BalanceSheetGrowth(ctx, "AAPL", "", 0, false) },
			"cash-flow-statement-growth":          func() (*api.Response, error) { return c.Statements.CashFlowGrowth(ctx, "AAPL", "", 0, false) },
			"financial-growth":                    func() (*api.Response, error) { return c.Statements.FinancialGrowth(ctx, "AAPL", "", 0, false) },
			"latest-financial-statements":         func() (*api.Response, error) { return c.Statements.Latest(ctx, 0, 0, true) },
			"income-statement-ttm":                func() (*api.Response, error) { return c.Statements.IncomeTTM(ctx, "AAPL", false) },
			"balance-sheet-statement-ttm":         func() (*api.Response, error) { return c.Statements.BalanceSheetTTM(ctx, "AAPL", false) },
			"cash-flow-statement-ttm":             func() (*api.Response, error) { return c.Statements.CashFlowTTM(ctx, "AAPL", false) },
			"key-metrics-ttm":                     func() (*api.Response, error) { return c.Statements.KeyMetricsTTM(ctx, "AAPL", false) },
			"ratios-ttm":                          func() (*api.Response, error) { return c.Statements.RatiosTTM(ctx, "AAPL", false) },
			"financial-scores":                    func() (*api.Response, error) { return c.Statements.Scores(ctx, "AAPL", false) },
			"analyst-estimates":                   func() (*api.Response, error) { return c.Analyst.Estimates(ctx, "AAPL", "", 0, false) },
			"ratings-snapshot":                    func() (*api.Response, error) { return c.Analyst.RatingsSnapshot(ctx, "AAPL", false) },
			"ratings-historical":                  func() (*api.Response, error) { return c.Analyst.RatingsHistorical(ctx, "AAPL", 0, false) },
			"price-target-summary":                func() (*api.Response, error) { return c.Analyst.PriceTargetSummary(ctx, "AAPL", false) },
			"price-target-consensus":              func() (*api.Response, error) { return c.Analyst.PriceTargetConsensus(ctx, "AAPL", false) },
			"price-target-news":                   func() (*api.Response, error) { return c.Analyst.PriceTargetNews(ctx, "AAPL", 0, false) },
			"price-target-latest-news":            func() (*api.Response, error) { return c.Analyst.PriceTargetLatestNews(ctx, 0, false) },
			"grades":                              func() (*api.Response, error) { return c.Analyst.Grades(ctx, "AAPL", 0, false) },
			"grades-historical":                   func() (*api.Response, error) { return c.Analyst.GradesHistorical(ctx, "AAPL", 0, false) },
			"grades-consensus":                    func() (*api.Response, error) { return c.Analyst.GradesConsensus(ctx, "AAPL", false) },
			"grades-news":                         func() (*api.Response, error) { return c.Analyst.GradesNews(ctx, "AAPL", 0, false) },
			"grades-latest-news":                  func() (*api.Response, error) { return c.Analyst.GradesLatestNews(ctx, 0, false) },
			"dividends":                           func() (*api.Response, error) { return c.Calendar.Dividends(ctx, "AAPL", 0, true) },
			"dividends-calendar":                  func() (*api.Response, error) { return c.Calendar.DividendsCalendar(ctx, d1, d2, false) },
			"earnings":                            func() (*api.Response, error) { return c.Calendar.Earnings(ctx, "AAPL", 0, false) },
			"earnings-calendar":                   func() (*api.Response, error) { return c.Calendar.EarningsCalendar(ctx, d1, d2, false) },
			"ipos-calendar":                       func() (*api.Response, error) { return c.Calendar.IPOs(ctx, d1, d2, false) },
			"ipos-disclosure":                     func() (*api.Response, error) { return c.Calendar.IPOsDisclosure(ctx, d1, d2, false) },
			"ipos-prospectus":                     func() (*api.Response, error) { return c.Calendar.IPOsProspectus(ctx, d1, d2, false) },
			"splits":                              func() (*api.Response, error) { return c.Calendar.Splits(ctx, "AAPL", 0, false) },
			"splits-calendar":                     func() (*api.Response, error) { return c.Calendar.SplitsCalendar(ctx, d1, d2, false) },
			"news/general-latest":                 func() (*api.Response, error) { return c.News.General(ctx, 0, false) },
			"news/press-releases-latest":          func() (*api.Response, error) { return c.News.PressReleases(ctx, 0, false) },
			"news/stock-latest":                   func() (*api.Response, error) { return c.News.Stock(ctx, 0, false) },
			"news/crypto-latest":                  func() (*api.Response, error) { return c.News.Crypto(ctx, 0, false) },
			"news/forex-latest":                   func() (*api.Response, error) { return c.News.Forex(ctx, 0, false) },
			"news/press-releases":                 func() (*api.Response, error) { return c.News.SearchPressReleases(ctx, syms, 0, false) },
			"news/stock":                          func() (*api.Response, error) { return c.News.SearchStock(ctx, syms, 0, false) },
			"news/crypto":                         func() (*api.Response, error) { return c.News.SearchCrypto(ctx, []string{"BTCUSD"}, 0, false) },
			"news/forex":                          func() (*api.Response, error) { return c.News.SearchForex(ctx, []string{"EURUSD"}, 0, false) },
			"etf/holdings":                        func() (*api.Response, error) { return c.ETF.Holdings(ctx, "SPY", false) },
			"etf/info":                            func() (*api.Response, error) { return c.ETF.Info(ctx, "SPY", false) },
			"etf/country-weightings":              func() (*api.Response, error) { return c.ETF.CountryWeightings(ctx, "SPY", false) },
			"etf/asset-exposure":                  func() (*api.Response, error) { return c.ETF.AssetExposure(ctx, "AAPL", false) },
			"etf/sector-weightings":               func() (*api.Response, error) { return c.ETF.SectorWeightings(ctx, "SPY", false) },
			"funds/disclosure-holders-latest":     func() (*api.Response, error) { return c.ETF.DisclosureHoldersLatest(ctx, "AAPL", false) },
			"funds/disclosure":                    func() (*api.Response, error) { return c.ETF.Disclosure(ctx, "VWO", 2023, 4, false) },
			"funds/disclosure-holders-search":     func() (*api.Response, error) { return c.ETF.DisclosureHoldersSearch(ctx, "Vanguard", false) },
			"funds/disclosure-dates":              func() (*api.Response, error) { return c.ETF.DisclosureDates(ctx, "VWO", false) },
			"sec-filings-8k":                      func() (*api.Response, error) { return c.SEC.Filings8K(ctx, d1, d2, 0, false) },
			"sec-filings-financials":              func() (*api.Response, error) { return c.SEC.FilingsFinancials(ctx, d1, d2, 0, false) },
			"sec-filings-search/form-type":        func() (*api.Response, error) { return c.SEC.SearchFormType(ctx, "8-K", d1, d2, 0, false) },
			"sec-filings-search/symbol":           func() (*api.Response, error) { return c.SEC.SearchSymbol(ctx, "AAPL", d1, d2, 0, false) },
			"sec-filings-search/cik":              func() (*api.Response, error) { return c.SEC.SearchCIK(ctx, "320193", d1, d2, 0, false) },
			"sec-filings-company-search/name":     func() (*api.Response, error) { return c.SEC.CompanySearchName(ctx, "Berkshire", false) },
			"sec-filings-company-search/symbol":   func() (*api.Response, error) { return c.SEC.CompanySearchSymbol(ctx, "AAPL", false) },
			"sec-filings-company-search/cik":      func() (*api.Response, error) { return c.SEC.CompanySearchCIK(ctx, "320193", false) },
			"sec-profile":                         func() (*api.Response, error) { return c.SEC.Profile(ctx, "AAPL", false) },
			"rating-bulk":                         func() (*api.Response, error) { return c.Bulk.Rating(ctx, false) },
			"dcf-bulk":                            func() (*api.Response, error) { return c.Bulk.DCF(ctx, false) },
			"scores-bulk":                         func() (*api.Response, error) { return c.Bulk.Scores(ctx, false) },
			"price-target-summary-bulk":           func() (*api.Response, error) { return c.Bulk.PriceTargetSummary(ctx, false) },
			"etf-holder-bulk":                     func() (*api.Response, error) { return c.Bulk.ETFHolder(ctx, 1, false) },
			"upgrades-downgrades-consensus-bulk":  func() (*api.Response, error) { return c.Bulk.UpgradesDowngradesConsensus(ctx, false) },
			"key-metrics-ttm-bulk":                func() (*api.Response, error) { return c.Bulk.KeyMetricsTTM(ctx, false) },
			"ratios-ttm-bulk":                     func() (*api.Response, error) { return c.Bulk.RatiosTTM(ctx, false) },
			"peers-bulk":                          func() (*api.Response, error) { return c.Bulk.Peers(ctx, false) },
			"earnings-surprises-bulk":             func() (*api.Response, error) { return c.Bulk.EarningsSurprises(ctx, 2024, false) },
			"income-statement-bulk":               func() (*api.Response, error) { return c.Bulk.IncomeStatement(ctx, 2024, "annual", false) },
			"income-statement-growth-bulk":        func() (*api.Response, error) { return c.Bulk.IncomeStatementGrowth(ctx, 2024, "annual", false) },
			"balance-sheet-statement-bulk":        func() (*api.Response, error) { return c.Bulk.BalanceSheet(ctx, 2024, "annual", false) },
			"balance-sheet-statement-growth-bulk": func() (*api.Response, error) { return c.Bulk.BalanceSheetGrowth(ctx, 2024, "annual", false) },
			"cash-flow-statement-bulk":            func() (*api.Response, error) { return c.Bulk.CashFlow(ctx, 2024, "annual", false) },
			"cash-flow-statement-growth-bulk":     func() (*api.Response, error) { return c.Bulk.CashFlowGrowth(ctx, 2024, "annual", false) },
			"stock-list":                          func() (*api.Response, error) { return c.Directory.Stocks(ctx, false) },
			"financial-statement-symbol-list":     func() (*api.Response, error) { return c.Directory.FinancialStatementSymbols(ctx, false) },
			"cik-list":                            func() (*api.Response, error) { return c.Directory.CIKs(ctx, false) },
			"symbol-change":                       func() (*api.Response, error) { return c.Directory.SymbolChanges(ctx, false) },
			"etf-list":                            func() (*api.Response, error) { return c.Directory.ETFs(ctx, false) },
			"actively-trading-list":               func() (*api.Response, error) { return c.Directory.ActivelyTrading(ctx, false) },
			"earnings-transcript-list":            func() (*api.Response, error) { return c.Directory.EarningsTranscripts(ctx, false) },
			"available-exchanges":                 func() (*api.Response, error) { return c.Directory.Exchanges(ctx, false) },
			"available-sectors":                   func() (*api.Response, error) { return c.Directory.Sectors(ctx, false) },
			"available-industries":                func() (*api.Response, error) { return c.Directory.Industries(ctx, false) },
			"available-countries":                 func() (*api.Response, error) { return c.Directory.Countries(ctx, false) },
		}
		for path, f := range calls {
			_, err := f()
			So(err, ShouldBeNil)
			So(lastPath, ShouldEqual, "/stable/"+path)
		}
	})
}
