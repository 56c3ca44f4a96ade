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
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stockparfait/fmp/api"
	"github.com/stockparfait/fmp/date"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEndpoints(t *testing.T) {
	t.Parallel()

	Convey("Legacy endpoint table", t, func() {
		names := make(map[string]bool)
		for _, e := range Endpoints {
			So(names[e.FullName()], ShouldBeFalse)
			names[e.FullName()] = true
			So(e.Group, ShouldEqual, GroupBulk)
			So(e.CSV, ShouldEqual, e.Name != "batch-eod")
		}
		e, ok := Lookup("bulk.peers")
		So(ok, ShouldBeTrue)
		So(e.Path, ShouldEqual, "stock_peers_bulk")
		e, ok = Lookup("bulk.ratios")
		So(ok, ShouldBeTrue)
		So(e.Usage(), ShouldEqual, "year* period*")
		_, ok = Lookup("quote.real-time")
		So(ok, ShouldBeFalse)
	})
}

func TestBulk(t *testing.T) {
	t.Parallel()

	Convey("Legacy bulk facade", t, func() {
		server := testutil.NewTestServer()
		defer server.Close()

		c, err := New(api.Config{
			APIKey:     "testkey",
			BaseURL:    server.URL() + "/api/v3/",
			HTTPClient: server.Client(),
		})
		So(err, ShouldBeNil)
		ctx := context.Background()

		Convey("defaults to the legacy base URL", func() {
			c, err := New(api.Config{APIKey: "testkey"})
			So(err, ShouldBeNil)
			So(c.BaseURL(), ShouldEqual, api.LegacyURL)
		})

		Convey("statements are parsed as CSV", func() {
			server.ResponseBody = []string{"symbol,revenue\nAAPL,100\nMSFT,90\n"}
			res, err := c.Bulk.IncomeStatements(ctx, 2023, "annual", false)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v3/income-statement-bulk")
			So(server.RequestQuery, ShouldResemble, url.Values{
				"year":   {"2023"},
				"period": {"annual"},
				"apikey": {"testkey"},
			})
			So(res.IsTable(), ShouldBeTrue)
			recs, err := res.Records()
			So(err, ShouldBeNil)
			So(recs, ShouldResemble, []map[string]any{
				{"symbol": "AAPL", "revenue": 100.0},
				{"symbol": "MSFT", "revenue": 90.0},
			})
		})

		Convey("CSV is expected without sniffing", func() {
			server.ResponseBody = []string{"not json"}
			res, err := c.Bulk.StockRatings(ctx, false)
			So(err, ShouldBeNil)
			So(res.Table.Header, ShouldResemble, []string{"not json"})
			So(res.Table.Len(), ShouldEqual, 0)
		})

		Convey("an empty export is an API failure", func() {
			server.ResponseBody = []string{""}
			_, err := c.Bulk.DCFValuations(ctx, false)
			So(api.KindOf(err), ShouldEqual, api.APIFailure)
		})

		Convey("partitioned exports default to part 0", func() {
			server.ResponseBody = []string{"symbol\nSPY\n"}
			_, err := c.Bulk.CompanyProfiles(ctx, 0, true)
			So(err, ShouldBeNil)
			So(server.RequestQuery.Get("part"), ShouldEqual, "0")
		})

		Convey("batch EOD is JSON with a date column", func() {
			server.ResponseBody = []string{`[{"symbol": "AAPL", "date": "2024-01-02", "close": 185.64}]`}
			res, err := c.Bulk.BatchEOD(ctx, date.NewDate(2024, 1, 2), true)
			So(err, ShouldBeNil)
			So(server.RequestPath, ShouldEqual, "/api/v3/batch-historical-eod")
			So(server.RequestQuery.Get("date"), ShouldEqual, "2024-01-02")
			d, ok := res.Table.Value(0, "date")
			So(ok, ShouldBeTrue)
			So(d, ShouldResemble, date.NewDate(2024, 1, 2).ToTime())
		})

		Convey("validation happens before the request", func() {
			_, err := c.Bulk.BatchEOD(ctx, "2024-13-01", false)
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
			_, err = c.Bulk.Ratios(ctx, 2023, "", false)
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
			So(server.RequestPath, ShouldEqual, "")
		})
	})

	Convey("Every bulk method resolves to its endpoint", t, func() {
		var lastPath string
		var lastQuery url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastPath = r.URL.Path
			lastQuery = r.URL.Query()
			w.Write([]byte("symbol\nAAPL\n"))
		}))
		defer server.Close()

		c, err := New(api.Config{APIKey: "testkey", BaseURL: server.URL + "/api/v3/"})
		So(err, ShouldBeNil)
		ctx := context.Background()
		b := c.Bulk

		type call func() (*api.Response, error)
		calls := map[string]call{
			"income-statement-bulk":               func() (*api.Response, error) { return b.IncomeStatements(ctx, 2023, "quarter", false) },
			"balance-sheet-statement-bulk":        func() (*api.Response, error) { return b.BalanceSheetStatements(ctx, 2023, "quarter", false) },
			"cash-flow-statement-bulk":            func() (*api.Response, error) { return b.CashFlowStatements(ctx, 2023, "quarter", false) },
			"ratios-bulk":                         func() (*api.Response, error) { return b.Ratios(ctx, 2023, "quarter", false) },
			"key-metrics-bulk":                    func() (*api.Response, error) { return b.KeyMetrics(ctx, 2023, "quarter", false) },
			"financial-growth-bulk":               func() (*api.Response, error) { return b.FinancialGrowth(ctx, 2023, "quarter", false) },
			"income-statement-growth-bulk":        func() (*api.Response, error) { return b.IncomeStatementGrowth(ctx, 2023, "quarter", false) },
			"balance-sheet-statement-growth-bulk": func() (*api.Response, error) { return b.BalanceSheetGrowth(ctx, 2023, "quarter", false) },
			"cash-flow-statement-growth-bulk":     func() (*api.Response, error) { return b.CashFlowGrowth(ctx, 2023, "quarter", false) },
		}
		for path, f := range calls {
			res, err := f()
			So(err, ShouldBeNil)
			So(res.IsTable(), ShouldBeTrue)
			So(lastPath, ShouldEqual, "/api/v3/"+path)
			So(lastQuery.Get("year"), ShouldEqual, "2023")
			So(lastQuery.Get("period"), ShouldEqual, "quarter")
		}

		plain := map[string]call{
			"earnings-surprises-bulk":            func() (*api.Response, error) { return b.EarningsSurprises(ctx, false) },
			"profile-bulk":                       func() (*api.Response, error) { return b.CompanyProfiles(ctx, 2, false) },
			"rating-bulk":                        func() (*api.Response, error) { return b.StockRatings(ctx, false) },
			"dcf-bulk":                           func() (*api.Response, error) { return b.DCFValuations(ctx, false) },
			"key-metrics-ttm-bulk":               func() (*api.Response, error) { return b.KeyMetricsTTM(ctx, false) },
			"ratios-ttm-bulk":                    func() (*api.Response, error) { return b.RatiosTTM(ctx, false) },
			"scores-bulk":                        func() (*api.Response, error) { return b.FinancialScores(ctx, false) },
			"price-target-summary-bulk":          func() (*api.Response, error) { return b.PriceTargetSummary(ctx, false) },
			"upgrades-downgrades-consensus-bulk": func() (*api.Response, error) { return b.UpgradesDowngradesConsensus(ctx, false) },
			"etf-holder-bulk":                    func() (*api.Response, error) { return b.ETFHolders(ctx, 1, false) },
			"stock_peers_bulk":                   func() (*api.Response, error) { return b.StockPeers(ctx, false) },
		}
		for path, f := range plain {
			res, err := f()
			So(err, ShouldBeNil)
			So(res.Table.Header, ShouldResemble, []string{"symbol"})
			So(lastPath, ShouldEqual, "/api/v3/"+path)
		}
	})
}
