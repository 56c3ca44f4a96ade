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

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stockparfait/fmp/api"
	"github.com/stockparfait/testutil"

	. "github.com/smartystreets/goconvey/convey"
)

func testHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("apikey") != "filekey" {
		http.Error(w, "bad key", http.StatusUnauthorized)
		return
	}
	switch r.URL.Path {
	case "/stable/quote":
		w.Write([]byte(`[{"symbol": "AAPL", "price": 190.5}]`))
	case "/stable/historical-price-eod/full":
		s := r.URL.Query().Get("symbol")
		if s == "BAD" {
			http.Error(w, "no such symbol", http.StatusNotFound)
			return
		}
		w.Write([]byte(`[
  {"symbol": "` + s + `", "date": "2024-01-03", "close": 2},
  {"symbol": "` + s + `", "date": "2024-01-02", "close": 1}
]`))
	case "/api/v3/rating-bulk":
		w.Write([]byte("symbol,rating\nAAPL,A\n"))
	default:
		http.NotFound(w, r)
	}
}

func TestMain(t *testing.T) {
	t.Parallel()

	tmpdir, tmpdirErr := os.MkdirTemp("", "test_fmp_app")
	defer os.RemoveAll(tmpdir)
	configFile := filepath.Join(tmpdir, "config.toml")

	server := httptest.NewServer(http.HandlerFunc(testHandler))
	defer server.Close()

	Convey("Setup succeeded", t, func() {
		So(tmpdirErr, ShouldBeNil)
		So(testutil.WriteFile(configFile, `key = "filekey"
base_url = "`+server.URL+`/stable/"
legacy_base_url = "`+server.URL+`/api/v3/"
`), ShouldBeNil)
	})

	noEnv := func(string) (string, bool) { return "", false }
	run := func(args ...string) (string, error) {
		var buf bytes.Buffer
		cmd := newCommand(&buf, noEnv)
		cmd.SetArgs(append(args, "--config", configFile))
		err := cmd.ExecuteContext(context.Background())
		return buf.String(), err
	}

	Convey("parseArgs", t, func() {
		args, err := parseArgs([]string{"symbol=AAPL,MSFT", "limit=5", "empty="})
		So(err, ShouldBeNil)
		So(args, ShouldResemble, api.Args{"symbol": "AAPL,MSFT", "limit": "5", "empty": ""})

		_, err = parseArgs([]string{"symbol"})
		So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
		_, err = parseArgs([]string{"a=1", "a=2"})
		So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
	})

	Convey("endpoints", t, func() {
		out, err := run("endpoints", "quote", "--format", "csv")
		So(err, ShouldBeNil)
		So(out, ShouldStartWith, "name,path,params,doc\nquote.real-time,quote,symbol*,Real-time quotes\n")

		out, err = run("endpoints", "--legacy", "--format", "text")
		So(err, ShouldBeNil)
		So(out, ShouldContainSubstring, "bulk.peers")
		So(out, ShouldNotContainSubstring, "quote.real-time")

		_, err = run("endpoints", "nope")
		So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
	})

	Convey("call", t, func() {
		Convey("JSON output", func() {
			out, err := run("call", "quote.real-time", "symbol=AAPL")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, `[
  {
    "price": 190.5,
    "symbol": "AAPL"
  }
]
`)
		})

		Convey("YAML output", func() {
			out, err := run("call", "quote.real-time", "symbol=AAPL", "--format", "yaml")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "- price: 190.5\n  symbol: AAPL\n")
		})

		Convey("CSV output keeps the column order", func() {
			out, err := run("call", "quote.real-time", "symbol=AAPL", "--format", "csv")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "symbol,price\nAAPL,190.5\n")
		})

		Convey("selection", func() {
			out, err := run("call", "quote.real-time", "symbol=AAPL", "--select", "0.price")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "190.5\n")

			_, err = run("call", "quote.real-time", "symbol=AAPL", "--select", "5.price")
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
		})

		Convey("legacy CSV", func() {
			out, err := run("call", "bulk.rating", "--legacy", "--format", "csv")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "symbol,rating\nAAPL,A\n")
		})

		Convey("errors", func() {
			_, err := run("call", "quote.nope")
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)

			_, err = run("call", "quote.real-time")
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)

			_, err = run("call", "quote.real-time", "symbol=AAPL", "--format", "xml")
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)

			_, err = run("call", "quote.real-time", "symbol=AAPL", "--key", "wrong")
			So(api.KindOf(err), ShouldEqual, api.TransportFailure)
		})

		Convey("missing key", func() {
			var buf bytes.Buffer
			cmd := newCommand(&buf, noEnv)
			cmd.SetArgs([]string{"call", "quote.real-time", "symbol=AAPL",
				"--config", filepath.Join(tmpdir, "missing.toml")})
			err := cmd.ExecuteContext(context.Background())
			So(api.KindOf(err), ShouldEqual, api.ConfigFailure)
		})
	})

	Convey("get", t, func() {
		out, err := run("get", "quote", "symbol=AAPL", "--format", "text")
		So(err, ShouldBeNil)
		So(out, ShouldEqual, `symbol | price
------ | -----
  AAPL | 190.5
`)

		out, err = run("get", "rating-bulk", "--legacy", "--csv", "--format", "json")
		So(err, ShouldBeNil)
		So(strings.Join(strings.Fields(out), ""), ShouldEqual, `[{"rating":"A","symbol":"AAPL"}]`)

		_, err = run("get", "https://example.com/quote")
		So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
	})

	Convey("history", t, func() {
		Convey("stacks the symbols in order", func() {
			out, err := run("history", "MSFT", "AAPL", "--from", "2024-01-02", "--format", "csv", "--jobs", "2")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, `symbol,date,close
MSFT,2024-01-03,2
MSFT,2024-01-02,1
AAPL,2024-01-03,2
AAPL,2024-01-02,1
`)
		})

		Convey("describe", func() {
			out, err := run("history", "AAPL", "--describe", "close", "--format", "yaml")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "count: 2")
			So(out, ShouldContainSubstring, "mean: 1.5")
		})

		Convey("a failed symbol fails the command", func() {
			_, err := run("history", "AAPL", "BAD")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "BAD")
		})

		Convey("invalid date", func() {
			_, err := run("history", "AAPL", "--from", "2024-13-01")
			So(api.KindOf(err), ShouldEqual, api.ValidationFailure)
		})
	})
}
