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

// Package stable implements the endpoints of the current ("stable") FMP API
// generation.
//
// Endpoints are declared in the Endpoints table and grouped into facades
// hanging off Client, e.g.:
//
//	c, err := stable.New(api.Config{APIKey: key})
//	res, err := c.Quote.RealTime(ctx, []string{"AAPL", "MSFT"}, false)
//
// Every facade method makes exactly one request. With asTable the response is
// returned as a table with its date columns parsed into time.Time.
package stable

import (
	"context"

	"github.com/stockparfait/fmp/api"
)

// Client of the stable API with one facade per endpoint group.
type Client struct {
	*api.Client

	Search     *SearchFacade
	Company    *CompanyFacade
	Quote      *QuoteFacade
	Chart      *ChartFacade
	Statements *StatementsFacade
	Analyst    *AnalystFacade
	Calendar   *CalendarFacade
	News       *NewsFacade
	ETF        *ETFFacade
	Crypto     *MarketFacade
	Forex      *MarketFacade
	SEC        *SECFacade
	Bulk       *BulkFacade
	Directory  *DirectoryFacade
}

// New creates a stable API client. The base URL defaults to api.StableURL.
func New(cfg api.Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = api.StableURL
	}
	c, err := api.New(cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(c), nil
}

// Wrap an existing pipeline client into the stable facades.
func Wrap(c *api.Client) *Client {
	f := func(group string) facade { return facade{client: c, group: group} }
	return &Client{
		Client:     c,
		Search:     &SearchFacade{f(GroupSearch)},
		Company:    &CompanyFacade{f(GroupCompany)},
		Quote:      &QuoteFacade{f(GroupQuote)},
		Chart:      &ChartFacade{f(GroupChart)},
		Statements: &StatementsFacade{f(GroupStatements)},
		Analyst:    &AnalystFacade{f(GroupAnalyst)},
		Calendar:   &CalendarFacade{f(GroupCalendar)},
		News:       &NewsFacade{f(GroupNews)},
		ETF:        &ETFFacade{f(GroupETF)},
		Crypto:     &MarketFacade{f(GroupCrypto)},
		Forex:      &MarketFacade{f(GroupForex)},
		SEC:        &SECFacade{f(GroupSEC)},
		Bulk:       &BulkFacade{f(GroupBulk)},
		Directory:  &DirectoryFacade{f(GroupDirectory)},
	}
}

type facade struct {
	client *api.Client
	group  string
}

// call the endpoint "group.name" of the facade.
func (f facade) call(ctx context.Context, name string, args api.Args, asTable bool) (*api.Response, error) {
	e, ok := Endpoints.Lookup(f.group + "." + name)
	if !ok {
		return nil, api.NewError(api.ValidationFailure, "unknown endpoint %s.%s", f.group, name)
	}
	return f.client.Call(ctx, e, args, asTable)
}

// opt drops non-positive limits and page sizes.
func opt(n int) any {
	if n <= 0 {
		return nil
	}
	return n
}
