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

package api

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
	"golang.org/x/time/rate"
)

type contextKey int

const (
	clientContextKey contextKey = iota
)

// Client for one generation of the FMP API. It is safe for concurrent use;
// the connection pool is the only mutable state.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *resty.Client
	limiter *rate.Limiter // nil = unlimited
}

// New creates a Client. It fails with a ConfigFailure, without any network
// activity, when the API key is missing or the base URL is invalid.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, configError("API key is required")
	}
	base := cfg.BaseURL
	if base == "" {
		base = StableURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, &Error{Kind: ConfigFailure, Err: errors.Annotate(err, "invalid base URL '%s'", base)}
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, configError("base URL must be absolute: '%s'", base)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if cfg.RateLimit < 0 {
		return nil, configError("rate limit must be >= 0, got %g", cfg.RateLimit)
	}

	var hc *resty.Client
	if cfg.HTTPClient != nil {
		hc = resty.NewWithClient(cfg.HTTPClient)
	} else {
		hc = resty.New()
		if cfg.Timeout == 0 {
			cfg.Timeout = DefaultTimeout
		}
	}
	if cfg.Timeout > 0 {
		hc.SetTimeout(cfg.Timeout)
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	hc.SetHeader("User-Agent", ua)

	c := &Client{baseURL: u, apiKey: cfg.APIKey, http: hc}
	if cfg.RateLimit > 0 {
		burst := int(cfg.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return c, nil
}

// UseClient injects the client into the context.
func UseClient(ctx context.Context, c *Client) context.Context {
	return context.WithValue(ctx, clientContextKey, c)
}

// GetClient extracts the Client from the context, if any.
func GetClient(ctx context.Context) *Client {
	c, ok := ctx.Value(clientContextKey).(*Client)
	if !ok {
		return nil
	}
	return c
}

// BaseURL of the API generation served by the client.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// APIKey returns the credential in use.
func (c *Client) APIKey() string { return c.apiKey }

// URL joins the base URL with a relative endpoint path. Absolute URLs and
// scheme-relative paths are rejected, and ".." segments are resolved within
// the base path, so the result never leaves the base.
func (c *Client) URL(endpoint string) (string, error) {
	p, err := url.Parse(endpoint)
	if err != nil {
		return "", &Error{Kind: ValidationFailure, Err: errors.Annotate(err, "invalid endpoint path '%s'", endpoint)}
	}
	if p.Scheme != "" || p.Host != "" || strings.HasPrefix(endpoint, "//") {
		return "", validationError("endpoint path must be relative: '%s'", endpoint)
	}
	if p.RawQuery != "" || p.Fragment != "" {
		return "", validationError("endpoint path must not carry a query: '%s'", endpoint)
	}
	clean := path.Clean("/" + p.Path)
	if clean == "/" {
		return "", validationError("empty endpoint path")
	}
	u := *c.baseURL
	u.Path = strings.TrimSuffix(c.baseURL.Path, "/") + clean
	u.RawPath = ""
	return u.String(), nil
}

// Query renders the arguments as query values and adds the API key. Unset
// arguments are dropped. Only the KeyParam entry may be overwritten.
func (c *Client) Query(args Args) (url.Values, error) {
	v, err := args.Values()
	if err != nil {
		return nil, err
	}
	v.Set(KeyParam, c.apiKey)
	return v, nil
}

// Request describes a single API call.
type Request struct {
	Method string // default: GET
	Path   string // relative to the base URL, e.g. "quote"
	Args   Args
	Body   any // sent as JSON when not nil
	Header map[string]string
	Table  bool // expect a CSV body
}

// Execute performs exactly one HTTP call and decodes its response. Every
// returned error is an *Error.
func (c *Client) Execute(ctx context.Context, r *Request) (*Response, error) {
	res, err := c.execute(ctx, r)
	if err != nil {
		return nil, classify(err)
	}
	return res, nil
}

func (c *Client) execute(ctx context.Context, r *Request) (*Response, error) {
	method := strings.ToUpper(r.Method)
	if method == "" {
		method = http.MethodGet
	}
	uri, err := c.URL(r.Path)
	if err != nil {
		return nil, err
	}
	query, err := c.Query(r.Args)
	if err != nil {
		return nil, err
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, transportError(err, "rate limiter")
		}
	}
	logging.Debugf(ctx, "FMP: %s %s?%s", method, uri, redactQuery(query))

	req := c.http.R().SetContext(ctx).SetQueryParamsFromValues(query)
	if len(r.Header) > 0 {
		req.SetHeaders(r.Header)
	}
	if r.Body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(r.Body)
	}
	resp, err := req.Execute(method, uri)
	if err != nil {
		return nil, transportError(&redacted{err: err, secret: c.apiKey},
			"%s %s failed", method, uri)
	}
	if !resp.IsSuccess() {
		return nil, &Error{
			Kind:       TransportFailure,
			StatusCode: resp.StatusCode(),
			Err:        errors.Reason("%s %s: HTTP status %s", method, uri, resp.Status()),
		}
	}
	res, err := Decode(resp.Body(), r.Table)
	if err != nil {
		return nil, err
	}
	if !r.Table && res.Table != nil {
		logging.Warningf(ctx, "FMP: %s returned CSV instead of JSON", r.Path)
	}
	return res, nil
}

// Get is Execute for a GET request expecting JSON.
func (c *Client) Get(ctx context.Context, endpoint string, args Args) (*Response, error) {
	return c.Execute(ctx, &Request{Method: http.MethodGet, Path: endpoint, Args: args})
}

// GetTable is Execute for a GET request expecting CSV.
func (c *Client) GetTable(ctx context.Context, endpoint string, args Args) (*Response, error) {
	return c.Execute(ctx, &Request{Method: http.MethodGet, Path: endpoint, Args: args, Table: true})
}

// Post is Execute for a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any, args Args) (*Response, error) {
	return c.Execute(ctx, &Request{Method: http.MethodPost, Path: endpoint, Args: args, Body: body})
}

func redactQuery(v url.Values) string {
	r := make(url.Values, len(v))
	for k, vs := range v {
		r[k] = vs
	}
	if _, ok := r[KeyParam]; ok {
		r.Set(KeyParam, "REDACTED")
	}
	return r.Encode()
}
