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
	"net/http"
	"time"
)

// Server and protocol constants.
const (
	Host      = "https://financialmodelingprep.com"
	StableURL = Host + "/stable/" // current API generation
	LegacyURL = Host + "/api/v3/" // legacy API generation

	// EnvAPIKey is the environment variable consulted by ResolveAPIKey.
	EnvAPIKey = "FMP_API_KEY"
	// KeyParam is the query parameter carrying the API key.
	KeyParam = "apikey"

	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "stockparfait-fmp"
)

// Config of a Client. Only APIKey is required.
type Config struct {
	APIKey    string
	BaseURL   string        // default: StableURL
	Timeout   time.Duration // default: DefaultTimeout; ignored when HTTPClient is set and Timeout is 0
	RateLimit float64       // max. requests per second; 0 = unlimited
	UserAgent string        // default: DefaultUserAgent
	// HTTPClient, when set, is used for the connection pool instead of a new
	// one. Useful for tests and custom transports.
	HTTPClient *http.Client
}

// ResolveAPIKey returns the explicit key when it is not empty, otherwise the
// value of EnvAPIKey obtained from lookup (typically os.LookupEnv). It is a
// ConfigFailure when neither yields a key. A nil lookup only checks the
// explicit key.
func ResolveAPIKey(explicit string, lookup func(string) (string, bool)) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if lookup != nil {
		if key, ok := lookup(EnvAPIKey); ok && key != "" {
			return key, nil
		}
	}
	return "", configError(
		"API key is required: set it explicitly or in the %s environment variable", EnvAPIKey)
}
