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

// Package api implements the request pipeline of the Financial Modeling Prep
// (FMP) REST API.
//
// Official documentation is at https://site.financialmodelingprep.com/developer/docs .
//
// A Client serves one generation of the API, determined by its base URL:
// StableURL for the current one, and LegacyURL for the older /api/v3/
// endpoints. Every request carries the API key in the "apikey" query
// parameter and results in exactly one HTTP call; there are no retries.
//
// Responses are decoded as JSON, or as CSV for the endpoints exporting bulk
// data. A JSON response can be projected into a table.Table, decoded into
// typed structs, or queried with gjson paths.
//
// Endpoints are declared as data (see Endpoint) and called generically with
// Client.Call, which validates and normalizes the arguments before any
// network activity. The stable and legacy packages declare the actual
// endpoints and wrap them in typed facades.
//
// All errors returned by the pipeline are *Error values of one of four kinds:
// ConfigFailure, TransportFailure, APIFailure and ValidationFailure.
package api
