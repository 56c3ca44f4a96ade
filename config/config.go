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

// Package config reads the FMP client configuration from a TOML file and
// resolves the API key from the environment when the file does not set it.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/fmp/api"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName of the configuration file in the configuration directory.
const FileName = "config.toml"

// Sample configuration printed when the file is missing.
const Sample = `key = "YourSecretFMPKey"
timeout = "30s"
rate_limit = 5
`

// Config as stored in config.toml. All fields are optional.
type Config struct {
	Key           string  `toml:"key"`             // FMP API key; default: $FMP_API_KEY
	BaseURL       string  `toml:"base_url"`        // default: api.StableURL
	LegacyBaseURL string  `toml:"legacy_base_url"` // default: api.LegacyURL
	Timeout       string  `toml:"timeout"`         // e.g. "10s"; default: api.DefaultTimeout
	RateLimit     float64 `toml:"rate_limit"`      // requests per second; 0 = unlimited
	UserAgent     string  `toml:"user_agent"`
}

// DefaultDir is ~/.fmp.
func DefaultDir() string {
	return filepath.Join(os.Getenv("HOME"), ".fmp")
}

func configFailure(err error, format string, args ...any) error {
	return &api.Error{Kind: api.ConfigFailure, Err: errors.Annotate(err, format, args...)}
}

// Load the configuration from the file. With mustExist == false a missing
// file yields an empty configuration.
func Load(filePath string, mustExist bool) (*Config, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !mustExist {
				return &Config{}, nil
			}
			return nil, configFailure(err,
				"config file '%s' does not exist.\nPlease create config file containing:\n%s",
				filePath, Sample)
		}
		return nil, configFailure(err, "cannot check config file for existence: '%s'", filePath)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, configFailure(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	d.DisallowUnknownFields()
	var c Config
	if err := d.Decode(&c); err != nil {
		return nil, configFailure(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

// API converts the configuration into a client configuration for the stable
// or the legacy API generation. A missing key is looked up in the environment
// with lookup, typically os.LookupEnv.
func (c *Config) API(legacy bool, lookup func(string) (string, bool)) (api.Config, error) {
	key, err := api.ResolveAPIKey(c.Key, lookup)
	if err != nil {
		return api.Config{}, err
	}
	cfg := api.Config{
		APIKey:    key,
		BaseURL:   c.BaseURL,
		RateLimit: c.RateLimit,
		UserAgent: c.UserAgent,
	}
	if legacy {
		cfg.BaseURL = c.LegacyBaseURL
		if cfg.BaseURL == "" {
			cfg.BaseURL = api.LegacyURL
		}
	}
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return api.Config{}, configFailure(err, "invalid timeout '%s'", c.Timeout)
		}
		if d <= 0 {
			return api.Config{}, api.NewError(api.ConfigFailure, "timeout must be positive: %s", c.Timeout)
		}
		cfg.Timeout = d
	}
	return cfg, nil
}
