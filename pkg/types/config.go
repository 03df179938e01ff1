// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"time"
)

// HTTPConfig holds the settings of the single outbound HTTP client.
type HTTPConfig struct {
	// Timeout bounds the whole request, body read included.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRedirects is the number of redirects followed before giving up.
	MaxRedirects int `json:"max_redirects" yaml:"max_redirects"`

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// QueryConfig describes the laureates query. It is fixed at construction
// and independent of the award year later used to filter the results.
type QueryConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the API root, e.g. "https://api.nobelprize.org".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIVersion is the path segment before /laureates (e.g. "2.1").
	APIVersion string `json:"api_version" yaml:"api_version"`

	// Category is the Nobel Prize category code (phy, che, med, lit, pea, eco).
	Category string `json:"category" yaml:"category"`

	// YearFrom and YearTo bound the award years requested from the API.
	YearFrom int `json:"year_from" yaml:"year_from"`
	YearTo   int `json:"year_to" yaml:"year_to"`

	// Limit is the page size. Only one page is ever requested.
	Limit int `json:"limit" yaml:"limit"`

	// Format is the response format requested from the API.
	Format string `json:"format" yaml:"format"`
}

// Defaults for QueryConfig.
const (
	DefaultBaseURL      = "https://api.nobelprize.org"
	DefaultAPIVersion   = "2.1"
	DefaultCategory     = "phy"
	DefaultYearFrom     = 2000
	DefaultYearTo       = 2023
	DefaultLimit        = 5000
	DefaultFormat       = "json"
	DefaultTimeout      = 8 * time.Second
	DefaultMaxRedirects = 30
	DefaultUserAgent    = "nobel-fetcher/0.1"
)

// DefaultQueryConfig returns the configuration used when nothing is overridden.
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		HTTPConfig: HTTPConfig{
			Timeout:      DefaultTimeout,
			MaxRedirects: DefaultMaxRedirects,
			UserAgent:    DefaultUserAgent,
		},
		BaseURL:    DefaultBaseURL,
		APIVersion: DefaultAPIVersion,
		Category:   DefaultCategory,
		YearFrom:   DefaultYearFrom,
		YearTo:     DefaultYearTo,
		Limit:      DefaultLimit,
		Format:     DefaultFormat,
	}
}

// Validate reports configuration that cannot produce a request.
func (c QueryConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is empty")
	}
	if c.APIVersion == "" {
		return fmt.Errorf("API version is empty")
	}
	if c.YearFrom > c.YearTo {
		return fmt.Errorf("year range %d-%d is inverted", c.YearFrom, c.YearTo)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	return nil
}
