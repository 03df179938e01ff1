// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nobel fetches laureate records from the Nobel Prize API and reports
// the laureates of a given award year.
package nobel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/nobel-fetcher/internal/httputil"
	"github.com/pdiddy/nobel-fetcher/pkg/types"
)

// RequestIDHeader carries the per-request id sent to the API.
const RequestIDHeader = "X-Request-Id"

// Client queries the laureates endpoint.
type Client struct {
	HTTP   *http.Client
	Config types.QueryConfig
	Log    logrus.FieldLogger
}

// NewClient returns a Client whose HTTP client honours cfg's timeout and
// redirect limit.
func NewClient(cfg types.QueryConfig, log logrus.FieldLogger) *Client {
	return &Client{
		HTTP:   httputil.NewClient(cfg.Timeout, cfg.MaxRedirects),
		Config: cfg,
		Log:    log,
	}
}

// URL returns the full request URL. The year range comes from the
// configuration, not from the year later used to filter the records.
func (c *Client) URL() string {
	cfg := c.Config
	params := url.Values{
		"limit":              {strconv.Itoa(cfg.Limit)},
		"nobelPrizeYear":     {strconv.Itoa(cfg.YearFrom)},
		"yearTo":             {strconv.Itoa(cfg.YearTo)},
		"format":             {cfg.Format},
		"nobelPrizeCategory": {cfg.Category},
	}
	return fmt.Sprintf("%s/%s/laureates?%s", strings.TrimRight(cfg.BaseURL, "/"), cfg.APIVersion, params.Encode())
}

// FetchLaureates issues a single GET and returns the "laureates" array of the
// response. A response without that key, or one that is not a JSON object, is
// logged and yields an empty slice. Records that do not decode are logged and
// left out. Transport, status and decoding failures are returned wrapped with
// one of the httputil error kinds; the caller decides whether they are fatal.
func (c *Client) FetchLaureates(ctx context.Context) ([]types.Laureate, error) {
	reqURL := c.URL()
	reqID := uuid.NewString()
	log := c.Log.WithField("request_id", reqID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", httputil.ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if c.Config.UserAgent != "" {
		req.Header.Set("User-Agent", c.Config.UserAgent)
	}

	log.WithField("url", reqURL).Debug("Fetching laureates")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, httputil.Classify(err)
	}
	defer resp.Body.Close()

	if !httputil.IsSuccess(resp.StatusCode) {
		io.Copy(io.Discard, resp.Body)
		return nil, httputil.StatusError(resp)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		// A client timeout can fire while the body is still being read.
		if classified := httputil.Classify(err); errors.Is(classified, httputil.ErrTimeout) {
			return nil, classified
		}
		return nil, fmt.Errorf("%w: %w", httputil.ErrDecode, err)
	}

	// Any JSON value other than an object has no "laureates" key either.
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil || top["laureates"] == nil {
		log.Warn("No 'laureates' in response data")
		return []types.Laureate{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(top["laureates"], &items); err != nil {
		return nil, fmt.Errorf("%w: laureates: %w", httputil.ErrDecode, err)
	}

	laureates := decodeLaureates(items, log)

	var meta laureatesMeta
	if m, ok := top["meta"]; ok && json.Unmarshal(m, &meta) == nil && meta.Count > len(items) {
		log.WithFields(logrus.Fields{"count": meta.Count, "limit": meta.Limit}).
			Warn("Response holds fewer laureates than the API reports; only the first page is used")
	}

	log.WithField("count", len(laureates)).Debug("Fetched laureates")
	return laureates, nil
}

// decodeLaureates decodes each record on its own. A record that does not
// decode is logged and skipped; the others are kept in order.
func decodeLaureates(items []json.RawMessage, log logrus.FieldLogger) []types.Laureate {
	laureates := make([]types.Laureate, 0, len(items))
	for i, item := range items {
		var l types.Laureate
		if err := json.Unmarshal(item, &l); err != nil {
			log.WithField("index", i).WithError(err).Error("Skipping malformed laureate record")
			continue
		}
		laureates = append(laureates, l)
	}
	return laureates
}

type laureatesMeta struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Count  int `json:"count"`
}
