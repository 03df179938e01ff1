// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client and error classification shared
// by code that talks to the Nobel Prize API.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Failure kinds returned by Classify. Callers match them with errors.Is.
var (
	ErrTimeout          = errors.New("request timed out")
	ErrTooManyRedirects = errors.New("too many redirects")
	ErrRequest          = errors.New("request failed")
	ErrHTTPStatus       = errors.New("unexpected HTTP status")
	ErrDecode           = errors.New("decoding response")
)

// NewClient returns an http.Client with the given overall timeout that stops
// after maxRedirects redirects. A non-positive maxRedirects disables
// redirects entirely.
func NewClient(timeout time.Duration, maxRedirects int) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return fmt.Errorf("%w: stopped after %d", ErrTooManyRedirects, maxRedirects)
			}
			return nil
		},
	}
}

// Classify wraps an error returned by http.Client.Do with one of ErrTimeout,
// ErrTooManyRedirects or ErrRequest. Already classified errors and nil pass
// through unchanged.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrTimeout), errors.Is(err, ErrTooManyRedirects),
		errors.Is(err, ErrRequest), errors.Is(err, ErrHTTPStatus), errors.Is(err, ErrDecode):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrRequest, err)
}

// StatusError reports a non-2xx response.
func StatusError(resp *http.Response) error {
	return fmt.Errorf("%w: HTTP %d", ErrHTTPStatus, resp.StatusCode)
}

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(code int) bool {
	return code >= 200 && code < 300
}
