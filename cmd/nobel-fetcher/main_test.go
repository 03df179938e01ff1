// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/nobel-fetcher/internal/httputil"
	"github.com/pdiddy/nobel-fetcher/internal/nobel"
	"github.com/pdiddy/nobel-fetcher/internal/prompt"
	"github.com/pdiddy/nobel-fetcher/pkg/types"
)

func init() {
	color.NoColor = true
}

const physics2001 = `{"laureates": [
	{"knownName": {"en": "Eric A. Cornell"}, "nobelPrizes": [{"awardYear": "2001", "affiliations": [{"name": {"en": "University of Colorado"}}]}]},
	{"knownName": {"en": "Zhores Alferov"}, "nobelPrizes": [{"awardYear": "2000", "affiliations": [{"name": {"en": "A.F. Ioffe Physico-Technical Institute"}}]}]},
	{"knownName": {"en": "Wolfgang Ketterle"}, "nobelPrizes": [{"awardYear": "2001", "affiliations": [{"name": {"en": "Massachusetts Institute of Technology (MIT)"}}]}]}
]}`

func apiServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testOptions(baseURL string) laureatesOptions {
	cfg := types.DefaultQueryConfig()
	cfg.BaseURL = baseURL
	cfg.Timeout = 2 * time.Second
	return laureatesOptions{Query: cfg, Output: nobel.OutputText}
}

func TestExecuteLaureatesPrompted(t *testing.T) {
	ts := apiServer(t, physics2001)
	log, hook := logtest.NewNullLogger()

	var out bytes.Buffer
	err := executeLaureates(context.Background(), testOptions(ts.URL), strings.NewReader("later\n1999\n2001\n"), &out, log)
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, prompt.Question))
	assert.Contains(t, text, "Full name: Eric A. Cornell\n")
	assert.Contains(t, text, "Full name: Wolfgang Ketterle\n")
	assert.NotContains(t, text, "Zhores Alferov")
	assert.Empty(t, hook.AllEntries())
}

func TestExecuteLaureatesYearFlag(t *testing.T) {
	ts := apiServer(t, physics2001)
	log, hook := logtest.NewNullLogger()

	opts := testOptions(ts.URL)
	opts.Year = 2000

	var out bytes.Buffer
	require.NoError(t, executeLaureates(context.Background(), opts, strings.NewReader(""), &out, log))
	assert.NotContains(t, out.String(), prompt.Question)
	assert.Contains(t, out.String(), "Full name: Zhores Alferov\n")
	assert.Empty(t, hook.AllEntries())
}

func TestExecuteLaureatesYearFlagOutOfRange(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	opts := testOptions("http://127.0.0.1:1")
	opts.Year = 1903

	err := executeLaureates(context.Background(), opts, strings.NewReader(""), &bytes.Buffer{}, log)
	assert.ErrorIs(t, err, prompt.ErrYearOutOfRange)
}

func TestExecuteLaureatesNoMatchIsNotAnError(t *testing.T) {
	ts := apiServer(t, physics2001)
	log, hook := logtest.NewNullLogger()

	opts := testOptions(ts.URL)
	opts.Year = 2015

	var out bytes.Buffer
	require.NoError(t, executeLaureates(context.Background(), opts, nil, &out, log))
	assert.Empty(t, out.String())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "No laureates were found in 2015!", hook.LastEntry().Message)
}

func TestExecuteLaureatesMissingKeyReportsNoData(t *testing.T) {
	ts := apiServer(t, `{"error": "nothing here"}`)
	log, hook := logtest.NewNullLogger()

	opts := testOptions(ts.URL)
	opts.Year = 2001

	require.NoError(t, executeLaureates(context.Background(), opts, nil, &bytes.Buffer{}, log))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.WarnLevel, entries[0].Level)
	assert.Equal(t, "Laureates data not found!", entries[1].Message)
}

func TestExecuteLaureatesMalformedRecordIsNotFatal(t *testing.T) {
	ts := apiServer(t, `{"laureates": [
		{"knownName": "Bad", "nobelPrizes": [{"awardYear": "2001"}]},
		{"knownName": {"en": "Eric A. Cornell"}, "nobelPrizes": [{"awardYear": "2001", "affiliations": [{"name": {"en": "University of Colorado"}}]}]}
	]}`)
	log, hook := logtest.NewNullLogger()

	opts := testOptions(ts.URL)
	opts.Year = 2001

	var out bytes.Buffer
	require.NoError(t, executeLaureates(context.Background(), opts, nil, &out, log))
	assert.Contains(t, out.String(), "Full name: Eric A. Cornell\n")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}

func TestExecuteLaureatesTimeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		fmt.Fprint(w, physics2001)
	}))
	defer ts.Close()
	defer close(release)

	log, hook := logtest.NewNullLogger()
	opts := testOptions(ts.URL)
	opts.Query.Timeout = 50 * time.Millisecond
	opts.Year = 2001

	var out bytes.Buffer
	err := executeLaureates(context.Background(), opts, nil, &out, log)
	assert.ErrorIs(t, err, errReported)
	assert.Empty(t, out.String())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "Request timed out", hook.LastEntry().Message)
}

func TestExecuteLaureatesHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	log, hook := logtest.NewNullLogger()
	opts := testOptions(ts.URL)
	opts.Year = 2001

	err := executeLaureates(context.Background(), opts, nil, &bytes.Buffer{}, log)
	assert.ErrorIs(t, err, errReported)
	assert.Equal(t, "A request error occurred", hook.LastEntry().Message)
}

func TestExecuteLaureatesInvalidConfig(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	opts := testOptions("http://127.0.0.1:1")
	opts.Query.Limit = 0

	err := executeLaureates(context.Background(), opts, nil, &bytes.Buffer{}, log)
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLogFetchError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"timeout", fmt.Errorf("%w: deadline", httputil.ErrTimeout), "Request timed out"},
		{"redirects", fmt.Errorf("%w: stopped after 30", httputil.ErrTooManyRedirects), "Too many redirects"},
		{"transport", fmt.Errorf("%w: connection refused", httputil.ErrRequest), "A request error occurred"},
		{"status", fmt.Errorf("%w: HTTP 500", httputil.ErrHTTPStatus), "A request error occurred"},
		{"decode", fmt.Errorf("%w: unexpected EOF", httputil.ErrDecode), "An unexpected error occurred"},
		{"unknown", fmt.Errorf("boom"), "An unexpected error occurred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, hook := logtest.NewNullLogger()
			logFetchError(log, tt.err)
			assert.Equal(t, tt.want, hook.LastEntry().Message)
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	log := logrus.New()
	var buf bytes.Buffer

	configureLogger(log, &buf, "debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	configureLogger(log, &buf, "loud")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.Contains(t, buf.String(), "Incorrect log level")
}

func TestRootCommandURLAndVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"url", "--category", "che", "--year-from", "2010"})
	require.NoError(t, rootCmd.Execute())

	u, err := url.Parse(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "/2.1/laureates", u.Path)
	assert.Equal(t, "che", u.Query().Get("nobelPrizeCategory"))
	assert.Equal(t, "2010", u.Query().Get("nobelPrizeYear"))
	assert.Equal(t, "2023", u.Query().Get("yearTo"))

	out.Reset()
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "nobel-fetcher dev\n", out.String())
}
