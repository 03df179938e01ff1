// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/nobel-fetcher/pkg/types"
)

// bindFlag binds f to the viper key of the same name with dashes replaced by
// underscores, so "api-version" is also read from api_version in the config
// file and NOBEL_FETCHER_API_VERSION in the environment.
func bindFlag(f *pflag.Flag) {
	key := strings.ReplaceAll(f.Name, "-", "_")
	if err := viper.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// addQueryFlags registers the flags describing the laureates query on fs.
func addQueryFlags(fs *pflag.FlagSet) {
	d := types.DefaultQueryConfig()
	query := pflag.NewFlagSet("query", pflag.ContinueOnError)

	query.String("base-url", d.BaseURL, "Nobel Prize API root URL")
	query.String("api-version", d.APIVersion, "Nobel Prize API version")
	query.String("category", d.Category, "prize category code: phy, che, med, lit, pea, eco")
	query.Int("year-from", d.YearFrom, "first award year requested from the API")
	query.Int("year-to", d.YearTo, "last award year requested from the API")
	query.Int("limit", d.Limit, "maximum number of laureates requested")
	query.String("format", d.Format, "response format requested from the API")
	query.Duration("timeout", d.Timeout, "HTTP request timeout")
	query.Int("max-redirects", d.MaxRedirects, "redirects followed before the request fails")
	query.String("user-agent", d.UserAgent, "User-Agent header sent with the request")

	query.VisitAll(bindFlag)
	fs.AddFlagSet(query)
}

// queryConfig builds the query configuration from viper.
func queryConfig() types.QueryConfig {
	return types.QueryConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:      viper.GetDuration("timeout"),
			MaxRedirects: viper.GetInt("max_redirects"),
			UserAgent:    viper.GetString("user_agent"),
		},
		BaseURL:    viper.GetString("base_url"),
		APIVersion: viper.GetString("api_version"),
		Category:   viper.GetString("category"),
		YearFrom:   viper.GetInt("year_from"),
		YearTo:     viper.GetInt("year_to"),
		Limit:      viper.GetInt("limit"),
		Format:     viper.GetString("format"),
	}
}
