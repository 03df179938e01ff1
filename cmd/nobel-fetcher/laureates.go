// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/nobel-fetcher/internal/httputil"
	"github.com/pdiddy/nobel-fetcher/internal/nobel"
	"github.com/pdiddy/nobel-fetcher/internal/prompt"
	"github.com/pdiddy/nobel-fetcher/pkg/types"
)

// errReported marks a failure that has already been logged.
var errReported = errors.New("fetching laureates failed")

var laureatesCmd = &cobra.Command{
	Use:   "laureates",
	Short: "Print the laureates awarded in a given year",
	Long: `Laureates asks for an award year between 2000 and 2023 (unless --year is
given), fetches the laureates of the configured category and prints every
laureate whose first prize was awarded in that year.

A network failure ends the command with exit status 1. Finding no laureate
for the year is not an error.`,
	RunE: runLaureates,
}

func init() {
	laureatesCmd.Flags().Int("year", 0, "award year to report; prompts when unset")
	laureatesCmd.Flags().String("output", "text", "output format: text, json or yaml")
	bindFlag(laureatesCmd.Flags().Lookup("year"))
	bindFlag(laureatesCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(laureatesCmd)
}

type laureatesOptions struct {
	Query  types.QueryConfig
	Year   int
	Output nobel.OutputFormat
}

func runLaureates(cmd *cobra.Command, args []string) error {
	output, err := nobel.ParseOutputFormat(viper.GetString("output"))
	if err != nil {
		return err
	}
	opts := laureatesOptions{
		Query:  queryConfig(),
		Year:   viper.GetInt("year"),
		Output: output,
	}
	return executeLaureates(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
}

// executeLaureates runs prompt, fetch and report. Fetch failures are logged
// here and returned as errReported.
func executeLaureates(ctx context.Context, opts laureatesOptions, in io.Reader, out io.Writer, log logrus.FieldLogger) error {
	if err := opts.Query.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	year := opts.Year
	if year != 0 {
		if err := prompt.ValidateYear(year, prompt.DefaultMinYear, prompt.DefaultMaxYear); err != nil {
			return err
		}
	} else {
		var err error
		year, err = prompt.NewYearPrompt(in, out).GetYear()
		if err != nil {
			return err
		}
	}

	client := nobel.NewClient(opts.Query, log)
	records, err := client.FetchLaureates(ctx)
	if err != nil {
		logFetchError(log, err)
		return errReported
	}

	reporter := nobel.NewReporter(out, log)
	reporter.Output = opts.Output
	if _, err := reporter.ReportForYear(records, year); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// logFetchError logs err with the message matching its failure kind.
func logFetchError(log logrus.FieldLogger, err error) {
	entry := log.WithError(err)
	switch {
	case errors.Is(err, httputil.ErrTimeout):
		entry.Error("Request timed out")
	case errors.Is(err, httputil.ErrTooManyRedirects):
		entry.Error("Too many redirects")
	case errors.Is(err, httputil.ErrRequest), errors.Is(err, httputil.ErrHTTPStatus):
		entry.Error("A request error occurred")
	default:
		entry.Error("An unexpected error occurred")
	}
}
