// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the nobel-fetcher CLI.
//
// nobel-fetcher asks for an award year, fetches the laureates of the
// configured category from the Nobel Prize API and prints those awarded in
// that year.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured from log_level before any subcommand runs and handed
// to every component that logs.
var logger = logrus.New()

// rootCmd is the base command for the nobel-fetcher CLI.
var rootCmd = &cobra.Command{
	Use:   "nobel-fetcher",
	Short: "Look up Nobel Prize laureates by award year",
	Long: `nobel-fetcher queries the Nobel Prize API (api.nobelprize.org) for the
laureates of one prize category over a fixed range of years, then prints
the laureates awarded in the year you ask for.

Settings come from flags, NOBEL_FETCHER_* environment variables or a YAML
config file, in that order of precedence.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configureLogger(logger, cmd.ErrOrStderr(), viper.GetString("log_level"))
		if used := viper.ConfigFileUsed(); used != "" {
			logger.WithField("file", used).Debug("Using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./nobel-fetcher.yaml or ~/.config/nobel-fetcher/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	bindFlag(rootCmd.PersistentFlags().Lookup("log-level"))
	addQueryFlags(rootCmd.PersistentFlags())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("nobel-fetcher")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "nobel-fetcher"))
		}
	}

	viper.SetEnvPrefix("NOBEL_FETCHER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}
}

// configureLogger points log at w and sets its level. An unknown level
// falls back to info.
func configureLogger(log *logrus.Logger, w io.Writer, level string) {
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		log.WithField("log_level", level).WithError(err).Warn("Incorrect log level. Using INFO instead.")
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			logger.WithError(err).Error("nobel-fetcher failed")
		}
		os.Exit(1)
	}
}
