// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/nobel-fetcher/internal/nobel"
)

var urlCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the request URL used by the laureates command",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := queryConfig()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), nobel.NewClient(cfg, logger).URL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(urlCmd)
}
