// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the guardian-publisher CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guardian-publisher/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup. They
// back-fill settings the config file omits.
var loadedSecrets map[string]string

// rootCmd is the base command for the guardian-publisher CLI.
var rootCmd = &cobra.Command{
	Use:   "guardian-publisher",
	Short: "Search the Guardian content API and publish results to a Kinesis stream",
	Long: `guardian-publisher queries the Guardian content API for articles matching a
search term and publishes the matched records to an AWS Kinesis stream as a
single JSON array. Before publishing, the stream's retention period is
reconciled to the configured value.

The publish command runs the full pipeline; search is a dry run that prints
the matched records without touching the stream.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "settings file (default: ./guardian-publisher.yaml or ~/.config/guardian-publisher/config.yaml)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
