// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guardian-publisher/internal/config"
	"github.com/pdiddy/guardian-publisher/internal/guardian"
	"github.com/pdiddy/guardian-publisher/internal/publish"
	"github.com/pdiddy/guardian-publisher/internal/stream"
)

var publishCmd = &cobra.Command{
	Use:   "publish <search-term> <stream-name> [from-date]",
	Short: "Search for articles and publish them to the stream",
	Long: `Publish queries the Guardian content API for articles matching the search
term, reconciles the target stream's retention period to the configured
value, and appends the matched records to the stream as one JSON array.
The optional from-date (YYYY-MM-DD) restricts results to articles published
on or after that date.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	searchTerm, streamName := args[0], args[1]
	dateFrom := ""
	if len(args) == 3 {
		dateFrom = args[2]
		if _, err := time.Parse("2006-01-02", dateFrom); err != nil {
			return fmt.Errorf("from-date must be an ISO date (YYYY-MM-DD), got %q", dateFrom)
		}
	}

	cfgPath, _ := rootCmd.PersistentFlags().GetString("config")
	cfg, err := config.Load(cfgPath, loadedSecrets)
	if err != nil {
		return err
	}

	opts := publish.Options{
		SearchTerm:     searchTerm,
		StreamName:     streamName,
		DateFrom:       dateFrom,
		RetentionHours: cfg.Stream.RetentionHours,
	}
	searcher := guardian.NewClient(cfg.Guardian)
	target := stream.New(cfg.Stream.AccessKey, cfg.Stream.SecretKey, cfg.Stream.Region)

	return publish.Run(cmd.Context(), opts, searcher, target, os.Stdout)
}
