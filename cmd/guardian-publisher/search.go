// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/guardian-publisher/internal/config"
	"github.com/pdiddy/guardian-publisher/internal/guardian"
)

var searchCmd = &cobra.Command{
	Use:   "search <search-term> [from-date]",
	Short: "Search for articles without publishing (dry run)",
	Long: `Search queries the Guardian content API for articles matching the search
term and prints the records that publish would send, without touching the
stream. Output is a table by default; --json and --yaml select machine
formats.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Bool("json", false, "output records as JSON")
	searchCmd.Flags().Bool("yaml", false, "output records as YAML")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	searchTerm := args[0]
	dateFrom := ""
	if len(args) == 2 {
		dateFrom = args[1]
		if _, err := time.Parse("2006-01-02", dateFrom); err != nil {
			return fmt.Errorf("from-date must be an ISO date (YYYY-MM-DD), got %q", dateFrom)
		}
	}

	cfgPath, _ := rootCmd.PersistentFlags().GetString("config")
	cfg, err := config.Load(cfgPath, loadedSecrets)
	if err != nil {
		return err
	}

	articles, err := guardian.NewClient(cfg.Guardian).Search(cmd.Context(), searchTerm, dateFrom)
	if err != nil {
		return err
	}

	asJSON, _ := cmd.Flags().GetBool("json")
	asYAML, _ := cmd.Flags().GetBool("yaml")
	switch {
	case asJSON:
		return guardian.FormatJSON(articles, os.Stdout)
	case asYAML:
		return guardian.FormatYAML(articles, os.Stdout)
	default:
		guardian.FormatTable(articles, os.Stdout)
		return nil
	}
}
