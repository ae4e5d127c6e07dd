// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guardian

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/guardian-publisher/pkg/types"
)

// FormatTable writes articles as a human-readable table to w.
func FormatTable(articles []types.Article, w io.Writer) {
	if len(articles) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-22s  %-60s  %s\n", "Rank", "Published", "Title", "URL")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, a := range articles {
		fmt.Fprintf(w, "%-4d  %-22s  %-60s  %s\n",
			i+1,
			deref(a.WebPublicationDate),
			truncate(deref(a.WebTitle), 60),
			deref(a.WebURL))
	}

	fmt.Fprintf(w, "\n%d result(s)\n", len(articles))
}

// FormatJSON writes articles as indented JSON to w.
func FormatJSON(articles []types.Article, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(articles)
}

// FormatYAML writes articles as a YAML document to w.
func FormatYAML(articles []types.Article, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(articles)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
