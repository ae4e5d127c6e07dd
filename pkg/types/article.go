// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the guardian-publisher
// pipeline: the article record published to the stream and the settings
// sections the tool is configured with.
package types

// Article is one search result reduced to the three fields that get
// published. Field names and JSON keys follow the Guardian content API;
// pointer fields distinguish a missing source field (marshalled as null)
// from an empty string.
type Article struct {
	// WebPublicationDate is the provider-native publication timestamp,
	// copied verbatim (e.g. "2024-01-01T12:00:00Z").
	WebPublicationDate *string `json:"webPublicationDate" yaml:"webPublicationDate"`

	// WebTitle is the article title as returned by the provider.
	WebTitle *string `json:"webTitle" yaml:"webTitle"`

	// WebURL is the canonical article URL.
	WebURL *string `json:"webUrl" yaml:"webUrl"`
}
