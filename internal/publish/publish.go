// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package publish runs one search-and-publish invocation: search the
// provider, serialize the mapped records to a JSON array, reconcile the
// target stream's retention period, and append the array as one record.
// Strictly sequential; the first failure aborts the run and surfaces
// unchanged to the caller.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/guardian-publisher/pkg/types"
)

// PartitionKey is attached to every published record.
const PartitionKey = "guardian api data"

// Searcher queries the search provider for mapped article records.
type Searcher interface {
	Search(ctx context.Context, term, dateFrom string) ([]types.Article, error)
}

// Target is the stream the record batch is published to.
type Target interface {
	ReconcileRetention(ctx context.Context, streamName string, hours int32) error
	PutRecord(ctx context.Context, streamName string, data []byte, partitionKey string) error
}

// Options holds the per-invocation inputs.
type Options struct {
	// SearchTerm is the provider query (required).
	SearchTerm string

	// StreamName identifies the target stream (required).
	StreamName string

	// DateFrom optionally restricts results to articles published on or
	// after this ISO date.
	DateFrom string

	// RetentionHours is the retention period the stream is reconciled to
	// before the put.
	RetentionHours int32
}

// Run executes one invocation. An empty result set still publishes an
// empty JSON array. Retention reconciliation precedes the put and is not
// rolled back if the put fails. Progress lines go to w.
func Run(ctx context.Context, opts Options, searcher Searcher, target Target, w io.Writer) error {
	articles, err := searcher.Search(ctx, opts.SearchTerm, opts.DateFrom)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d article(s) matched %q\n", len(articles), opts.SearchTerm)

	// A nil slice would marshal as JSON null; an empty batch is still "[]".
	if articles == nil {
		articles = []types.Article{}
	}
	payload, err := json.Marshal(articles)
	if err != nil {
		return fmt.Errorf("encoding article batch: %w", err)
	}

	if err := target.ReconcileRetention(ctx, opts.StreamName, opts.RetentionHours); err != nil {
		return err
	}

	if err := target.PutRecord(ctx, opts.StreamName, payload, PartitionKey); err != nil {
		return err
	}

	fmt.Fprintf(w, "published %d article(s) to stream %s\n", len(articles), opts.StreamName)
	return nil
}
