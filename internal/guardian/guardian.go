// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package guardian queries the Guardian content API and maps results to
// article records. One GET per invocation, first page only, page size 10.
package guardian

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/guardian-publisher/pkg/types"
)

const (
	// pageSize bounds every search to the first 10 results.
	pageSize = 10

	// requestTimeout bounds the search call.
	requestTimeout = 10 * time.Second

	userAgent = "guardian-publisher/0.1"

	// maxErrorBody caps how much of a non-200 body is carried in the error.
	maxErrorBody = 4 << 10
)

// RequestError is a transport-level failure reaching the search provider
// (DNS, connection, timeout).
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("guardian api request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ResponseError is a non-success or unusable response from the search
// provider. Body holds the response text for a non-200 status, or a short
// description when a 200 body could not be decoded.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("guardian api returned HTTP %d: %s", e.StatusCode, e.Body)
}

// Client searches the Guardian content API.
type Client struct {
	cfg    types.GuardianConfig
	client *http.Client
}

// NewClient returns a Client with the fixed request timeout applied.
func NewClient(cfg types.GuardianConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Search issues one GET for term and returns the mapped article records in
// response order. dateFrom, when non-empty, is passed through as the
// from-date filter. An absent or empty result list yields an empty,
// non-nil slice.
func (c *Client) Search(ctx context.Context, term, dateFrom string) ([]types.Article, error) {
	params := url.Values{
		"q":         {term},
		"api-key":   {c.cfg.APIKey},
		"page-size": {strconv.Itoa(pageSize)},
	}
	if dateFrom != "" {
		params.Set("from-date", dateFrom)
	}

	reqURL := c.cfg.APIURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Body:       fmt.Sprintf("malformed response body: %v", err),
		}
	}

	articles := make([]types.Article, 0, len(sr.Response.Results))
	for _, item := range sr.Response.Results {
		articles = append(articles, types.Article{
			WebPublicationDate: item.WebPublicationDate,
			WebTitle:           item.WebTitle,
			WebURL:             item.WebURL,
		})
	}
	return articles, nil
}

// Guardian content API JSON structures. Fields the publisher does not
// track are ignored by the decoder.
type searchResponse struct {
	Response struct {
		Results []searchResult `json:"results"`
	} `json:"response"`
}

type searchResult struct {
	WebPublicationDate *string `json:"webPublicationDate"`
	WebTitle           *string `json:"webTitle"`
	WebURL             *string `json:"webUrl"`
}
