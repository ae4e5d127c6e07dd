// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package guardian

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pdiddy/guardian-publisher/pkg/types"
)

const sampleGuardianJSON = `{
  "response": {
    "status": "ok",
    "total": 2,
    "results": [
      {
        "id": "technology/2024/jan/01/test-article",
        "type": "article",
        "sectionName": "Technology",
        "webPublicationDate": "2024-01-01T12:00:00Z",
        "webTitle": "Test Article",
        "webUrl": "https://example.com/test-article",
        "apiUrl": "https://content.guardianapis.com/technology/2024/jan/01/test-article"
      },
      {
        "id": "world/2024/jan/02/second-article",
        "webPublicationDate": "2024-01-02T08:30:00Z",
        "webTitle": "Second Article"
      }
    ]
  }
}`

func guardianTestServer(statusCode int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		fmt.Fprint(w, body)
	}))
}

func testClient(ts *httptest.Server) *Client {
	c := NewClient(types.GuardianConfig{APIURL: ts.URL, APIKey: "dummy_api_key"})
	c.client = ts.Client()
	return c
}

// --- Search: success path and field mapping ---

func TestClientSearchMapsTrackedFields(t *testing.T) {
	ts := guardianTestServer(http.StatusOK, sampleGuardianJSON)
	defer ts.Close()

	articles, err := testClient(ts).Search(context.Background(), "test", "")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("len(articles) = %d, want 2", len(articles))
	}

	a0 := articles[0]
	if a0.WebPublicationDate == nil || *a0.WebPublicationDate != "2024-01-01T12:00:00Z" {
		t.Errorf("WebPublicationDate = %v, want 2024-01-01T12:00:00Z", a0.WebPublicationDate)
	}
	if a0.WebTitle == nil || *a0.WebTitle != "Test Article" {
		t.Errorf("WebTitle = %v, want Test Article", a0.WebTitle)
	}
	if a0.WebURL == nil || *a0.WebURL != "https://example.com/test-article" {
		t.Errorf("WebURL = %v, want https://example.com/test-article", a0.WebURL)
	}

	// Second result has no webUrl → the mapped field stays nil, not defaulted.
	a1 := articles[1]
	if a1.WebURL != nil {
		t.Errorf("WebURL = %q, want nil for absent source field", *a1.WebURL)
	}
	if a1.WebTitle == nil || *a1.WebTitle != "Second Article" {
		t.Errorf("WebTitle = %v, want Second Article", a1.WebTitle)
	}
}

// --- Search: query parameters ---

func TestClientSearchQueryParameters(t *testing.T) {
	var received map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = map[string]string{}
		for k := range r.URL.Query() {
			received[k] = r.URL.Query().Get(k)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"response":{"results":[]}}`)
	}))
	defer ts.Close()

	c := testClient(ts)

	// Without from-date.
	if _, err := c.Search(context.Background(), "electric cars", ""); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if received["q"] != "electric cars" {
		t.Errorf("q = %q, want %q", received["q"], "electric cars")
	}
	if received["api-key"] != "dummy_api_key" {
		t.Errorf("api-key = %q, want %q", received["api-key"], "dummy_api_key")
	}
	if received["page-size"] != "10" {
		t.Errorf("page-size = %q, want %q", received["page-size"], "10")
	}
	if _, ok := received["from-date"]; ok {
		t.Error("from-date should be absent when no date filter is given")
	}

	// With from-date.
	if _, err := c.Search(context.Background(), "electric cars", "2024-01-01"); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if received["from-date"] != "2024-01-01" {
		t.Errorf("from-date = %q, want %q", received["from-date"], "2024-01-01")
	}
}

// --- Search: empty and absent result lists ---

func TestClientSearchEmptyResults(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty results array", `{"response":{"status":"ok","results":[]}}`},
		{"absent results key", `{"response":{"status":"ok"}}`},
		{"absent response key", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := guardianTestServer(http.StatusOK, tt.body)
			defer ts.Close()

			articles, err := testClient(ts).Search(context.Background(), "nonexistent", "")
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if articles == nil {
				t.Fatal("articles should be an empty slice, not nil")
			}
			if len(articles) != 0 {
				t.Errorf("len(articles) = %d, want 0", len(articles))
			}
		})
	}
}

// --- Search: error classification ---

func TestClientSearchNon200(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"response":{"status":"error","message":"Invalid authentication credentials"}}`},
		{"server error", http.StatusInternalServerError, "internal error"},
		{"rate limited", http.StatusTooManyRequests, "rate limit exceeded"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := guardianTestServer(tt.statusCode, tt.body)
			defer ts.Close()

			_, err := testClient(ts).Search(context.Background(), "test", "")
			var respErr *ResponseError
			if !errors.As(err, &respErr) {
				t.Fatalf("error = %v, want *ResponseError", err)
			}
			if respErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", respErr.StatusCode, tt.statusCode)
			}
			if respErr.Body != tt.body {
				t.Errorf("Body = %q, want %q", respErr.Body, tt.body)
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("HTTP %d", tt.statusCode)) {
				t.Errorf("error message %q should name the status code", err.Error())
			}
		})
	}
}

func TestClientSearchTransportError(t *testing.T) {
	ts := guardianTestServer(http.StatusOK, "{}")
	c := testClient(ts)
	ts.Close() // connection refused from here on

	_, err := c.Search(context.Background(), "test", "")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
	if reqErr.Unwrap() == nil {
		t.Error("RequestError should wrap the transport cause")
	}
}

func TestClientSearchMalformedJSON(t *testing.T) {
	ts := guardianTestServer(http.StatusOK, `{not valid json`)
	defer ts.Close()

	_, err := testClient(ts).Search(context.Background(), "test", "")
	var respErr *ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("error = %v, want *ResponseError", err)
	}
	if !strings.Contains(respErr.Body, "malformed response body") {
		t.Errorf("Body = %q, should describe the decode failure", respErr.Body)
	}
}

func TestClientSearchContextCancelled(t *testing.T) {
	ts := guardianTestServer(http.StatusOK, sampleGuardianJSON)
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(ts).Search(ctx, "test", "")
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %v, want *RequestError", err)
	}
}
