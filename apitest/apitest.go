// Package apitest provides test helpers for serving and fetching apidoc
// documents.
package apitest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/apidoc"
)

// Client wraps an httptest.Server for convenient document testing.
type Client struct {
	Server *httptest.Server
}

// NewClient creates a test client serving h.
func NewClient(t testing.TB, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return &Client{Server: srv}
}

// Response holds a fetched document.
type Response struct {
	Status   int
	Headers  http.Header
	Document *apidoc.Document
}

// GetDocument fetches path and decodes a JSON document when the status is 200.
func GetDocument(t testing.TB, c *Client, path string) *Response {
	t.Helper()
	return get(t, c, path, func(r io.Reader, doc *apidoc.Document) error {
		return json.NewDecoder(r).Decode(doc)
	})
}

// GetDocumentYAML fetches path and decodes a YAML document when the status is 200.
func GetDocumentYAML(t testing.TB, c *Client, path string) *Response {
	t.Helper()
	return get(t, c, path, func(r io.Reader, doc *apidoc.Document) error {
		return yaml.NewDecoder(r).Decode(doc)
	})
}

// Get sends a GET request and returns the status code.
func Get(t testing.TB, c *Client, path string) int {
	t.Helper()
	return get(t, c, path, nil).Status
}

func get(t testing.TB, c *Client, path string, decode func(io.Reader, *apidoc.Document) error) *Response {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, c.Server.URL+path, nil)
	if err != nil {
		t.Fatalf("apitest: create request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("apitest: execute request: %v", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.Errorf("apitest: close body: %v", closeErr)
		}
	}()

	result := &Response{
		Status:  resp.StatusCode,
		Headers: resp.Header,
	}

	if decode != nil && resp.StatusCode == http.StatusOK {
		var doc apidoc.Document
		if err := decode(resp.Body, &doc); err != nil {
			t.Fatalf("apitest: decode document: %v", err)
		}
		result.Document = &doc
	}

	return result
}
