package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnexpectedDocument is returned when the feed body is valid JSON but not
// a GeoJSON FeatureCollection.
var ErrUnexpectedDocument = errors.New("feed document is not a FeatureCollection")

// FeedError represents a non-2xx response from the feed endpoint.
type FeedError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("feed error %d: %s", e.StatusCode, e.Message)
}

// Fetch performs a single GET of the feed and decodes the document.
// Failures are returned as-is; there is no retry.
func (c *Client) Fetch(ctx context.Context) (*FeatureCollection, error) {
	start := time.Now()

	body, err := c.doRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	var doc FeatureCollection
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	if doc.Type != "" && doc.Type != "FeatureCollection" {
		return nil, fmt.Errorf("decode feed: %w (type %q)", ErrUnexpectedDocument, doc.Type)
	}
	// An empty array is a legal empty feed; a missing or null one is not.
	if doc.Features == nil {
		return nil, fmt.Errorf("decode feed: %w (no features array)", ErrUnexpectedDocument)
	}

	c.logger.Debug("feed fetched",
		"url", c.url,
		"features", len(doc.Features),
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return &doc, nil
}

// doRequest performs the HTTP GET and returns the response body.
func (c *Client) doRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/geo+json, application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &FeedError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, nil
}
