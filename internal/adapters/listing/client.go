// Package listing fetches the conference collection from the aggregation service.
package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/domain"
)

// ErrNotAListing is returned for a JSON object without a "conferences" array
var ErrNotAListing = errors.New("response is not a conference listing")

// Client implements the ConferenceProvider interface for the listing service
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new listing Client, retrieving configuration from context
func New(ctx context.Context) (*Client, error) {
	cfg := config.GetConfig(ctx)
	return &Client{
		endpoint: cfg.Listing.Endpoint(),
		httpClient: &http.Client{
			Timeout: cfg.Listing.Timeout,
		},
		logger: slog.Default().With("component", "listing"),
	}, nil
}

// NewWithHTTPClient creates a new listing Client with a custom HTTP client.
// This constructor is primarily intended for testing purposes.
func NewWithHTTPClient(endpoint string, httpClient *http.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     slog.Default().With("component", "listing"),
	}
}

// doRequest performs a GET request against the endpoint and returns the body
func (c *Client) doRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.DebugContext(ctx, "Making HTTP request", "url", c.endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.ErrorContext(ctx, "HTTP request failed",
			"status", resp.StatusCode,
			"url", c.endpoint,
			"body", string(body),
		)
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// GetConferences retrieves the full conference collection
func (c *Client) GetConferences(ctx context.Context) ([]domain.Conference, error) {
	body, err := c.doRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conferences: %w", err)
	}

	records, err := decodeConferences(body)
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to unmarshal conferences response",
			"error", err,
			"body", string(body),
		)
		return nil, fmt.Errorf("failed to unmarshal conferences: %w", err)
	}

	conferences := MapConferences(records)

	c.logger.InfoContext(ctx, "Fetched conferences", "count", len(conferences))

	return conferences, nil
}

// decodeConferences accepts a bare array or an object carrying a "conferences" array
func decodeConferences(body []byte) ([]ConferenceResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		var records []ConferenceResponse
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var envelope ConferencesEnvelope
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	if envelope.Conferences == nil {
		return nil, ErrNotAListing
	}
	return *envelope.Conferences, nil
}
