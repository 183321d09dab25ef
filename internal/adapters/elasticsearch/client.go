package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/agregator/conference-board/internal/config"
)

// Client implements the CacheStore interface on top of an Elasticsearch index.
type Client struct {
	es     *elasticsearch.Client
	index  string
	logger *slog.Logger
}

// cacheDocument is the stored form of one cache entry
type cacheDocument struct {
	Key       string    `json:"key"`
	Value     []byte    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a new Elasticsearch client, retrieving configuration from context.
func New(ctx context.Context) (*Client, error) {
	appCfg := config.GetConfig(ctx)
	esCfg := appCfg.Cache.Elasticsearch

	if esCfg.HasCredentials() {
		return NewWithURL(esCfg.URL, esCfg.User, esCfg.Password, esCfg.Index)
	}
	return NewWithURL(esCfg.URL, "", "", esCfg.Index)
}

// NewWithURL creates a new Elasticsearch client with explicit URL, credentials and index.
func NewWithURL(elasticsearchURL, username, password, index string) (*Client, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{elasticsearchURL},
	}

	// Add authentication if credentials are provided
	if username != "" && password != "" {
		cfg.Username = username
		cfg.Password = password
	}

	es, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	// Verify connection
	res, err := es.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch connection error: %s - %s", res.Status(), string(body))
	}

	logger := slog.Default().With("component", "elasticsearch")
	logger.Info("connected to elasticsearch", "url", elasticsearchURL, "index", index, "authenticated", username != "")

	return &Client{
		es:     es,
		index:  index,
		logger: logger,
	}, nil
}

// EnsureIndex creates the cache index if it does not exist yet.
func (c *Client) EnsureIndex(ctx context.Context) error {
	exists, err := c.IndexExists(ctx, c.index)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return c.CreateIndex(ctx, c.index, CacheIndexMapping)
}

// Get returns the cached value for key. A missing document or index is a miss.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	doc, err := c.getDocument(ctx, key)
	if err != nil || doc == nil {
		return nil, false, err
	}
	return doc.Value, true, nil
}

// UpdatedAt returns the write time recorded in the document for key
func (c *Client) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	doc, err := c.getDocument(ctx, key)
	if err != nil || doc == nil {
		return time.Time{}, false, err
	}
	return doc.UpdatedAt, true, nil
}

// getDocument returns nil without an error when key is not stored
func (c *Client) getDocument(ctx context.Context, key string) (*cacheDocument, error) {
	req := esapi.GetRequest{
		Index:      c.index,
		DocumentID: key,
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("get document error: %s - %s", res.Status(), string(body))
	}

	var getResponse struct {
		Found  bool          `json:"found"`
		Source cacheDocument `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&getResponse); err != nil {
		return nil, fmt.Errorf("failed to parse get response: %w", err)
	}
	if !getResponse.Found {
		return nil, nil
	}
	return &getResponse.Source, nil
}

// Put replaces the document stored under key and makes it visible immediately.
func (c *Client) Put(ctx context.Context, key string, value []byte) error {
	doc, err := json.Marshal(cacheDocument{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", key, err)
	}

	req := esapi.IndexRequest{
		Index:      c.index,
		DocumentID: key,
		Body:       bytes.NewReader(doc),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to index document %s: %w", key, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("index document error: %s - %s", res.Status(), string(body))
	}

	c.logger.Debug("stored cache entry", "index", c.index, "key", key, "bytes", len(value))
	return nil
}

// CreateIndex creates a new index with the specified mapping.
func (c *Client) CreateIndex(ctx context.Context, indexName string, mapping string) error {
	req := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mapping),
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return fmt.Errorf("failed to create index %s: %w", indexName, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("create index error: %s - %s", res.Status(), string(body))
	}

	c.logger.Info("created index", "index", indexName)
	return nil
}

// IndexExists checks if an index exists in Elasticsearch.
func (c *Client) IndexExists(ctx context.Context, indexName string) (bool, error) {
	req := esapi.IndicesExistsRequest{
		Index: []string{indexName},
	}

	res, err := req.Do(ctx, c.es)
	if err != nil {
		return false, fmt.Errorf("failed to check if index exists %s: %w", indexName, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	}

	body, _ := io.ReadAll(res.Body)
	return false, fmt.Errorf("index exists check error: %s - %s", res.Status(), string(body))
}
