package config

import "fmt"

// CacheBackend selects where the conference collection is persisted
type CacheBackend string

const (
	CacheBackendFile          CacheBackend = "file"
	CacheBackendSQLite        CacheBackend = "sqlite"
	CacheBackendElasticsearch CacheBackend = "elasticsearch"
	CacheBackendMemory        CacheBackend = "memory"
)

// Validate returns an error for unknown backends
func (b CacheBackend) Validate() error {
	switch b {
	case CacheBackendFile, CacheBackendSQLite, CacheBackendElasticsearch, CacheBackendMemory:
		return nil
	}
	return fmt.Errorf("unknown cache backend %q", string(b))
}

// CacheConfig holds persisted cache configuration
type CacheConfig struct {
	Backend       CacheBackend        `env:"BACKEND" envDefault:"file"`
	Key           string              `env:"KEY" envDefault:"conferences"`
	Dir           string              `env:"DIR" envDefault:".cache/conference-board"`
	Elasticsearch ElasticsearchConfig `envPrefix:"ES_"`
}

// ElasticsearchConfig holds Elasticsearch client configuration for the cache backend
type ElasticsearchConfig struct {
	URL      string `env:"URL" envDefault:"http://localhost:9200"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Index    string `env:"INDEX" envDefault:"conference_board_cache"`
}

// HasCredentials returns true if authentication credentials are configured
func (c *ElasticsearchConfig) HasCredentials() bool {
	return c.User != "" && c.Password != ""
}
