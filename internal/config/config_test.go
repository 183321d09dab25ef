package config

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected *Config
		wantErr  bool
	}{
		{
			name:    "load with defaults",
			envVars: map[string]string{},
			expected: &Config{
				ApplicationConfig: ApplicationConfig{Mode: ModeProduction},
				Http:              HttpConfig{Host: "0.0.0.0", Port: 8080},
				Listing: ListingConfig{
					URL:             "http://localhost:5002",
					Path:            "/conferences",
					Timeout:         30 * time.Second,
					RefreshInterval: 600 * time.Second,
				},
				Cache: CacheConfig{
					Backend: CacheBackendFile,
					Key:     "conferences",
					Dir:     ".cache/conference-board",
					Elasticsearch: ElasticsearchConfig{
						URL:   "http://localhost:9200",
						Index: "conference_board_cache",
					},
				},
				Board: BoardConfig{PageSize: 15, MaxVisibleButtons: 5, DisplayYear: 2024},
			},
			wantErr: false,
		},
		{
			name: "load with custom values",
			envVars: map[string]string{
				"MODE":                      "development",
				"HTTP_HOST":                 "127.0.0.1",
				"HTTP_PORT":                 "9090",
				"LISTING_URL":               "https://api.example.com",
				"LISTING_PATH":              "/v1/conferences",
				"LISTING_TIMEOUT":           "5s",
				"LISTING_REFRESH_INTERVAL":  "1m",
				"CACHE_BACKEND":             "elasticsearch",
				"CACHE_KEY":                 "board",
				"CACHE_DIR":                 "/tmp/board",
				"CACHE_ES_URL":              "https://es.example.com:9200",
				"CACHE_ES_INDEX":            "custom_cache",
				"BOARD_PAGE_SIZE":           "10",
				"BOARD_MAX_VISIBLE_BUTTONS": "7",
				"BOARD_DISPLAY_YEAR":        "2025",
			},
			expected: &Config{
				ApplicationConfig: ApplicationConfig{Mode: ModeDevelopment},
				Http:              HttpConfig{Host: "127.0.0.1", Port: 9090},
				Listing: ListingConfig{
					URL:             "https://api.example.com",
					Path:            "/v1/conferences",
					Timeout:         5 * time.Second,
					RefreshInterval: time.Minute,
				},
				Cache: CacheConfig{
					Backend: CacheBackendElasticsearch,
					Key:     "board",
					Dir:     "/tmp/board",
					Elasticsearch: ElasticsearchConfig{
						URL:   "https://es.example.com:9200",
						Index: "custom_cache",
					},
				},
				Board: BoardConfig{PageSize: 10, MaxVisibleButtons: 7, DisplayYear: 2025},
			},
			wantErr: false,
		},
		{
			name: "invalid port value",
			envVars: map[string]string{
				"HTTP_PORT": "invalid",
			},
			expected: nil,
			wantErr:  true,
		},
		{
			name: "unknown cache backend",
			envVars: map[string]string{
				"CACHE_BACKEND": "redis",
			},
			expected: nil,
			wantErr:  true,
		},
		{
			name: "unknown mode",
			envVars: map[string]string{
				"MODE": "staging",
			},
			expected: nil,
			wantErr:  true,
		},
		{
			name: "zero page size",
			envVars: map[string]string{
				"BOARD_PAGE_SIZE": "0",
			},
			expected: nil,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment before each test
			clearConfigEnv()

			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}
			defer clearConfigEnv()

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)
			assert.Equal(t, tt.expected.Mode, cfg.Mode)
			assert.Equal(t, tt.expected.Http.Host, cfg.Http.Host)
			assert.Equal(t, tt.expected.Http.Port, cfg.Http.Port)
			assert.Equal(t, tt.expected.Listing, cfg.Listing)
			assert.Equal(t, tt.expected.Cache.Backend, cfg.Cache.Backend)
			assert.Equal(t, tt.expected.Cache.Key, cfg.Cache.Key)
			assert.Equal(t, tt.expected.Cache.Dir, cfg.Cache.Dir)
			assert.Equal(t, tt.expected.Cache.Elasticsearch.URL, cfg.Cache.Elasticsearch.URL)
			assert.Equal(t, tt.expected.Cache.Elasticsearch.Index, cfg.Cache.Elasticsearch.Index)
			assert.Equal(t, tt.expected.Board, cfg.Board)
		})
	}
}

func TestHttpConfig_Addr(t *testing.T) {
	tests := []struct {
		name     string
		config   HttpConfig
		expected string
	}{
		{
			name:     "default values",
			config:   HttpConfig{Host: "0.0.0.0", Port: 8080},
			expected: "0.0.0.0:8080",
		},
		{
			name:     "localhost",
			config:   HttpConfig{Host: "127.0.0.1", Port: 3000},
			expected: "127.0.0.1:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Addr())
		})
	}
}

func TestListingConfig_Endpoint(t *testing.T) {
	cfg := ListingConfig{URL: "http://localhost:5002", Path: "/conferences"}
	assert.Equal(t, "http://localhost:5002/conferences", cfg.Endpoint())
}

func TestCacheBackend_Validate(t *testing.T) {
	for _, b := range []CacheBackend{CacheBackendFile, CacheBackendSQLite, CacheBackendElasticsearch, CacheBackendMemory} {
		assert.NoError(t, b.Validate(), string(b))
	}
	assert.Error(t, CacheBackend("localstorage").Validate())
}

func TestMode(t *testing.T) {
	assert.NoError(t, ModeProduction.Validate())
	assert.NoError(t, ModeDevelopment.Validate())
	assert.Error(t, Mode("").Validate())
	assert.True(t, ModeDevelopment.IsDevelopment())
	assert.False(t, ModeProduction.IsDevelopment())
}

func TestGetConfig(t *testing.T) {
	t.Run("get config from context", func(t *testing.T) {
		cfg := &Config{
			Http:    HttpConfig{Host: "127.0.0.1", Port: 9090},
			Listing: ListingConfig{URL: "https://api.example.com"},
		}

		ctx := WithConfig(context.Background(), cfg)
		retrievedCfg := GetConfig(ctx)

		require.NotNil(t, retrievedCfg)
		assert.Equal(t, cfg.Http.Port, retrievedCfg.Http.Port)
		assert.Equal(t, cfg.Listing.URL, retrievedCfg.Listing.URL)
	})

	t.Run("panic when config not in context", func(t *testing.T) {
		ctx := context.Background()
		assert.Panics(t, func() {
			GetConfig(ctx)
		})
	})

	t.Run("from context without panic", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
	})
}

func TestObservabilityConfig_IsSentryConfigured(t *testing.T) {
	assert.False(t, (&ObservabilityConfig{}).IsSentryConfigured())
	assert.True(t, (&ObservabilityConfig{SentryDSN: "https://key@sentry.example.com/1"}).IsSentryConfigured())
}

func TestMustLoad(t *testing.T) {
	t.Run("successful load", func(t *testing.T) {
		clearConfigEnv()
		defer clearConfigEnv()

		os.Setenv("HTTP_PORT", "8080")

		cfg := MustLoad()
		require.NotNil(t, cfg)
		assert.Equal(t, 8080, cfg.Http.Port)
	})
}

// clearConfigEnv removes all config-related environment variables
func clearConfigEnv() {
	for _, key := range []string{
		"MODE",
		"HTTP_HOST", "HTTP_PORT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_SHUTDOWN_TIMEOUT",
		"LISTING_URL", "LISTING_PATH", "LISTING_TIMEOUT", "LISTING_REFRESH_INTERVAL",
		"CACHE_BACKEND", "CACHE_KEY", "CACHE_DIR",
		"CACHE_ES_URL", "CACHE_ES_USER", "CACHE_ES_PASSWORD", "CACHE_ES_INDEX",
		"BOARD_PAGE_SIZE", "BOARD_MAX_VISIBLE_BUTTONS", "BOARD_DISPLAY_YEAR",
		"LOG_FILE", "SENTRY_DSN", "SENTRY_ENVIRONMENT", "METRICS_ENABLED",
	} {
		os.Unsetenv(key)
	}
}
