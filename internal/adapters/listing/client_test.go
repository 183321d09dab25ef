package listing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agregator/conference-board/internal/config"
	"github.com/agregator/conference-board/internal/domain"
)

// testConfig creates a test config with the given listing URL
func testConfig(listingURL string) *config.Config {
	return &config.Config{
		Listing: config.ListingConfig{
			URL:     listingURL,
			Path:    "/conferences",
			Timeout: 5 * time.Second,
		},
	}
}

func TestNew(t *testing.T) {
	t.Run("successful creation with context config", func(t *testing.T) {
		ctx := config.WithConfig(context.Background(), testConfig("http://localhost:5002"))

		client, err := New(ctx)

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5002/conferences", client.endpoint)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("panics when config not in context", func(t *testing.T) {
		assert.Panics(t, func() {
			New(context.Background())
		})
	})
}

func TestClient_GetConferences(t *testing.T) {
	t.Run("successful fetch of a json array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/conferences", r.URL.Path)
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"title":" Physics ","date":"05.03","location":"Moscow","organizers":"MSU","source":"konferen.ru","link":"/conf/1"},
				{"title":"Chemistry","date":"20.04.2024","location":"Perm","organizers":"PSU","source":"konferencii.ru","link":"/events/2"}
			]`))
		}))
		defer server.Close()

		client := NewWithHTTPClient(server.URL+"/conferences", server.Client())
		conferences, err := client.GetConferences(context.Background())

		require.NoError(t, err)
		require.Len(t, conferences, 2)
		assert.Equal(t, domain.Conference{
			Title:      "Physics",
			Date:       "05.03",
			Location:   "Moscow",
			Organizers: "MSU",
			Source:     domain.SourceKonferen,
			Link:       "/conf/1",
		}, conferences[0])
		assert.Equal(t, domain.SourceKonferencii, conferences[1].Source)
	})

	t.Run("accepts the wrapped form", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"conferences":[{"title":"Biology","date":"01.02","source":"konferen.ru"}]}`))
		}))
		defer server.Close()

		client := NewWithHTTPClient(server.URL, server.Client())
		conferences, err := client.GetConferences(context.Background())

		require.NoError(t, err)
		require.Len(t, conferences, 1)
		assert.Equal(t, "Biology", conferences[0].Title)
	})

	t.Run("empty array", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewWithHTTPClient(server.URL, server.Client())
		conferences, err := client.GetConferences(context.Background())

		require.NoError(t, err)
		assert.Empty(t, conferences)
	})

	t.Run("server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		client := NewWithHTTPClient(server.URL, server.Client())
		conferences, err := client.GetConferences(context.Background())

		assert.Error(t, err)
		assert.Nil(t, conferences)
		assert.Contains(t, err.Error(), "unexpected status code: 502")
	})

	t.Run("invalid json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer server.Close()

		client := NewWithHTTPClient(server.URL, server.Client())
		_, err := client.GetConferences(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal conferences")
	})

	t.Run("object without a conference list", func(t *testing.T) {
		for _, body := range []string{`{"error":"scraper is down"}`, `{}`, `{"conferences":null}`} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))

			client := NewWithHTTPClient(server.URL, server.Client())
			conferences, err := client.GetConferences(context.Background())
			server.Close()

			assert.ErrorIs(t, err, ErrNotAListing, body)
			assert.Nil(t, conferences, body)
		}
	})

	t.Run("wrapped empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"conferences":[]}`))
		}))
		defer server.Close()

		client := NewWithHTTPClient(server.URL, server.Client())
		conferences, err := client.GetConferences(context.Background())

		require.NoError(t, err)
		assert.Empty(t, conferences)
	})

	t.Run("cancelled context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewWithHTTPClient(server.URL, server.Client())
		_, err := client.GetConferences(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMapConferences(t *testing.T) {
	assert.Empty(t, MapConferences(nil))

	got := MapConferences([]ConferenceResponse{{Title: "A", Date: " 05.03 ", Source: " konferen.ru "}})
	assert.Equal(t, " 05.03 ", got[0].Date)
	assert.Equal(t, domain.SourceKonferen, got[0].Source)
}
