package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inventory-api/internal/observability"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":45.5162468,"lng":-122.6857963}},"address_components":[]}]}`))
	}))
	t.Cleanup(srv.Close)

	t.Run("without cache", func(t *testing.T) {
		calls = 0
		g := New(Options{APIKey: "k", BaseURL: srv.URL, Timeout: time.Second}, observability.NewMetricsForTesting(), zerolog.Nop())
		assert.IsType(t, &Service{}, g)

		for range 2 {
			_, err := g.Resolve(context.Background(), "1305 SW 11th Avenue", "Portland", "")
			require.NoError(t, err)
		}
		assert.Equal(t, 2, calls)
	})

	t.Run("with cache", func(t *testing.T) {
		calls = 0
		g := New(Options{APIKey: "k", BaseURL: srv.URL, Timeout: time.Second, CacheSize: 10, CacheTTL: time.Hour}, observability.NewMetricsForTesting(), zerolog.Nop())
		assert.IsType(t, &CachedGeocoder{}, g)

		for range 2 {
			result, err := g.Resolve(context.Background(), "1305 SW 11th Avenue", "Portland", "")
			require.NoError(t, err)
			assert.Equal(t, "45.5162468", result.Latitude.String())
		}
		assert.Equal(t, 1, calls)
	})
}
