package geocoding

import (
	"time"

	"inventory-api/internal/observability"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// Options configures the geocoder assembled by New.
type Options struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	CacheSize int // zero disables the cache
	CacheTTL  time.Duration
}

// New wires the HTTP transport, the service and, when enabled, the cache.
func New(opts Options, metrics *observability.Metrics, logger zerolog.Logger) Resolver {
	transport := NewHTTPTransport(opts.APIKey, opts.BaseURL, opts.Timeout, metrics)
	svc := NewService(transport, metrics, logger)
	if opts.CacheSize <= 0 {
		return svc
	}
	return NewCachedGeocoder(svc, opts.CacheSize, opts.CacheTTL, clockwork.NewRealClock(), metrics)
}
