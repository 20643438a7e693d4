package middleware

import (
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"calendar-assistant/pkg/log"
)

const (
	tokenCacheSize = 4096
	tokenCacheTTL  = time.Hour

	limiterTableSize = 4096
)

// Config holds middleware settings.
type Config struct {
	// TokenInfoURL is the Google tokeninfo endpoint. Overridable for tests.
	TokenInfoURL string
	// Timezone is the default IANA timezone applied to request scopes that
	// carry no explicit one.
	Timezone string
	// RatePerMinute caps requests per access token. Zero disables limiting.
	RatePerMinute int
}

type Middleware struct {
	l   log.Logger
	cfg Config

	httpClient *http.Client

	// tokens caches validated access tokens until shortly before their
	// upstream expiry. Injected per instance, never process-global.
	tokens *expirable.LRU[string, tokenEntry]

	// limiters holds one rate limiter per access token.
	limiters *lru.Cache[string, *rate.Limiter]
}

func New(l log.Logger, cfg Config) (Middleware, error) {
	limiters, err := lru.New[string, *rate.Limiter](limiterTableSize)
	if err != nil {
		return Middleware{}, err
	}
	return Middleware{
		l:          l,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokens:     expirable.NewLRU[string, tokenEntry](tokenCacheSize, nil, tokenCacheTTL),
		limiters:   limiters,
	}, nil
}
