package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/deerk/mock-interviewer/internal/config"
)

const (
	rateLimitRequests = 5
	rateLimitWindow   = time.Minute
)

// RateLimit returns a per-client-IP limiter of 5 requests per minute.
// Each call builds an independent limiter, so routes limited separately
// must each call this once.
func RateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		rateLimitRequests,
		rateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			config.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}
