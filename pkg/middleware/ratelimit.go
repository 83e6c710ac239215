package middleware

import (
	"net"
	"net/http"

	"dootrec/internal/ratelimit"
	"dootrec/pkg/utils"

	"go.uber.org/zap"
)

// RateLimit rejects requests from a client that has used up its token bucket.
// Clients are keyed by remote IP.
func RateLimit(limiter *ratelimit.KeyedRateLimiter, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ClientKey(r)
			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded",
					zap.String("client", key),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseTooManyRequests(w, "Too many requests, slow down")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientKey identifies the caller by remote IP, falling back to the raw address.
func ClientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
