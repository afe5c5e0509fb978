package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the per-IP limiter for every route and a stricter
// one for admin passkey attempts.
func (m *Middlewares) CreateRateLimiters() (publicLimiter, passkeyLimiter func(next http.Handler) http.Handler) {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	publicLimiter = httprate.LimitByIP(m.InternalConfig.App.MaxRequests, window)
	passkeyLimiter = httprate.LimitByIP(m.InternalConfig.Admin.SessionMaxAttemptsPerMinute, time.Minute)
	return publicLimiter, passkeyLimiter
}
