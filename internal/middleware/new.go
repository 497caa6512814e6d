package middleware

import (
	"collab-dashboard/internal/session"
	"collab-dashboard/pkg/log"
)

type Middleware struct {
	l            log.Logger
	sessions     *session.Store
	defaultToken string
	limiter      *rateLimiter
}

// New creates the middleware set. requestsPerMin == 0 disables ingress throttling.
func New(l log.Logger, sessions *session.Store, defaultToken string, requestsPerMin int) Middleware {
	mw := Middleware{
		l:            l,
		sessions:     sessions,
		defaultToken: defaultToken,
	}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
