package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"collab-dashboard/internal/session"
	"collab-dashboard/pkg/log"
)

const (
	HeaderSessionID = "X-Session-ID"

	sessionKey = "session"
)

// Session binds the request to its client session, creating one when the
// X-Session-ID header is missing or stale. The id is echoed back on every response.
func (mw Middleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token = mw.defaultToken
		}

		sess, created := mw.sessions.Resolve(c.Request.Context(), c.GetHeader(HeaderSessionID), token)
		ctx := log.WithSessionID(c.Request.Context(), sess.ID)
		c.Request = c.Request.WithContext(ctx)

		if created {
			if err := sess.Warm(ctx); err != nil {
				mw.l.Warnf(ctx, "middleware.Session Warm: %v", err)
			}
		}

		c.Header(HeaderSessionID, sess.ID)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session attached by the Session middleware.
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
