package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/session"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
)

const (
	ctxSessionKey = "session"
	ctxSIDKey     = "sid"
)

// Sessions resolves the browser session from the sid cookie and places it in
// the Gin context for downstream handlers. Visitors without a cookie get a
// fresh sid so a later login has somewhere to land. Secure marks the cookie
// HTTPS-only and should be set outside local development.
func Sessions(store *session.Store, cookieName string, ttl time.Duration, secure bool) gin.HandlerFunc {
	maxAge := int(ttl.Seconds())
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid, err = session.NewSID()
			if err != nil {
				logger.Errorf("session: generate sid: %v", err)
				c.AbortWithStatus(500)
				return
			}
			c.SetCookie(cookieName, sid, maxAge, "/", "", secure, true)
		}
		sess, err := store.Get(c.Request.Context(), sid)
		if err != nil {
			// a broken session backend must not take down anonymous pages
			logger.Errorf("session: load %s: %v", sid, err)
			sess = session.Session{}
		}
		c.Set(ctxSIDKey, sid)
		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session placed in the context by Sessions. A
// missing entry yields an anonymous zero session.
func CurrentSession(c *gin.Context) session.Session {
	if v, ok := c.Get(ctxSessionKey); ok {
		if s, ok2 := v.(session.Session); ok2 {
			return s
		}
	}
	return session.Session{}
}

// CurrentSID returns the sid resolved by Sessions, or "".
func CurrentSID(c *gin.Context) string {
	return c.GetString(ctxSIDKey)
}
