package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/session"
	"github.com/employee7007-droid/construct-deal/internal/tokens"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
)

// Refresher is the minimal interface the guard depends on for token renewal.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*api.RefreshResult, error)
}

// RequireAuth redirects anonymous visitors to /auth. For authenticated
// sessions it renews access tokens that expire within the leeway, so page
// handlers never hold a token about to go stale. A refresh rejected upstream
// logs the session out and sends the visitor back to /auth.
func RequireAuth(store *session.Store, auth Refresher, leeway time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if !sess.IsAuthenticated {
			c.Redirect(http.StatusFound, "/auth")
			c.Abort()
			return
		}

		if sess.RefreshToken != "" && tokens.ExpiringSoon(sess.AccessToken, leeway) {
			ctx := c.Request.Context()
			res, err := auth.Refresh(ctx, sess.RefreshToken)
			switch {
			case err == nil:
				refresh := res.RefreshToken
				if refresh == "" {
					refresh = sess.RefreshToken
				}
				if serr := store.SetCredentials(ctx, CurrentSID(c), sess.User, res.Token, refresh); serr != nil {
					logger.Errorf("guard: persist refreshed tokens: %v", serr)
				}
				sess.AccessToken = res.Token
				sess.RefreshToken = refresh
				c.Set(ctxSessionKey, sess)
			case api.IsUnauthorized(err):
				// refresh token revoked or expired upstream
				if lerr := store.Logout(ctx, CurrentSID(c)); lerr != nil {
					logger.Errorf("guard: logout after failed refresh: %v", lerr)
				}
				c.Redirect(http.StatusFound, "/auth")
				c.Abort()
				return
			default:
				// transient upstream trouble; keep serving with the current token
				logger.Warnf("guard: token refresh failed: %v", err)
			}
		}
		c.Next()
	}
}

// RequireRoles allows only sessions whose user holds one of the given roles.
// Sessions that are authenticated but carry no user are treated as broken and
// sent to the dashboard, same as a role mismatch.
func RequireRoles(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess.User == nil {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		if _, ok := allowed[sess.User.Role]; !ok {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
