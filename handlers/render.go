package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/pkg/middleware"
)

// render merges per-page data with the base layout data every template needs:
// the session, the role-scoped navigation and any flash carried in the query
// string.
func render(c *gin.Context, code int, name string, data gin.H) {
	sess := middleware.CurrentSession(c)
	base := gin.H{
		"Session": sess,
		"User":    sess.User,
		"Nav":     navFor(sess),
		"Error":   c.Query("error"),
		"Notice":  c.Query("notice"),
	}
	for k, v := range data {
		base[k] = v
	}
	c.HTML(code, name, base)
}

// apiCtx derives the upstream request context, carrying the session's access
// token so resource clients authenticate as the visitor.
func apiCtx(c *gin.Context) context.Context {
	return api.WithToken(c.Request.Context(), middleware.CurrentSession(c).AccessToken)
}

// redirectNotice sends the visitor to path with a flash notice.
func redirectNotice(c *gin.Context, path, notice string) {
	c.Redirect(http.StatusSeeOther, path+"?notice="+url.QueryEscape(notice))
}

// redirectError sends the visitor to path with a flash error. Upstream 401s
// mean the session went stale mid-request, so those land on /auth instead.
func redirectError(c *gin.Context, path string, err error) {
	if api.IsUnauthorized(err) {
		c.Redirect(http.StatusSeeOther, "/auth")
		return
	}
	c.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(errMessage(err)))
}

// errMessage prefers the backend's message over Go error plumbing.
func errMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "something went wrong, please try again"
}

// intQuery parses an int query param, 0 when absent or invalid.
func intQuery(c *gin.Context, key string) int {
	v := c.Query(key)
	if v == "" {
		return 0
	}
	n := 0
	for _, r := range v {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}

// floatQuery parses a float query param, 0 when absent or invalid.
func floatQuery(c *gin.Context, key string) float64 {
	f, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil {
		return 0
	}
	return f
}
