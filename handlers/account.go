package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/employee7007-droid/construct-deal/internal/api"
	"github.com/employee7007-droid/construct-deal/internal/models"
	"github.com/employee7007-droid/construct-deal/internal/session"
	"github.com/employee7007-droid/construct-deal/pkg/logger"
	"github.com/employee7007-droid/construct-deal/pkg/middleware"
)

// AccountHandler serves the signed-in user's own account page, backed by the
// backend's view of the profile rather than the session copy.
type AccountHandler struct {
	clients *api.Clients
	store   *session.Store
}

func NewAccountHandler(clients *api.Clients, store *session.Store) *AccountHandler {
	return &AccountHandler{clients: clients, store: store}
}

func (h *AccountHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/account", h.Show)
}

func (h *AccountHandler) Show(c *gin.Context) {
	user, err := h.clients.Auth.Me(apiCtx(c))
	if err != nil {
		redirectError(c, "/dashboard", err)
		return
	}
	// fold profile changes made elsewhere back into the session copy
	sess := middleware.CurrentSession(c)
	if sess.User != nil && (sess.User.Name != user.Name || sess.User.EmailVerified != user.EmailVerified) {
		patch := models.UserPatch{Name: &user.Name, EmailVerified: &user.EmailVerified}
		if err := h.store.UpdateUser(c.Request.Context(), middleware.CurrentSID(c), patch); err != nil {
			logger.Warnf("sync account profile: %v", err)
		}
	}
	render(c, http.StatusOK, "account.tmpl", gin.H{
		"Title":   "My account",
		"Account": user,
	})
}
