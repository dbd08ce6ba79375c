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

// AuthHandler serves the sign-in and account pages and owns every transition
// of the session's credential state.
type AuthHandler struct {
	clients *api.Clients
	store   *session.Store
}

func NewAuthHandler(clients *api.Clients, store *session.Store) *AuthHandler {
	return &AuthHandler{clients: clients, store: store}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.GET("", h.Page)
	a.POST("/login", h.Login)
	a.POST("/register", h.RegisterAccount)
	a.POST("/logout", h.Logout)
	a.POST("/logout-all", h.LogoutAll)
	a.GET("/forgot-password", h.ForgotPasswordPage)
	a.POST("/forgot-password", h.ForgotPassword)
	a.GET("/reset-password", h.ResetPasswordPage)
	a.POST("/reset-password", h.ResetPassword)
	a.GET("/verify-email/:token", h.VerifyEmail)
}

// Page renders the combined login/register form. Already-authenticated
// visitors are sent straight to the dashboard.
func (h *AuthHandler) Page(c *gin.Context) {
	if middleware.CurrentSession(c).IsAuthenticated {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	render(c, http.StatusOK, "auth.tmpl", gin.H{"Title": "Sign in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	creds := api.Credentials{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	if creds.Email == "" || creds.Password == "" {
		redirectError(c, "/auth", &api.Error{Message: "email and password are required"})
		return
	}
	res, err := h.clients.Auth.Login(c.Request.Context(), creds)
	if err != nil {
		logger.Debugf("login failed for %s: %v", creds.Email, err)
		redirectError(c, "/auth", err)
		return
	}
	if err := h.store.SetCredentials(c.Request.Context(), middleware.CurrentSID(c), &res.User, res.Token, res.RefreshToken); err != nil {
		logger.Errorf("persist credentials: %v", err)
		redirectError(c, "/auth", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *AuthHandler) RegisterAccount(c *gin.Context) {
	role, err := models.ParseRole(c.PostForm("role"))
	if err != nil {
		redirectError(c, "/auth", &api.Error{Message: "choose a valid account type"})
		return
	}
	reg := api.Registration{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     role,
		Phone:    c.PostForm("phone"),
	}
	res, err := h.clients.Auth.Register(c.Request.Context(), reg)
	if err != nil {
		redirectError(c, "/auth", err)
		return
	}
	if err := h.store.SetCredentials(c.Request.Context(), middleware.CurrentSID(c), &res.User, res.Token, res.RefreshToken); err != nil {
		logger.Errorf("persist credentials: %v", err)
		redirectError(c, "/auth", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout revokes the refresh token upstream on a best-effort basis and always
// clears the local session, even when the backend call fails.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess.RefreshToken != "" {
		ctx := apiCtx(c)
		if err := h.clients.Auth.Logout(ctx, sess.RefreshToken); err != nil {
			logger.Warnf("upstream logout: %v", err)
		}
	}
	if err := h.store.Logout(c.Request.Context(), middleware.CurrentSID(c)); err != nil {
		logger.Errorf("clear session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/auth")
}

// LogoutAll revokes every session of the user upstream, then clears this one.
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	if err := h.clients.Auth.LogoutAll(apiCtx(c)); err != nil {
		logger.Warnf("upstream logout-all: %v", err)
	}
	if err := h.store.Logout(c.Request.Context(), middleware.CurrentSID(c)); err != nil {
		logger.Errorf("clear session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, "/auth")
}

func (h *AuthHandler) ForgotPasswordPage(c *gin.Context) {
	render(c, http.StatusOK, "forgot_password.tmpl", gin.H{"Title": "Forgot password"})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		redirectError(c, "/auth/forgot-password", &api.Error{Message: "email is required"})
		return
	}
	if err := h.clients.Auth.ForgotPassword(c.Request.Context(), email); err != nil {
		redirectError(c, "/auth/forgot-password", err)
		return
	}
	redirectNotice(c, "/auth", "check your inbox for a reset link")
}

func (h *AuthHandler) ResetPasswordPage(c *gin.Context) {
	render(c, http.StatusOK, "reset_password.tmpl", gin.H{
		"Title": "Reset password",
		"Token": c.Query("token"),
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	password := c.PostForm("password")
	if token == "" || password == "" {
		redirectError(c, "/auth/reset-password", &api.Error{Message: "token and new password are required"})
		return
	}
	if err := h.clients.Auth.ResetPassword(c.Request.Context(), token, password); err != nil {
		redirectError(c, "/auth/reset-password?token="+token, err)
		return
	}
	redirectNotice(c, "/auth", "password updated, sign in with the new one")
}

func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	if err := h.clients.Auth.VerifyEmail(c.Request.Context(), c.Param("token")); err != nil {
		redirectError(c, "/auth", err)
		return
	}
	// reflect the verified flag into the stored user when logged in
	sess := middleware.CurrentSession(c)
	if sess.IsAuthenticated {
		verified := true
		patch := models.UserPatch{EmailVerified: &verified}
		if err := h.store.UpdateUser(c.Request.Context(), middleware.CurrentSID(c), patch); err != nil {
			logger.Warnf("update verified flag: %v", err)
		}
	}
	redirectNotice(c, "/auth", "email verified")
}
