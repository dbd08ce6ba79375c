package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// AuthClient talks to the /auth resource domain.
type AuthClient struct {
	c *Client
}

// Credentials is the payload for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the payload for account creation.
type Registration struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
	Phone    string      `json:"phone,omitempty"`
}

// LoginResult is the unwrapped data of a successful login or registration.
type LoginResult struct {
	User         models.User `json:"user"`
	Token        string      `json:"token"`
	RefreshToken string      `json:"refreshToken"`
}

// RefreshResult is the unwrapped data of a token refresh.
type RefreshResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

func (a *AuthClient) Login(ctx context.Context, creds Credentials) (*LoginResult, error) {
	var out LoginResult
	if err := a.c.mutate(ctx, http.MethodPost, "/auth/login", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) Register(ctx context.Context, reg Registration) (*LoginResult, error) {
	var out LoginResult
	if err := a.c.mutate(ctx, http.MethodPost, "/auth/register", reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) Refresh(ctx context.Context, refreshToken string) (*RefreshResult, error) {
	body := map[string]string{"refreshToken": refreshToken}
	var out RefreshResult
	if err := a.c.mutate(ctx, http.MethodPost, "/auth/refresh", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}
	return a.c.mutate(ctx, http.MethodPost, "/auth/logout", body, nil)
}

func (a *AuthClient) LogoutAll(ctx context.Context) error {
	return a.c.mutate(ctx, http.MethodPost, "/auth/logout-all", nil, nil)
}

func (a *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	return a.c.mutate(ctx, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

func (a *AuthClient) ResetPassword(ctx context.Context, resetToken, password string) error {
	body := map[string]string{"resetToken": resetToken, "password": password}
	return a.c.mutate(ctx, http.MethodPost, "/auth/reset-password", body, nil)
}

// VerifyEmail confirms an email verification token. Uncached: the token is
// single-use.
func (a *AuthClient) VerifyEmail(ctx context.Context, verificationToken string) error {
	return a.c.query(ctx, "/auth/verify-email/"+verificationToken, nil, nil, nil)
}

// Me returns the current user as the backend sees it.
func (a *AuthClient) Me(ctx context.Context) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := a.c.query(ctx, "/auth/me", nil, []Tag{TagAuth}, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}
