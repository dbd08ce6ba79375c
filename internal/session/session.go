package session

import "github.com/employee7007-droid/construct-deal/internal/models"

// Session is the authenticated state attached to one browser session.
// IsAuthenticated is derived: it is true exactly when an access token is
// present in durable storage.
type Session struct {
	User            *models.User `json:"user,omitempty"`
	AccessToken     string       `json:"accessToken,omitempty"`
	RefreshToken    string       `json:"refreshToken,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// Role returns the session role, or "" when no user is present.
func (s Session) Role() models.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Record is the durable form of a session: the three fixed storage fields
// written on credential changes and read back at session resolution.
type Record struct {
	UserJSON     string `bson:"user" json:"user"`
	Token        string `bson:"token" json:"token"`
	RefreshToken string `bson:"refreshToken" json:"refreshToken"`
}
