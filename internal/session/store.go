package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// Store is the single writer for session state. All credential changes go
// through SetCredentials, Logout and UpdateUser; handlers only ever read.
type Store struct {
	repo Repository
	ttl  time.Duration
}

func NewStore(repo Repository, ttl time.Duration) *Store {
	return &Store{repo: repo, ttl: ttl}
}

// NewSID generates an opaque session identifier for the browser cookie.
func NewSID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SetCredentials persists user identity and both tokens atomically, making
// the session authenticated. Caller is expected to pass a validated user and
// non-empty tokens from a successful login or registration.
func (s *Store) SetCredentials(ctx context.Context, sid string, user *models.User, access, refresh string) error {
	if user == nil || access == "" || refresh == "" {
		return fmt.Errorf("incomplete credentials")
	}
	uj, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	rec := &Record{UserJSON: string(uj), Token: access, RefreshToken: refresh}
	return s.repo.Save(ctx, sid, rec, s.ttl)
}

// Logout clears the session and its durable fields. Idempotent: logging out
// an already-anonymous session is a no-op.
func (s *Store) Logout(ctx context.Context, sid string) error {
	return s.repo.Delete(ctx, sid)
}

// UpdateUser merges profile fields into the stored user. When the session has
// no user the call is a no-op, not an error.
func (s *Store) UpdateUser(ctx context.Context, sid string, patch models.UserPatch) error {
	rec, err := s.repo.Load(ctx, sid)
	if err != nil {
		return err
	}
	if rec == nil || rec.UserJSON == "" {
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(rec.UserJSON), &u); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	u.Apply(patch)
	uj, err := json.Marshal(&u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	rec.UserJSON = string(uj)
	return s.repo.Save(ctx, sid, rec, s.ttl)
}

// Get resolves the current session. Absent or expired records yield an
// unauthenticated zero session. IsAuthenticated holds exactly when an access
// token is present.
func (s *Store) Get(ctx context.Context, sid string) (Session, error) {
	if sid == "" {
		return Session{}, nil
	}
	rec, err := s.repo.Load(ctx, sid)
	if err != nil {
		return Session{}, err
	}
	if rec == nil {
		return Session{}, nil
	}
	sess := Session{
		AccessToken:     rec.Token,
		RefreshToken:    rec.RefreshToken,
		IsAuthenticated: rec.Token != "",
	}
	if rec.UserJSON != "" {
		var u models.User
		if err := json.Unmarshal([]byte(rec.UserJSON), &u); err == nil {
			sess.User = &u
		}
	}
	return sess, nil
}
