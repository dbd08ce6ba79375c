package session

import (
	"context"
	"testing"
	"time"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// fake repo for testing
type fakeRepo struct {
	store map[string]*Record
}

func (f *fakeRepo) Save(ctx context.Context, sid string, rec *Record, ttl time.Duration) error {
	if f.store == nil {
		f.store = map[string]*Record{}
	}
	cp := *rec
	f.store[sid] = &cp
	return nil
}

func (f *fakeRepo) Load(ctx context.Context, sid string) (*Record, error) {
	if f.store == nil {
		return nil, nil
	}
	rec, ok := f.store[sid]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (f *fakeRepo) Delete(ctx context.Context, sid string) error {
	if f.store == nil {
		return nil
	}
	delete(f.store, sid)
	return nil
}

func testUser() *models.User {
	return &models.User{
		ID:    "u-1",
		Email: "fm@example.com",
		Name:  "Fran Manager",
		Role:  models.RoleFacilityManager,
	}
}

func TestSetCredentialsThenGet(t *testing.T) {
	repo := &fakeRepo{}
	st := NewStore(repo, time.Hour)
	ctx := context.Background()

	if err := st.SetCredentials(ctx, "sid-1", testUser(), "access-1", "refresh-1"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}
	sess, err := st.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !sess.IsAuthenticated {
		t.Fatal("expected authenticated session")
	}
	if sess.AccessToken != "access-1" || sess.RefreshToken != "refresh-1" {
		t.Fatalf("unexpected tokens: %+v", sess)
	}
	if sess.User == nil || sess.User.Role != models.RoleFacilityManager {
		t.Fatalf("unexpected user: %+v", sess.User)
	}
}

func TestSetCredentialsRejectsIncomplete(t *testing.T) {
	st := NewStore(&fakeRepo{}, time.Hour)
	ctx := context.Background()
	if err := st.SetCredentials(ctx, "sid-1", nil, "a", "r"); err == nil {
		t.Fatal("expected error for nil user")
	}
	if err := st.SetCredentials(ctx, "sid-1", testUser(), "", "r"); err == nil {
		t.Fatal("expected error for empty access token")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	repo := &fakeRepo{}
	st := NewStore(repo, time.Hour)
	ctx := context.Background()

	if err := st.SetCredentials(ctx, "sid-1", testUser(), "access-1", "refresh-1"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}
	if err := st.Logout(ctx, "sid-1"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok := repo.store["sid-1"]; ok {
		t.Fatal("expected durable record removed")
	}
	sess, err := st.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.IsAuthenticated || sess.User != nil || sess.AccessToken != "" || sess.RefreshToken != "" {
		t.Fatalf("expected zero session after logout, got %+v", sess)
	}

	// logout is idempotent
	if err := st.Logout(ctx, "sid-1"); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestAuthenticatedIffTokenPresent(t *testing.T) {
	repo := &fakeRepo{}
	st := NewStore(repo, time.Hour)
	ctx := context.Background()

	sess, _ := st.Get(ctx, "missing")
	if sess.IsAuthenticated {
		t.Fatal("absent session must be unauthenticated")
	}

	// a record without a token must read back unauthenticated
	_ = repo.Save(ctx, "sid-2", &Record{UserJSON: `{"id":"u-2"}`}, time.Hour)
	sess, _ = st.Get(ctx, "sid-2")
	if sess.IsAuthenticated {
		t.Fatal("session without token must be unauthenticated")
	}
}

func TestUpdateUserMergesFields(t *testing.T) {
	repo := &fakeRepo{}
	st := NewStore(repo, time.Hour)
	ctx := context.Background()

	if err := st.SetCredentials(ctx, "sid-1", testUser(), "access-1", "refresh-1"); err != nil {
		t.Fatalf("set credentials: %v", err)
	}
	name := "Fran M."
	phone := "+1555123"
	if err := st.UpdateUser(ctx, "sid-1", models.UserPatch{Name: &name, Phone: &phone}); err != nil {
		t.Fatalf("update user: %v", err)
	}
	sess, _ := st.Get(ctx, "sid-1")
	if sess.User.Name != "Fran M." || sess.User.Phone != "+1555123" {
		t.Fatalf("patch not applied: %+v", sess.User)
	}
	// untouched fields survive
	if sess.User.Email != "fm@example.com" || sess.User.Role != models.RoleFacilityManager {
		t.Fatalf("unrelated fields changed: %+v", sess.User)
	}
}

func TestUpdateUserWithoutUserIsNoop(t *testing.T) {
	repo := &fakeRepo{}
	st := NewStore(repo, time.Hour)
	ctx := context.Background()

	name := "x"
	if err := st.UpdateUser(ctx, "sid-absent", models.UserPatch{Name: &name}); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
	if len(repo.store) != 0 {
		t.Fatalf("no-op update must not write: %v", repo.store)
	}
}
