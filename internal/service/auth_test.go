package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pizza-nz/backoffice-service/internal/db/repository"
	"github.com/pizza-nz/backoffice-service/internal/models"
	"github.com/pizza-nz/backoffice-service/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type recordingFeed struct {
	mu           sync.Mutex
	disconnected []string
}

func (f *recordingFeed) Disconnect(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnected = append(f.disconnected, sessionID)
}

func (f *recordingFeed) ids() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.disconnected...)
}

func newTestAuth(t *testing.T) (*AuthService, *memUsers, *session.Store) {
	t.Helper()
	svc, users, sessions, _ := newTestAuthWithFeed(t)
	return svc, users, sessions
}

func newTestAuthWithFeed(t *testing.T) (*AuthService, *memUsers, *session.Store, *recordingFeed) {
	t.Helper()
	users := newMemUsers()
	sessions := session.NewStore()
	feed := &recordingFeed{}
	svc := NewAuthService(users, sessions, feed, JWTConfig{Secret: "test-secret", ExpiresIn: 1})
	svc.hashCost = bcrypt.MinCost
	return svc, users, sessions, feed
}

func register(t *testing.T, svc *AuthService, username, password string) {
	t.Helper()
	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username:        username,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
}

func TestRegisterStoresOnlyHash(t *testing.T) {
	svc, users, _ := newTestAuth(t)
	register(t, svc, "alice", "secret")

	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"))
}

func TestRegisterRejects(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestAuth(t)
	register(t, svc, "alice", "secret")

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Password: "other", ConfirmPassword: "other"})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = svc.Register(ctx, models.RegisterRequest{Username: "bob", Password: "one", ConfirmPassword: "two"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "confirm_password", verr.Field)

	_, err = svc.Register(ctx, models.RegisterRequest{Password: "x", ConfirmPassword: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	long := strings.Repeat("p", 80)
	_, err = svc.Register(ctx, models.RegisterRequest{Username: "carol", Password: long, ConfirmPassword: long})
	assert.ErrorIs(t, err, ErrValidation)

	users.err = repository.ErrStoreUnavailable
	_, err = svc.Register(ctx, models.RegisterRequest{Username: "dave", Password: "x", ConfirmPassword: "x"})
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newTestAuth(t)
	register(t, svc, "alice", "secret")

	ok, err := svc.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Authenticate(ctx, "alice", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Authenticate(ctx, "bob", "secret")
	require.NoError(t, err)
	assert.False(t, ok)

	users.err = repository.ErrStoreUnavailable
	ok, err = svc.Authenticate(ctx, "alice", "secret")
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
	assert.False(t, ok)
}

func TestLoginResolveLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := newTestAuth(t)
	register(t, svc, "alice", "secret")

	_, _, err := svc.Login(ctx, "alice", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, sessions.Len())

	token, sess, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.True(t, sess.LoggedIn())
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, 1, sessions.Len())

	resolved, err := svc.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, resolved.ID)
	assert.Equal(t, "alice", resolved.Username)

	require.NoError(t, svc.Logout(resolved))
	assert.False(t, resolved.LoggedIn())
	assert.Zero(t, sessions.Len())

	_, err = svc.Resolve(token)
	assert.Error(t, err, "token of an ended session must not resolve")

	assert.ErrorIs(t, svc.Logout(resolved), session.ErrInvalidTransition)
}

func TestResolveRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuth(t)
	register(t, svc, "alice", "secret")

	token, _, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	other := NewAuthService(newMemUsers(), session.NewStore(), nil, JWTConfig{Secret: "another-secret", ExpiresIn: 1})
	_, err = other.Resolve(token)
	assert.Error(t, err)

	_, err = svc.Resolve("not-a-token")
	assert.Error(t, err)
}

func TestLoginPrunesExpiredSessions(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions, feed := newTestAuthWithFeed(t)
	register(t, svc, "alice", "secret")

	start := time.Now()
	svc.now = func() time.Time { return start.Add(-2 * time.Hour) }
	_, stale, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	svc.now = func() time.Time { return start }
	_, _, err = svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	assert.Equal(t, 1, sessions.Len())
	assert.Equal(t, []string{stale.ID.String()}, feed.ids())
}

func TestLogoutClosesChangeFeed(t *testing.T) {
	ctx := context.Background()
	svc, _, _, feed := newTestAuthWithFeed(t)
	register(t, svc, "alice", "secret")

	_, sess, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Empty(t, feed.ids())

	require.NoError(t, svc.Logout(sess))
	assert.Equal(t, []string{sess.ID.String()}, feed.ids())
}

func TestDeleteUserEndsSessions(t *testing.T) {
	ctx := context.Background()
	svc, users, sessions, feed := newTestAuthWithFeed(t)
	register(t, svc, "alice", "secret")
	register(t, svc, "bob", "secret")

	token, aliceSess, err := svc.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	_, _, err = svc.Login(ctx, "bob", "secret")
	require.NoError(t, err)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	alice, err := users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteUser(ctx, alice.ID))

	assert.Equal(t, 1, sessions.Len())
	assert.Equal(t, []string{aliceSess.ID.String()}, feed.ids())
	_, err = svc.Resolve(token)
	assert.Error(t, err)

	ok, err := svc.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.DeleteUser(ctx, alice.ID), repository.ErrNotFound)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestAuth(t)
	register(t, svc, "alice", "secret")

	assert.ErrorIs(t, svc.ChangePassword(ctx, "alice", "wrong", "new"), ErrInvalidCredentials)
	assert.ErrorIs(t, svc.ChangePassword(ctx, "alice", "secret", ""), ErrValidation)

	require.NoError(t, svc.ChangePassword(ctx, "alice", "secret", "n3w"))

	ok, err := svc.Authenticate(ctx, "alice", "n3w")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Authenticate(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.False(t, ok)
}
