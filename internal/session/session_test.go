package session

import (
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTransitions(t *testing.T) {
	s := New()
	assert.Equal(t, LoggedOut, s.State)
	assert.False(t, s.LoggedIn())
	assert.ErrorIs(t, s.LogOut(), ErrInvalidTransition)

	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, s.LogIn("alice", at))
	assert.True(t, s.LoggedIn())
	assert.Equal(t, "alice", s.Username)
	assert.Equal(t, at, s.StartedAt)

	assert.ErrorIs(t, s.LogIn("bob", at), ErrInvalidTransition)
	assert.Equal(t, "alice", s.Username)

	require.NoError(t, s.LogOut())
	assert.Equal(t, LoggedOut, s.State)
	assert.Empty(t, s.Username)
}

func TestSessionJSON(t *testing.T) {
	s := New()
	require.NoError(t, s.LogIn("alice", time.Now()))

	out, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "logged_in", decoded["state"])
	assert.Equal(t, "alice", decoded["username"])
	assert.Equal(t, s.ID.String(), decoded["id"])
}

func TestStoreCopies(t *testing.T) {
	store := NewStore()
	s := New()
	require.NoError(t, s.LogIn("alice", time.Now()))
	store.Save(*s)

	require.NoError(t, s.LogOut())

	got, ok := store.Get(s.ID)
	require.True(t, ok)
	assert.True(t, got.LoggedIn(), "stored copy must not follow caller mutation")

	assert.True(t, store.Delete(s.ID))
	assert.False(t, store.Delete(s.ID))
	_, ok = store.Get(s.ID)
	assert.False(t, ok)
}

func TestStorePrune(t *testing.T) {
	store := NewStore()
	now := time.Now()

	old := New()
	require.NoError(t, old.LogIn("old", now.Add(-48*time.Hour)))
	fresh := New()
	require.NoError(t, fresh.LogIn("fresh", now))
	store.Save(*old)
	store.Save(*fresh)

	assert.Equal(t, []uuid.UUID{old.ID}, store.Prune(now.Add(-24*time.Hour)))
	assert.Equal(t, 1, store.Len())
	assert.Empty(t, store.Prune(now.Add(-24*time.Hour)))
	_, ok := store.Get(fresh.ID)
	assert.True(t, ok)
}

func TestStoreDeleteUser(t *testing.T) {
	store := NewStore()
	var alice []uuid.UUID
	for i := 0; i < 2; i++ {
		s := New()
		require.NoError(t, s.LogIn("alice", time.Now()))
		store.Save(*s)
		alice = append(alice, s.ID)
	}
	bob := New()
	require.NoError(t, bob.LogIn("bob", time.Now()))
	store.Save(*bob)

	assert.ElementsMatch(t, alice, store.DeleteUser("alice"))
	assert.Equal(t, 1, store.Len())
	_, ok := store.Get(bob.ID)
	assert.True(t, ok)
	assert.Empty(t, store.DeleteUser("alice"))
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := New()
			_ = s.LogIn("user", time.Now())
			store.Save(*s)
			store.Get(s.ID)
			store.Delete(s.ID)
		}()
	}
	wg.Wait()
	assert.Zero(t, store.Len())
}
