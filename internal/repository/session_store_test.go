package repository

import (
	"context"
	"testing"
	"time"

	"aaronblog/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_CreateGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	now := time.Now()
	sess := models.Session{
		ID:        "sid-1",
		UserID:    "alice",
		UserName:  "Alice",
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, "Alice", got.UserName)

	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_ExpiredSessionIsGone(t *testing.T) {
	ctx := context.Background()
	store := NewSessionStore()

	now := time.Now()
	require.NoError(t, store.Create(ctx, models.Session{
		ID:        "sid-old",
		UserID:    "bob",
		CreatedAt: now.Add(-2 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	}))

	got, err := store.Get(ctx, "sid-old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStore_DeleteUnknownIsNoop(t *testing.T) {
	store := NewSessionStore()
	assert.NoError(t, store.Delete(context.Background(), "never-existed"))
}
