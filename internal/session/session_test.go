package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreAppendAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3600)

	require.NoError(t, store.Append(ctx, "abc123", Message{Role: "user", Content: "hello", At: time.Now()}))
	require.NoError(t, store.Append(ctx, "abc123", Message{Role: "assistant", Content: "hi there", At: time.Now()}))

	transcript, err := store.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", transcript.SessionID)
	require.Len(t, transcript.Messages, 2)
	assert.Equal(t, "user", transcript.Messages[0].Role)
	assert.Equal(t, "hi there", transcript.Messages[1].Content)
	assert.NotZero(t, transcript.CreatedAt)
}

func TestMemoryStoreGetUnknownSession(t *testing.T) {
	store := NewMemoryStore(3600)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorContains(t, err, "session not found")
}

func TestMemoryStoreAppendEmptySessionID(t *testing.T) {
	store := NewMemoryStore(3600)

	err := store.Append(context.Background(), "", Message{Role: "user", Content: "hi"})
	assert.Error(t, err)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3600)

	require.NoError(t, store.Append(ctx, "old", Message{Role: "user", Content: "hi"}))
	store.mu.Lock()
	store.sessions["old"].UpdatedAt = time.Now().Add(-2 * time.Hour).Unix()
	store.mu.Unlock()

	_, err := store.Get(ctx, "old")
	assert.ErrorContains(t, err, "session expired")

	// expired sessions are evicted on read
	_, err = store.Get(ctx, "old")
	assert.ErrorContains(t, err, "session not found")
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(3600)

	require.NoError(t, store.Append(ctx, "abc123", Message{Role: "user", Content: "hi"}))
	require.NoError(t, store.Delete(ctx, "abc123"))

	_, err := store.Get(ctx, "abc123")
	assert.Error(t, err)

	assert.NoError(t, store.Delete(ctx, "abc123"), "deleting a missing session is a no-op")
}
