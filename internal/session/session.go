// Package session stores per-session conversation transcripts so agents can
// recall what was said across turns. The transcript is auxiliary state: losing
// it degrades recall, it never corrupts the dialogue flows.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Message is one transcript line.
type Message struct {
	Role    string    `json:"role"` // user, assistant
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Transcript is the recorded conversation for one session.
type Transcript struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
	CreatedAt int64     `json:"created_at"`
	UpdatedAt int64     `json:"updated_at"`
}

// Store persists transcripts keyed by session id.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Transcript, error)
	Append(ctx context.Context, sessionID string, message Message) error
	Delete(ctx context.Context, sessionID string) error
}

// MemoryStore is the in-memory Store used for development and tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Transcript
	ttl      time.Duration
}

// NewMemoryStore creates an in-memory store with the given TTL.
func NewMemoryStore(ttlSeconds int) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Transcript),
		ttl:      time.Duration(ttlSeconds) * time.Second,
	}
}

// Get retrieves a transcript by session id.
func (m *MemoryStore) Get(ctx context.Context, sessionID string) (*Transcript, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	transcript, exists := m.sessions[sessionID]
	if !exists {
		return nil, fmt.Errorf("session not found: %s", sessionID)
	}

	if time.Now().Unix()-transcript.UpdatedAt > int64(m.ttl.Seconds()) {
		delete(m.sessions, sessionID)
		return nil, fmt.Errorf("session expired: %s", sessionID)
	}

	return transcript, nil
}

// Append adds a message to the transcript, creating it on first use.
func (m *MemoryStore) Append(ctx context.Context, sessionID string, message Message) error {
	if sessionID == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().Unix()
	transcript, exists := m.sessions[sessionID]
	if !exists {
		transcript = &Transcript{SessionID: sessionID, CreatedAt: now}
		m.sessions[sessionID] = transcript
	}

	transcript.Messages = append(transcript.Messages, message)
	transcript.UpdatedAt = now
	return nil
}

// Delete removes a transcript.
func (m *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
