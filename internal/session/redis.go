package session

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const transcriptPrefix = "transcript:"

// RedisStore persists transcripts in Redis with a TTL refreshed on read, so
// active sessions survive process restarts.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the Redis at redisURL and verifies the connection.
func NewRedisStore(ctx context.Context, redisURL string, ttlSeconds int) (*RedisStore, error) {
	if redisURL == "" {
		return nil, fmt.Errorf("redis URL is required")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (r *RedisStore) key(sessionID string) string {
	return transcriptPrefix + sessionID
}

// Get retrieves a transcript and refreshes its TTL.
func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Transcript, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("session not found: %s", sessionID)
		}
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	var transcript Transcript
	if err := sonic.Unmarshal([]byte(data), &transcript); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
	}

	r.client.Expire(ctx, r.key(sessionID), r.ttl)
	return &transcript, nil
}

// Append adds a message to the stored transcript, creating it on first use.
// Only a missing key (or unparseable stored value) starts a fresh transcript;
// a transport failure is returned as an error so the stored history is never
// overwritten by an empty one.
func (r *RedisStore) Append(ctx context.Context, sessionID string, message Message) error {
	if sessionID == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	transcript := &Transcript{
		SessionID: sessionID,
		CreatedAt: time.Now().Unix(),
	}

	stored, err := r.client.Get(ctx, r.key(sessionID)).Result()
	switch {
	case err == redis.Nil:
		// first message of the session
	case err != nil:
		return fmt.Errorf("failed to load transcript: %w", err)
	default:
		if err := sonic.Unmarshal([]byte(stored), transcript); err != nil {
			// corrupt value cannot be extended, start over
			transcript = &Transcript{
				SessionID: sessionID,
				CreatedAt: time.Now().Unix(),
			}
		}
	}

	transcript.Messages = append(transcript.Messages, message)
	transcript.UpdatedAt = time.Now().Unix()

	data, err := sonic.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	return r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err()
}

// Delete removes a transcript.
func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete transcript: %w", err)
	}
	return nil
}
