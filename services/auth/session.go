package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"broheal/models"

	"github.com/go-redis/redis/v8"
)

// SessionPrefix namespaces role-scoped session keys in Redis.
const SessionPrefix = "session:"

// allRoles enumerates the roles a principal may hold a session under.
var allRoles = []string{models.RoleUser, models.RoleTherapist, models.RoleAdmin}

// SessionKey builds the role-scoped key one session lives under.
func SessionKey(role, userID string) string {
	return fmt.Sprintf("%s%s:%s", SessionPrefix, role, userID)
}

// LegacyTokenKeys lists the unscoped token keys an earlier release wrote.
// They are actively cleared on every session write and clear.
func LegacyTokenKeys(userID string) []string {
	return []string{
		"accessToken:" + userID,
		"refreshToken:" + userID,
	}
}

// StaleRoleKeys lists the session keys for every role other than the one
// being written. At most one role-session per principal is trusted, so
// writing a session under one role evicts the others.
func StaleRoleKeys(activeRole, userID string) []string {
	var keys []string
	for _, role := range allRoles {
		if role != activeRole {
			keys = append(keys, SessionKey(role, userID))
		}
	}
	return keys
}

// SessionStore is the narrow role-scoped session interface: Get, Set, Clear.
type SessionStore interface {
	Set(ctx context.Context, userID string, session models.Session) error
	Get(ctx context.Context, role, userID string) (*models.Session, error)
	Clear(ctx context.Context, role, userID string) error
}

// RedisSessionStore implements SessionStore on Redis.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store with the given TTL.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Set writes the role-scoped session, evicts any session the principal held
// under another role and deletes legacy unscoped token keys.
func (s *RedisSessionStore) Set(ctx context.Context, userID string, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, SessionKey(session.Role, userID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	stale := append(StaleRoleKeys(session.Role, userID), LegacyTokenKeys(userID)...)
	if err := s.client.Del(ctx, stale...).Err(); err != nil {
		return fmt.Errorf("failed to clear stale session keys: %w", err)
	}
	return nil
}

// Get retrieves the session for the given role, or nil when none exists.
func (s *RedisSessionStore) Get(ctx context.Context, role, userID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, SessionKey(role, userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Clear removes the role-scoped session along with legacy token keys.
func (s *RedisSessionStore) Clear(ctx context.Context, role, userID string) error {
	keys := append([]string{SessionKey(role, userID)}, LegacyTokenKeys(userID)...)
	return s.client.Del(ctx, keys...).Err()
}
