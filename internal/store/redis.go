package store

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"

	"vendor-booking-portal/internal/models"
)

const (
	workspaceIDSessionKey = "workspace_id"
	redisKeyPrefix        = "portal:workspace:"
)

// RedisWorkspaceStore keeps only a workspace id in the session cookie and the
// workspace itself in Redis
type RedisWorkspaceStore struct {
	client      *redis.Client
	store       sessions.Store
	sessionName string
	ttl         time.Duration
}

// NewRedisWorkspaceStore creates a Redis backed workspace store
func NewRedisWorkspaceStore(client *redis.Client, store sessions.Store, sessionName string, ttl time.Duration) *RedisWorkspaceStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisWorkspaceStore{
		client:      client,
		store:       store,
		sessionName: sessionName,
		ttl:         ttl,
	}
}

// Load returns the workspace from Redis or a fresh one
func (s *RedisWorkspaceStore) Load(r *http.Request) (*models.Workspace, error) {
	session, err := s.store.Get(r, s.sessionName)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	id, ok := session.Values[workspaceIDSessionKey].(string)
	if !ok || id == "" {
		return models.NewWorkspace(), nil
	}

	data, err := s.client.Get(r.Context(), redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewWorkspace(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace %s: %w", id, err)
	}

	return decodeWorkspace(data)
}

// Save writes the workspace to Redis and makes sure the session carries its id
func (s *RedisWorkspaceStore) Save(w http.ResponseWriter, r *http.Request, ws *models.Workspace) error {
	session, err := s.store.Get(r, s.sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	id, ok := session.Values[workspaceIDSessionKey].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		session.Values[workspaceIDSessionKey] = id
		if err := session.Save(r, w); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
	}

	data, err := encodeWorkspace(ws)
	if err != nil {
		return err
	}

	if err := s.client.Set(r.Context(), redisKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save workspace %s: %w", id, err)
	}
	return nil
}

// Clear deletes the workspace from Redis
func (s *RedisWorkspaceStore) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := s.store.Get(r, s.sessionName)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	id, ok := session.Values[workspaceIDSessionKey].(string)
	if !ok || id == "" {
		return nil
	}

	if err := s.client.Del(r.Context(), redisKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to clear workspace %s: %w", id, err)
	}
	return nil
}

// Ping checks the Redis connection
func (s *RedisWorkspaceStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func redisKey(id string) string {
	return redisKeyPrefix + id
}
