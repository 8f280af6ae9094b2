package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"framekart-io/api/models"
)

const sessionKeyPrefix = "framekart:session:"

// SessionStore persists the single record of an authenticated session: the
// serialized user. Load treats missing and corrupt records the same way,
// returning (nil, nil) so callers fall back to an anonymous session.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, user models.User) error
	Load(ctx context.Context, sessionID string) (*models.User, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps session records in redis with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, payload, s.ttl).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.User, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		// Corrupt record: discard it and report no session.
		log.Printf("discarding unreadable session record %s: %s", sessionID, err)
		_ = s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
		return nil, nil
	}
	return &user, nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// MemorySessionStore is the redis-less store used in tests and local
// development. Same contract, same corrupt-record behavior.
type MemorySessionStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{records: make(map[string][]byte)}
}

func (s *MemorySessionStore) Save(ctx context.Context, sessionID string, user models.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = payload
	return nil
}

func (s *MemorySessionStore) Load(ctx context.Context, sessionID string) (*models.User, error) {
	s.mu.RLock()
	payload, ok := s.records[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	var user models.User
	if err := json.Unmarshal(payload, &user); err != nil {
		log.Printf("discarding unreadable session record %s: %s", sessionID, err)
		s.mu.Lock()
		delete(s.records, sessionID)
		s.mu.Unlock()
		return nil, nil
	}
	return &user, nil
}

func (s *MemorySessionStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

// Corrupt plants an unparseable record, so tests can exercise the
// discard path.
func (s *MemorySessionStore) Corrupt(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[sessionID] = []byte("{not json")
}
