package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zatekoja/medibook/internal/adapters/cache"
	"github.com/zatekoja/medibook/internal/domain/entities"
	"github.com/zatekoja/medibook/internal/domain/providers"
	apperrors "github.com/zatekoja/medibook/pkg/errors"
)

// KeyPrefix namespaces session keys in a shared cache
const KeyPrefix = "medibook:session:"

// CacheStore keeps the session under a single key of a CacheProvider
type CacheStore struct {
	cache providers.CacheProvider
	key   string
	ttl   time.Duration
}

// NewCacheStore creates a store for the named session. A zero ttl never expires.
func NewCacheStore(c providers.CacheProvider, name string, ttl time.Duration) *CacheStore {
	return &CacheStore{cache: c, key: KeyPrefix + name, ttl: ttl}
}

// NewRedisStore creates a store for the named session backed by Redis
func NewRedisStore(client redis.Cmdable, name string, ttl time.Duration) providers.SessionStore {
	return NewCacheStore(cache.NewRedisAdapter(client), name, ttl)
}

// Key returns the cache key holding the session
func (s *CacheStore) Key() string {
	return s.key
}

// Save writes the session and refreshes its expiry
func (s *CacheStore) Save(ctx context.Context, session *entities.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return apperrors.NewInternalError("failed to encode session", err)
	}
	return s.cache.Set(ctx, s.key, data, s.ttl)
}

// Load reads the session
func (s *CacheStore) Load(ctx context.Context) (*entities.Session, error) {
	data, err := s.cache.Get(ctx, s.key)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFoundError("no saved session")
		}
		return nil, err
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperrors.NewInternalError("corrupt session entry", err)
	}
	return &session, nil
}

// Clear removes the session
func (s *CacheStore) Clear(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}
