// Package session implements the cookie-backed session store. The cookie
// carries only an opaque uuid; the identity snapshot lives in redis with a
// sliding 30-minute expiry.
package session

import (
	"context"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/consts"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/redis"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// User is the request-scoped identity resolved from a session.
type User struct {
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	ProfileImage string `json:"profileImage"`
}

type Store interface {
	Save(ctx context.Context, id string, user User) error
	Get(ctx context.Context, id string) (*User, error)
	Refresh(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	TTL() time.Duration
}

// NewID issues a fresh session id.
func NewID() string {
	return uuid.NewString()
}

type RedisStore struct {
	ttl time.Duration
}

func NewRedisStore(ttl time.Duration) *RedisStore {
	return &RedisStore{ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, id string, user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.SessionKeyPrefix+id, string(data), s.ttl)
}

// Get returns nil when the session is absent or expired.
func (s *RedisStore) Get(ctx context.Context, id string) (*User, error) {
	value, err := redis.GetValue(ctx, consts.SessionKeyPrefix+id)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	user := &User{}
	if err := json.Unmarshal([]byte(value), user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *RedisStore) Refresh(ctx context.Context, id string) error {
	return redis.Expire(ctx, consts.SessionKeyPrefix+id, s.ttl)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return redis.DeleteKey(ctx, consts.SessionKeyPrefix+id)
}

func (s *RedisStore) TTL() time.Duration {
	return s.ttl
}
