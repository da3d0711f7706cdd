package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"osas/clubport/internal/logging"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in redis with a TTL matching the session expiry.
type RedisStore struct {
	redis *redis.Client
	ttl   time.Duration
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{redis: client, ttl: ttl}
}

// ChooseStore picks the session backend: redis when a client is available,
// the gorm store otherwise. Redis wins because its TTLs make expiry
// housekeeping unnecessary.
func ChooseStore(fallback *GormStore, redisClient *redis.Client, ttl time.Duration) Store {
	if redisClient != nil {
		return NewRedisStore(redisClient, ttl)
	}
	return fallback
}

func (s *RedisStore) Save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := s.ttl
	if !sess.ExpiresAt.IsZero() {
		if until := time.Until(sess.ExpiresAt); until > 0 {
			ttl = until
		}
	}

	if err := s.redis.Set(ctx, redisKeyPrefix+sess.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.redis.Get(ctx, redisKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		// Corrupt payload: drop it and report the session as absent.
		logging.Warn("discarding undecodable session payload", "session_id", id, "error", err.Error())
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}

	if sess.Expired(time.Now()) {
		_ = s.Delete(ctx, id)
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
