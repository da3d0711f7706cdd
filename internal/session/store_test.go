package session

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestChooseStorePrefersRedis(t *testing.T) {
	gormStore := newTestStore(t)
	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})

	got := ChooseStore(gormStore, redisClient, time.Hour)
	if _, ok := got.(*RedisStore); !ok {
		t.Fatalf("expected redis-backed store, got %T", got)
	}
}

func TestChooseStoreFallsBackToGorm(t *testing.T) {
	gormStore := newTestStore(t)

	got := ChooseStore(gormStore, nil, time.Hour)
	if got != Store(gormStore) {
		t.Fatalf("expected the gorm store, got %T", got)
	}
}
