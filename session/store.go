package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore is the durable home of the one persisted piece of client
// state: the bearer token, keyed by browser session. Absence means
// logged-out.
type TokenStore interface {
	Get(ctx context.Context, sid string) (string, bool, error)
	Set(ctx context.Context, sid, token string) error
	Delete(ctx context.Context, sid string) error
}

const tokenKeyPrefix = "authToken:"

// RedisStore keeps tokens in Redis so a session survives both a page reload
// and a restart of this process.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sid string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, tokenKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, token string) error {
	return s.rdb.Set(ctx, tokenKeyPrefix+sid, token, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, tokenKeyPrefix+sid).Err()
}
