package cache

import (
	"context"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore backs the Store interface with a shared redis instance so that
// multiple API replicas see the same permission cache.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to the redis server at addr and verifies the
// connection with a ping. Addresses starting with "/" are treated as unix
// sockets.
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	network := "tcp"
	if strings.HasPrefix(addr, "/") {
		network = "unix"
	}

	rdb := redis.NewClient(&redis.Options{
		Network:  network,
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, value, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	return val, err
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
