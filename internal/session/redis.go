package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// RedisStore implements Store on a Redis connection pool.
type RedisStore struct {
	pool *redis.Pool
}

// NewRedisStore connects to Redis at addr (password may be empty) and
// verifies the connection with a ping.
func NewRedisStore(addr, password string) (*RedisStore, error) {
	var opts []redis.DialOption
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}

	pool := &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialContext(ctx, "tcp", addr, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	s := &RedisStore{pool: pool}
	conn, err := pool.GetContext(context.Background())
	if err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	defer conn.Close()
	if _, err := conn.Do("PING"); err != nil {
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	return s, nil
}

// Close releases the underlying pool.
func (s *RedisStore) Close() error {
	return s.pool.Close()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return "", false, err
	}
	defer conn.Close()

	value, err := redis.String(redis.DoContext(conn, ctx, "GET", key))
	if errors.Is(err, redis.ErrNil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = redis.DoContext(conn, ctx, "SET", key, value)
	return err
}

func (s *RedisStore) SetFields(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	// One HSET with every field keeps the write atomic.
	args := make([]interface{}, 0, 1+2*len(fields))
	args = append(args, key)
	for field, value := range fields {
		args = append(args, field, value)
	}
	_, err = redis.DoContext(conn, ctx, "HSET", args...)
	return err
}

func (s *RedisStore) GetField(ctx context.Context, key, field string) (string, bool, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return "", false, err
	}
	defer conn.Close()

	value, err := redis.String(redis.DoContext(conn, ctx, "HGET", key, field))
	if errors.Is(err, redis.ErrNil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	return redis.Int64(redis.DoContext(conn, ctx, "INCR", key))
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	_, err = redis.DoContext(conn, ctx, "DEL", key)
	return err
}
