package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

var _ ports.TokenStore = (*RedisStore)(nil)

const dialTimeout = 5 * time.Second

// DialRedis opens a client for addr/db and pings it before returning.
func DialRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}

// RedisStore keeps the session as a JSON string under one key.
type RedisStore struct {
	client *redis.Client
	key    string
	log    zerolog.Logger
}

func NewRedisStore(client *redis.Client, key string, log zerolog.Logger) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{
		client: client,
		key:    key,
		log:    log.With().Str("component", "tokenstore").Str("backend", "redis").Logger(),
	}
}

func (s *RedisStore) Persist(ctx context.Context, session domain.Session) error {
	data, err := encode(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (*domain.Session, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	session, ok := decode(data)
	if !ok {
		s.log.Warn().Str("key", s.key).Msg("stored session is corrupt, removing it")
		if err := s.Clear(ctx); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return session, nil
}

// Ping reports whether the backing Redis answers.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}
	return nil
}
