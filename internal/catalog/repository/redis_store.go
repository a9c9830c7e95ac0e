package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/homesteadmill/storefront/internal/catalog/domain"
	"github.com/homesteadmill/storefront/pkg/logger"
)

const (
	redisSnapshotKey = "storefront:catalog_snapshot"
	redisCartRefKey  = "storefront:cart_id"
)

// RedisStore persists the snapshot and cart reference in Redis so multiple
// storefront instances share one cache slot. The snapshot key carries the
// domain TTL natively; the embedded timestamp is still checked so a key with
// a disabled expiry cannot serve stale data.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Load reads the snapshot blob from Redis.
func (s *RedisStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	data, err := s.client.Get(ctx, redisSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSnapshotNotFound
		}
		logger.Warn(ctx).Err(err).Msg("Failed to read snapshot from Redis")
		return nil, domain.ErrSnapshotNotFound
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		logger.Warn(ctx).Err(err).Msg("Discarding corrupt Redis snapshot")
		return nil, domain.ErrSnapshotNotFound
	}

	if !snap.Fresh(time.Now()) {
		return nil, domain.ErrSnapshotNotFound
	}

	return &snap, nil
}

// Save overwrites the snapshot slot with the domain TTL.
func (s *RedisStore) Save(ctx context.Context, snap *domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, redisSnapshotKey, data, domain.SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// LoadCartID reads the persisted cart identifier.
func (s *RedisStore) LoadCartID(ctx context.Context) (string, error) {
	id, err := s.client.Get(ctx, redisCartRefKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrCartRefNotFound
		}
		return "", fmt.Errorf("failed to read cart reference: %w", err)
	}
	if id == "" {
		return "", domain.ErrCartRefNotFound
	}
	return id, nil
}

// SaveCartID overwrites the persisted cart identifier. Cart references do not
// expire; abandoned carts are recovered by recreating them on fetch failure.
func (s *RedisStore) SaveCartID(ctx context.Context, id string) error {
	if err := s.client.Set(ctx, redisCartRefKey, id, 0).Err(); err != nil {
		return fmt.Errorf("failed to store cart reference: %w", err)
	}
	return nil
}
