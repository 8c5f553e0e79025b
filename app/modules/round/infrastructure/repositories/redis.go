package rounddb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "trip:"

// RedisRepository stores each trip as one JSON document. A positive TTL
// expires trips that have not been edited for that long.
type RedisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisRepository returns a Repository over client.
func NewRedisRepository(client redis.UniversalClient, ttl time.Duration) *RedisRepository {
	return &RedisRepository{client: client, ttl: ttl}
}

func redisKey(id rounddomain.TripID) string {
	return redisKeyPrefix + id.String()
}

func (r *RedisRepository) CreateTrip(ctx context.Context, trip *rounddomain.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to encode trip %s: %w", trip.ID, err)
	}
	err = r.client.SetArgs(ctx, redisKey(trip.ID), data, redis.SetArgs{Mode: "NX", TTL: r.ttl}).Err()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, trip.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to create trip %s: %w", trip.ID, err)
	}
	return nil
}

func (r *RedisRepository) GetTrip(ctx context.Context, id rounddomain.TripID) (*rounddomain.Trip, error) {
	data, err := r.client.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trip %s: %w", id, err)
	}

	var trip rounddomain.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("failed to decode trip %s: %w", id, err)
	}
	return &trip, nil
}

func (r *RedisRepository) SaveTrip(ctx context.Context, trip *rounddomain.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("failed to encode trip %s: %w", trip.ID, err)
	}
	err = r.client.SetArgs(ctx, redisKey(trip.ID), data, redis.SetArgs{Mode: "XX", TTL: r.ttl}).Err()
	if errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %s", ErrNotFound, trip.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to save trip %s: %w", trip.ID, err)
	}
	return nil
}

func (r *RedisRepository) DeleteTrip(ctx context.Context, id rounddomain.TripID) error {
	n, err := r.client.Del(ctx, redisKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
