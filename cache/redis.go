package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/internmatch/backend/models"
)

const defaultTTL = time.Hour

// Redis is a fail-open cache: when Redis is unreachable every lookup misses
// and every write is dropped.
type Redis struct {
	client *redis.Client
	ttl    time.Duration

	warnedUnavailable atomic.Bool
}

// NewRedis connects to addr. An empty addr or a failed ping yields a cache that always misses.
func NewRedis(addr, password string, db int, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if addr == "" {
		return &Redis{ttl: ttl}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[Cache] Redis unavailable, bypassing cache: %v", err)
		_ = client.Close()
		return &Redis{ttl: ttl}
	}

	log.Printf("[Cache] Connected to Redis at %s", addr)
	return &Redis{client: client, ttl: ttl}
}

// Available reports whether a Redis connection was established
func (r *Redis) Available() bool {
	return !r.isUnavailable()
}

// Close closes the Redis client
func (r *Redis) Close() error {
	if r.isUnavailable() {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) isUnavailable() bool {
	return r == nil || r.client == nil
}

func (r *Redis) warnUnavailableOnce(err error) {
	if r.warnedUnavailable.CompareAndSwap(false, true) {
		log.Printf("[Cache] Redis error, bypassing cache: %v", err)
	}
}

// GetJSON decodes the value at key into out. A miss returns false with no error.
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if r.isUnavailable() {
		return false, nil
	}
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		r.warnUnavailableOnce(err)
		return false, err
	}
	if len(b) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value at key with the given ttl (the cache default when ttl <= 0)
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.isUnavailable() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, ttl).Err(); err != nil {
		r.warnUnavailableOnce(err)
		return err
	}
	return nil
}

// GetLearningPath returns a previously generated learning path for an equivalent profile
func (r *Redis) GetLearningPath(ctx context.Context, profile *models.UserProfile) ([]models.LearningStep, bool) {
	var steps []models.LearningStep
	ok, err := r.GetJSON(ctx, LearningPathKey(profile), &steps)
	if err != nil || !ok || len(steps) == 0 {
		return nil, false
	}
	return steps, true
}

// SetLearningPath caches a generated learning path
func (r *Redis) SetLearningPath(ctx context.Context, profile *models.UserProfile, steps []models.LearningStep) {
	if err := r.SetJSON(ctx, LearningPathKey(profile), steps, 0); err != nil {
		log.Printf("[Cache] Failed to store learning path: %v", err)
	}
}
