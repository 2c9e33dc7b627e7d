package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"planboard/model"

	"github.com/redis/go-redis/v9"
)

func getRedisEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

const (
	throttleWindow   = 10 * time.Minute
	throttleMaxIssue = 3
	throttleBlockFor = 10 * time.Minute
)

// OTPThrottleRepository limits how often codes can be issued per
// (email, purpose). Reserve returns false when the caller must back off.
type OTPThrottleRepository interface {
	Reserve(ctx context.Context, email string, purpose model.OTPPurpose) (bool, error)
}

type redisThrottleRepo struct {
	client *redis.Client
}

func NewRedisThrottleRepository(client *redis.Client) OTPThrottleRepository {
	return &redisThrottleRepo{client: client}
}

// NewRedisClient builds a client from env with sane local-dev defaults.
func NewRedisClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         getRedisEnv("REDIS_ADDR", "localhost:6379"),
		Password:     getRedisEnv("REDIS_PASSWORD", ""),
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func countKey(email string, purpose model.OTPPurpose) string {
	return fmt.Sprintf("otp_count:%s:%s", purpose, email)
}

func blockKey(email string, purpose model.OTPPurpose) string {
	return fmt.Sprintf("otp_block:%s:%s", purpose, email)
}

func (r *redisThrottleRepo) Reserve(ctx context.Context, email string, purpose model.OTPPurpose) (bool, error) {
	// Blocked addresses stay blocked until the key expires
	blocked, err := r.client.Exists(ctx, blockKey(email, purpose)).Result()
	if err != nil {
		return false, err
	}
	if blocked > 0 {
		return false, nil
	}

	count, err := r.client.Incr(ctx, countKey(email, purpose)).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		// First issue in this window starts the clock
		if err := r.client.Expire(ctx, countKey(email, purpose), throttleWindow).Err(); err != nil {
			return false, err
		}
	}

	if count > throttleMaxIssue {
		if err := r.client.Set(ctx, blockKey(email, purpose), "1", throttleBlockFor).Err(); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

// noopThrottleRepo is used when Redis is not configured; every request
// is allowed through.
type noopThrottleRepo struct{}

func NewNoopThrottleRepository() OTPThrottleRepository {
	return noopThrottleRepo{}
}

func (noopThrottleRepo) Reserve(context.Context, string, model.OTPPurpose) (bool, error) {
	return true, nil
}
