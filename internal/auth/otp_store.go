package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/KSunShin4/EcoMart/pkg/redis"
)

// OTPStore keeps hashed one-time codes and rate-limit counters in Redis.
type OTPStore struct {
	redis *redis.Client
}

// NewOTPStore builds an OTP store over the shared Redis client.
func NewOTPStore(client *redis.Client) (*OTPStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &OTPStore{redis: client}, nil
}

// Save stores the hashed code under the phone's key for the TTL. Overwrites
// any previous pending code.
func (s *OTPStore) Save(ctx context.Context, phone, hash string, ttl time.Duration) error {
	return s.redis.Set(ctx, s.redis.OTPKey(phone), hash, ttl)
}

// Load returns the pending hashed code, or empty when none exists.
func (s *OTPStore) Load(ctx context.Context, phone string) (string, error) {
	hash, err := s.redis.Get(ctx, s.redis.OTPKey(phone))
	if err != nil {
		if redis.IsNil(err) {
			return "", nil
		}
		return "", err
	}
	return hash, nil
}

// Delete removes the pending code so it cannot be replayed.
func (s *OTPStore) Delete(ctx context.Context, phone string) error {
	return s.redis.Del(ctx, s.redis.OTPKey(phone))
}

// Allow applies a fixed-window rate limit for the scope.
func (s *OTPStore) Allow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, error) {
	allowed, _, err := s.redis.FixedWindowAllow(ctx, scope, limit, window)
	return allowed, err
}
