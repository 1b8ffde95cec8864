// Package otp stores short-lived one-time codes in redis, keyed by the
// employee business id. Used by the password-reset flow; delivery of the
// code (mail/SMS) is a separate concern handled outside this service.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
)

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(redisURL string, ttl time.Duration) (*Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &Store{rdb: rdb, ttl: ttl}, nil
}

// Issue generates a 6-digit code and stores it under the employee id,
// replacing any previous code.
func (s *Store) Issue(ctx context.Context, employeeID string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())
	if err := s.rdb.Set(ctx, key(employeeID), code, s.ttl).Err(); err != nil {
		return "", err
	}
	return code, nil
}

// Verify checks the code and consumes it on success.
func (s *Store) Verify(ctx context.Context, employeeID, code string) (bool, error) {
	val, err := s.rdb.Get(ctx, key(employeeID)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	return true, s.rdb.Del(ctx, key(employeeID)).Err()
}

func key(employeeID string) string {
	return "otp:" + employeeID
}
