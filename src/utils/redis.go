package utils

import (
	"fmt"
	"time"

	DB "studyabroad-backend/src/database"

	"github.com/redis/go-redis/v9"
)

// All helpers tolerate a nil Redis client (dev mode): blacklisting becomes
// a no-op and rate limiting never triggers.

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

func attemptsKey(email string) string { return fmt.Sprintf("login_attempts:%s", email) }

// RecordLoginFailure bumps the failed-attempt counter for an email and
// (re)arms the cooldown window.
func RecordLoginFailure(email string) {
	client := DB.RedisClient
	if client == nil {
		return
	}
	key := attemptsKey(email)
	client.Incr(DB.RedisCtx, key)
	client.Expire(DB.RedisCtx, key, loginCooldown)
}

// ResetLoginAttempts clears the counter after a successful login.
func ResetLoginAttempts(email string) {
	client := DB.RedisClient
	if client == nil {
		return
	}
	client.Del(DB.RedisCtx, attemptsKey(email))
}

// IsLoginRateLimited reports whether an email exhausted its attempts.
func IsLoginRateLimited(email string) bool {
	client := DB.RedisClient
	if client == nil {
		return false
	}
	count, err := client.Get(DB.RedisCtx, attemptsKey(email)).Int()
	if err != nil {
		return false // includes redis.Nil
	}
	return count >= maxLoginAttempts
}

// LoginCooldownRemaining returns how long until the attempt counter expires.
func LoginCooldownRemaining(email string) time.Duration {
	client := DB.RedisClient
	if client == nil {
		return 0
	}
	ttl, err := client.TTL(DB.RedisCtx, attemptsKey(email)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// BlacklistToken stores a revoked access token until it would have expired.
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := DB.RedisClient
	if client == nil {
		return nil
	}
	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(DB.RedisCtx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %v", err)
	}
	return nil
}

// IsTokenBlacklisted checks whether a token was revoked by logout.
func IsTokenBlacklisted(token string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return false, nil
	}
	key := fmt.Sprintf("blacklist:%s", token)
	_, err := client.Get(DB.RedisCtx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return true, nil
}
