package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	DB "Campus-Portal-Backend/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

const (
	maxLoginAttempts = 5
	loginCooldown    = 15 * time.Minute
)

// ensureClient returns the shared Redis client managed by the database
// package. If Redis wasn't initialized this returns nil and callers skip
// throttling (development mode).
func ensureClient() *redis.Client {
	return DB.RedisClient
}

func attemptsKey(identifier string) string {
	return fmt.Sprintf("login_attempts:%s", identifier)
}

// IsRateLimited reports whether the identifier has exhausted its failed
// login attempts and is still inside the cooldown window.
func IsRateLimited(identifier string) bool {
	client := ensureClient()
	if client == nil {
		return false
	}

	count, err := client.Get(Ctx, attemptsKey(identifier)).Int()
	if err != nil {
		if err != redis.Nil {
			log.Printf("⚠️ redis attempts lookup failed: %v", err)
		}
		return false
	}
	return count >= maxLoginAttempts
}

// GetRemainingCooldownTime returns how long the identifier stays locked out.
func GetRemainingCooldownTime(identifier string) time.Duration {
	client := ensureClient()
	if client == nil {
		return 0
	}

	ttl, err := client.TTL(Ctx, attemptsKey(identifier)).Result()
	if err != nil || ttl < 0 {
		return 0
	}
	return ttl
}

// LogLoginAttempt records the outcome of a login. Failures bump the attempt
// counter and refresh the cooldown window; a success clears the counter.
func LogLoginAttempt(identifier, ip string, success bool) {
	client := ensureClient()
	if client == nil {
		return
	}

	key := attemptsKey(identifier)
	if success {
		if err := client.Del(Ctx, key).Err(); err != nil {
			log.Printf("⚠️ redis attempts reset failed: %v", err)
		}
		return
	}

	count, err := client.Incr(Ctx, key).Result()
	if err != nil {
		log.Printf("⚠️ redis attempts incr failed: %v", err)
		return
	}
	if err := client.Expire(Ctx, key, loginCooldown).Err(); err != nil {
		log.Printf("⚠️ redis attempts expire failed: %v", err)
	}
	log.Printf("🔐 failed login for %s from %s (attempt %d)", identifier, ip, count)
}
