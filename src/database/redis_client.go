package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// InitRedis creates the shared Redis client used for login-attempt
// throttling. Redis is optional in development: when REDIS_URI is unset the
// client stays nil and callers skip throttling.
func InitRedis() {
	addr := os.Getenv("REDIS_URI")
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set, login throttling disabled")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})
	_, err := RedisClient.Ping(RedisCtx).Result()
	if err != nil {
		panic("❌ Failed to connect Redis: " + err.Error())
	}
	log.Println("✅ Redis connected successfully")
}
