package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// InitRedis connects the shared Redis client. Redis is optional: when
// REDIS_URI is unset the client stays nil and auth plumbing (blacklist,
// rate limiting) is skipped in dev mode.
func InitRedis() {
	uri := os.Getenv("REDIS_URI")
	if uri == "" {
		log.Println("⚠️ REDIS_URI not set, running without Redis")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     uri, // e.g. localhost:6379
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		panic("❌ Failed to connect Redis: " + err.Error())
	}
	log.Println("✅ Redis connected successfully")
}
