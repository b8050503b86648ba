package config

import (
	"context"
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectStore opens the Redis instance that backs every collection.
func ConnectStore() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		panic("Failed to connect store: " + err.Error())
	}

	return rdb
}
