package cache

import (
	"context"
	"fmt"
	"log"
	"strconv"

	redisstorage "github.com/gofiber/storage/redis"
	"github.com/redis/go-redis/v9"

	"github.com/salonhub/salonhub/internal/pkg/env"
)

// New connects to the redis server. The client is handed to the availability
// cache at startup; there is no package-level instance.
func New() *redis.Client {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "", // no password set
		DB:       0,  // use default DB
	})

	// Test the connection
	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to redis cache: %v", err)
	} else {
		log.Printf("Successfully connected to redis cache: %s", pong)
	}
	return client
}

// NewLimiterStorage returns a fiber storage backed by the same redis server,
// used by the rate limiter on the public booking endpoints.
func NewLimiterStorage() *redisstorage.Storage {
	port, _ := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	return redisstorage.New(redisstorage.Config{
		Host: env.GetEnv("CACHE_HOST", "localhost"),
		Port: port,
	})
}
