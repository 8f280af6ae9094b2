package configs

import (
	"log"

	"github.com/redis/go-redis/v9"
)

// REDIS is the shared client, set by InitRedis at startup.
var REDIS *redis.Client

// InitRedis connects to the redis instance used for session persistence,
// token blacklisting and rate limiting.
func InitRedis() *redis.Client {
	log.Println("starting redis connection..")
	opts, err := redis.ParseURL(LoadEnvOr("REDIS_URL", "redis://localhost:6379"))
	if err != nil {
		log.Fatal(err)
	}

	REDIS = redis.NewClient(opts)
	log.Println("redis connection successful..")
	return REDIS
}
