package helper

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// InvalidateToken blacklists a session token for the remainder of its
// possible lifetime, so a logged-out token cannot be replayed.
func InvalidateToken(db *redis.Client, tokenString string, ttl time.Duration) error {
	_, err := db.Set(context.Background(), tokenString, true, ttl).Result()
	if err != nil {
		return err
	}

	return nil
}

// IsTokenValid reports whether a token is absent from the blacklist.
func IsTokenValid(db *redis.Client, tokenString string) bool {
	_, err := db.Get(context.Background(), tokenString).Result()
	if err == redis.Nil {
		// Token is not in the blacklist, so it's valid
		return true
	}
	if err != nil {
		log.Printf("Error while checking blacklist: %s", err)
		return false
	}

	// Token is in the blacklist, so it's invalid
	return false
}
