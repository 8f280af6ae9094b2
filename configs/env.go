package configs

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// LoadEnvFor reads a config value, loading the .env file on first use.
// A missing .env file is fine in environments that inject variables
// directly.
func LoadEnvFor(v string) string {
	loadEnvOnce.Do(func() {
		envFile := os.Getenv("ENV_FILE")
		if envFile == "" {
			envFile = ".env"
		}
		if err := godotenv.Load(envFile); err != nil {
			log.Printf("no %s file loaded: %s", envFile, err)
		}
	})

	return os.Getenv(v)
}

// LoadEnvOr reads a config value, falling back to a default when unset.
func LoadEnvOr(v, fallback string) string {
	if x := LoadEnvFor(v); x != "" {
		return x
	}
	return fallback
}
