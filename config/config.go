package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv sync.Once

// Config reads a variable from the environment, loading .env once if present.
func Config(key string) string {
	loadEnv.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system environment")
		}
	})
	return os.Getenv(key)
}

// ConfigOr returns a fallback when the variable is unset or empty.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
