package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config returns the value of the given env key, loading .env once if present.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}

// ConfigOr returns the env value or fallback when the key is unset.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
