// Package config resolves server settings from the environment.
// An optional .env file is loaded first; unset variables keep their defaults.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultPort          = "8080"
	DefaultStaticDir     = "../frontend-react/build"
	DefaultIndexFile     = "index.html"
	DefaultAllowedOrigin = "*"
)

type Config struct {
	Port          string
	StaticDir     string
	IndexFile     string
	AllowedOrigin string
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. A missing file is not an error.
func Load(envFiles ...string) *Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Printf("Error loading %s: %v", file, err)
			}
		}
	}

	return &Config{
		Port:          GetEnv("PORT", DefaultPort),
		StaticDir:     GetEnv("STATIC_DIR", DefaultStaticDir),
		IndexFile:     GetEnv("INDEX_FILE", DefaultIndexFile),
		AllowedOrigin: GetEnv("CORS_ALLOWED_ORIGIN", DefaultAllowedOrigin),
	}
}

func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
