// internal/config/config.go
//
// Environment-driven configuration for the word API.
// Values come from the process environment (optionally seeded from a .env
// file by main via godotenv) and fall back to development defaults.
//
// Environment variables:
//   PORT              listen port (default 5175)
//   WORDS_FILE        newline-delimited word list (default words.txt)
//   DB_PATH           SQLite database file (default ./data/wordventure.db)
//   SERVER_SECRET     master secret for round tokens and the daily word
//   CLIENT_ORIGIN     CORS origin (default http://localhost:5173)
//   REQUEST_TIMEOUT   per-request handler timeout (default 10s)
//   ROUND_TTL         lifetime of a round token (default 24h)
//   LOG_LEVEL         zerolog level (default info)
//   LOG_FORMAT        "json" (default) or "console"

package config

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/crypto/hkdf"
)

const devSecret = "dev_secret_change_me"

// Config holds resolved settings.
type Config struct {
	Port           string
	WordsFile      string
	DBPath         string
	Secret         string
	ClientOrigin   string
	RequestTimeout time.Duration
	RoundTTL       time.Duration
	LogLevel       string
	LogFormat      string
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	c := Config{
		Port:         getEnv("PORT", "5175"),
		WordsFile:    getEnv("WORDS_FILE", "words.txt"),
		DBPath:       getEnv("DB_PATH", "./data/wordventure.db"),
		Secret:       getEnv("SERVER_SECRET", devSecret),
		ClientOrigin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "json"),
	}

	var err error
	if c.RequestTimeout, err = getDuration("REQUEST_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if c.RoundTTL, err = getDuration("ROUND_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DevSecret reports whether the built-in development secret is in use.
func (c Config) DevSecret() bool { return c.Secret == devSecret }

// Addr is the listen address.
func (c Config) Addr() string { return ":" + c.Port }

// DeriveKey expands the master secret into an independent key for purpose
// (HKDF-SHA256), so round tokens and the daily word never share key material.
func DeriveKey(secret, purpose string, size int) ([]byte, error) {
	key := make([]byte, size)
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte("wordventure/"+purpose))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("derive %s key: %w", purpose, err)
	}
	return key, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %s", k, v)
	}
	return d, nil
}
