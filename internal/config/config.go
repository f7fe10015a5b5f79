package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Filestore connection
	FilestoreURL    string
	FilestoreAPIKey string

	// Auth
	PacketAPIKey string

	// Document fetching
	SignedURLTTL     time.Duration
	FetchTimeout     time.Duration
	MaxDocumentBytes int64

	// Packet retention
	PacketTTL time.Duration
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8094"),

		FilestoreURL:    envOr("FILESTORE_URL", "http://localhost:8080"),
		FilestoreAPIKey: os.Getenv("FILESTORE_API_KEY"),

		PacketAPIKey: os.Getenv("PACKET_API_KEY"),

		SignedURLTTL:     envDuration("SIGNED_URL_TTL", 5*time.Minute),
		FetchTimeout:     envDuration("FETCH_TIMEOUT", 60*time.Second),
		MaxDocumentBytes: envInt64("MAX_DOCUMENT_BYTES", 104857600), // 100MB

		PacketTTL: envDuration("PACKET_TTL", time.Hour),
	}

	if cfg.SignedURLTTL <= 0 {
		cfg.SignedURLTTL = 5 * time.Minute
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 60 * time.Second
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 104857600
	}
	if cfg.PacketTTL <= 0 {
		cfg.PacketTTL = time.Hour
	}

	return cfg
}

func (c Config) Validate() error {
	if c.FilestoreAPIKey == "" {
		return fmt.Errorf("FILESTORE_API_KEY is required")
	}
	if c.PacketAPIKey == "" {
		return fmt.Errorf("PACKET_API_KEY is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
