package dedupe

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const mirrorKeyPrefix = "posted:doc:"

// RedisMirror mirrors the posted-hash set into Redis so that several
// hosts running the scheduler share one dedup view. The file store
// remains authoritative; the mirror is best-effort and read failures
// fall back to "not posted".
type RedisMirror struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisMirrorFromEnv creates a mirror from REDIS_ADDR, REDIS_PASS,
// REDIS_DB and POSTED_TTL_DAYS. Returns nil when REDIS_ADDR is unset.
func NewRedisMirrorFromEnv() *RedisMirror {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	db := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	ttl := 90 * 24 * time.Hour
	if v := os.Getenv("POSTED_TTL_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			ttl = time.Duration(days) * 24 * time.Hour
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		DB:       db,
	})
	return &RedisMirror{client: client, ttl: ttl}
}

// Has reports whether a hash is present in the mirror
func (m *RedisMirror) Has(hash string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	exists, err := m.client.Exists(ctx, mirrorKeyPrefix+hash).Result()
	if err != nil {
		// Assume not posted on error; the file store still catches repeats
		log.Printf("Warning: redis check failed for %s: %v", hash, err)
		return false
	}
	return exists == 1
}

// Mark writes hashes into the mirror with the configured TTL
func (m *RedisMirror) Mark(hashes ...string) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	for _, h := range hashes {
		if err := m.client.Set(ctx, mirrorKeyPrefix+h, "1", m.ttl).Err(); err != nil {
			log.Printf("Warning: redis mark failed for %s: %v", h, err)
		}
	}
}

// Close releases the underlying client
func (m *RedisMirror) Close() error {
	return m.client.Close()
}
