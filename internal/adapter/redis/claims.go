package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every formdrop key, e.g. formdrop:delivery:<submission>:<target>.
const KeyPrefix = "formdrop"

// Claims grants exclusive, expiring claims on keys under a prefix.
type Claims struct {
	rdb    *redis.Client
	prefix string
}

// NewClaims creates a claim store. Keys are stored as prefix + ":" + key;
// a trailing ":" on prefix is dropped.
func NewClaims(rdb *redis.Client, prefix string) *Claims {
	return &Claims{rdb: rdb, prefix: strings.TrimRight(prefix, ":")}
}

// Claim takes key for ttl. Returns false if someone already holds it.
func (c *Claims) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, c.key(key), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", key, err)
	}
	return ok, nil
}

// Release drops a claim so the key can be claimed again.
func (c *Claims) Release(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}

func (c *Claims) key(k string) string {
	return c.prefix + ":" + k
}
