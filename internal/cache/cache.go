// Package cache stores normalized registry lookups so repeat runs against
// the same candidate do not hammer public registries.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for check-result caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key for one namespace lookup
func Key(namespace, value string) string {
	hash := sha256.Sum256([]byte(namespace + "\x00" + value))
	return "namelens:v1:" + hex.EncodeToString(hash[:])
}
