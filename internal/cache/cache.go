package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching serialized results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a namespace and the canonical bytes of the
// cached operation's inputs. Analysis runs key on their full input value,
// manufacturer lookups on the product name.
func Key(namespace string, input []byte) string {
	hash := sha256.Sum256(input)
	return "skintel:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}
