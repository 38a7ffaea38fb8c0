// Package session keeps transient wizard state between requests.
package session

import (
	"context"
	"time"
)

// Store is a byte-oriented key/value store with per-entry expiry.
// Get reports ok=false for missing or expired keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
