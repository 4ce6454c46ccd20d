package service

import (
	"context"
	"time"
)

// SignatureClaimer is an optional cross-process guard for the notification
// write path. Claim returns true for exactly one caller per key within ttl.
type SignatureClaimer interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
