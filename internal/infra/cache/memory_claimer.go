// Package cache holds the signature claim stores that narrow the window in
// which two writers can persist the same notification.
package cache

import (
	"context"
	"sync"
	"time"

	"tracenfind/internal/domain/service"
)

// memoryClaimer claims keys within one process.
type memoryClaimer struct {
	mu      sync.Mutex
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryClaimer returns a process-local SignatureClaimer.
func NewMemoryClaimer() service.SignatureClaimer {
	return &memoryClaimer{
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (c *memoryClaimer) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, exp := range c.expires {
		if !now.Before(exp) {
			delete(c.expires, k)
		}
	}

	if _, held := c.expires[key]; held {
		return false, nil
	}
	c.expires[key] = now.Add(ttl)

	return true, nil
}
