package gormstore

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"
)

const defaultPollInterval = 2 * time.Second

type pollScopeKey struct{}

// withPollScope marks statements issued by a watch poll so the query log can
// leave them out.
func withPollScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, pollScopeKey{}, true)
}

func isPollScope(ctx context.Context) bool {
	polled, _ := ctx.Value(pollScopeKey{}).(bool)

	return polled
}

// pollSnapshots emulates a document-store watch on a relational table. It
// reloads the result set every interval and hands it to onSnapshot when the
// fingerprint changed. The first load is always delivered. It returns nil once
// ctx is done and the load error otherwise.
func pollSnapshots[T any](
	ctx context.Context,
	interval time.Duration,
	load func(context.Context) ([]T, error),
	fingerprint func(T) string,
	onSnapshot func([]T),
) error {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx = withPollScope(ctx)

	var (
		last      uint64
		delivered bool
	)
	for {
		items, err := load(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return err
		}

		h := fnv.New64a()
		h.Write([]byte(strconv.Itoa(len(items))))
		for _, item := range items {
			h.Write([]byte{0})
			h.Write([]byte(fingerprint(item)))
		}
		sum := h.Sum64()

		if !delivered || sum != last {
			onSnapshot(items)
			delivered = true
			last = sum
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
