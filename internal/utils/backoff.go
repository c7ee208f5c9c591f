package utils

import (
	"context"
	"math/rand"
	"time"
)

const (
	backoffBase   = 100 * time.Millisecond
	backoffJitter = 150
)

// Backoff is exponential with up to 150ms of jitter: 100ms, 200ms, 400ms...
func Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := time.Duration(1<<attempt) * backoffBase
	return d + time.Duration(rand.Intn(backoffJitter))*time.Millisecond
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
