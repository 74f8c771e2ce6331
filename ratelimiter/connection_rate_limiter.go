package ratelimiter

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ConnectionRateLimiter lets at most maxConnections callers through per
// duration window.
type ConnectionRateLimiter struct {
	guard    chan bool
	duration time.Duration
}

func NewConnectionRateLimiter(maxConnections int, duration time.Duration) (*ConnectionRateLimiter, error) {
	if maxConnections < 1 || maxConnections > 100 {
		return nil, errors.New("max upload connections cannot be less than 1 or greater than 100")
	}

	if duration <= 0 || duration > time.Hour {
		return nil, errors.New("upload connection window cannot be 0 or greater than 3600 seconds")
	}

	return &ConnectionRateLimiter{
		guard:    make(chan bool, maxConnections),
		duration: duration,
	}, nil
}

func (t *ConnectionRateLimiter) RateLimit(ctx context.Context) error {
	select {
	case t.guard <- true:
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for an upload connection slot")
	}

	go func() {
		time.Sleep(t.duration)
		<-t.guard
	}()
	return nil
}
