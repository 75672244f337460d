package crosscheck

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultTimeout bounds one provider call when no timeout is configured
const DefaultTimeout = 30 * time.Second

// Breaker guards a provider with a circuit breaker. After three consecutive
// failures calls fail fast for a minute.
type Breaker struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
	timeout  time.Duration
}

// NewBreaker wraps p. timeout bounds each call, zero means DefaultTimeout.
func NewBreaker(p Provider, timeout time.Duration) *Breaker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	settings := gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: 1,
		Interval:    0,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	}

	return &Breaker{
		provider: p,
		cb:       gobreaker.NewCircuitBreaker(settings),
		timeout:  timeout,
	}
}

// Name returns the wrapped provider's name
func (b *Breaker) Name() string {
	return b.provider.Name()
}

// State reports the breaker state
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Transcribe calls the provider unless the breaker is open
func (b *Breaker) Transcribe(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.provider.Transcribe(ctx, text)
	})
	if err != nil {
		return "", fmt.Errorf("%s cross-check failed: %w", b.provider.Name(), err)
	}
	return out.(string), nil
}
