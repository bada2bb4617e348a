package generate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerGenerator stops calling a backend after repeated failures and lets
// a single trial request through once the cool-down has passed
type BreakerGenerator struct {
	next    Generator
	breaker *gobreaker.CircuitBreaker
}

// BreakerSettings returns the circuit breaker settings used by
// NewBreakerGenerator
func BreakerSettings(logger *slog.Logger) gobreaker.Settings {
	if logger == nil {
		logger = slog.Default()
	}
	return gobreaker.Settings{
		Name:        "generator",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			// A cancelled request or a blank prompt says nothing about the
			// backend's health
			return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrEmptyPrompt)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}
}

// NewBreakerGenerator wraps next in a circuit breaker
func NewBreakerGenerator(next Generator, logger *slog.Logger) *BreakerGenerator {
	return NewBreakerGeneratorWithSettings(next, BreakerSettings(logger))
}

// NewBreakerGeneratorWithSettings wraps next in a circuit breaker configured
// by settings
func NewBreakerGeneratorWithSettings(next Generator, settings gobreaker.Settings) *BreakerGenerator {
	return &BreakerGenerator{next: next, breaker: gobreaker.NewCircuitBreaker(settings)}
}

// Generate implements Generator. While the breaker is open it fails fast
// with gobreaker.ErrOpenState.
func (b *BreakerGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.next.Generate(ctx, prompt)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// State returns the breaker state
func (b *BreakerGenerator) State() gobreaker.State {
	return b.breaker.State()
}
