package session

import (
	"time"

	"github.com/sony/gobreaker/v2"

	"skillscan/internal/errors"
)

// BreakerConfig controls the circuit breaker guarding the Redis store.
type BreakerConfig struct {
	Enabled          bool
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	MinRequests      uint32
	FailureThreshold float64
}

// StoreBreaker wraps session store calls with circuit breaker protection.
// A nil breaker executes calls directly.
type StoreBreaker struct {
	cb *gobreaker.CircuitBreaker[[]byte]
}

// NewStoreBreaker creates a breaker for the named store. It returns nil
// when the breaker is disabled, which callers treat as a passthrough.
func NewStoreBreaker(name string, cfg BreakerConfig, logger *errors.Logger) *StoreBreaker {
	if !cfg.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.MinRequests &&
				failureRatio >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger != nil {
				logger.Info("Circuit breaker state changed",
					"name", name,
					"from", from.String(),
					"to", to.String())
			}
		},
	}

	return &StoreBreaker{
		cb: gobreaker.NewCircuitBreaker[[]byte](settings),
	}
}

// Execute runs fn with circuit breaker protection.
func (sb *StoreBreaker) Execute(fn func() ([]byte, error)) ([]byte, error) {
	if sb == nil || sb.cb == nil {
		return fn()
	}
	return sb.cb.Execute(fn)
}

// IsHealthy reports whether the breaker currently admits requests.
func (sb *StoreBreaker) IsHealthy() bool {
	if sb == nil || sb.cb == nil {
		return true
	}
	return sb.cb.State() != gobreaker.StateOpen
}

// Stats returns breaker statistics for the stats endpoint.
func (sb *StoreBreaker) Stats() map[string]any {
	if sb == nil || sb.cb == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"name":    sb.cb.Name(),
		"state":   sb.cb.State().String(),
		"counts":  sb.cb.Counts(),
		"enabled": true,
	}
}
