package session

import (
	"errors"
	"testing"
	"time"
)

func testBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:          true,
		MaxRequests:      3,
		Interval:         60 * time.Second,
		Timeout:          60 * time.Second,
		MinRequests:      3,
		FailureThreshold: 0.6,
	}
}

func TestStoreBreakerDisabledReturnsNil(t *testing.T) {
	cb := NewStoreBreaker("disabled", BreakerConfig{Enabled: false}, nil)
	if cb != nil {
		t.Fatal("breaker should be nil when disabled")
	}

	// A nil breaker still executes the call directly.
	data, err := cb.Execute(func() ([]byte, error) {
		return []byte("ok"), nil
	})
	if err != nil || string(data) != "ok" {
		t.Errorf("passthrough Execute = %q, %v", data, err)
	}
	if !cb.IsHealthy() {
		t.Error("nil breaker must report healthy")
	}
	if enabled, ok := cb.Stats()["enabled"].(bool); !ok || enabled {
		t.Errorf("Stats = %v, want enabled=false", cb.Stats())
	}
}

func TestStoreBreakerInitialState(t *testing.T) {
	cb := NewStoreBreaker("session-redis", testBreakerConfig(), nil)
	if cb == nil {
		t.Fatal("breaker should not be nil when enabled")
	}

	stats := cb.Stats()
	if name, _ := stats["name"].(string); name != "session-redis" {
		t.Errorf("name = %q", name)
	}
	if state, _ := stats["state"].(string); state != "closed" {
		t.Errorf("initial state = %q, want closed", state)
	}
	if !cb.IsHealthy() {
		t.Error("breaker must be healthy initially")
	}
}

func TestStoreBreakerTripsAfterFailures(t *testing.T) {
	cb := NewStoreBreaker("trippy", BreakerConfig{
		Enabled:          true,
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		MinRequests:      3,
		FailureThreshold: 0.6,
	}, nil)

	boom := errors.New("redis down")
	for i := 0; i < 3; i++ {
		if _, err := cb.Execute(func() ([]byte, error) { return nil, boom }); err == nil {
			t.Fatal("failing call must return an error")
		}
	}

	if cb.IsHealthy() {
		t.Error("breaker must open after the failure threshold")
	}

	// Open breaker rejects without running the function.
	called := false
	if _, err := cb.Execute(func() ([]byte, error) {
		called = true
		return nil, nil
	}); err == nil {
		t.Error("open breaker must fail fast")
	}
	if called {
		t.Error("open breaker must not invoke the function")
	}
}
