// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resilience

import (
	"context"
	"sync"
	"time"
)

// State is a breaker state.
type State int

const (
	// StateClosed admits every operation.
	StateClosed State = iota
	// StateOpen rejects every operation without invoking it.
	StateOpen
	// StateHalfOpen admits a bounded number of probe operations.
	StateHalfOpen
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures a breaker.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that opens
	// the circuit. Default: 5.
	FailureThreshold int

	// Cooldown is how long an open circuit rejects before admitting
	// probes. Default: 30 seconds.
	Cooldown time.Duration

	// HalfOpenMaxProbes bounds concurrent probes while half-open.
	// Default: 1.
	HalfOpenMaxProbes int

	// OnStateChange is invoked on each transition.
	OnStateChange func(from, to State)

	// IsFailure decides whether an outcome counts against the threshold.
	// Default: every non-nil error.
	IsFailure func(err error) bool
}

// Breaker isolates a failing dependency: after FailureThreshold
// consecutive failures it rejects with ErrCircuitOpen, then after
// Cooldown admits bounded probes to test recovery.
type Breaker struct {
	config BreakerConfig

	mu          sync.Mutex
	state       State
	failures    int
	lastFailure time.Time
	probes      int
}

// NewBreaker creates a breaker in the closed state.
func NewBreaker(config BreakerConfig) *Breaker {
	if config.FailureThreshold <= 0 {
		config.FailureThreshold = 5
	}
	if config.Cooldown <= 0 {
		config.Cooldown = 30 * time.Second
	}
	if config.HalfOpenMaxProbes <= 0 {
		config.HalfOpenMaxProbes = 1
	}
	if config.IsFailure == nil {
		config.IsFailure = func(err error) bool { return err != nil }
	}
	return &Breaker{config: config, state: StateClosed}
}

// Do runs the operation through the breaker. When the circuit is open, or
// half-open with its probe budget spent, the operation is not invoked and
// ErrCircuitOpen is returned.
func (br *Breaker) Do(ctx context.Context, op func(context.Context) error) error {
	if err := br.admit(); err != nil {
		return err
	}
	err := op(ctx)
	br.record(err)
	return err
}

// State returns the current state, applying the cooldown transition.
func (br *Breaker) State() State {
	br.mu.Lock()
	defer br.mu.Unlock()
	return br.stateLocked()
}

// Reset forces the breaker back to closed.
func (br *Breaker) Reset() {
	br.mu.Lock()
	defer br.mu.Unlock()
	old := br.state
	br.state = StateClosed
	br.failures = 0
	br.probes = 0
	if old != StateClosed && br.config.OnStateChange != nil {
		br.config.OnStateChange(old, StateClosed)
	}
}

func (br *Breaker) admit() error {
	br.mu.Lock()
	defer br.mu.Unlock()
	switch br.stateLocked() {
	case StateOpen:
		return ErrCircuitOpen
	case StateHalfOpen:
		if br.probes >= br.config.HalfOpenMaxProbes {
			return ErrCircuitOpen
		}
		br.probes++
	}
	return nil
}

func (br *Breaker) record(err error) {
	br.mu.Lock()
	defer br.mu.Unlock()
	failed := br.config.IsFailure(err)
	old := br.state

	switch br.state {
	case StateClosed:
		if failed {
			br.failures++
			br.lastFailure = time.Now()
			if br.failures >= br.config.FailureThreshold {
				br.state = StateOpen
			}
		} else {
			br.failures = 0
		}
	case StateHalfOpen:
		if failed {
			// Failed probe restarts the cooldown.
			br.lastFailure = time.Now()
			br.state = StateOpen
		} else {
			br.state = StateClosed
			br.failures = 0
		}
	case StateOpen:
		// Admitted before the circuit opened, completed after. The
		// outcome is stale; the cooldown alone decides recovery.
	}

	if old != br.state && br.config.OnStateChange != nil {
		br.config.OnStateChange(old, br.state)
	}
}

// stateLocked moves an open circuit past its cooldown into half-open.
func (br *Breaker) stateLocked() State {
	if br.state == StateOpen && time.Since(br.lastFailure) >= br.config.Cooldown {
		br.state = StateHalfOpen
		br.probes = 0
		if br.config.OnStateChange != nil {
			br.config.OnStateChange(StateOpen, StateHalfOpen)
		}
	}
	return br.state
}

// Metrics returns a snapshot of breaker statistics.
func (br *Breaker) Metrics() BreakerMetrics {
	br.mu.Lock()
	defer br.mu.Unlock()
	return BreakerMetrics{
		State:       br.stateLocked(),
		Failures:    br.failures,
		LastFailure: br.lastFailure,
	}
}

// BreakerMetrics contains breaker statistics.
type BreakerMetrics struct {
	State       State
	Failures    int
	LastFailure time.Time
}
