// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff/resilience"
)

func failOnce(err error) func(context.Context) error {
	return func(context.Context) error { return err }
}

func TestBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	br := resilience.NewBreaker(resilience.BreakerConfig{FailureThreshold: 3})
	cause := errors.New("dependency down")

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, br.Do(context.Background(), failOnce(cause)), cause)
	}
	assert.Equal(t, resilience.StateOpen, br.State())

	calls := 0
	err := br.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Zero(t, calls, "an open circuit must not invoke the operation")
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	br := resilience.NewBreaker(resilience.BreakerConfig{FailureThreshold: 3})
	cause := errors.New("flaky")

	_ = br.Do(context.Background(), failOnce(cause))
	_ = br.Do(context.Background(), failOnce(cause))
	require.NoError(t, br.Do(context.Background(), failOnce(nil)))
	_ = br.Do(context.Background(), failOnce(cause))
	_ = br.Do(context.Background(), failOnce(cause))

	assert.Equal(t, resilience.StateClosed, br.State(),
		"non-consecutive failures must not open the circuit")
}

func TestBreakerCooldownAdmitsProbeAndCloses(t *testing.T) {
	br := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         20 * time.Millisecond,
	})
	_ = br.Do(context.Background(), failOnce(assert.AnError))
	require.Equal(t, resilience.StateOpen, br.State())

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, resilience.StateHalfOpen, br.State())

	require.NoError(t, br.Do(context.Background(), failOnce(nil)))
	assert.Equal(t, resilience.StateClosed, br.State(), "successful probe closes the circuit")
}

func TestBreakerFailedProbeReopens(t *testing.T) {
	br := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         20 * time.Millisecond,
	})
	_ = br.Do(context.Background(), failOnce(assert.AnError))
	time.Sleep(30 * time.Millisecond)

	assert.Error(t, br.Do(context.Background(), failOnce(assert.AnError)))
	assert.Equal(t, resilience.StateOpen, br.State(), "failed probe restarts the cooldown")

	calls := 0
	err := br.Do(context.Background(), func(context.Context) error { calls++; return nil })
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Zero(t, calls)
}

func TestBreakerHalfOpenProbeBudget(t *testing.T) {
	br := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold:  1,
		Cooldown:          20 * time.Millisecond,
		HalfOpenMaxProbes: 1,
	})
	_ = br.Do(context.Background(), failOnce(assert.AnError))
	time.Sleep(30 * time.Millisecond)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- br.Do(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// The probe budget is spent while the first probe is in flight.
	err := br.Do(context.Background(), failOnce(nil))
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, resilience.StateClosed, br.State())
}

func TestBreakerIgnoresStaleOutcomeAfterOpening(t *testing.T) {
	// An operation admitted while closed may complete after a concurrent
	// failure opened the circuit; its outcome must not close it again.
	br := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         time.Hour,
	})

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- br.Do(context.Background(), func(context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	require.Error(t, br.Do(context.Background(), failOnce(assert.AnError)))
	require.Equal(t, resilience.StateOpen, br.State())

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, resilience.StateOpen, br.State(),
		"a stale success must not close an open circuit")
}

func TestBreakerReset(t *testing.T) {
	br := resilience.NewBreaker(resilience.BreakerConfig{FailureThreshold: 1})
	_ = br.Do(context.Background(), failOnce(assert.AnError))
	require.Equal(t, resilience.StateOpen, br.State())

	br.Reset()
	assert.Equal(t, resilience.StateClosed, br.State())
	assert.NoError(t, br.Do(context.Background(), failOnce(nil)))
}

func TestBreakerIsFailurePredicate(t *testing.T) {
	notFound := errors.New("not found")
	br := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: 1,
		IsFailure:        func(err error) bool { return err != nil && !errors.Is(err, notFound) },
	})

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, br.Do(context.Background(), failOnce(notFound)), notFound)
	}
	assert.Equal(t, resilience.StateClosed, br.State(),
		"outcomes the predicate excuses must not count against the threshold")
}

func TestBreakerStateChangeNotifications(t *testing.T) {
	var transitions []string
	br := resilience.NewBreaker(resilience.BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         20 * time.Millisecond,
		OnStateChange: func(from, to resilience.State) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	_ = br.Do(context.Background(), failOnce(assert.AnError))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, br.Do(context.Background(), failOnce(nil)))

	assert.Equal(t, []string{"closed->open", "open->half-open", "half-open->closed"}, transitions)
}
