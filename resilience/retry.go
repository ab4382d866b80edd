// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package resilience

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy is an immutable description of a retry strategy: how many
// attempts, how to space them, and which failures are worth retrying.
// The zero value is not usable; create one with NoRetry, Fixed,
// ExponentialBackoff or ExponentialBackoffWithJitter, then derive
// variants with the With methods.
type RetryPolicy struct {
	maxAttempts int
	initial     time.Duration
	maxDelay    time.Duration
	multiplier  float64
	jitter      bool
	fixed       bool
	retryIf     func(error) bool
}

func retryAlways(err error) bool { return err != nil }

// NoRetry is a policy with a single attempt and no delays.
func NoRetry() RetryPolicy {
	return RetryPolicy{maxAttempts: 1, retryIf: retryAlways}
}

// Fixed is a policy with the same delay between every attempt.
func Fixed(maxAttempts int, delay time.Duration) RetryPolicy {
	return RetryPolicy{
		maxAttempts: maxAttempts,
		initial:     delay,
		fixed:       true,
		retryIf:     retryAlways,
	}
}

// ExponentialBackoff is a policy whose delay doubles after each attempt,
// capped at one minute.
func ExponentialBackoff(maxAttempts int, initial time.Duration) RetryPolicy {
	return RetryPolicy{
		maxAttempts: maxAttempts,
		initial:     initial,
		maxDelay:    time.Minute,
		multiplier:  2.0,
		retryIf:     retryAlways,
	}
}

// ExponentialBackoffWithJitter is ExponentialBackoff with randomized
// delays, spreading out retries from correlated failures.
func ExponentialBackoffWithJitter(maxAttempts int, initial time.Duration) RetryPolicy {
	p := ExponentialBackoff(maxAttempts, initial)
	p.jitter = true
	return p
}

// WithMaxDelay returns a copy of the policy with the delay cap replaced.
func (p RetryPolicy) WithMaxDelay(d time.Duration) RetryPolicy {
	p.maxDelay = d
	return p
}

// WithMultiplier returns a copy of the policy with the backoff multiplier
// replaced.
func (p RetryPolicy) WithMultiplier(m float64) RetryPolicy {
	p.multiplier = m
	return p
}

// WithRetryIf returns a copy of the policy retrying only failures the
// predicate accepts; others are returned as-is after the first attempt.
func (p RetryPolicy) WithRetryIf(pred func(error) bool) RetryPolicy {
	p.retryIf = pred
	return p
}

// MaxAttempts returns the attempt budget.
func (p RetryPolicy) MaxAttempts() int { return p.maxAttempts }

// newBackOff builds a fresh delay source for one execution.
// BackOff implementations are stateful, so each run gets its own.
func (p RetryPolicy) newBackOff() backoff.BackOff {
	if p.fixed {
		return backoff.NewConstantBackOff(p.initial)
	}
	rf := 0.0
	if p.jitter {
		rf = 0.5
	}
	b := &backoff.ExponentialBackOff{
		InitialInterval:     p.initial,
		RandomizationFactor: rf,
		Multiplier:          p.multiplier,
		MaxInterval:         p.maxDelay,
	}
	return b
}

// Do runs op under the policy, returning its value on the first success.
// On persistent failure op is invoked exactly MaxAttempts times and the
// result is an *ExhaustedError wrapping the last failure. A failure the
// RetryIf predicate declines is returned unwrapped. Delays respect ctx.
func Do[T any](ctx context.Context, p RetryPolicy, op func(context.Context) (T, error)) (T, error) {
	var zero T
	if p.maxAttempts <= 0 {
		return zero, &ExhaustedError{Attempts: 0, Cause: nil}
	}
	b := p.newBackOff()
	b.Reset()

	var lastErr error
	attempts := 0
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		v, err := op(ctx)
		attempts = attempt
		if err == nil {
			return v, nil
		}
		lastErr = err
		if !p.retryIf(err) {
			return zero, err
		}
		if attempt == p.maxAttempts {
			break
		}
		delay := b.NextBackOff()
		if delay == backoff.Stop {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}
	return zero, &ExhaustedError{Attempts: attempts, Cause: lastErr}
}

// Execute runs an error-only operation under the policy.
func (p RetryPolicy) Execute(ctx context.Context, op func(context.Context) error) error {
	_, err := Do(ctx, p, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	})
	return err
}
