// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"context"
	"errors"
	"time"

	"code.hybscloud.com/eff/scope"
)

// ErrTaskTimeout reports that a task was abandoned at its deadline.
// Distinct from a failure produced by the task itself.
var ErrTaskTimeout = errors.New("eff: task timeout")

// Task is a deferred computation that may run work concurrently.
//
// Like IO, constructing a Task never executes anything; unlike IO, running
// one takes a context for cooperative cancellation, and Combine evaluates
// its operands on concurrent tasks of a structured scope.
type Task[A any] struct {
	thunk func(context.Context) (A, error)
}

func (Task[A]) kind(TaskKind, A) {}

// TaskOf creates a task that succeeds with a fixed value.
func TaskOf[A any](a A) Task[A] {
	return Task[A]{thunk: func(context.Context) (A, error) { return a, nil }}
}

// TaskFail creates a task that fails with err.
func TaskFail[A any](err error) Task[A] {
	return Task[A]{thunk: func(context.Context) (A, error) {
		var zero A
		return zero, err
	}}
}

// TaskFrom captures a context-aware thunk. The thunk should honor
// cancellation if it blocks.
func TaskFrom[A any](f func(context.Context) (A, error)) Task[A] {
	return Task[A]{thunk: f}
}

// TaskFromIO lifts a deferred effect into a task. The effect itself does
// not observe cancellation.
func TaskFromIO[A any](io IO[A]) Task[A] {
	return Task[A]{thunk: func(context.Context) (A, error) { return io.thunk() }}
}

// Run executes the task. Panics in captured thunks propagate; use RunSafe
// to capture them.
func (t Task[A]) Run(ctx context.Context) (A, error) {
	return t.thunk(ctx)
}

// RunSafe executes the task, capturing failures and panics as a Try.
func (t Task[A]) RunSafe(ctx context.Context) Try[A] {
	return TryOf(func() (A, error) { return t.thunk(ctx) })
}

// RunTimeout executes the task with a deadline. If the deadline passes
// first the task goroutine is abandoned and ErrTaskTimeout is returned.
func (t Task[A]) RunTimeout(ctx context.Context, d time.Duration) (A, error) {
	tctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	type outcome struct {
		value A
		err   error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := t.RunSafe(tctx).Get()
		done <- outcome{value: v, err: err}
	}()
	select {
	case o := <-done:
		return o.value, o.err
	case <-tctx.Done():
		var zero A
		return zero, ErrTaskTimeout
	}
}

// EnsureCleanup returns a task that runs action after execution,
// regardless of outcome.
func (t Task[A]) EnsureCleanup(action func()) Task[A] {
	return Task[A]{thunk: func(ctx context.Context) (A, error) {
		defer action()
		return t.thunk(ctx)
	}}
}

// HandleErrorWith recovers a failed task with a deferred fallback.
func (t Task[A]) HandleErrorWith(f func(error) Task[A]) Task[A] {
	return Task[A]{thunk: func(ctx context.Context) (A, error) {
		v, err := t.thunk(ctx)
		if err == nil {
			return v, nil
		}
		return f(err).thunk(ctx)
	}}
}

// Peek returns a task that runs inspect on the value before yielding it.
func (t Task[A]) Peek(inspect func(A)) Task[A] {
	return MapTask(t, func(a A) A {
		inspect(a)
		return a
	})
}

// MapTask applies a pure function to the eventual value.
func MapTask[A, B any](t Task[A], f func(A) B) Task[B] {
	return Task[B]{thunk: func(ctx context.Context) (B, error) {
		v, err := t.thunk(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v), nil
	}}
}

// ChainTask sequences two tasks. f is never invoked when t fails.
func ChainTask[A, B any](t Task[A], f func(A) Task[B]) Task[B] {
	return Task[B]{thunk: func(ctx context.Context) (B, error) {
		v, err := t.thunk(ctx)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v).thunk(ctx)
	}}
}

// ThenTask sequences without data flow, discarding t's value.
func ThenTask[A, B any](t Task[A], next func() Task[B]) Task[B] {
	return ChainTask(t, func(A) Task[B] { return next() })
}

// CombineTask2 merges two independent tasks with f, evaluating them
// concurrently. The first failure cancels the other operand and is
// reported.
func CombineTask2[A, B, C any](ta Task[A], tb Task[B], f func(A, B) C) Task[C] {
	return Task[C]{thunk: func(ctx context.Context) (C, error) {
		s := scope.New(ctx, scope.AllSucceed)
		ha := scope.Fork(s, ta.thunk)
		hb := scope.Fork(s, tb.thunk)
		if err := s.Join(); err != nil {
			var zero C
			return zero, err
		}
		a, _ := ha.Get()
		b, _ := hb.Get()
		return f(a, b), nil
	}}
}

// CombineTask3 merges three independent tasks with f, evaluating them
// concurrently.
func CombineTask3[A, B, C, D any](ta Task[A], tb Task[B], tc Task[C], f func(A, B, C) D) Task[D] {
	return Task[D]{thunk: func(ctx context.Context) (D, error) {
		s := scope.New(ctx, scope.AllSucceed)
		ha := scope.Fork(s, ta.thunk)
		hb := scope.Fork(s, tb.thunk)
		hc := scope.Fork(s, tc.thunk)
		if err := s.Join(); err != nil {
			var zero D
			return zero, err
		}
		a, _ := ha.Get()
		b, _ := hb.Get()
		c, _ := hc.Get()
		return f(a, b, c), nil
	}}
}

// CombineTask4 merges four independent tasks with f, evaluating them
// concurrently.
func CombineTask4[A, B, C, D, R any](
	ta Task[A], tb Task[B], tc Task[C], td Task[D], f func(A, B, C, D) R,
) Task[R] {
	return Task[R]{thunk: func(ctx context.Context) (R, error) {
		s := scope.New(ctx, scope.AllSucceed)
		ha := scope.Fork(s, ta.thunk)
		hb := scope.Fork(s, tb.thunk)
		hc := scope.Fork(s, tc.thunk)
		hd := scope.Fork(s, td.thunk)
		if err := s.Join(); err != nil {
			var zero R
			return zero, err
		}
		a, _ := ha.Get()
		b, _ := hb.Get()
		c, _ := hc.Get()
		d, _ := hd.Get()
		return f(a, b, c, d), nil
	}}
}

// RaceTask returns a task yielding the value of the first operand to
// succeed, cancelling the rest. Fails only when every operand fails.
func RaceTask[A any](tasks ...Task[A]) Task[A] {
	return Task[A]{thunk: func(ctx context.Context) (A, error) {
		fs := make([]func(context.Context) (A, error), len(tasks))
		for i, t := range tasks {
			fs[i] = t.thunk
		}
		return scope.Race(ctx, fs...)
	}}
}
