// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package scope provides structured concurrency: forked tasks are owned by
// a Scope, joined under an explicit policy, and inherit scoped bindings
// (see Bind) through the context passed to them at fork time.
//
// Tasks run on goroutines, which are cheap enough to fork per logical task.
// Cancellation is cooperative: a cancelled sibling observes it at its next
// context check; tasks that never look at their context run to completion.
package scope

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Policy selects how Join treats the outcomes of forked tasks.
type Policy int

const (
	// AllSucceed fails the scope on the first task failure and requests
	// cancellation of the remaining tasks.
	AllSucceed Policy = iota
	// FirstSuccess completes the scope on the first task success and
	// requests cancellation of the remaining tasks; if every task fails,
	// Join reports the joined failures.
	FirstSuccess
	// AllComplete waits for every task regardless of individual outcome;
	// per-task results are read from their handles.
	AllComplete
)

// String returns the string representation of the policy.
func (p Policy) String() string {
	switch p {
	case AllSucceed:
		return "all-succeed"
	case FirstSuccess:
		return "first-success"
	case AllComplete:
		return "all-complete"
	default:
		return "unknown"
	}
}

// Scope states. A scope accepts forks while open, moves to awaiting when
// Join is called, and is closed once Join returns.
const (
	stateOpen int32 = iota
	stateAwaiting
	stateClosed
)

// Scope owns a set of forked tasks and a join policy.
// Create with New; a Scope must be joined exactly once.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	policy Policy

	state atomic.Int32
	wg    sync.WaitGroup

	mu        sync.Mutex
	firstErr  error
	succeeded bool
	failures  []error
}

// New creates an open scope with the given join policy.
// The scope context — passed to every forked task — is derived from ctx,
// so scoped bindings on ctx are inherited by all tasks, however deeply
// nested their own forks are.
func New(ctx context.Context, policy Policy) *Scope {
	child, cancel := context.WithCancel(ctx)
	return &Scope{ctx: child, cancel: cancel, policy: policy}
}

// Context returns the scope context given to forked tasks.
func (s *Scope) Context() context.Context {
	return s.ctx
}

// Cancel requests cancellation of all tasks in the scope.
// Cancellation is advisory; tasks observe it cooperatively.
func (s *Scope) Cancel() {
	s.cancel()
}

// complete records one task outcome and applies the policy's
// short-circuit reaction.
func (s *Scope) complete(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.policy {
	case AllSucceed:
		if err != nil && s.firstErr == nil {
			s.firstErr = err
			s.cancel()
		}
	case FirstSuccess:
		if err == nil {
			if !s.succeeded {
				s.succeeded = true
				s.cancel()
			}
		} else {
			s.failures = append(s.failures, err)
		}
	}
}

// Join waits for all forked tasks according to the policy and closes the
// scope. Panics if called more than once.
func (s *Scope) Join() error {
	if !s.state.CompareAndSwap(stateOpen, stateAwaiting) {
		panic("scope: join on a non-open scope")
	}
	s.wg.Wait()
	s.state.Store(stateClosed)
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.policy {
	case AllSucceed:
		return s.firstErr
	case FirstSuccess:
		if s.succeeded {
			return nil
		}
		return errors.Join(s.failures...)
	default:
		return nil
	}
}

// Handle is the one-shot result cell of a forked task.
// Results become readable only after the owning scope is joined.
type Handle[A any] struct {
	scope *Scope
	value A
	err   error
}

// Get returns the task's outcome.
// Panics if the owning scope has not been joined yet: the completion of
// the task is only ordered before reads by Join.
func (h *Handle[A]) Get() (A, error) {
	if h.scope.state.Load() != stateClosed {
		panic("scope: handle read before join")
	}
	return h.value, h.err
}

// Fork starts f as a task of the scope and returns its handle.
// f receives the scope context, inheriting all scoped bindings. Panics in
// f are captured as the task's failure. Forking after Join is an error.
func Fork[A any](s *Scope, f func(context.Context) (A, error)) *Handle[A] {
	if s.state.Load() != stateOpen {
		panic("scope: fork on a non-open scope")
	}
	h := &Handle[A]{scope: s}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		v, err := protect(s.ctx, f)
		h.value, h.err = v, err
		s.complete(err)
	}()
	return h
}

// protect invokes f, converting a panic into a failure.
func protect[A any](ctx context.Context, f func(context.Context) (A, error)) (v A, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("scope: task panic: %v", r)
		}
	}()
	return f(ctx)
}

// Collect forks every function under an all-succeed scope, joins, and
// returns the values in argument order. The first failure cancels the
// remaining tasks and is returned.
func Collect[A any](ctx context.Context, fs ...func(context.Context) (A, error)) ([]A, error) {
	s := New(ctx, AllSucceed)
	handles := make([]*Handle[A], len(fs))
	for i, f := range fs {
		handles[i] = Fork(s, f)
	}
	if err := s.Join(); err != nil {
		return nil, err
	}
	out := make([]A, len(fs))
	for i, h := range handles {
		out[i], _ = h.Get()
	}
	return out, nil
}

// Race forks every function under a first-success scope and returns the
// value of the first task to succeed, cancelling the rest. If every task
// fails, the joined failures are returned.
func Race[A any](ctx context.Context, fs ...func(context.Context) (A, error)) (A, error) {
	s := New(ctx, FirstSuccess)
	var (
		once   sync.Once
		winner A
	)
	for _, f := range fs {
		Fork(s, func(ctx context.Context) (struct{}, error) {
			v, err := f(ctx)
			if err == nil {
				once.Do(func() { winner = v })
			}
			return struct{}{}, err
		})
	}
	if err := s.Join(); err != nil {
		var zero A
		return zero, err
	}
	return winner, nil
}
