// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import "sync"

// Lazy is a deferred pure value evaluated at most once.
// Unlike IO, the computation has no failure channel and the result is
// memoized: repeated Force calls return the first evaluation's value.
// Safe for concurrent Force.
type Lazy[A any] struct {
	once  sync.Once
	thunk func() A
	value A
}

func (*Lazy[A]) kind(LazyKind, A) {}

// LazyOf creates an already-evaluated Lazy.
func LazyOf[A any](a A) *Lazy[A] {
	l := &Lazy[A]{value: a}
	l.once.Do(func() {})
	return l
}

// LazyDefer creates a Lazy whose thunk runs on first Force.
func LazyDefer[A any](thunk func() A) *Lazy[A] {
	return &Lazy[A]{thunk: thunk}
}

// Force evaluates the thunk if it has not run yet and returns the
// memoized value.
func (l *Lazy[A]) Force() A {
	l.once.Do(func() {
		if l.thunk != nil {
			l.value = l.thunk()
			l.thunk = nil
		}
	})
	return l.value
}

// MapLazy applies a pure function to the eventual value.
// Neither thunk runs until the result is forced.
func MapLazy[A, B any](l *Lazy[A], f func(A) B) *Lazy[B] {
	return LazyDefer(func() B { return f(l.Force()) })
}

// ChainLazy sequences two lazy computations.
func ChainLazy[A, B any](l *Lazy[A], f func(A) *Lazy[B]) *Lazy[B] {
	return LazyDefer(func() B { return f(l.Force()).Force() })
}
