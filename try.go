// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

import (
	"fmt"
)

// Try represents success or an opaque fault captured from underlying code.
// Unlike Either, the failure channel is always error and may originate from
// a recovered panic; the cause chain is preserved through Unwrap.
type Try[A any] struct {
	value A
	err   error
}

func (Try[A]) kind(TryKind, A) {}

// PanicError is the fault recorded when a computation panics.
// The recovered value is retained; Error renders it.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("eff: recovered panic: %v", e.Value)
}

// recoverInto converts a recovered panic value into an error.
// A panic with an error value keeps it as the cause; anything else is
// wrapped in PanicError.
func recoverInto(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("eff: recovered panic: %w", err)
	}
	return &PanicError{Value: r}
}

// TrySucceed creates a successful Try holding a.
func TrySucceed[A any](a A) Try[A] {
	return Try[A]{value: a}
}

// TryFail creates a failed Try holding err.
// Panics if err is nil: a fault without a cause is a programming error.
func TryFail[A any](err error) Try[A] {
	if err == nil {
		panic("eff: TryFail with nil error")
	}
	return Try[A]{err: err}
}

// TryOf runs f immediately, capturing a returned error or a panic as the
// fault. This is the boundary where exceptional control flow becomes a value.
func TryOf[A any](f func() (A, error)) (t Try[A]) {
	defer func() {
		if r := recover(); r != nil {
			t = Try[A]{err: recoverInto(r)}
		}
	}()
	v, err := f()
	if err != nil {
		return Try[A]{err: err}
	}
	return Try[A]{value: v}
}

// Capture runs f immediately, capturing a panic as the fault.
func Capture[A any](f func() A) Try[A] {
	return TryOf(func() (A, error) { return f(), nil })
}

// IsSuccess returns true if the Try holds a value.
func (t Try[A]) IsSuccess() bool { return t.err == nil }

// IsFailure returns true if the Try holds a fault.
func (t Try[A]) IsFailure() bool { return t.err != nil }

// Get returns the value and the fault; exactly one is meaningful.
func (t Try[A]) Get() (A, error) {
	return t.value, t.err
}

// MustGet returns the value.
// Panics with the fault if the Try failed.
func (t Try[A]) MustGet() A {
	if t.err != nil {
		panic(t.err)
	}
	return t.value
}

// OrElse returns the value if successful, otherwise the fallback.
func (t Try[A]) OrElse(fallback A) A {
	if t.err != nil {
		return fallback
	}
	return t.value
}

// Peek calls f with the value if successful and returns t unchanged.
func (t Try[A]) Peek(f func(A)) Try[A] {
	if t.err == nil {
		f(t.value)
	}
	return t
}

// MapTry applies a pure function to the value of a successful Try.
// A panic inside f is captured as the fault.
func MapTry[A, B any](t Try[A], f func(A) B) Try[B] {
	if t.err != nil {
		return Try[B]{err: t.err}
	}
	return Capture(func() B { return f(t.value) })
}

// ChainTry sequences two fallible computations.
// f is never invoked when t failed (short-circuit); a panic inside f is
// captured as the fault.
func ChainTry[A, B any](t Try[A], f func(A) Try[B]) Try[B] {
	if t.err != nil {
		return Try[B]{err: t.err}
	}
	return TryOf(func() (B, error) { return f(t.value).Get() })
}

// ThenTry sequences without data flow, discarding t's value.
// next is never invoked when t failed.
func ThenTry[A, B any](t Try[A], next func() Try[B]) Try[B] {
	if t.err != nil {
		return Try[B]{err: t.err}
	}
	return next()
}

// CombineTry2 merges two independent Trys with f.
// The leftmost fault wins.
func CombineTry2[A, B, C any](ta Try[A], tb Try[B], f func(A, B) C) Try[C] {
	if ta.err != nil {
		return Try[C]{err: ta.err}
	}
	if tb.err != nil {
		return Try[C]{err: tb.err}
	}
	return Capture(func() C { return f(ta.value, tb.value) })
}

// CombineTry3 merges three independent Trys with f.
// The leftmost fault wins.
func CombineTry3[A, B, C, D any](ta Try[A], tb Try[B], tc Try[C], f func(A, B, C) D) Try[D] {
	if ta.err != nil {
		return Try[D]{err: ta.err}
	}
	if tb.err != nil {
		return Try[D]{err: tb.err}
	}
	if tc.err != nil {
		return Try[D]{err: tc.err}
	}
	return Capture(func() D { return f(ta.value, tb.value, tc.value) })
}

// CombineTry4 merges four independent Trys with f.
// The leftmost fault wins.
func CombineTry4[A, B, C, D, R any](
	ta Try[A], tb Try[B], tc Try[C], td Try[D], f func(A, B, C, D) R,
) Try[R] {
	if ta.err != nil {
		return Try[R]{err: ta.err}
	}
	if tb.err != nil {
		return Try[R]{err: tb.err}
	}
	if tc.err != nil {
		return Try[R]{err: tc.err}
	}
	if td.err != nil {
		return Try[R]{err: td.err}
	}
	return Capture(func() R { return f(ta.value, tb.value, tc.value, td.value) })
}

// RecoverTry converts a fault back onto the success track with f.
func RecoverTry[A any](t Try[A], f func(error) A) Try[A] {
	if t.err == nil {
		return t
	}
	return Capture(func() A { return f(t.err) })
}

// RecoverWithTry replaces a fault with a new Try computed from it.
func RecoverWithTry[A any](t Try[A], f func(error) Try[A]) Try[A] {
	if t.err == nil {
		return t
	}
	return TryOf(func() (A, error) { return f(t.err).Get() })
}

// MapErrorTry applies a function to the fault of a failed Try.
func MapErrorTry[A any](t Try[A], f func(error) error) Try[A] {
	if t.err == nil {
		return t
	}
	return Try[A]{err: f(t.err)}
}

// FoldTry reduces the Try by calling onFailure or onSuccess.
func FoldTry[A, T any](t Try[A], onFailure func(error) T, onSuccess func(A) T) T {
	if t.err != nil {
		return onFailure(t.err)
	}
	return onSuccess(t.value)
}
