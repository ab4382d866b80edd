// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// IO represents a deferred, possibly side-effecting computation.
//
// Construction and composition never evaluate the underlying thunk; only
// RunSafe and RunUnsafe do. Faults — returned errors and recovered panics —
// stay inside the value until a run entry point surfaces them.
type IO[A any] struct {
	thunk func() (A, error)
}

func (IO[A]) kind(IOKind, A) {}

// IOOf creates an IO that succeeds with a fixed value.
func IOOf[A any](a A) IO[A] {
	return IO[A]{thunk: func() (A, error) { return a, nil }}
}

// IOFail creates an IO that fails with a fixed fault.
func IOFail[A any](err error) IO[A] {
	return IO[A]{thunk: func() (A, error) {
		var zero A
		return zero, err
	}}
}

// Defer lifts a fallible computation into an IO without running it.
func Defer[A any](f func() (A, error)) IO[A] {
	return IO[A]{thunk: f}
}

// DeferValue lifts an infallible computation into an IO without running it.
// A panic inside f is still captured as a fault at run time.
func DeferValue[A any](f func() A) IO[A] {
	return IO[A]{thunk: func() (A, error) { return f(), nil }}
}

// RunSafe evaluates the deferred computation and returns its outcome as a
// Try. Panics raised by the thunk are captured as faults.
func (io IO[A]) RunSafe() Try[A] {
	return TryOf(io.thunk)
}

// RunUnsafe evaluates the deferred computation and returns the value.
// A captured fault is re-raised as a panic.
func (io IO[A]) RunUnsafe() A {
	return io.RunSafe().MustGet()
}

// HandleError converts a fault back onto the success track with f.
// The returned IO cannot fail unless f panics.
func (io IO[A]) HandleError(f func(error) A) IO[A] {
	return IO[A]{thunk: func() (A, error) {
		v, err := io.RunSafe().Get()
		if err != nil {
			return f(err), nil
		}
		return v, nil
	}}
}

// HandleErrorWith replaces a fault with a new deferred computation.
func (io IO[A]) HandleErrorWith(f func(error) IO[A]) IO[A] {
	return IO[A]{thunk: func() (A, error) {
		v, err := io.RunSafe().Get()
		if err != nil {
			return f(err).RunSafe().Get()
		}
		return v, nil
	}}
}

// EnsureCleanup runs action on every exit path — success, fault, or panic —
// after the computation finishes, preserving the original outcome.
func (io IO[A]) EnsureCleanup(action func()) IO[A] {
	return IO[A]{thunk: func() (A, error) {
		defer action()
		return io.thunk()
	}}
}

// Peek calls f with the value on success and leaves the outcome unchanged.
// Like everything else here, nothing happens until run.
func (io IO[A]) Peek(f func(A)) IO[A] {
	return IO[A]{thunk: func() (A, error) {
		v, err := io.thunk()
		if err == nil {
			f(v)
		}
		return v, err
	}}
}

// MapIO applies a pure function to the eventual value.
func MapIO[A, B any](io IO[A], f func(A) B) IO[B] {
	return IO[B]{thunk: func() (B, error) {
		v, err := io.RunSafe().Get()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v), nil
	}}
}

// ChainIO sequences two deferred computations.
// f is never invoked when io faults (short-circuit).
func ChainIO[A, B any](io IO[A], f func(A) IO[B]) IO[B] {
	return IO[B]{thunk: func() (B, error) {
		v, err := io.RunSafe().Get()
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v).RunSafe().Get()
	}}
}

// ThenIO sequences without data flow, discarding io's value.
// next is never invoked when io faults.
func ThenIO[A, B any](io IO[A], next func() IO[B]) IO[B] {
	return IO[B]{thunk: func() (B, error) {
		_, err := io.RunSafe().Get()
		if err != nil {
			var zero B
			return zero, err
		}
		return next().RunSafe().Get()
	}}
}

// CombineIO2 merges two independent deferred computations with f.
// Both thunks are evaluated regardless of individual outcome — neither
// operand may depend on the other's result — and the leftmost fault wins.
func CombineIO2[A, B, C any](ia IO[A], ib IO[B], f func(A, B) C) IO[C] {
	return IO[C]{thunk: func() (C, error) {
		va, erra := ia.RunSafe().Get()
		vb, errb := ib.RunSafe().Get()
		if erra != nil {
			var zero C
			return zero, erra
		}
		if errb != nil {
			var zero C
			return zero, errb
		}
		return f(va, vb), nil
	}}
}

// CombineIO3 merges three independent deferred computations with f.
// The leftmost fault wins.
func CombineIO3[A, B, C, D any](ia IO[A], ib IO[B], ic IO[C], f func(A, B, C) D) IO[D] {
	return IO[D]{thunk: func() (D, error) {
		va, erra := ia.RunSafe().Get()
		vb, errb := ib.RunSafe().Get()
		vc, errc := ic.RunSafe().Get()
		var zero D
		if erra != nil {
			return zero, erra
		}
		if errb != nil {
			return zero, errb
		}
		if errc != nil {
			return zero, errc
		}
		return f(va, vb, vc), nil
	}}
}

// CombineIO4 merges four independent deferred computations with f.
// The leftmost fault wins.
func CombineIO4[A, B, C, D, R any](
	ia IO[A], ib IO[B], ic IO[C], id IO[D], f func(A, B, C, D) R,
) IO[R] {
	return IO[R]{thunk: func() (R, error) {
		va, erra := ia.RunSafe().Get()
		vb, errb := ib.RunSafe().Get()
		vc, errc := ic.RunSafe().Get()
		vd, errd := id.RunSafe().Get()
		var zero R
		if erra != nil {
			return zero, erra
		}
		if errb != nil {
			return zero, errb
		}
		if errc != nil {
			return zero, errc
		}
		if errd != nil {
			return zero, errd
		}
		return f(va, vb, vc, vd), nil
	}}
}

// Bracket provides fault-safe resource acquisition and release: acquire,
// use, release — where release is guaranteed to run once acquire succeeded,
// even if use faults or panics.
func Bracket[R, A any](
	acquire IO[R],
	use func(R) IO[A],
	release func(R),
) IO[A] {
	return ChainIO(acquire, func(resource R) IO[A] {
		return IO[A]{thunk: func() (A, error) {
			defer release(resource)
			return use(resource).RunSafe().Get()
		}}
	})
}

// OnError runs cleanup only if the computation faults, then re-reports
// the original fault.
func OnError[A any](io IO[A], cleanup func(error)) IO[A] {
	return IO[A]{thunk: func() (A, error) {
		v, err := io.RunSafe().Get()
		if err != nil {
			cleanup(err)
		}
		return v, err
	}}
}
