// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// ReaderIO layers environment injection over a deferred effect.
//
// The environment of type R is supplied exactly once, at the Run boundary;
// every Ask inside the composition sees that value, except within a Local
// sub-computation, which sees the transformed environment for its own
// extent only — siblings in the same chain keep the original.
//
// ReaderIO environments travel through explicit values, not through the
// scope package's binding mechanism: a ReaderIO environment is NOT
// automatically visible inside forked tasks. Pass it into each forked
// closure explicitly, or use a scoped binding instead.
type ReaderIO[R, A any] struct {
	run func(R) (A, error)
}

// ReaderIOOf creates a context that ignores the environment and succeeds
// with a fixed value.
func ReaderIOOf[R, A any](a A) ReaderIO[R, A] {
	return ReaderIO[R, A]{run: func(R) (A, error) { return a, nil }}
}

// ReaderIOFail creates a context that ignores the environment and faults.
func ReaderIOFail[R, A any](err error) ReaderIO[R, A] {
	return ReaderIO[R, A]{run: func(R) (A, error) {
		var zero A
		return zero, err
	}}
}

// AskReaderIO reads the environment itself.
func AskReaderIO[R any]() ReaderIO[R, R] {
	return ReaderIO[R, R]{run: func(r R) (R, error) { return r, nil }}
}

// AsksReaderIO fuses Ask + Map: reads the environment and applies a
// projection.
func AsksReaderIO[R, A any](f func(R) A) ReaderIO[R, A] {
	return ReaderIO[R, A]{run: func(r R) (A, error) { return f(r), nil }}
}

// ReaderIOFrom captures a fallible environment-dependent thunk.
func ReaderIOFrom[R, A any](f func(R) (A, error)) ReaderIO[R, A] {
	return ReaderIO[R, A]{run: f}
}

// MapReaderIO applies a pure function to the eventual value.
func MapReaderIO[R, A, B any](m ReaderIO[R, A], f func(A) B) ReaderIO[R, B] {
	return ReaderIO[R, B]{run: func(r R) (B, error) {
		v, err := m.run(r)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v), nil
	}}
}

// ChainReaderIO sequences two contexts; both see the same environment.
// f is never invoked when m faults.
func ChainReaderIO[R, A, B any](m ReaderIO[R, A], f func(A) ReaderIO[R, B]) ReaderIO[R, B] {
	return ReaderIO[R, B]{run: func(r R) (B, error) {
		v, err := m.run(r)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(v).run(r)
	}}
}

// ThenReaderIO sequences without data flow, discarding m's value.
func ThenReaderIO[R, A, B any](m ReaderIO[R, A], next func() ReaderIO[R, B]) ReaderIO[R, B] {
	return ChainReaderIO(m, func(A) ReaderIO[R, B] { return next() })
}

// LocalReaderIO runs m under a transformed environment.
// Only m sees f(env); sibling computations chained alongside the result
// keep the original environment.
func LocalReaderIO[R, A any](m ReaderIO[R, A], f func(R) R) ReaderIO[R, A] {
	return ReaderIO[R, A]{run: func(r R) (A, error) {
		return m.run(f(r))
	}}
}

// RunReaderIO evaluates the context, supplying the environment exactly
// once. Panics inside captured thunks surface as faults here.
func RunReaderIO[R, A any](m ReaderIO[R, A], env R) (A, error) {
	return TryOf(func() (A, error) { return m.run(env) }).Get()
}

// ToIO binds the environment and returns the raw deferred effect.
// Escape hatch.
func ToIOReaderIO[R, A any](m ReaderIO[R, A], env R) IO[A] {
	return Defer(func() (A, error) { return m.run(env) })
}
