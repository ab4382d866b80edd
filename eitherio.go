// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// EitherIO layers a typed error channel over a deferred effect.
//
// The facade hides the two-level IO[Either[E, A]] composition behind the
// usual verb set. Construction captures thunks plus a fault-to-error
// mapping; nothing runs until Run. ToIO and EitherIOFromIO are the escape
// hatches to the raw two-level value.
type EitherIO[E, A any] struct {
	io IO[Either[E, A]]
}

// EitherIOOf creates a context that succeeds with a fixed value.
func EitherIOOf[E, A any](a A) EitherIO[E, A] {
	return EitherIO[E, A]{io: IOOf(Right[E](a))}
}

// EitherIOFail creates a context that fails with a fixed typed error.
func EitherIOFail[E, A any](e E) EitherIO[E, A] {
	return EitherIO[E, A]{io: IOOf(Left[E, A](e))}
}

// EitherIOFrom captures a fallible thunk together with the mapping from
// opaque faults (returned errors and panics) to the typed error channel.
func EitherIOFrom[E, A any](thunk func() (A, error), toErr func(error) E) EitherIO[E, A] {
	return EitherIO[E, A]{io: DeferValue(func() Either[E, A] {
		v, err := TryOf(thunk).Get()
		if err != nil {
			return Left[E, A](toErr(err))
		}
		return Right[E](v)
	})}
}

// EitherIOFromIO wraps a raw two-level composition. Escape hatch.
func EitherIOFromIO[E, A any](io IO[Either[E, A]]) EitherIO[E, A] {
	return EitherIO[E, A]{io: io}
}

// ToIO returns the raw two-level composition. Escape hatch.
func (m EitherIO[E, A]) ToIO() IO[Either[E, A]] {
	return m.io
}

// Run evaluates the deferred computation. The Either carries the typed
// error channel; the error return carries faults from raw compositions
// that bypassed a fault mapping.
func (m EitherIO[E, A]) Run() (Either[E, A], error) {
	return m.io.RunSafe().Get()
}

// MapEitherIO applies a pure function to the eventual success value.
func MapEitherIO[E, A, B any](m EitherIO[E, A], f func(A) B) EitherIO[E, B] {
	return EitherIO[E, B]{io: MapIO(m.io, func(e Either[E, A]) Either[E, B] {
		return MapEither(e, f)
	})}
}

// ChainEitherIO sequences two contexts.
// On a typed error the second thunk is never invoked.
func ChainEitherIO[E, A, B any](m EitherIO[E, A], f func(A) EitherIO[E, B]) EitherIO[E, B] {
	return EitherIO[E, B]{io: ChainIO(m.io, func(e Either[E, A]) IO[Either[E, B]] {
		if v, ok := e.GetRight(); ok {
			return f(v).io
		}
		err, _ := e.GetLeft()
		return IOOf(Left[E, B](err))
	})}
}

// ThenEitherIO sequences without data flow, discarding m's value.
func ThenEitherIO[E, A, B any](m EitherIO[E, A], next func() EitherIO[E, B]) EitherIO[E, B] {
	return ChainEitherIO(m, func(A) EitherIO[E, B] { return next() })
}

// CombineEitherIO2 merges two independent contexts with f.
// Both deferred computations are evaluated; the leftmost typed error wins.
func CombineEitherIO2[E, A, B, C any](ma EitherIO[E, A], mb EitherIO[E, B], f func(A, B) C) EitherIO[E, C] {
	return EitherIO[E, C]{io: CombineIO2(ma.io, mb.io,
		func(ea Either[E, A], eb Either[E, B]) Either[E, C] {
			return CombineEither2(ea, eb, f)
		})}
}

// MapErrorEitherIO applies a function to the eventual typed error.
func MapErrorEitherIO[E, F, A any](m EitherIO[E, A], f func(E) F) EitherIO[F, A] {
	return EitherIO[F, A]{io: MapIO(m.io, func(e Either[E, A]) Either[F, A] {
		return MapErrorEither(e, f)
	})}
}

// RecoverEitherIO converts an eventual typed error back onto the success
// track with f.
func RecoverEitherIO[E, A any](m EitherIO[E, A], f func(E) A) EitherIO[E, A] {
	return EitherIO[E, A]{io: MapIO(m.io, func(e Either[E, A]) Either[E, A] {
		return RecoverEither(e, f)
	})}
}

// RecoverWithEitherIO replaces an eventual typed error with a new deferred
// context computed from it.
func RecoverWithEitherIO[E, A any](m EitherIO[E, A], f func(E) EitherIO[E, A]) EitherIO[E, A] {
	return EitherIO[E, A]{io: ChainIO(m.io, func(e Either[E, A]) IO[Either[E, A]] {
		if e.IsRight() {
			return IOOf(e)
		}
		err, _ := e.GetLeft()
		return f(err).io
	})}
}
