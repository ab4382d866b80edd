// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// OptionIO layers an absence channel over a deferred effect.
//
// As with EitherIO, the facade hides the IO[Option[A]] composition; absence
// replaces the typed error and carries no reason. OrElse races through a
// fallback chain, evaluating each deferred attempt only if its predecessor
// came back absent.
type OptionIO[A any] struct {
	io IO[Option[A]]
}

// OptionIOOf creates a context that succeeds with a fixed value.
func OptionIOOf[A any](a A) OptionIO[A] {
	return OptionIO[A]{io: IOOf(Some(a))}
}

// OptionIONone creates a context that is absent.
func OptionIONone[A any]() OptionIO[A] {
	return OptionIO[A]{io: IOOf(None[A]())}
}

// OptionIOFrom captures a comma-ok thunk; false becomes absence.
func OptionIOFrom[A any](thunk func() (A, bool)) OptionIO[A] {
	return OptionIO[A]{io: DeferValue(func() Option[A] {
		return OptionOf(thunk())
	})}
}

// OptionIOFromIO wraps a raw two-level composition. Escape hatch.
func OptionIOFromIO[A any](io IO[Option[A]]) OptionIO[A] {
	return OptionIO[A]{io: io}
}

// ToIO returns the raw two-level composition. Escape hatch.
func (m OptionIO[A]) ToIO() IO[Option[A]] {
	return m.io
}

// Run evaluates the deferred computation. The error return carries faults
// from the underlying deferred effect (panics, raw compositions).
func (m OptionIO[A]) Run() (Option[A], error) {
	return m.io.RunSafe().Get()
}

// OrElse returns a context that evaluates m and, only if the result is
// absent, evaluates the lazily supplied fallback.
func (m OptionIO[A]) OrElse(fallback func() OptionIO[A]) OptionIO[A] {
	return OptionIO[A]{io: ChainIO(m.io, func(o Option[A]) IO[Option[A]] {
		if o.IsSome() {
			return IOOf(o)
		}
		return fallback().io
	})}
}

// MapOptionIO applies a pure function to the eventual value.
func MapOptionIO[A, B any](m OptionIO[A], f func(A) B) OptionIO[B] {
	return OptionIO[B]{io: MapIO(m.io, func(o Option[A]) Option[B] {
		return MapOption(o, f)
	})}
}

// ChainOptionIO sequences two contexts.
// On absence the second thunk is never invoked.
func ChainOptionIO[A, B any](m OptionIO[A], f func(A) OptionIO[B]) OptionIO[B] {
	return OptionIO[B]{io: ChainIO(m.io, func(o Option[A]) IO[Option[B]] {
		if v, ok := o.Get(); ok {
			return f(v).io
		}
		return IOOf(None[B]())
	})}
}

// ThenOptionIO sequences without data flow, discarding m's value.
func ThenOptionIO[A, B any](m OptionIO[A], next func() OptionIO[B]) OptionIO[B] {
	return ChainOptionIO(m, func(A) OptionIO[B] { return next() })
}

// CombineOptionIO2 merges two independent contexts with f.
// Both deferred computations are evaluated; absence in either yields None.
func CombineOptionIO2[A, B, C any](ma OptionIO[A], mb OptionIO[B], f func(A, B) C) OptionIO[C] {
	return OptionIO[C]{io: CombineIO2(ma.io, mb.io,
		func(oa Option[A], ob Option[B]) Option[C] {
			return CombineOption2(oa, ob, f)
		})}
}
