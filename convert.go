// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Conversions between wrapper families.
//
// Every conversion is an explicit named function, never an implicit
// coercion. Conversions are total where the target can represent every
// source state; where the source lacks information the target needs (an
// absent Option has no failure value), the caller supplies it.

// OptionToEither converts presence/absence to success/typed failure.
// The absent case takes the supplied failure value.
func OptionToEither[E, A any](o Option[A], onNone E) Either[E, A] {
	if v, ok := o.Get(); ok {
		return Right[E](v)
	}
	return Left[E, A](onNone)
}

// OptionToEitherWith is OptionToEither with a lazily supplied failure.
// supply is not invoked when o is present.
func OptionToEitherWith[E, A any](o Option[A], supply func() E) Either[E, A] {
	if v, ok := o.Get(); ok {
		return Right[E](v)
	}
	return Left[E, A](supply())
}

// EitherToOption discards the failure value, keeping only presence. Total.
func EitherToOption[E, A any](e Either[E, A]) Option[A] {
	if v, ok := e.GetRight(); ok {
		return Some(v)
	}
	return None[A]()
}

// EitherToValidated preserves success/failure exactly. Total.
func EitherToValidated[E, A any](e Either[E, A]) Validated[E, A] {
	if v, ok := e.GetRight(); ok {
		return Valid[E](v)
	}
	err, _ := e.GetLeft()
	return Invalid[E, A](err)
}

// ValidatedToEither collapses to short-circuit semantics: subsequent
// chaining stops at the (possibly already merged) failure. Total.
func ValidatedToEither[E, A any](v Validated[E, A]) Either[E, A] {
	if val, ok := v.Get(); ok {
		return Right[E](val)
	}
	err, _ := v.GetError()
	return Left[E, A](err)
}

// OptionToValidated converts absence to the supplied failure value.
func OptionToValidated[E, A any](o Option[A], onNone E) Validated[E, A] {
	if v, ok := o.Get(); ok {
		return Valid[E](v)
	}
	return Invalid[E, A](onNone)
}

// ValidatedToOption discards the failure value. Total.
func ValidatedToOption[E, A any](v Validated[E, A]) Option[A] {
	if val, ok := v.Get(); ok {
		return Some(val)
	}
	return None[A]()
}

// TryToEither rehomes the opaque fault as a typed Left. Total.
func TryToEither[A any](t Try[A]) Either[error, A] {
	if v, err := t.Get(); err == nil {
		return Right[error](v)
	} else {
		return Left[error, A](err)
	}
}

// EitherToTry converts a typed failure into an opaque fault via toErr.
func EitherToTry[E, A any](e Either[E, A], toErr func(E) error) Try[A] {
	if v, ok := e.GetRight(); ok {
		return TrySucceed(v)
	}
	failure, _ := e.GetLeft()
	return TryFail[A](toErr(failure))
}

// TryToOption discards the fault, keeping only success. Total.
func TryToOption[A any](t Try[A]) Option[A] {
	if v, err := t.Get(); err == nil {
		return Some(v)
	}
	return None[A]()
}

// OptionToTry converts absence to the supplied fault.
func OptionToTry[A any](o Option[A], onNone error) Try[A] {
	if v, ok := o.Get(); ok {
		return TrySucceed(v)
	}
	return TryFail[A](onNone)
}

// IDToOption lifts an identity value into presence. Total: always Some.
func IDToOption[A any](i ID[A]) Option[A] {
	return Some(i.Value())
}

// IDToEither lifts an identity value into success. Total: always Right.
func IDToEither[E, A any](i ID[A]) Either[E, A] {
	return Right[E](i.Value())
}

// IOFromEither lifts an already-evaluated Either into a deferred effect,
// converting the typed failure to a fault via toErr at run time.
func IOFromEither[E, A any](e Either[E, A], toErr func(E) error) IO[A] {
	return Defer(func() (A, error) {
		return EitherToTry(e, toErr).Get()
	})
}

// IOFromOption lifts an already-evaluated Option into a deferred effect
// that faults with onNone when absent.
func IOFromOption[A any](o Option[A], onNone error) IO[A] {
	return Defer(func() (A, error) {
		return OptionToTry(o, onNone).Get()
	})
}

// IOFromTry lifts an already-evaluated Try into a deferred effect. Total.
func IOFromTry[A any](t Try[A]) IO[A] {
	return Defer(t.Get)
}
