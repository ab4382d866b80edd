// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Validated represents success or one-or-more accumulated typed failures.
//
// Unlike Either, combining two invalid operands merges both failures via a
// caller-supplied Semigroup instead of keeping only the leftmost. Validated
// deliberately has no Chain: accumulation requires the operands to be
// independent, which dependent sequencing violates. Convert to Either when
// short-circuit chaining is needed.
type Validated[E, A any] struct {
	err   E
	value A
	valid bool
}

func (Validated[E, A]) kind(ValidatedKind[E], A) {}

// Semigroup is an associative merge over failure values.
// Combine relies on associativity: any grouping of the same operands must
// produce the same merged failure.
type Semigroup[E any] func(E, E) E

// SliceSemigroup returns the concatenation Semigroup for []E, preserving
// left-to-right order.
func SliceSemigroup[E any]() Semigroup[[]E] {
	return func(a, b []E) []E {
		merged := make([]E, 0, len(a)+len(b))
		merged = append(merged, a...)
		return append(merged, b...)
	}
}

// Valid creates a valid Validated holding a.
func Valid[E, A any](a A) Validated[E, A] {
	return Validated[E, A]{value: a, valid: true}
}

// Invalid creates an invalid Validated holding the failure e.
func Invalid[E, A any](e E) Validated[E, A] {
	return Validated[E, A]{err: e}
}

// IsValid returns true if this holds a value.
func (v Validated[E, A]) IsValid() bool { return v.valid }

// IsInvalid returns true if this holds a failure.
func (v Validated[E, A]) IsInvalid() bool { return !v.valid }

// Get returns the value and true, or zero and false.
func (v Validated[E, A]) Get() (A, bool) {
	if v.valid {
		return v.value, true
	}
	var zero A
	return zero, false
}

// GetError returns the failure and true, or zero and false.
func (v Validated[E, A]) GetError() (E, bool) {
	if !v.valid {
		return v.err, true
	}
	var zero E
	return zero, false
}

// Peek calls f with the value if valid and returns v unchanged.
func (v Validated[E, A]) Peek(f func(A)) Validated[E, A] {
	if v.valid {
		f(v.value)
	}
	return v
}

// MapValidated applies a pure function to the value of a valid Validated.
func MapValidated[E, A, B any](v Validated[E, A], f func(A) B) Validated[E, B] {
	if !v.valid {
		return Invalid[E, B](v.err)
	}
	return Valid[E](f(v.value))
}

// MapErrorValidated applies a function to the failure of an invalid Validated.
func MapErrorValidated[E, F, A any](v Validated[E, A], f func(E) F) Validated[F, A] {
	if v.valid {
		return Valid[F](v.value)
	}
	return Invalid[F, A](f(v.err))
}

// RecoverValidated converts a failure back onto the success track with f.
func RecoverValidated[E, A any](v Validated[E, A], f func(E) A) Validated[E, A] {
	if v.valid {
		return v
	}
	return Valid[E](f(v.err))
}

// RecoverWithValidated replaces a failure with a new Validated computed
// from it. A valid value passes through unchanged.
func RecoverWithValidated[E, A any](v Validated[E, A], f func(E) Validated[E, A]) Validated[E, A] {
	if v.valid {
		return v
	}
	return f(v.err)
}

// OrElseValidated returns v if valid, otherwise the supplied alternative.
// supply is not invoked when v is valid.
func OrElseValidated[E, A any](v Validated[E, A], supply func() Validated[E, A]) Validated[E, A] {
	if v.valid {
		return v
	}
	return supply()
}

// CombineValidated2 merges two independent Validateds.
// Both operands are always inspected: if both are valid, combine produces
// the result; if exactly one is invalid, its failure propagates; if both are
// invalid, merge joins the failures preserving left-then-right order.
func CombineValidated2[E, A, B, C any](
	va Validated[E, A], vb Validated[E, B],
	combine func(A, B) C, merge Semigroup[E],
) Validated[E, C] {
	switch {
	case va.valid && vb.valid:
		return Valid[E](combine(va.value, vb.value))
	case !va.valid && !vb.valid:
		return Invalid[E, C](merge(va.err, vb.err))
	case !va.valid:
		return Invalid[E, C](va.err)
	default:
		return Invalid[E, C](vb.err)
	}
}

// CombineValidated3 merges three independent Validateds by pairwise
// association. merge must be associative so that grouping does not affect
// the merged failure.
func CombineValidated3[E, A, B, C, D any](
	va Validated[E, A], vb Validated[E, B], vc Validated[E, C],
	combine func(A, B, C) D, merge Semigroup[E],
) Validated[E, D] {
	type pair struct {
		a A
		b B
	}
	ab := CombineValidated2(va, vb, func(a A, b B) pair { return pair{a, b} }, merge)
	return CombineValidated2(ab, vc, func(p pair, c C) D { return combine(p.a, p.b, c) }, merge)
}

// CombineValidated4 merges four independent Validateds by pairwise
// association.
func CombineValidated4[E, A, B, C, D, R any](
	va Validated[E, A], vb Validated[E, B], vc Validated[E, C], vd Validated[E, D],
	combine func(A, B, C, D) R, merge Semigroup[E],
) Validated[E, R] {
	type triple struct {
		a A
		b B
		c C
	}
	abc := CombineValidated3(va, vb, vc, func(a A, b B, c C) triple { return triple{a, b, c} }, merge)
	return CombineValidated2(abc, vd, func(t triple, d D) R { return combine(t.a, t.b, t.c, d) }, merge)
}

// FoldValidated reduces the Validated by calling onInvalid or onValid.
func FoldValidated[E, A, T any](v Validated[E, A], onInvalid func(E) T, onValid func(A) T) T {
	if v.valid {
		return onValid(v.value)
	}
	return onInvalid(v.err)
}
