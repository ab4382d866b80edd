// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Either represents a value that is either Left (typed failure) or
// Right (success). The failure value E carries domain meaning; recovery
// operations are the only way back onto the success track.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

func (Either[E, A]) kind(EitherKind[E], A) {}

// Left creates a Left (failure) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// Peek calls f with the Right value, if any, and returns e unchanged.
func (e Either[E, A]) Peek(f func(A)) Either[E, A] {
	if e.isRight {
		f(e.right)
	}
	return e
}

// PeekError calls f with the Left value, if any, and returns e unchanged.
func (e Either[E, A]) PeekError(f func(E)) Either[E, A] {
	if !e.isRight {
		f(e.left)
	}
	return e
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a pure function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// ChainEither sequences two Either computations.
// f is never invoked when e is Left (short-circuit).
func ChainEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// ThenEither sequences without data flow, discarding e's value.
// next is never invoked when e is Left.
func ThenEither[E, A, B any](e Either[E, A], next func() Either[E, B]) Either[E, B] {
	if e.isRight {
		return next()
	}
	return Left[E, B](e.left)
}

// CombineEither2 merges two independent Eithers with f.
// The leftmost failing operand wins.
func CombineEither2[E, A, B, C any](ea Either[E, A], eb Either[E, B], f func(A, B) C) Either[E, C] {
	if !ea.isRight {
		return Left[E, C](ea.left)
	}
	if !eb.isRight {
		return Left[E, C](eb.left)
	}
	return Right[E](f(ea.right, eb.right))
}

// CombineEither3 merges three independent Eithers with f.
// The leftmost failing operand wins.
func CombineEither3[E, A, B, C, D any](ea Either[E, A], eb Either[E, B], ec Either[E, C], f func(A, B, C) D) Either[E, D] {
	if !ea.isRight {
		return Left[E, D](ea.left)
	}
	if !eb.isRight {
		return Left[E, D](eb.left)
	}
	if !ec.isRight {
		return Left[E, D](ec.left)
	}
	return Right[E](f(ea.right, eb.right, ec.right))
}

// CombineEither4 merges four independent Eithers with f.
// The leftmost failing operand wins.
func CombineEither4[E, A, B, C, D, R any](ea Either[E, A], eb Either[E, B], ec Either[E, C], ed Either[E, D], f func(A, B, C, D) R) Either[E, R] {
	if !ea.isRight {
		return Left[E, R](ea.left)
	}
	if !eb.isRight {
		return Left[E, R](eb.left)
	}
	if !ec.isRight {
		return Left[E, R](ec.left)
	}
	if !ed.isRight {
		return Left[E, R](ed.left)
	}
	return Right[E](f(ea.right, eb.right, ec.right, ed.right))
}

// RecoverEither converts a Left back onto the success track with f.
// A Right value passes through unchanged.
func RecoverEither[E, A any](e Either[E, A], f func(E) A) Either[E, A] {
	if e.isRight {
		return e
	}
	return Right[E](f(e.left))
}

// RecoverWithEither replaces a Left with a new Either computed from the
// failure value. A Right value passes through unchanged.
func RecoverWithEither[E, A any](e Either[E, A], f func(E) Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	return f(e.left)
}

// OrElseEither returns e if Right, otherwise the supplied alternative.
// supply is not invoked when e is Right.
func OrElseEither[E, A any](e Either[E, A], supply func() Either[E, A]) Either[E, A] {
	if e.isRight {
		return e
	}
	return supply()
}

// MapErrorEither applies a function to the Left value.
func MapErrorEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// FoldEither reduces the Either to a single value.
// Alias of MatchEither with fold argument order (failure handler first).
func FoldEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	return MatchEither(e, onLeft, onRight)
}
