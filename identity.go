// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// ID wraps a value that cannot fail and carries no effect.
// It is the identity of the wrapper family: Map and Chain apply directly,
// and there is no failure channel to recover from and nothing to run.
type ID[A any] struct {
	value A
}

func (ID[A]) kind(IDKind, A) {}

// IDOf wraps a value.
func IDOf[A any](a A) ID[A] {
	return ID[A]{value: a}
}

// Value returns the wrapped value.
func (i ID[A]) Value() A { return i.value }

// Peek calls f with the value and returns i unchanged.
func (i ID[A]) Peek(f func(A)) ID[A] {
	f(i.value)
	return i
}

// MapID applies a pure function to the value.
func MapID[A, B any](i ID[A], f func(A) B) ID[B] {
	return IDOf(f(i.value))
}

// ChainID sequences two identity computations.
func ChainID[A, B any](i ID[A], f func(A) ID[B]) ID[B] {
	return f(i.value)
}

// ThenID sequences without data flow, discarding i's value.
func ThenID[A, B any](i ID[A], next func() ID[B]) ID[B] {
	return next()
}

// CombineID2 merges two identity values with f.
func CombineID2[A, B, C any](ia ID[A], ib ID[B], f func(A, B) C) ID[C] {
	return IDOf(f(ia.value, ib.value))
}

// CombineID3 merges three identity values with f.
func CombineID3[A, B, C, D any](ia ID[A], ib ID[B], ic ID[C], f func(A, B, C) D) ID[D] {
	return IDOf(f(ia.value, ib.value, ic.value))
}

// CombineID4 merges four identity values with f.
func CombineID4[A, B, C, D, R any](
	ia ID[A], ib ID[B], ic ID[C], id ID[D], f func(A, B, C, D) R,
) ID[R] {
	return IDOf(f(ia.value, ib.value, ic.value, id.value))
}
