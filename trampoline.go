// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Trampoline converts unbounded recursion into bounded-stack iteration.
//
// A recursive step returns either a terminal value (TrampolineDone) or a
// zero-argument supplier of the next step (TrampolineMore); Run drives the
// suppliers in a loop, so call-stack depth stays O(1) regardless of logical
// recursion depth. Use it for any algorithm whose recursion depth is
// unbounded or data-dependent; bounded shallow recursion does not need it.

type trampKind uint8

const (
	trampDone trampKind = iota
	trampMore
	trampBind
)

// trampNode is the type-erased step representation shared by all element
// types. Concrete types are recovered at the Trampoline facade boundary.
type trampNode struct {
	kind  trampKind
	value Erased
	more  func() *trampNode
	sub   *trampNode
	bind  func(Erased) *trampNode
}

// Trampoline is a stack-safe recursive computation producing A.
type Trampoline[A any] struct {
	node *trampNode
}

func (Trampoline[A]) kind(TrampolineKind, A) {}

// TrampolineDone creates a terminal step holding the final value.
func TrampolineDone[A any](a A) Trampoline[A] {
	return Trampoline[A]{node: &trampNode{kind: trampDone, value: a}}
}

// TrampolineMore creates a step that defers to the next step's supplier.
func TrampolineMore[A any](next func() Trampoline[A]) Trampoline[A] {
	return Trampoline[A]{node: &trampNode{
		kind: trampMore,
		more: func() *trampNode { return next().node },
	}}
}

// MapTrampoline applies a pure function to the final value.
func MapTrampoline[A, B any](t Trampoline[A], f func(A) B) Trampoline[B] {
	return ChainTrampoline(t, func(a A) Trampoline[B] {
		return TrampolineDone(f(a))
	})
}

// ChainTrampoline sequences two stack-safe computations.
// The bind is recorded as a node, not applied recursively, so deeply nested
// left- or right-associated chains evaluate in constant stack.
func ChainTrampoline[A, B any](t Trampoline[A], f func(A) Trampoline[B]) Trampoline[B] {
	return Trampoline[B]{node: &trampNode{
		kind: trampBind,
		sub:  t.node,
		bind: func(v Erased) *trampNode { return f(v.(A)).node },
	}}
}

// Run drives the computation to completion and returns the final value.
// The driver keeps an explicit continuation stack and re-associates nested
// binds iteratively; goroutine stack usage is constant in the step count.
func (t Trampoline[A]) Run() A {
	node := t.node
	var conts []func(Erased) *trampNode
	for {
		switch node.kind {
		case trampDone:
			if len(conts) == 0 {
				return node.value.(A)
			}
			k := conts[len(conts)-1]
			conts = conts[:len(conts)-1]
			node = k(node.value)
		case trampMore:
			node = node.more()
		case trampBind:
			conts = append(conts, node.bind)
			node = node.sub
		default:
			panic("eff: unknown trampoline step")
		}
	}
}
