// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Witness encoding for unary type constructors.
//
// Go has no higher-kinded generics, so "F applied to A" is represented as
// Kind[F, A]: an interface implemented by each concrete wrapper, where F is
// an uninhabited marker type unique to the wrapper family. Widen converts a
// concrete wrapper to its Kind view (total); Narrow recovers the concrete
// wrapper (partial — panics on a foreign kind); TryNarrow is the
// non-panicking variant.

// Kind represents the application of the type constructor tagged by F to the
// element type A. Only wrapper types in this package implement it.
type Kind[F, A any] interface {
	kind(F, A)
}

// Witness tags. Each is an empty marker type with no runtime representation;
// it exists only to select which Widen/Narrow pair applies.
type (
	// OptionKind tags the Option family.
	OptionKind struct{}
	// EitherKind tags the Either family with error type E.
	EitherKind[E any] struct{}
	// TryKind tags the Try family.
	TryKind struct{}
	// IOKind tags the IO family.
	IOKind struct{}
	// ValidatedKind tags the Validated family with error type E.
	ValidatedKind[E any] struct{}
	// IDKind tags the ID family.
	IDKind struct{}
	// LazyKind tags the Lazy family.
	LazyKind struct{}
	// TrampolineKind tags the Trampoline family.
	TrampolineKind struct{}
	// TaskKind tags the Task family.
	TaskKind struct{}
	// ProgramKind tags the Program family.
	ProgramKind struct{}
	// ParKind tags the Par family.
	ParKind struct{}
)

// wrongKind panics with a descriptive message for a failed Narrow.
//
//go:noinline
func wrongKind(family string) {
	panic("eff: kind is not " + family)
}

// WidenOption converts an Option to its Kind view. Total.
func WidenOption[A any](o Option[A]) Kind[OptionKind, A] { return o }

// NarrowOption recovers an Option from its Kind view.
// Panics if k holds a different family.
func NarrowOption[A any](k Kind[OptionKind, A]) Option[A] {
	o, ok := k.(Option[A])
	if !ok {
		wrongKind("Option")
	}
	return o
}

// TryNarrowOption attempts to recover an Option from its Kind view.
func TryNarrowOption[A any](k Kind[OptionKind, A]) (Option[A], bool) {
	o, ok := k.(Option[A])
	return o, ok
}

// WidenEither converts an Either to its Kind view. Total.
func WidenEither[E, A any](e Either[E, A]) Kind[EitherKind[E], A] { return e }

// NarrowEither recovers an Either from its Kind view.
// Panics if k holds a different family.
func NarrowEither[E, A any](k Kind[EitherKind[E], A]) Either[E, A] {
	e, ok := k.(Either[E, A])
	if !ok {
		wrongKind("Either")
	}
	return e
}

// TryNarrowEither attempts to recover an Either from its Kind view.
func TryNarrowEither[E, A any](k Kind[EitherKind[E], A]) (Either[E, A], bool) {
	e, ok := k.(Either[E, A])
	return e, ok
}

// WidenTry converts a Try to its Kind view. Total.
func WidenTry[A any](t Try[A]) Kind[TryKind, A] { return t }

// NarrowTry recovers a Try from its Kind view.
// Panics if k holds a different family.
func NarrowTry[A any](k Kind[TryKind, A]) Try[A] {
	t, ok := k.(Try[A])
	if !ok {
		wrongKind("Try")
	}
	return t
}

// TryNarrowTry attempts to recover a Try from its Kind view.
func TryNarrowTry[A any](k Kind[TryKind, A]) (Try[A], bool) {
	t, ok := k.(Try[A])
	return t, ok
}

// WidenIO converts an IO to its Kind view. Total.
func WidenIO[A any](io IO[A]) Kind[IOKind, A] { return io }

// NarrowIO recovers an IO from its Kind view.
// Panics if k holds a different family.
func NarrowIO[A any](k Kind[IOKind, A]) IO[A] {
	io, ok := k.(IO[A])
	if !ok {
		wrongKind("IO")
	}
	return io
}

// TryNarrowIO attempts to recover an IO from its Kind view.
func TryNarrowIO[A any](k Kind[IOKind, A]) (IO[A], bool) {
	io, ok := k.(IO[A])
	return io, ok
}

// WidenValidated converts a Validated to its Kind view. Total.
func WidenValidated[E, A any](v Validated[E, A]) Kind[ValidatedKind[E], A] { return v }

// NarrowValidated recovers a Validated from its Kind view.
// Panics if k holds a different family.
func NarrowValidated[E, A any](k Kind[ValidatedKind[E], A]) Validated[E, A] {
	v, ok := k.(Validated[E, A])
	if !ok {
		wrongKind("Validated")
	}
	return v
}

// TryNarrowValidated attempts to recover a Validated from its Kind view.
func TryNarrowValidated[E, A any](k Kind[ValidatedKind[E], A]) (Validated[E, A], bool) {
	v, ok := k.(Validated[E, A])
	return v, ok
}

// WidenID converts an ID to its Kind view. Total.
func WidenID[A any](i ID[A]) Kind[IDKind, A] { return i }

// NarrowID recovers an ID from its Kind view.
// Panics if k holds a different family.
func NarrowID[A any](k Kind[IDKind, A]) ID[A] {
	i, ok := k.(ID[A])
	if !ok {
		wrongKind("ID")
	}
	return i
}

// TryNarrowID attempts to recover an ID from its Kind view.
func TryNarrowID[A any](k Kind[IDKind, A]) (ID[A], bool) {
	i, ok := k.(ID[A])
	return i, ok
}

// WidenLazy converts a Lazy to its Kind view. Total.
func WidenLazy[A any](l *Lazy[A]) Kind[LazyKind, A] { return l }

// NarrowLazy recovers a Lazy from its Kind view.
// Panics if k holds a different family.
func NarrowLazy[A any](k Kind[LazyKind, A]) *Lazy[A] {
	l, ok := k.(*Lazy[A])
	if !ok {
		wrongKind("Lazy")
	}
	return l
}

// TryNarrowLazy attempts to recover a Lazy from its Kind view.
func TryNarrowLazy[A any](k Kind[LazyKind, A]) (*Lazy[A], bool) {
	l, ok := k.(*Lazy[A])
	return l, ok
}

// WidenTrampoline converts a Trampoline to its Kind view. Total.
func WidenTrampoline[A any](t Trampoline[A]) Kind[TrampolineKind, A] { return t }

// NarrowTrampoline recovers a Trampoline from its Kind view.
// Panics if k holds a different family.
func NarrowTrampoline[A any](k Kind[TrampolineKind, A]) Trampoline[A] {
	t, ok := k.(Trampoline[A])
	if !ok {
		wrongKind("Trampoline")
	}
	return t
}

// WidenTask converts a Task to its Kind view. Total.
func WidenTask[A any](t Task[A]) Kind[TaskKind, A] { return t }

// NarrowTask recovers a Task from its Kind view.
// Panics if k holds a different family.
func NarrowTask[A any](k Kind[TaskKind, A]) Task[A] {
	t, ok := k.(Task[A])
	if !ok {
		wrongKind("Task")
	}
	return t
}

// WidenProgram converts a Program to its Kind view. Total.
func WidenProgram[A any](p Program[A]) Kind[ProgramKind, A] { return p }

// NarrowProgram recovers a Program from its Kind view.
// Panics if k holds a different family.
func NarrowProgram[A any](k Kind[ProgramKind, A]) Program[A] {
	p, ok := k.(Program[A])
	if !ok {
		wrongKind("Program")
	}
	return p
}

// WidenPar converts a Par to its Kind view. Total.
func WidenPar[A any](p Par[A]) Kind[ParKind, A] { return p }

// NarrowPar recovers a Par from its Kind view.
// Panics if k holds a different family.
func NarrowPar[A any](k Kind[ParKind, A]) Par[A] {
	p, ok := k.(Par[A])
	if !ok {
		wrongKind("Par")
	}
	return p
}
