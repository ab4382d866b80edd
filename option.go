// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Option represents presence or absence of a value.
// Absence carries no reason; use Either when the failure needs a payload.
//
// The zero value is None.
type Option[A any] struct {
	value   A
	present bool
}

func (Option[A]) kind(OptionKind, A) {}

// Some creates a present Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A]{value: a, present: true}
}

// None creates an absent Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// OptionOf bridges the comma-ok convention into an Option:
//
//	v, ok := m[k]
//	o := OptionOf(v, ok)
func OptionOf[A any](a A, ok bool) Option[A] {
	if !ok {
		return None[A]()
	}
	return Some(a)
}

// FromPointer bridges a nullable pointer into an Option over its element.
// A nil pointer becomes None; otherwise the pointee is copied into Some.
func FromPointer[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// ToPointer bridges an Option back to the host pointer convention.
// None becomes nil.
func ToPointer[A any](o Option[A]) *A {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// IsSome returns true if the value is present.
func (o Option[A]) IsSome() bool { return o.present }

// IsNone returns true if the value is absent.
func (o Option[A]) IsNone() bool { return !o.present }

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	return o.value, o.present
}

// MustGet returns the value.
// Panics if the Option is None.
func (o Option[A]) MustGet() A {
	if !o.present {
		panic("eff: MustGet on None")
	}
	return o.value
}

// OrElse returns the value if present, otherwise the fallback.
func (o Option[A]) OrElse(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value if present, otherwise calls supply.
// supply is not invoked when the value is present.
func (o Option[A]) OrElseGet(supply func() A) A {
	if o.present {
		return o.value
	}
	return supply()
}

// Filter returns the Option unchanged if present and pred holds,
// otherwise None.
func (o Option[A]) Filter(pred func(A) bool) Option[A] {
	if o.present && pred(o.value) {
		return o
	}
	return None[A]()
}

// Peek calls f with the value if present and returns the Option unchanged.
func (o Option[A]) Peek(f func(A)) Option[A] {
	if o.present {
		f(o.value)
	}
	return o
}

// MapOption applies a pure function to the value if present.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.present {
		return None[B]()
	}
	return Some(f(o.value))
}

// ChainOption sequences two optional computations.
// f is never invoked when o is None (short-circuit).
func ChainOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.present {
		return None[B]()
	}
	return f(o.value)
}

// ThenOption sequences without data flow, discarding o's value.
// next is never invoked when o is None.
func ThenOption[A, B any](o Option[A], next func() Option[B]) Option[B] {
	if !o.present {
		return None[B]()
	}
	return next()
}

// CombineOption2 merges two independent Options with f.
// Absence in either operand yields None; neither operand's evaluation
// depends on the other.
func CombineOption2[A, B, C any](oa Option[A], ob Option[B], f func(A, B) C) Option[C] {
	if !oa.present || !ob.present {
		return None[C]()
	}
	return Some(f(oa.value, ob.value))
}

// CombineOption3 merges three independent Options with f.
func CombineOption3[A, B, C, D any](oa Option[A], ob Option[B], oc Option[C], f func(A, B, C) D) Option[D] {
	if !oa.present || !ob.present || !oc.present {
		return None[D]()
	}
	return Some(f(oa.value, ob.value, oc.value))
}

// CombineOption4 merges four independent Options with f.
func CombineOption4[A, B, C, D, E any](oa Option[A], ob Option[B], oc Option[C], od Option[D], f func(A, B, C, D) E) Option[E] {
	if !oa.present || !ob.present || !oc.present || !od.present {
		return None[E]()
	}
	return Some(f(oa.value, ob.value, oc.value, od.value))
}

// OrElseOption returns o if present, otherwise the supplied alternative.
// supply is not invoked when o is present.
func OrElseOption[A any](o Option[A], supply func() Option[A]) Option[A] {
	if o.present {
		return o
	}
	return supply()
}

// FoldOption reduces the Option by calling onNone or onSome.
func FoldOption[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}
