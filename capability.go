// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// Capability evidence.
//
// Each wrapper exposes its operations as free functions (MapOption,
// ChainEither, ...), so an unsupported capability is simply a function that
// does not exist — a compile-time error, never a runtime fault. For code
// that must stay generic over the constructor, the capabilities are also
// available as evidence dictionaries over the type-erased element: a value
// of ChainableOps[F] is proof that F supports map, combine and chain, passed
// explicitly where a language with higher-kinded generics would infer it.
//
// The hierarchy is strict and formed by embedding: ChainableOps carries
// CombinableOps carries ComposableOps. Every instance must satisfy the
// functor laws (Map identity and composition) and, for ChainableOps, the
// monad laws (Of is a left and right identity for Chain; Chain associates).

// ComposableOps is evidence that F supports structure-preserving mapping.
type ComposableOps[F any] struct {
	// Map applies a pure function to the element.
	Map func(Kind[F, Erased], func(Erased) Erased) Kind[F, Erased]
	// Peek applies a side effect to the element, leaving it unchanged.
	Peek func(Kind[F, Erased], func(Erased)) Kind[F, Erased]
}

// CombinableOps is evidence that F supports merging independent values.
type CombinableOps[F any] struct {
	ComposableOps[F]
	// Combine merges two independent values; neither operand's evaluation
	// may depend on the other's result.
	Combine func(Kind[F, Erased], Kind[F, Erased], func(Erased, Erased) Erased) Kind[F, Erased]
}

// ChainableOps is evidence that F supports dependent sequencing.
type ChainableOps[F any] struct {
	CombinableOps[F]
	// Of lifts a pure value.
	Of func(Erased) Kind[F, Erased]
	// Chain sequences a dependent computation; it short-circuits on the
	// failure channel, if F has one.
	Chain func(Kind[F, Erased], func(Erased) Kind[F, Erased]) Kind[F, Erased]
}

// RecoverableOps is evidence that F has an explicit failure channel of
// type E and supports recovery from it.
type RecoverableOps[F, E any] struct {
	ChainableOps[F]
	// Fail lifts a failure value.
	Fail func(E) Kind[F, Erased]
	// Recover converts a failure back onto the success track.
	Recover func(Kind[F, Erased], func(E) Erased) Kind[F, Erased]
}

// MapK maps a typed function over any Composable constructor.
// This is the typed boundary of the escape hatch: the element is erased
// into the dictionary and re-asserted here.
func MapK[A, B, F any](ops ComposableOps[F], fa Kind[F, Erased], f func(A) B) Kind[F, Erased] {
	return ops.Map(fa, func(v Erased) Erased { return f(v.(A)) })
}

// ChainK chains a typed Kleisli step over any Chainable constructor.
func ChainK[A, F any](ops ChainableOps[F], fa Kind[F, Erased], f func(A) Kind[F, Erased]) Kind[F, Erased] {
	return ops.Chain(fa, func(v Erased) Kind[F, Erased] { return f(v.(A)) })
}

// PipeK threads a value through a sequence of Kleisli steps, left to right,
// over any Chainable constructor.
func PipeK[F any](ops ChainableOps[F], start Kind[F, Erased], steps ...func(Erased) Kind[F, Erased]) Kind[F, Erased] {
	acc := start
	for _, step := range steps {
		acc = ops.Chain(acc, step)
	}
	return acc
}

// OptionOps returns chainable evidence for Option.
func OptionOps() ChainableOps[OptionKind] {
	return ChainableOps[OptionKind]{
		CombinableOps: CombinableOps[OptionKind]{
			ComposableOps: ComposableOps[OptionKind]{
				Map: func(k Kind[OptionKind, Erased], f func(Erased) Erased) Kind[OptionKind, Erased] {
					return MapOption(NarrowOption(k), f)
				},
				Peek: func(k Kind[OptionKind, Erased], f func(Erased)) Kind[OptionKind, Erased] {
					return NarrowOption(k).Peek(f)
				},
			},
			Combine: func(ka, kb Kind[OptionKind, Erased], f func(Erased, Erased) Erased) Kind[OptionKind, Erased] {
				return CombineOption2(NarrowOption(ka), NarrowOption(kb), f)
			},
		},
		Of: func(v Erased) Kind[OptionKind, Erased] { return Some(v) },
		Chain: func(k Kind[OptionKind, Erased], f func(Erased) Kind[OptionKind, Erased]) Kind[OptionKind, Erased] {
			return ChainOption(NarrowOption(k), func(v Erased) Option[Erased] {
				return NarrowOption(f(v))
			})
		},
	}
}

// EitherOps returns recoverable evidence for Either with error type E.
func EitherOps[E any]() RecoverableOps[EitherKind[E], E] {
	return RecoverableOps[EitherKind[E], E]{
		ChainableOps: ChainableOps[EitherKind[E]]{
			CombinableOps: CombinableOps[EitherKind[E]]{
				ComposableOps: ComposableOps[EitherKind[E]]{
					Map: func(k Kind[EitherKind[E], Erased], f func(Erased) Erased) Kind[EitherKind[E], Erased] {
						return MapEither(NarrowEither(k), f)
					},
					Peek: func(k Kind[EitherKind[E], Erased], f func(Erased)) Kind[EitherKind[E], Erased] {
						return NarrowEither(k).Peek(f)
					},
				},
				Combine: func(ka, kb Kind[EitherKind[E], Erased], f func(Erased, Erased) Erased) Kind[EitherKind[E], Erased] {
					return CombineEither2(NarrowEither(ka), NarrowEither(kb), f)
				},
			},
			Of: func(v Erased) Kind[EitherKind[E], Erased] { return Right[E](v) },
			Chain: func(k Kind[EitherKind[E], Erased], f func(Erased) Kind[EitherKind[E], Erased]) Kind[EitherKind[E], Erased] {
				return ChainEither(NarrowEither(k), func(v Erased) Either[E, Erased] {
					return NarrowEither(f(v))
				})
			},
		},
		Fail: func(e E) Kind[EitherKind[E], Erased] { return Left[E, Erased](e) },
		Recover: func(k Kind[EitherKind[E], Erased], f func(E) Erased) Kind[EitherKind[E], Erased] {
			return RecoverEither(NarrowEither(k), f)
		},
	}
}

// TryOps returns recoverable evidence for Try.
func TryOps() RecoverableOps[TryKind, error] {
	return RecoverableOps[TryKind, error]{
		ChainableOps: ChainableOps[TryKind]{
			CombinableOps: CombinableOps[TryKind]{
				ComposableOps: ComposableOps[TryKind]{
					Map: func(k Kind[TryKind, Erased], f func(Erased) Erased) Kind[TryKind, Erased] {
						return MapTry(NarrowTry(k), f)
					},
					Peek: func(k Kind[TryKind, Erased], f func(Erased)) Kind[TryKind, Erased] {
						return NarrowTry(k).Peek(f)
					},
				},
				Combine: func(ka, kb Kind[TryKind, Erased], f func(Erased, Erased) Erased) Kind[TryKind, Erased] {
					return CombineTry2(NarrowTry(ka), NarrowTry(kb), f)
				},
			},
			Of: func(v Erased) Kind[TryKind, Erased] { return TrySucceed(v) },
			Chain: func(k Kind[TryKind, Erased], f func(Erased) Kind[TryKind, Erased]) Kind[TryKind, Erased] {
				return ChainTry(NarrowTry(k), func(v Erased) Try[Erased] {
					return NarrowTry(f(v))
				})
			},
		},
		Fail: func(err error) Kind[TryKind, Erased] { return TryFail[Erased](err) },
		Recover: func(k Kind[TryKind, Erased], f func(error) Erased) Kind[TryKind, Erased] {
			return RecoverTry(NarrowTry(k), f)
		},
	}
}

// IDOps returns chainable evidence for ID.
func IDOps() ChainableOps[IDKind] {
	return ChainableOps[IDKind]{
		CombinableOps: CombinableOps[IDKind]{
			ComposableOps: ComposableOps[IDKind]{
				Map: func(k Kind[IDKind, Erased], f func(Erased) Erased) Kind[IDKind, Erased] {
					return MapID(NarrowID(k), f)
				},
				Peek: func(k Kind[IDKind, Erased], f func(Erased)) Kind[IDKind, Erased] {
					return NarrowID(k).Peek(f)
				},
			},
			Combine: func(ka, kb Kind[IDKind, Erased], f func(Erased, Erased) Erased) Kind[IDKind, Erased] {
				return CombineID2(NarrowID(ka), NarrowID(kb), f)
			},
		},
		Of: func(v Erased) Kind[IDKind, Erased] { return IDOf(v) },
		Chain: func(k Kind[IDKind, Erased], f func(Erased) Kind[IDKind, Erased]) Kind[IDKind, Erased] {
			return ChainID(NarrowID(k), func(v Erased) ID[Erased] {
				return NarrowID(f(v))
			})
		},
	}
}

// IOOps returns chainable evidence for IO.
// Composition through the dictionary preserves deferral: nothing runs
// until the narrowed IO is explicitly run.
func IOOps() ChainableOps[IOKind] {
	return ChainableOps[IOKind]{
		CombinableOps: CombinableOps[IOKind]{
			ComposableOps: ComposableOps[IOKind]{
				Map: func(k Kind[IOKind, Erased], f func(Erased) Erased) Kind[IOKind, Erased] {
					return MapIO(NarrowIO(k), f)
				},
				Peek: func(k Kind[IOKind, Erased], f func(Erased)) Kind[IOKind, Erased] {
					return NarrowIO(k).Peek(f)
				},
			},
			Combine: func(ka, kb Kind[IOKind, Erased], f func(Erased, Erased) Erased) Kind[IOKind, Erased] {
				return CombineIO2(NarrowIO(ka), NarrowIO(kb), f)
			},
		},
		Of: func(v Erased) Kind[IOKind, Erased] { return IOOf(v) },
		Chain: func(k Kind[IOKind, Erased], f func(Erased) Kind[IOKind, Erased]) Kind[IOKind, Erased] {
			return ChainIO(NarrowIO(k), func(v Erased) IO[Erased] {
				return NarrowIO(f(v))
			})
		},
	}
}
