// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package eff provides composable effectful computations in Go.
//
// Fallible, absent, deferred and concurrent results are represented as
// first-class wrapper values ([Option], [Either], [Try], [IO], [Validated],
// [ID], [Lazy], [Trampoline], [Program], [Par], [Task]) that compose
// through a small shared vocabulary: Of, Map, Chain, Then, Combine,
// Recover. Generic code that works across wrapper families is written
// against capability evidence ([ComposableOps] through [RecoverableOps])
// over the [Kind] witness encoding.
//
// # Witness Encoding
//
// Go has no higher-kinded types, so "some wrapper F of element A" is
// encoded as the interface [Kind] with an uninhabited tag type per family
// ([OptionKind], [EitherKind], [TryKind], ...). Each wrapper converts to
// and from its Kind view:
//
//   - Widen (e.g. [WidenOption]): wrapper → Kind view, total
//   - Narrow (e.g. [NarrowOption]): Kind view → wrapper, panics on a
//     foreign kind
//   - TryNarrow (e.g. [TryNarrowOption]): non-panicking variant
//
// # Capability Evidence
//
// Wrapper families support different operation sets, and the hierarchy is
// expressed as evidence structs related by embedding:
//
//   - [ComposableOps]: Map, Peek
//   - [CombinableOps]: + Combine (independent operands)
//   - [ChainableOps]: + Of, Chain (dependent sequencing)
//   - [RecoverableOps]: + Fail, Recover (typed error channel)
//
// Evidence instances: [OptionOps], [EitherOps], [TryOps], [IDOps],
// [IOOps]. Per-wrapper free functions give the same gating at compile
// time: [Validated] deliberately has no Chain, [Par] no Chain, [ID] no
// Recover — the function simply does not exist.
//
// # Wrappers
//
// Presence: [Some], [None], [OptionOf], [MapOption], [ChainOption],
// [CombineOption2], [FoldOption].
//
// Typed failure: [Left], [Right], [MapEither], [ChainEither],
// [CombineEither2] (leftmost failure wins), [RecoverEither],
// [FoldEither].
//
// Captured panics: [TrySucceed], [TryFail], [TryOf], [Capture] — panics
// inside captured thunks become values; non-error panics are wrapped in
// [PanicError].
//
// Deferred execution: [IOOf], [Defer], [MapIO], [ChainIO], [Bracket],
// [OnError]; nothing runs until [IO.RunSafe] or [IO.RunUnsafe].
//
// Error accumulation: [Valid], [Invalid], [CombineValidated2] merges both
// failures with a [Semigroup] instead of short-circuiting. No Chain.
//
// Stack-safe recursion: [TrampolineDone], [TrampolineMore],
// [ChainTrampoline]; [Trampoline.Run] drives an explicit loop in constant
// goroutine stack.
//
// Deferred laziness with memoization: [LazyOf], [LazyDefer],
// [Lazy.Force].
//
// # Programs and Static Analysis
//
// [Program] describes a computation over abstract operations ([Op]),
// interpreted later by an [Interpreter]; [RunProgram] evaluates
// iteratively. [Par] is the analysis-friendly sibling: it cannot Chain,
// so [AnalyzePar] can enumerate every operation before [RunPar] executes
// anything.
//
// # Conversions
//
// Wrapper families convert where information allows: [OptionToEither]
// (absence needs a reason), [EitherToOption] (drops the error),
// [TryToEither], [EitherToValidated], [IOFromEither], and friends.
//
// # Effect Contexts
//
// Two-level compositions are hidden behind facades so user code chains at
// one level:
//
//   - [EitherIO]: deferred + typed error ([ChainEitherIO] short-circuits
//     on the typed channel, faults stay separate)
//   - [OptionIO]: deferred + absence, with a lazy [OptionIO.OrElse]
//     fallback chain
//   - [ReaderIO]: environment injection, [AskReaderIO], [LocalReaderIO]
//   - [StateIO]: state threading, [GetStateIO], [PutStateIO],
//     [RunStateIO] / [EvalStateIO] / [ExecStateIO]
//   - [WriterIO]: accumulating output, [TellWriterIO], [ListenWriterIO],
//     [CensorWriterIO]
//
// # Concurrency
//
// [Task] is the concurrent wrapper: [CombineTask2] evaluates operands on
// concurrent tasks of a structured scope, [RaceTask] keeps the first
// success. Structured scopes, join policies and scoped bindings live in
// the scope subpackage; bulkhead, circuit breaker and retry wrappers in
// the resilience subpackage.
//
// # Example
//
//	parse := func(s string) eff.Either[string, int] {
//		n, err := strconv.Atoi(s)
//		if err != nil {
//			return eff.Left[string, int]("not a number: " + s)
//		}
//		return eff.Right[string](n)
//	}
//
//	sum := eff.CombineEither2(parse("2"), parse("40"),
//		func(a, b int) int { return a + b })
//	// sum == eff.Right[string](42)
package eff
