// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// StateIO layers state threading over a deferred effect.
//
// Each step returns a StatePair of (new state, produced value); Chain
// threads the new state into the next step. The initial state is supplied
// at a terminal: RunStateIO returns both, EvalStateIO the value only,
// ExecStateIO the state only.

// StatePair is one step's output: the new state and the produced value.
type StatePair[S, A any] struct {
	State S
	Value A
}

// StateIO is a deferred state-threading computation producing A over
// state type S.
type StateIO[S, A any] struct {
	run func(S) (StatePair[S, A], error)
}

// StateIOOf creates a step that leaves the state unchanged and produces a
// fixed value.
func StateIOOf[S, A any](a A) StateIO[S, A] {
	return StateIO[S, A]{run: func(s S) (StatePair[S, A], error) {
		return StatePair[S, A]{State: s, Value: a}, nil
	}}
}

// StateIOFail creates a step that faults.
func StateIOFail[S, A any](err error) StateIO[S, A] {
	return StateIO[S, A]{run: func(S) (StatePair[S, A], error) {
		return StatePair[S, A]{}, err
	}}
}

// GetStateIO reads the threaded state.
func GetStateIO[S any]() StateIO[S, S] {
	return StateIO[S, S]{run: func(s S) (StatePair[S, S], error) {
		return StatePair[S, S]{State: s, Value: s}, nil
	}}
}

// PutStateIO replaces the threaded state.
func PutStateIO[S any](s S) StateIO[S, struct{}] {
	return StateIO[S, struct{}]{run: func(S) (StatePair[S, struct{}], error) {
		return StatePair[S, struct{}]{State: s}, nil
	}}
}

// ModifyStateIO applies f to the threaded state and produces the new state.
func ModifyStateIO[S any](f func(S) S) StateIO[S, S] {
	return StateIO[S, S]{run: func(s S) (StatePair[S, S], error) {
		next := f(s)
		return StatePair[S, S]{State: next, Value: next}, nil
	}}
}

// StateIOFrom captures a fallible state-transition thunk.
func StateIOFrom[S, A any](f func(S) (S, A, error)) StateIO[S, A] {
	return StateIO[S, A]{run: func(s S) (StatePair[S, A], error) {
		next, v, err := f(s)
		if err != nil {
			return StatePair[S, A]{}, err
		}
		return StatePair[S, A]{State: next, Value: v}, nil
	}}
}

// MapStateIO applies a pure function to the produced value.
func MapStateIO[S, A, B any](m StateIO[S, A], f func(A) B) StateIO[S, B] {
	return StateIO[S, B]{run: func(s S) (StatePair[S, B], error) {
		p, err := m.run(s)
		if err != nil {
			return StatePair[S, B]{}, err
		}
		return StatePair[S, B]{State: p.State, Value: f(p.Value)}, nil
	}}
}

// ChainStateIO sequences two steps, threading the state produced by the
// first into the second. f is never invoked when m faults.
func ChainStateIO[S, A, B any](m StateIO[S, A], f func(A) StateIO[S, B]) StateIO[S, B] {
	return StateIO[S, B]{run: func(s S) (StatePair[S, B], error) {
		p, err := m.run(s)
		if err != nil {
			return StatePair[S, B]{}, err
		}
		return f(p.Value).run(p.State)
	}}
}

// ThenStateIO sequences without data flow, discarding m's value but
// keeping its state transition.
func ThenStateIO[S, A, B any](m StateIO[S, A], next func() StateIO[S, B]) StateIO[S, B] {
	return ChainStateIO(m, func(A) StateIO[S, B] { return next() })
}

// RunStateIO evaluates the computation from the initial state and returns
// both the final state and the produced value.
func RunStateIO[S, A any](m StateIO[S, A], initial S) (StatePair[S, A], error) {
	return TryOf(func() (StatePair[S, A], error) { return m.run(initial) }).Get()
}

// EvalStateIO evaluates the computation and returns only the value.
func EvalStateIO[S, A any](m StateIO[S, A], initial S) (A, error) {
	p, err := RunStateIO(m, initial)
	return p.Value, err
}

// ExecStateIO evaluates the computation and returns only the final state.
func ExecStateIO[S, A any](m StateIO[S, A], initial S) (S, error) {
	p, err := RunStateIO(m, initial)
	return p.State, err
}

// ToIOStateIO binds the initial state and returns the raw deferred effect.
// Escape hatch.
func ToIOStateIO[S, A any](m StateIO[S, A], initial S) IO[StatePair[S, A]] {
	return Defer(func() (StatePair[S, A], error) { return m.run(initial) })
}
