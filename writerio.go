// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff

// WriterIO layers accumulating output (logging, tracing) over a deferred
// effect.
//
// Each step may append entries of type W; Chain concatenates the outputs
// of both steps in order. The log survives a fault: RunWriterIO returns
// whatever was accumulated before the failing step.
type WriterIO[W, A any] struct {
	run func() (A, []W, error)
}

// Listened pairs a sub-computation's value with the output it wrote.
type Listened[W, A any] struct {
	Value  A
	Output []W
}

// WriterIOOf creates a context that succeeds with a fixed value and no
// output.
func WriterIOOf[W, A any](a A) WriterIO[W, A] {
	return WriterIO[W, A]{run: func() (A, []W, error) { return a, nil, nil }}
}

// WriterIOFail creates a context that faults without output.
func WriterIOFail[W, A any](err error) WriterIO[W, A] {
	return WriterIO[W, A]{run: func() (A, []W, error) {
		var zero A
		return zero, nil, err
	}}
}

// TellWriterIO appends one entry to the accumulated output.
func TellWriterIO[W any](w W) WriterIO[W, struct{}] {
	return WriterIO[W, struct{}]{run: func() (struct{}, []W, error) {
		return struct{}{}, []W{w}, nil
	}}
}

// WriterIOFrom captures a fallible thunk that produces no output.
func WriterIOFrom[W, A any](f func() (A, error)) WriterIO[W, A] {
	return WriterIO[W, A]{run: func() (A, []W, error) {
		v, err := f()
		return v, nil, err
	}}
}

// MapWriterIO applies a pure function to the eventual value.
func MapWriterIO[W, A, B any](m WriterIO[W, A], f func(A) B) WriterIO[W, B] {
	return WriterIO[W, B]{run: func() (B, []W, error) {
		v, out, err := m.run()
		if err != nil {
			var zero B
			return zero, out, err
		}
		return f(v), out, nil
	}}
}

// ChainWriterIO sequences two contexts, concatenating their outputs in
// order. f is never invoked when m faults; m's output is kept.
func ChainWriterIO[W, A, B any](m WriterIO[W, A], f func(A) WriterIO[W, B]) WriterIO[W, B] {
	return WriterIO[W, B]{run: func() (B, []W, error) {
		v, out, err := m.run()
		if err != nil {
			var zero B
			return zero, out, err
		}
		w, out2, err := f(v).run()
		return w, append(out, out2...), err
	}}
}

// ThenWriterIO sequences without data flow, discarding m's value but
// keeping its output.
func ThenWriterIO[W, A, B any](m WriterIO[W, A], next func() WriterIO[W, B]) WriterIO[W, B] {
	return ChainWriterIO(m, func(A) WriterIO[W, B] { return next() })
}

// ListenWriterIO exposes m's output alongside its value. The output is
// still accumulated.
func ListenWriterIO[W, A any](m WriterIO[W, A]) WriterIO[W, Listened[W, A]] {
	return WriterIO[W, Listened[W, A]]{run: func() (Listened[W, A], []W, error) {
		v, out, err := m.run()
		if err != nil {
			return Listened[W, A]{}, out, err
		}
		return Listened[W, A]{Value: v, Output: out}, out, nil
	}}
}

// CensorWriterIO runs m and applies f to the output it wrote. Entries
// written outside m are unaffected.
func CensorWriterIO[W, A any](m WriterIO[W, A], f func([]W) []W) WriterIO[W, A] {
	return WriterIO[W, A]{run: func() (A, []W, error) {
		v, out, err := m.run()
		if err != nil {
			return v, out, err
		}
		return v, f(out), nil
	}}
}

// RunWriterIO evaluates the context, returning the value and the
// accumulated output. On a fault the output written before the failing
// step is still returned; panics inside captured thunks surface as faults.
func RunWriterIO[W, A any](m WriterIO[W, A]) (a A, out []W, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverInto(r)
		}
	}()
	return m.run()
}

// ExecWriterIO evaluates the context and returns only the output.
func ExecWriterIO[W, A any](m WriterIO[W, A]) ([]W, error) {
	_, out, err := RunWriterIO(m)
	return out, err
}
