// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import "context"

// Scoped bindings: stack-discipline key-value associations visible for the
// dynamic extent of a bound context and inherited, copy-on-fork, by every
// task forked within that extent — however deeply nested.
//
// A binding is read-only once made; a nested Bind shadows the key for its
// own extent without affecting the enclosing view. Reading an unbound key
// is a programming error (panic), distinct from a key bound to a zero
// value.

// Key is a typed slot for a scoped binding. Create with NewKey; the Key
// identity (not the name) is what binds and looks up values.
type Key[V any] struct {
	name string
}

// NewKey creates a scoped binding key. The name appears in diagnostics
// only.
func NewKey[V any](name string) *Key[V] {
	return &Key[V]{name: name}
}

// Name returns the diagnostic name of the key.
func (k *Key[V]) Name() string { return k.name }

// Bind associates v with k for the dynamic extent of the returned context.
// Tasks forked from a scope created over the returned context inherit the
// binding transitively.
func Bind[V any](ctx context.Context, k *Key[V], v V) context.Context {
	return context.WithValue(ctx, k, v)
}

// Get returns the value bound to k.
// Panics when k is unbound in ctx — unlike a zero-value binding, an
// unbound key is a programming error.
func (k *Key[V]) Get(ctx context.Context) V {
	v, ok := k.Lookup(ctx)
	if !ok {
		panic("scope: key " + k.name + " unbound")
	}
	return v
}

// Lookup returns the value bound to k and whether it was bound.
func (k *Key[V]) Lookup(ctx context.Context) (V, bool) {
	v, ok := ctx.Value(k).(V)
	return v, ok
}
