// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff/scope"
)

func TestBindingVisibleInDynamicExtent(t *testing.T) {
	key := scope.NewKey[string]("tenant")
	ctx := scope.Bind(context.Background(), key, "acme")
	assert.Equal(t, "acme", key.Get(ctx))
}

func TestBindingInheritedTransitivelyByForks(t *testing.T) {
	key := scope.NewKey[string]("request-id")
	ctx := scope.Bind(context.Background(), key, "r-7")

	outer := scope.New(ctx, scope.AllSucceed)
	h := scope.Fork(outer, func(taskCtx context.Context) (string, error) {
		// Nested scope: the binding crosses both fork boundaries.
		inner := scope.New(taskCtx, scope.AllSucceed)
		ih := scope.Fork(inner, func(innerCtx context.Context) (string, error) {
			return key.Get(innerCtx), nil
		})
		if err := inner.Join(); err != nil {
			return "", err
		}
		return ih.Get()
	})
	require.NoError(t, outer.Join())
	v, err := h.Get()
	require.NoError(t, err)
	assert.Equal(t, "r-7", v)
}

func TestBindingShadowingIsScoped(t *testing.T) {
	key := scope.NewKey[int]("depth")
	outer := scope.Bind(context.Background(), key, 1)
	inner := scope.Bind(outer, key, 2)

	assert.Equal(t, 2, key.Get(inner), "nested bind shadows")
	assert.Equal(t, 1, key.Get(outer), "enclosing view is unaffected")
}

func TestUnboundKeyPanics(t *testing.T) {
	key := scope.NewKey[string]("never-bound")
	assert.PanicsWithValue(t, "scope: key never-bound unbound", func() {
		key.Get(context.Background())
	})
}

func TestLookupDistinguishesUnboundFromZero(t *testing.T) {
	key := scope.NewKey[int]("count")

	_, ok := key.Lookup(context.Background())
	assert.False(t, ok, "unbound")

	ctx := scope.Bind(context.Background(), key, 0)
	v, ok := key.Lookup(ctx)
	assert.True(t, ok, "bound to zero is still bound")
	assert.Zero(t, v)
}

func TestKeysWithSameNameAreDistinct(t *testing.T) {
	k1 := scope.NewKey[string]("name")
	k2 := scope.NewKey[string]("name")
	ctx := scope.Bind(context.Background(), k1, "via k1")

	_, ok := k2.Lookup(ctx)
	assert.False(t, ok, "binding follows key identity, not the name")
	assert.Equal(t, "via k1", k1.Get(ctx))
}
