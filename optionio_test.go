// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
)

func TestOptionIOAbsenceShortCircuits(t *testing.T) {
	invoked := false
	m := eff.ChainOptionIO(eff.OptionIONone[int](), func(int) eff.OptionIO[int] {
		invoked = true
		return eff.OptionIOOf(1)
	})
	o, err := m.Run()
	require.NoError(t, err)
	assert.False(t, invoked)
	assert.True(t, o.IsNone())
}

func TestOptionIOFromCommaOk(t *testing.T) {
	cache := map[string]int{"hit": 1}
	lookup := func(key string) eff.OptionIO[int] {
		return eff.OptionIOFrom(func() (int, bool) {
			v, ok := cache[key]
			return v, ok
		})
	}

	o, err := lookup("hit").Run()
	require.NoError(t, err)
	assert.Equal(t, 1, o.MustGet())

	o, err = lookup("miss").Run()
	require.NoError(t, err)
	assert.True(t, o.IsNone())
}

func TestOptionIOOrElseFallbackChainIsLazy(t *testing.T) {
	attempts := make([]string, 0, 3)
	attempt := func(name string, v eff.Option[int]) func() eff.OptionIO[int] {
		return func() eff.OptionIO[int] {
			return eff.OptionIOFromIO(eff.DeferValue(func() eff.Option[int] {
				attempts = append(attempts, name)
				return v
			}))
		}
	}

	chain := attempt("cache", eff.None[int]())().
		OrElse(attempt("db", eff.Some(42))).
		OrElse(attempt("remote", eff.Some(-1)))

	o, err := chain.Run()
	require.NoError(t, err)
	assert.Equal(t, 42, o.MustGet())
	assert.Equal(t, []string{"cache", "db"}, attempts,
		"later fallbacks must not be evaluated once one succeeds")
}

func TestOptionIOMapThen(t *testing.T) {
	m := eff.MapOptionIO(eff.OptionIOOf(21), func(x int) int { return x * 2 })
	o, err := m.Run()
	require.NoError(t, err)
	assert.Equal(t, 42, o.MustGet())

	then := eff.ThenOptionIO(eff.OptionIOOf(1), func() eff.OptionIO[string] {
		return eff.OptionIOOf("next")
	})
	s, err := then.Run()
	require.NoError(t, err)
	assert.Equal(t, "next", s.MustGet())
}

func TestOptionIOCombine(t *testing.T) {
	got, err := eff.CombineOptionIO2(
		eff.OptionIOOf(2), eff.OptionIOOf(3),
		func(a, b int) int { return a * b }).Run()
	require.NoError(t, err)
	assert.Equal(t, 6, got.MustGet())

	absent, err := eff.CombineOptionIO2(
		eff.OptionIOOf(2), eff.OptionIONone[int](),
		func(a, b int) int { return a * b }).Run()
	require.NoError(t, err)
	assert.True(t, absent.IsNone())
}
