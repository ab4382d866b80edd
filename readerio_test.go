// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
	"code.hybscloud.com/eff/scope"
)

type config struct {
	host    string
	timeout int
}

func TestReaderIOEnvironmentSuppliedOnce(t *testing.T) {
	m := eff.ChainReaderIO(
		eff.AsksReaderIO(func(c config) string { return c.host }),
		func(host string) eff.ReaderIO[config, string] {
			return eff.AsksReaderIO(func(c config) string {
				return host + ":" + itoa(c.timeout)
			})
		})

	got, err := eff.RunReaderIO(m, config{host: "db.internal", timeout: 30})
	require.NoError(t, err)
	assert.Equal(t, "db.internal:30", got)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

func TestReaderIOLocalIsScopedToSubComputation(t *testing.T) {
	ask := eff.AskReaderIO[config]()
	double := eff.LocalReaderIO(
		eff.AsksReaderIO(func(c config) int { return c.timeout }),
		func(c config) config {
			c.timeout *= 2
			return c
		})

	// The sibling chained after Local sees the original environment.
	m := eff.ChainReaderIO(double, func(doubled int) eff.ReaderIO[config, [2]int] {
		return eff.MapReaderIO(ask, func(c config) [2]int {
			return [2]int{doubled, c.timeout}
		})
	})

	got, err := eff.RunReaderIO(m, config{timeout: 15})
	require.NoError(t, err)
	assert.Equal(t, [2]int{30, 15}, got)
}

func TestReaderIOFailShortCircuits(t *testing.T) {
	m := eff.ChainReaderIO(
		eff.ReaderIOFail[config, int](assert.AnError),
		func(int) eff.ReaderIO[config, int] {
			t.Fatal("chain invoked after failure")
			return eff.ReaderIOOf[config](0)
		})
	_, err := eff.RunReaderIO(m, config{})
	assert.ErrorIs(t, err, assert.AnError)
}

// The ReaderIO environment travels by value through the composition; a
// task forked inside a step does NOT see it implicitly. Scoped bindings
// are the mechanism that crosses fork boundaries.
func TestReaderIOEnvironmentDoesNotCrossForks(t *testing.T) {
	key := scope.NewKey[string]("request-id")
	ctx := scope.Bind(context.Background(), key, "r-42")

	m := eff.ReaderIOFrom(func(c config) (string, error) {
		s := scope.New(ctx, scope.AllSucceed)
		h := scope.Fork(s, func(taskCtx context.Context) (string, error) {
			// The only way c could appear here is explicit capture;
			// taskCtx carries scoped bindings, never the reader env.
			return key.Get(taskCtx), nil
		})
		if err := s.Join(); err != nil {
			return "", err
		}
		return h.Get()
	})

	got, err := eff.RunReaderIO(m, config{host: "db.internal"})
	require.NoError(t, err)
	assert.Equal(t, "r-42", got, "scoped bindings must be inherited by forked tasks")
}

func TestReaderIOToIOBindsEnvironment(t *testing.T) {
	io := eff.ToIOReaderIO(eff.AsksReaderIO(func(c config) string { return c.host }),
		config{host: "h"})
	v, err := io.RunSafe().Get()
	require.NoError(t, err)
	assert.Equal(t, "h", v)
}
