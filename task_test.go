// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/eff"
)

func TestTaskDefersExecution(t *testing.T) {
	evaluated := 0
	task := eff.TaskFrom(func(context.Context) (int, error) {
		evaluated++
		return 42, nil
	})
	task = eff.MapTask(task, func(x int) int { return x + 1 })
	require.Zero(t, evaluated)

	v, err := task.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 43, v)
	assert.Equal(t, 1, evaluated)
}

func TestTaskChainShortCircuits(t *testing.T) {
	cause := errors.New("boom")
	task := eff.ChainTask(eff.TaskFail[int](cause), func(int) eff.Task[int] {
		t.Fatal("chain invoked after failure")
		return eff.TaskOf(0)
	})
	_, err := task.Run(context.Background())
	assert.ErrorIs(t, err, cause)
}

func TestTaskCombineRunsOperandsConcurrently(t *testing.T) {
	// Each operand blocks until the other has started; sequential
	// evaluation would deadlock (bounded by the timeout).
	aStarted := make(chan struct{})
	bStarted := make(chan struct{})

	ta := eff.TaskFrom(func(ctx context.Context) (int, error) {
		close(aStarted)
		select {
		case <-bStarted:
			return 1, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})
	tb := eff.TaskFrom(func(ctx context.Context) (int, error) {
		close(bStarted)
		select {
		case <-aStarted:
			return 2, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	})

	combined := eff.CombineTask2(ta, tb, func(a, b int) int { return a + b })
	v, err := combined.RunTimeout(context.Background(), 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestTaskCombineFailureCancelsSibling(t *testing.T) {
	cause := errors.New("fast failure")
	var siblingCancelled atomic.Bool

	failing := eff.TaskFail[int](cause)
	slow := eff.TaskFrom(func(ctx context.Context) (int, error) {
		select {
		case <-ctx.Done():
			siblingCancelled.Store(true)
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return 1, nil
		}
	})

	_, err := eff.CombineTask2(failing, slow, func(a, b int) int { return a + b }).
		Run(context.Background())
	require.ErrorIs(t, err, cause)
	assert.True(t, siblingCancelled.Load(), "sibling must observe cancellation")
}

func TestTaskCombine3(t *testing.T) {
	v, err := eff.CombineTask3(
		eff.TaskOf(1), eff.TaskOf(2), eff.TaskOf(3),
		func(a, b, c int) int { return a + b + c }).
		Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, v)
}

func TestTaskCombine4(t *testing.T) {
	v, err := eff.CombineTask4(
		eff.TaskOf(1), eff.TaskOf(2), eff.TaskOf(3), eff.TaskOf(4),
		func(a, b, c, d int) int { return a + b + c + d }).
		Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	cause := errors.New("fourth operand down")
	_, err = eff.CombineTask4(
		eff.TaskOf(1), eff.TaskOf(2), eff.TaskOf(3), eff.TaskFail[int](cause),
		func(a, b, c, d int) int { return a + b + c + d }).
		Run(context.Background())
	assert.ErrorIs(t, err, cause)
}

func TestTaskRaceKeepsFirstSuccess(t *testing.T) {
	slow := eff.TaskFrom(func(ctx context.Context) (string, error) {
		select {
		case <-time.After(5 * time.Second):
			return "slow", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	})
	fast := eff.TaskOf("fast")
	failed := eff.TaskFail[string](errors.New("broken replica"))

	v, err := eff.RaceTask(slow, fast, failed).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fast", v)
}

func TestTaskRaceFailsWhenAllFail(t *testing.T) {
	e1, e2 := errors.New("one"), errors.New("two")
	_, err := eff.RaceTask(eff.TaskFail[int](e1), eff.TaskFail[int](e2)).
		Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, e1)
	assert.ErrorIs(t, err, e2)
}

func TestTaskRunTimeout(t *testing.T) {
	stuck := eff.TaskFrom(func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	_, err := stuck.RunTimeout(context.Background(), 20*time.Millisecond)
	assert.ErrorIs(t, err, eff.ErrTaskTimeout)

	quick := eff.TaskOf(7)
	v, err := quick.RunTimeout(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestTaskRunSafeCapturesPanic(t *testing.T) {
	task := eff.TaskFrom(func(context.Context) (int, error) { panic("boom") })
	tr := task.RunSafe(context.Background())
	assert.True(t, tr.IsFailure())
}

func TestTaskEnsureCleanup(t *testing.T) {
	cleanups := 0
	eff.TaskOf(1).EnsureCleanup(func() { cleanups++ }).Run(context.Background())
	eff.TaskFail[int](assert.AnError).EnsureCleanup(func() { cleanups++ }).Run(context.Background())
	assert.Equal(t, 2, cleanups)
}

func TestTaskHandleErrorWith(t *testing.T) {
	task := eff.TaskFail[int](assert.AnError).HandleErrorWith(func(error) eff.Task[int] {
		return eff.TaskOf(9)
	})
	v, err := task.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestTaskFromIO(t *testing.T) {
	v, err := eff.TaskFromIO(eff.IOOf(5)).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
