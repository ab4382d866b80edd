// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/eff"
)

func TestTryOfCapturesReturnedError(t *testing.T) {
	cause := errors.New("io failure")
	tr := eff.TryOf(func() (int, error) { return 0, cause })
	if tr.IsSuccess() {
		t.Fatal("failure reported as success")
	}
	if _, err := tr.Get(); !errors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}
}

func TestTryOfCapturesErrorPanicWithCause(t *testing.T) {
	cause := errors.New("deep failure")
	tr := eff.TryOf(func() (int, error) { panic(cause) })
	_, err := tr.Get()
	if err == nil {
		t.Fatal("panic not captured")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause chain broken: %v", err)
	}
}

func TestTryOfCapturesNonErrorPanic(t *testing.T) {
	tr := eff.Capture(func() int { panic("boom") })
	_, err := tr.Get()
	var pe *eff.PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PanicError, got %v", err)
	}
	if pe.Value != "boom" {
		t.Fatalf("panic value lost: %v", pe.Value)
	}
}

func TestTryFailNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("TryFail(nil) did not panic")
		}
	}()
	eff.TryFail[int](nil)
}

func TestTryMustGetPanicsWithFault(t *testing.T) {
	cause := errors.New("boom")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustGet on failure did not panic")
		}
		if err, ok := r.(error); !ok || !errors.Is(err, cause) {
			t.Fatalf("panic payload is not the fault: %v", r)
		}
	}()
	eff.TryFail[int](cause).MustGet()
}

func TestTryChainShortCircuitsAndCapturesPanics(t *testing.T) {
	cause := errors.New("boom")
	eff.ChainTry(eff.TryFail[int](cause), func(int) eff.Try[int] {
		t.Fatal("Chain invoked f on failure")
		return eff.TrySucceed(0)
	})

	tr := eff.ChainTry(eff.TrySucceed(1), func(int) eff.Try[int] { panic("inside f") })
	if tr.IsSuccess() {
		t.Fatal("panic in f not captured")
	}

	mapped := eff.MapTry(eff.TrySucceed(1), func(int) int { panic("inside map") })
	if mapped.IsSuccess() {
		t.Fatal("panic in map not captured")
	}
}

func TestTryRecover(t *testing.T) {
	cause := errors.New("boom")
	got := eff.RecoverTry(eff.TryFail[int](cause), func(err error) int { return len(err.Error()) })
	if v, err := got.Get(); err != nil || v != 4 {
		t.Fatalf("Recover: (%d, %v)", v, err)
	}

	ok := eff.TrySucceed(7)
	if eff.RecoverTry(ok, func(error) int {
		t.Fatal("Recover invoked on success")
		return 0
	}) != ok {
		t.Fatal("Recover changed a success")
	}

	replaced := eff.MapErrorTry(eff.TryFail[int](cause), func(err error) error {
		return errors.New("wrapped: " + err.Error())
	})
	if _, err := replaced.Get(); err == nil || err.Error() != "wrapped: boom" {
		t.Fatalf("MapError: %v", err)
	}
}

func TestTryCombineLeftmostFaultWins(t *testing.T) {
	e1, e2 := errors.New("first"), errors.New("second")
	got := eff.CombineTry2(eff.TryFail[int](e1), eff.TryFail[int](e2),
		func(a, b int) int { return a + b })
	if _, err := got.Get(); !errors.Is(err, e1) {
		t.Fatalf("leftmost fault: %v", err)
	}
}

func TestTryCombine3And4(t *testing.T) {
	e2 := errors.New("second")
	e3 := errors.New("third")

	v3, err := eff.CombineTry3(
		eff.TrySucceed(1), eff.TrySucceed(2), eff.TrySucceed(3),
		func(a, b, c int) int { return a + b + c }).Get()
	if err != nil || v3 != 6 {
		t.Fatalf("got %d, %v", v3, err)
	}
	if _, err := eff.CombineTry3(
		eff.TrySucceed(1), eff.TryFail[int](e2), eff.TryFail[int](e3),
		func(a, b, c int) int { return 0 }).Get(); !errors.Is(err, e2) {
		t.Fatalf("leftmost fault lost: %v", err)
	}

	v4, err := eff.CombineTry4(
		eff.TrySucceed(1), eff.TrySucceed(2), eff.TrySucceed(3), eff.TrySucceed(4),
		func(a, b, c, d int) int { return a + b + c + d }).Get()
	if err != nil || v4 != 10 {
		t.Fatalf("got %d, %v", v4, err)
	}
	if _, err := eff.CombineTry4(
		eff.TrySucceed(1), eff.TrySucceed(2), eff.TryFail[int](e3), eff.TryFail[int](e2),
		func(a, b, c, d int) int { return 0 }).Get(); !errors.Is(err, e3) {
		t.Fatalf("leftmost fault lost: %v", err)
	}
}

func TestTryFold(t *testing.T) {
	toStr := func(tr eff.Try[int]) string {
		return eff.FoldTry(tr,
			func(error) string { return "fault" },
			func(int) string { return "value" })
	}
	if toStr(eff.TrySucceed(1)) != "value" || toStr(eff.TryFail[int](errors.New("x"))) != "fault" {
		t.Fatal("Fold dispatched incorrectly")
	}
}
