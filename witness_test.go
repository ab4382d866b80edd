// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package eff_test

import (
	"testing"

	"code.hybscloud.com/eff"
)

func TestWidenNarrowRoundTrip(t *testing.T) {
	o := eff.Some(42)
	if eff.NarrowOption(eff.WidenOption(o)) != o {
		t.Fatal("option round trip")
	}

	e := eff.Right[string](7)
	if eff.NarrowEither(eff.WidenEither(e)) != e {
		t.Fatal("either round trip")
	}

	l := eff.LazyOf(3)
	if eff.NarrowLazy(eff.WidenLazy(l)) != l {
		t.Fatal("lazy round trip")
	}
}

// Only wrapper types implement the Kind marker, so a cross-family mix is
// already a compile error; the runtime hazard left for Narrow is a nil
// interface view.
func TestTryNarrow(t *testing.T) {
	k := eff.WidenOption(eff.Some(1))
	if _, ok := eff.TryNarrowOption(k); !ok {
		t.Fatal("TryNarrow rejected its own family")
	}

	var nilKind eff.Kind[eff.OptionKind, int]
	if _, ok := eff.TryNarrowOption(nilKind); ok {
		t.Fatal("TryNarrow accepted a nil view")
	}
}

func TestNarrowNilViewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Narrow on nil view did not panic")
		}
	}()
	var nilKind eff.Kind[eff.TryKind, int]
	eff.NarrowTry(nilKind)
}
