// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "testing"

func TestVarEncoding(t *testing.T) {
	// aiger literals 2 and 3 name the constant variable
	if Var(1).Pos() != 2 || Var(1).Neg() != 3 {
		t.Errorf("constant var lits %d %d", Var(1).Pos(), Var(1).Neg())
	}
	for v := Var(1); v < 200; v++ {
		m, n := v.Pos(), v.Neg()
		if m&1 != 0 || n != m|1 {
			t.Errorf("%s: lits %d %d", v, m, n)
		}
		if m.Var() != v || n.Var() != v {
			t.Errorf("%s: var of lits %s %s", v, m.Var(), n.Var())
		}
		if m.Sign() != 1 || n.Sign() != -1 {
			t.Errorf("%s: signs %d %d", v, m.Sign(), n.Sign())
		}
	}
	if Var(7).String() != "v7" {
		t.Errorf("format %s", Var(7))
	}
}
