// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNthVar(t *testing.T) {
	for nv := 1; nv <= 9; nv++ {
		for i := 0; i < nv; i++ {
			v := NthVar(nv, i)
			require.Equal(t, uint(1)<<uint(nv), v.Len())
			for k := uint(0); k < v.Len(); k++ {
				assert.Equal(t, k&(1<<uint(i)) != 0, v.Bit(k), "var %d of %d at %d", i, nv, k)
			}
			assert.Equal(t, v.Len()/2, v.Count())
		}
	}
}

func TestNthVarPanics(t *testing.T) {
	assert.Panics(t, func() { NthVar(3, 3) })
	assert.Panics(t, func() { NthVar(3, -1) })
	assert.Panics(t, func() { New(MaxVars + 1) })
}

func TestConst(t *testing.T) {
	for nv := 0; nv <= 8; nv++ {
		f := New(nv)
		assert.True(t, f.IsConst0())
		assert.True(t, Const(nv, false).Equal(f))
		tr := Const(nv, true)
		assert.False(t, tr.IsConst0())
		assert.Equal(t, tr.Len(), tr.Count(), "complement only sets bits within length")
		assert.True(t, tr.Not().IsConst0())
	}
}

func TestOps(t *testing.T) {
	for _, nv := range []int{2, 5, 6, 7, 8} {
		a, b := NthVar(nv, 0), NthVar(nv, nv-1)
		and, or, xor := a.And(b), a.Or(b), a.Xor(b)
		for k := uint(0); k < a.Len(); k++ {
			va, vb := a.Bit(k), b.Bit(k)
			assert.Equal(t, va && vb, and.Bit(k))
			assert.Equal(t, va || vb, or.Bit(k))
			assert.Equal(t, va != vb, xor.Bit(k))
		}
		assert.True(t, a.Xor(a).IsConst0())
		assert.True(t, a.And(a.Not()).IsConst0())
		assert.True(t, a.Or(a.Not()).Equal(Const(nv, true)))
	}
}

func TestValueSemantics(t *testing.T) {
	a := NthVar(7, 3)
	before := a.String()
	_ = a.Not()
	_ = a.And(NthVar(7, 6))
	_ = a.Xor(NthVar(7, 0))
	assert.Equal(t, before, a.String())
}

func TestMixedPanics(t *testing.T) {
	assert.Panics(t, func() { NthVar(3, 0).And(NthVar(4, 0)) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "a", NthVar(2, 0).String())
	assert.Equal(t, "c", NthVar(2, 1).String())
	assert.Equal(t, "8", NthVar(2, 0).And(NthVar(2, 1)).String())
	assert.Equal(t, "f0", NthVar(3, 2).String())
	assert.Equal(t, "0", New(0).String())
	assert.Equal(t, "1", Const(0, true).String())
}
