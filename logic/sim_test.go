// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/z"
)

// boolEv evaluates a single assignment and counts calls.
type boolEv struct {
	ins    []bool
	consts int
	nots   int
}

type bval bool

func (v bval) And(o bval) bval { return v && o }

func (e *boolEv) Const(v bool) bval {
	e.consts++
	return bval(v)
}

func (e *boolEv) In(i int) bval { return bval(e.ins[i]) }

func (e *boolEv) Not(v bval) bval {
	e.nots++
	return !v
}

func randCircuit(nIns, nGates, nOuts int) *logic.C {
	c := logic.NewC()
	ms := []z.Lit{c.T}
	for i := 0; i < nIns; i++ {
		ms = append(ms, c.NewIn())
	}
	for i := 0; i < nGates; i++ {
		a := ms[rnd.Intn(len(ms))]
		b := ms[rnd.Intn(len(ms))]
		if rnd.Intn(2) == 1 {
			a = a.Not()
		}
		if rnd.Intn(2) == 1 {
			b = b.Not()
		}
		ms = append(ms, c.And(a, b))
	}
	for i := 0; i < nOuts; i++ {
		m := ms[len(ms)-1-rnd.Intn(len(ms)/2+1)]
		if rnd.Intn(2) == 1 {
			m = m.Not()
		}
		c.AddOutput(m)
	}
	return c
}

func TestSimulateMatchesEval(t *testing.T) {
	for n := 0; n < 20; n++ {
		c := randCircuit(5, 40, 4)
		for k := 0; k < 32; k++ {
			ins := make([]bool, 5)
			for i := range ins {
				ins[i] = k&(1<<uint(i)) != 0
			}
			ev := &boolEv{ins: ins}
			got := logic.Simulate[bval](c, ev)
			want := c.EvalOutputs(ins)
			assert.Len(t, got, len(want))
			for i := range want {
				assert.Equal(t, want[i], bool(got[i]), "circuit %d assignment %d output %d", n, k, i)
			}
			assert.Equal(t, 1, ev.consts, "constant evaluated once per pass")
		}
	}
}

func TestSimulateComplementedOutputs(t *testing.T) {
	c := logic.NewC()
	a := c.NewIn()
	c.AddOutput(a.Not())
	c.AddOutput(c.F)
	c.AddOutput(c.T)
	ev := &boolEv{ins: []bool{true}}
	got := logic.Simulate[bval](c, ev)
	assert.Equal(t, []bval{false, false, true}, got)
	assert.Equal(t, 2, ev.nots)
}

func TestSimulateNoOutputs(t *testing.T) {
	c := logic.NewC()
	c.And(c.NewIn(), c.NewIn())
	got := logic.Simulate[logic.Word](c, logic.Words{1, 2})
	assert.Empty(t, got)
}
