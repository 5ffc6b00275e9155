// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import "github.com/go-air/simcec/z"

// Evaluator supplies the values Simulate assigns to the leaves of a
// circuit, and the complement of a value, for some value type T.
type Evaluator[T any] interface {
	// Const returns the value of the constant v.
	Const(v bool) T
	// In returns the value of the i'th input, in the order of C.Inputs().
	In(i int) T
	// Not returns the complement of v.
	Not(v T) T
}

// Ander is a value type closed under conjunction.
type Ander[T any] interface {
	And(o T) T
}

// Simulate computes a value for every node of c in one topological pass
// and returns the values of the outputs of c, in order.
//
// The constant node takes ev.Const(true), the i'th input ev.In(i), and
// each and gate the conjunction of the values of its fan-ins, where
// complemented edges go through ev.Not.  Simulate holds one value per node
// until it returns.
func Simulate[T Ander[T]](c *C, ev Evaluator[T]) []T {
	vals := make([]T, len(c.nodes))
	vals[c.T.Var()] = ev.Const(true)
	for i, m := range c.ins {
		vals[m.Var()] = ev.In(i)
	}
	lit := func(m z.Lit) T {
		v := vals[m.Var()]
		if !m.IsPos() {
			return ev.Not(v)
		}
		return v
	}
	for i := 2; i < len(c.nodes); i++ {
		n := &c.nodes[i]
		if n.a == z.LitNull {
			continue
		}
		vals[i] = lit(n.a).And(lit(n.b))
	}
	res := make([]T, len(c.outs))
	for i, m := range c.outs {
		res[i] = lit(m)
	}
	return res
}

// Word holds 64 values of a node, one per bit, for 64 different
// input assignments.
type Word uint64

// And returns the bitwise conjunction of w and o.
func (w Word) And(o Word) Word {
	return w & o
}

// Words is an Evaluator over Word which assigns Words[i] to the i'th
// input, so that one Simulate pass evaluates 64 assignments in parallel.
type Words []Word

func (ws Words) Const(v bool) Word {
	if v {
		return ^Word(0)
	}
	return 0
}

func (ws Words) In(i int) Word {
	return ws[i]
}

func (ws Words) Not(w Word) Word {
	return ^w
}

// Eval64 is like EvalOutputs but evaluates 64 different input
// assignments in parallel as the bits of ins.
func (c *C) Eval64(ins []Word) []Word {
	return Simulate[Word](c, Words(ins))
}
