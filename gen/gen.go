// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

import (
	"math/rand"
	"sync"

	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/z"
)

// make the rng seedable
var rng = rand.New(rand.NewSource(33))
var mu sync.Mutex

func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

// Ins adds n new inputs to c and returns them.
func Ins(c *logic.C, n int) []z.Lit {
	ms := make([]z.Lit, n)
	for i := range ms {
		ms[i] = c.NewIn()
	}
	return ms
}

// RandC generates a random circuit with nIns inputs, nOuts outputs and
// at most nGates gates.  Gates draw their fan-ins from the inputs and
// earlier gates, outputs are drawn from the later half of the gates.
func RandC(nIns, nGates, nOuts int) *logic.C {
	mu.Lock() // for package rng
	defer mu.Unlock()
	c := logic.NewCCap(nIns + nGates + 2)
	ms := append([]z.Lit{c.T}, Ins(c, nIns)...)
	sign := func(m z.Lit) z.Lit {
		if rng.Intn(2) == 1 {
			return m.Not()
		}
		return m
	}
	for i := 0; i < nGates; i++ {
		a := sign(ms[rng.Intn(len(ms))])
		b := sign(ms[rng.Intn(len(ms))])
		ms = append(ms, c.And(a, b))
	}
	for i := 0; i < nOuts; i++ {
		j := len(ms) - 1 - rng.Intn(len(ms)/2+1)
		c.AddOutput(sign(ms[j]))
	}
	return c
}

// RippleAdder adds to c a ripple carry adder of xs and ys, which
// must have the same length, with carry in ci.  It returns the sum
// bits, least significant first, and the carry out.
//
// Full adders use sum = (x xor y) xor c and carry = xy + c(x xor y).
func RippleAdder(c *logic.C, xs, ys []z.Lit, ci z.Lit) ([]z.Lit, z.Lit) {
	sum := make([]z.Lit, len(xs))
	for i := range xs {
		h := c.Xor(xs[i], ys[i])
		sum[i] = c.Xor(h, ci)
		ci = c.Or(c.And(xs[i], ys[i]), c.And(ci, h))
	}
	return sum, ci
}

// MajorityAdder is like RippleAdder but with full adders
// sum = x xor (y xor c) and carry = xy + xc + yc.
func MajorityAdder(c *logic.C, xs, ys []z.Lit, ci z.Lit) ([]z.Lit, z.Lit) {
	sum := make([]z.Lit, len(xs))
	for i := range xs {
		x, y := xs[i], ys[i]
		sum[i] = c.Xor(x, c.Xor(y, ci))
		ci = c.Ors(c.And(x, y), c.And(x, ci), c.And(y, ci))
	}
	return sum, ci
}

// Adder generates a circuit with 2n inputs, x then y, and n+1 outputs,
// the sum then the carry out.  If majority is set, it uses MajorityAdder,
// otherwise RippleAdder.
func Adder(n int, majority bool) *logic.C {
	c := logic.NewCCap(16 * (n + 1))
	xs, ys := Ins(c, n), Ins(c, n)
	var sum []z.Lit
	var co z.Lit
	if majority {
		sum, co = MajorityAdder(c, xs, ys, c.F)
	} else {
		sum, co = RippleAdder(c, xs, ys, c.F)
	}
	for _, m := range sum {
		c.AddOutput(m)
	}
	c.AddOutput(co)
	return c
}

// Multiplier generates an array multiplier with 2n inputs, x then y, and
// 2n outputs.  If swap is set, the partial products are formed as y*x,
// which yields a structurally different but equivalent circuit.
func Multiplier(n int, swap bool) *logic.C {
	c := logic.NewCCap(64 * (n + 1) * (n + 1))
	xs, ys := Ins(c, n), Ins(c, n)
	if swap {
		xs, ys = ys, xs
	}
	acc := make([]z.Lit, 2*n)
	for i := range acc {
		acc[i] = c.F
	}
	for i, y := range ys {
		pp := make([]z.Lit, n)
		for j, x := range xs {
			pp[j] = c.And(x, y)
		}
		sum, co := RippleAdder(c, acc[i:i+n], pp, c.F)
		copy(acc[i:], sum)
		acc[i+n] = co
	}
	for _, m := range acc {
		c.AddOutput(m)
	}
	return c
}

// ParityChain generates a circuit computing the parity of n inputs
// by a linear chain of exclusive ors.
func ParityChain(n int) *logic.C {
	c := logic.NewCCap(4*n + 2)
	p := c.F
	for _, m := range Ins(c, n) {
		p = c.Xor(p, m)
	}
	c.AddOutput(p)
	return c
}

// ParityTree generates a circuit computing the parity of n inputs
// by a balanced tree of exclusive ors.
func ParityTree(n int) *logic.C {
	c := logic.NewCCap(4*n + 2)
	ms := Ins(c, n)
	if len(ms) == 0 {
		c.AddOutput(c.F)
		return c
	}
	for len(ms) > 1 {
		var next []z.Lit
		for i := 0; i+1 < len(ms); i += 2 {
			next = append(next, c.Xor(ms[i], ms[i+1]))
		}
		if len(ms)%2 == 1 {
			next = append(next, ms[len(ms)-1])
		}
		ms = next
	}
	c.AddOutput(ms[0])
	return c
}

// Flip returns a copy of c whose output i is true exactly when
// the output i of c is true and the inputs are not all equal to
// pattern (bit j giving input j), or false and they are.
// Hence the copy differs from c under exactly one assignment.
func Flip(c *logic.C, i int, pattern uint64) *logic.C {
	d := c.Copy()
	ins := d.Inputs()
	eq := d.T
	for j, m := range ins {
		if j < 64 && (pattern>>uint(j))&1 != 0 {
			eq = d.And(eq, m)
		} else {
			eq = d.And(eq, m.Not())
		}
	}
	d.SetOutput(i, d.Xor(d.Outputs()[i], eq))
	return d
}
