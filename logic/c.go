// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"github.com/go-air/simcec/z"
)

// Type C represents a combinational circuit with ordered inputs
// and outputs.
type C struct {
	nodes  []node   // list of all nodes
	strash []uint32 // strash
	ins    []z.Lit  // inputs in creation order
	outs   []z.Lit  // outputs in the order added
	F      z.Lit    // false literal
	T      z.Lit
}

type node struct {
	a z.Lit  // input a
	b z.Lit  // input b
	n uint32 // next strash
}

// Type classifies the nodes of a circuit.
type Type uint8

const (
	TypeConst Type = iota
	TypeIn
	TypeAnd
)

// NewC create a new circuit.
func NewC() *C {
	phi := &C{}
	initC(phi, 128)
	return phi
}

// NewCCap creates a new combinational circuit with initial capacity capHint.
func NewCCap(capHint int) *C {
	phi := &C{}
	initC(phi, capHint)
	return phi
}

func initC(c *C, capHint int) {
	if capHint < 2 {
		capHint = 2
	}
	c.nodes = make([]node, 2, capHint)
	c.strash = make([]uint32, capHint)
	c.F = z.Var(1).Neg()
	c.T = c.F.Not()
}

// Len returns the length of C, the number of
// internal nodes used to represent C.
//
// Variable 0 is unused and variable 1 is the constant.  All other
// variables, created by NewIn and And, follow in sequence starting with
// index 2, so that a gate's index exceeds those of its fan-ins.
func (c *C) Len() int {
	return len(c.nodes)
}

// Size returns the number of nodes of c counting the constant,
// the inputs and the and gates.
func (c *C) Size() int {
	return len(c.nodes) - 1
}

// NewIn returns a new input to c.
func (c *C) NewIn() z.Lit {
	_, j := c.newNode()
	m := z.Var(j).Pos()
	c.ins = append(c.ins, m)
	return m
}

// Inputs returns the inputs of c in creation order.  The result
// must not be modified.
func (c *C) Inputs() []z.Lit {
	return c.ins
}

// NumIns returns the number of inputs of c.
func (c *C) NumIns() int {
	return len(c.ins)
}

// AddOutput appends m to the outputs of c and returns its index.
func (c *C) AddOutput(m z.Lit) int {
	c.outs = append(c.outs, m)
	return len(c.outs) - 1
}

// SetOutput replaces the i'th output of c with m.
func (c *C) SetOutput(i int, m z.Lit) {
	c.outs[i] = m
}

// Outputs returns the outputs of c.  The result must not be modified.
func (c *C) Outputs() []z.Lit {
	return c.outs
}

// NumOuts returns the number of outputs of c.
func (c *C) NumOuts() int {
	return len(c.outs)
}

// Type returns the type of the node of m.
func (c *C) Type(m z.Lit) Type {
	v := m.Var()
	if v == c.T.Var() {
		return TypeConst
	}
	if c.nodes[v].a == z.LitNull {
		return TypeIn
	}
	return TypeAnd
}

// Eval evaluates the circuit with values vs, where
// for each literal m in the circuit, vs[i] contains
// the value for m's variable if m.Var() == i.
//
// vs should contain values for all inputs and have
// length at least c.Len().
func (c *C) Eval(vs []bool) {
	vs[c.T.Var()] = true
	for i := range c.nodes {
		n := &c.nodes[i]
		if n.a == z.LitNull {
			continue
		}
		a, b := n.a, n.b
		va, vb := vs[a.Var()], vs[b.Var()]
		if !a.IsPos() {
			va = !va
		}
		if !b.IsPos() {
			vb = !vb
		}
		vs[i] = va && vb
	}
}

// EvalOutputs evaluates c under the input assignment ins, indexed
// like Inputs(), and returns the output values.
func (c *C) EvalOutputs(ins []bool) []bool {
	vs := make([]bool, len(c.nodes))
	for i, m := range c.ins {
		vs[m.Var()] = ins[i]
	}
	c.Eval(vs)
	res := make([]bool, len(c.outs))
	for i, m := range c.outs {
		res[i] = vs[m.Var()] == m.IsPos()
	}
	return res
}

// And returns a literal equivalent to "a and b", which may
// be a new variable.
func (p *C) And(a, b z.Lit) z.Lit {
	if a == b {
		return a
	}
	if a == b.Not() {
		return p.F
	}
	if a > b {
		a, b = b, a
	}
	if a == p.F {
		return p.F
	}
	if a == p.T {
		return b
	}
	c := strashCode(a, b)
	l := uint32(cap(p.nodes))
	i := c % l
	si := p.strash[i]
	for {
		n := &p.nodes[si]
		if n.a == a && n.b == b {
			return z.Var(si).Pos()
		}
		if n.n == 0 {
			break
		}
		si = n.n
	}
	m, j := p.newNode()
	m.a = a
	m.b = b
	k := c % uint32(cap(p.nodes))
	m.n = p.strash[k]
	p.strash[k] = j
	return z.Var(j).Pos()
}

// Ands constructs a conjunction of a sequence of literals.
// If ms is empty, then Ands returns p.T.
func (p *C) Ands(ms ...z.Lit) z.Lit {
	a := p.T
	for _, m := range ms {
		a = p.And(a, m)
	}
	return a
}

// Or constructs a literal which is the disjunction of a and b.
func (p *C) Or(a, b z.Lit) z.Lit {
	nor := p.And(a.Not(), b.Not())
	return nor.Not()
}

// Ors constructs a literal which is the disjuntion of the literals in ms.
// If ms is empty, then Ors returns p.F
func (p *C) Ors(ms ...z.Lit) z.Lit {
	d := p.F
	for _, m := range ms {
		d = p.Or(d, m)
	}
	return d
}

// Xor constructs a literal which is equivalent to (a xor b).
func (p *C) Xor(a, b z.Lit) z.Lit {
	return p.Or(p.And(a, b.Not()), p.And(a.Not(), b))
}

// Choice constructs a literal which is equivalent to
//
//	if i then t else e
func (p *C) Choice(i, t, e z.Lit) z.Lit {
	return p.Or(p.And(i, t), p.And(i.Not(), e))
}

// Ins returns the children/ operands of m.
//
//	If m is an input, then, Ins returns z.LitNull, z.LitNull
//	If m is an and, then Ins returns the two conjuncts
func (p *C) Ins(m z.Lit) (z.Lit, z.Lit) {
	v := m.Var()
	n := p.nodes[v]
	return n.a, n.b
}

// Copy returns a copy of c.  Inputs and outputs keep their order.
func (c *C) Copy() *C {
	res := NewCCap(cap(c.nodes))
	ins := make([]z.Lit, len(c.ins))
	for i := range ins {
		ins[i] = res.NewIn()
	}
	for _, m := range res.embed(c, ins) {
		res.AddOutput(m)
	}
	return res
}

// embed rebuilds the gates of src in p with the inputs of src
// replaced by ins, and returns the images of the outputs of src.
func (p *C) embed(src *C, ins []z.Lit) []z.Lit {
	lits := make([]z.Lit, len(src.nodes))
	lits[src.T.Var()] = p.T
	for i, m := range src.ins {
		lits[m.Var()] = ins[i]
	}
	tr := func(m z.Lit) z.Lit {
		r := lits[m.Var()]
		if !m.IsPos() {
			return r.Not()
		}
		return r
	}
	for i := 2; i < len(src.nodes); i++ {
		n := &src.nodes[i]
		if n.a == z.LitNull {
			continue
		}
		lits[i] = p.And(tr(n.a), tr(n.b))
	}
	outs := make([]z.Lit, len(src.outs))
	for i, m := range src.outs {
		outs[i] = tr(m)
	}
	return outs
}

func (p *C) newNode() (*node, uint32) {
	if len(p.nodes) == cap(p.nodes) {
		p.grow()
	}
	id := len(p.nodes)
	p.nodes = p.nodes[:id+1]
	return &p.nodes[id], uint32(id)
}

func (p *C) grow() {
	newCap := cap(p.nodes) * 2
	nodes := make([]node, cap(p.nodes), newCap)
	strash := make([]uint32, newCap)
	copy(nodes, p.nodes)
	ucap := uint32(newCap)
	for i := range nodes {
		n := &nodes[i]
		if n.a == 0 || n.a == p.F || n.a == p.T {
			continue
		}
		c := strashCode(n.a, n.b)
		j := c % ucap
		n.n = strash[j]
		strash[j] = uint32(i)
	}
	p.nodes = nodes
	p.strash = strash
}

func strashCode(a, b z.Lit) uint32 {
	return uint32((a << 13) * b)
}
