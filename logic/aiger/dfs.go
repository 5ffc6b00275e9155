// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/z"
)

// dfs visits the nodes of a circuit in post order, calling fn
// once per variable with its positive literal.
type dfs struct {
	marks []byte
	c     *logic.C
	fn    func(c *logic.C, m z.Lit)
}

func newDfs(c *logic.C, f func(c *logic.C, m z.Lit)) *dfs {
	return &dfs{marks: make([]byte, c.Len()), c: c, fn: f}
}

func (d *dfs) post(ms ...z.Lit) {
	for _, m := range ms {
		d.vis(m)
	}
}

func (d *dfs) vis(m z.Lit) {
	if d.marks[m.Var()] == 2 {
		return
	}
	if d.marks[m.Var()] == 1 {
		panic("loop")
	}
	d.marks[m.Var()] = 1
	if d.c.Type(m) == logic.TypeAnd {
		c0, c1 := d.c.Ins(m)
		d.vis(c0)
		d.vis(c1)
	}
	d.fn(d.c, m.Var().Pos())
	d.marks[m.Var()] = 2
}
