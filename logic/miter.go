// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package logic

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/go-air/simcec/z"
)

// Errors returned by Miter.
var (
	ErrInputMismatch  = errors.New("circuits have different numbers of inputs")
	ErrOutputMismatch = errors.New("circuits have different numbers of outputs")
)

// Miter creates a circuit whose inputs are shared by copies of a and b
// and whose i'th output is the exclusive or of the i'th outputs of a and b.
//
// Hence a and b are equivalent if and only if every output of the miter
// is constant false.  Parts of a and b which are structurally identical
// are merged by structural hashing, so identical outputs give F outputs.
//
// Miter returns ErrInputMismatch or ErrOutputMismatch if a and b do not
// have the same interface.
func Miter(a, b *C) (*C, error) {
	if a.NumIns() != b.NumIns() {
		return nil, ErrInputMismatch
	}
	if a.NumOuts() != b.NumOuts() {
		return nil, ErrOutputMismatch
	}
	m := NewCCap(a.Len() + b.Len() + 3*a.NumOuts())
	ins := make([]z.Lit, a.NumIns())
	for i := range ins {
		ins[i] = m.NewIn()
	}
	oa := m.embed(a, ins)
	ob := m.embed(b, ins)
	for _, p := range lo.Zip2(oa, ob) {
		m.AddOutput(m.Xor(p.A, p.B))
	}
	return m, nil
}
