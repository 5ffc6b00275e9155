// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import (
	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/tt"
)

// Patterns assigns truth tables to the inputs of a circuit for one
// round.  Input i < split gets the table of split variable i; every other
// input is held constant for the round, at bit (i - split) of the round
// index.  Across rounds 0..2^(nIns-split)-1 the constant inputs take each
// combination of values exactly once.
//
// Patterns implements logic.Evaluator[tt.T].
type Patterns struct {
	nIns  int
	split int
	round uint64
}

var _ logic.Evaluator[tt.T] = (*Patterns)(nil)

// NewPatterns returns the patterns of round for a circuit with nIns inputs
// of which the first split are simulated as variables.
func NewPatterns(nIns, split int, round uint64) *Patterns {
	return &Patterns{nIns: nIns, split: split, round: round}
}

// Const returns the constant table v over the split variables.
func (p *Patterns) Const(v bool) tt.T {
	return tt.Const(p.split, v)
}

// In returns the table of input i.
func (p *Patterns) In(i int) tt.T {
	if i < p.split {
		return tt.NthVar(p.split, i)
	}
	return p.Const(p.Fixed(i))
}

// Not returns the complement of t.
func (p *Patterns) Not(t tt.T) tt.T {
	return t.Not()
}

// Fixed returns the value of round input i >= split in this round.
func (p *Patterns) Fixed(i int) bool {
	return (p.round>>uint(i-p.split))&1 != 0
}

// Assignment returns the values of the round inputs packed in an
// integer, bit j holding input split+j.
func (p *Patterns) Assignment() uint64 {
	var a uint64
	for i := p.split; i < p.nIns; i++ {
		if p.Fixed(i) {
			a |= 1 << uint(i-p.split)
		}
	}
	return a
}
