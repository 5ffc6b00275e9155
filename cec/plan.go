// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

const (
	// MemLimit bounds, in bytes, the truth tables held during a round.
	MemLimit = uint64(1) << 29

	// DefaultNodeOverhead is the per node bookkeeping, in bytes, added to
	// the size of a node's truth table when planning rounds.
	DefaultNodeOverhead = uint64(32)

	// wordVars is the number of variables whose tables fit in a uint64.
	wordVars = 6
)

// Plan is the division of the inputs of a circuit into split variables,
// simulated together as truth tables, and round variables, fixed to a
// different constant combination in each of Rounds rounds.
//
// Rounds == 1 << (nIns - SplitVars).
type Plan struct {
	SplitVars int
	Rounds    uint64
}

// NewPlan computes the plan for a circuit with nIns inputs and size nodes,
// each node holding a table over the split variables plus overhead bytes.
//
// Circuits with at most 6 inputs are simulated in one round.  Otherwise,
// SplitVars is the largest m >= 7, m <= nIns, such that
//
//	(overhead + 2^(m-2)) * size <= MemLimit
//
// holds for 7..m.  If already m = 7 exceeds the limit, SplitVars is 6.
func NewPlan(nIns, size int, overhead uint64) Plan {
	split := nIns
	if nIns > wordVars {
		split = wordVars
		for m := wordVars + 1; m <= nIns && fits(m, size, overhead); m++ {
			split = m
		}
	}
	return Plan{
		SplitVars: split,
		Rounds:    uint64(1) << uint(nIns-split)}
}

// Fits returns whether the tables of p for a circuit with size nodes
// respect MemLimit.
func (p Plan) Fits(size int, overhead uint64) bool {
	return fits(p.SplitVars, size, overhead)
}

// Patterns returns the pattern generator of the given round of p for a
// circuit with nIns inputs.
func (p Plan) Patterns(nIns int, round uint64) *Patterns {
	return NewPatterns(nIns, p.SplitVars, round)
}

func fits(m, size int, overhead uint64) bool {
	var tab uint64
	if m >= 2 {
		tab = uint64(1) << uint(m-2)
	}
	if size <= 0 {
		return true
	}
	// x*size <= MemLimit iff x <= MemLimit/size, without overflow.
	return overhead+tab <= MemLimit/uint64(size)
}
