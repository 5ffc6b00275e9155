// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package logic provides combinational circuits as structurally hashed
// And-Inverter graphs.
//
// A circuit C has a constant node, inputs and binary and gates. Every
// other Boolean operation is built from and gates and complemented edges,
// which are free: a complemented edge is just the negated z.Lit.  Nodes
// are stored in topological order, so a single pass over the node indices
// visits every gate after its fan-ins.
//
// Besides construction, the package offers evaluation under a single
// assignment (Eval), a generic simulation driver parameterised by an
// Evaluator (Simulate), and the miter of two circuits (Miter), which reduces
// equivalence of two circuits to all outputs of one circuit being constant
// false.
package logic
