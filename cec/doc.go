// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package cec implements combinational equivalence checking of two
// circuits by exhaustive bit-parallel simulation of their miter.
//
// The miter of two circuits has an output for every pair of corresponding
// outputs which is true exactly where the pair disagrees.  Check simulates
// the miter over every input assignment, using truth tables so that one
// simulation pass covers all assignments to a subset of the inputs, the
// split variables.  The remaining inputs are fixed to constants, one
// combination per round, and the number of split variables is chosen so
// that the tables of all nodes of the miter fit in MemLimit bytes.
//
// Check gives up, returning Unknown, on circuits with more than MaxIns
// inputs and on circuits whose interfaces differ.
package cec
