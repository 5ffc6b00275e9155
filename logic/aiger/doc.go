// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// BUG(wsc): This package does not support adding or retrieving aiger comments
// by an API.

// Package aiger implements aiger format version 1.9 ascii and binary
// readers and writers for combinational circuits.
//
// The aiger objects are backed by circuits as represented in *logic.C.
// Files declaring latches, bad states, constraints, justice or fairness
// properties describe sequential systems and are rejected with
// ErrSequential.
package aiger
