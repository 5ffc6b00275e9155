// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z provides the variable and literal encoding shared by the
// circuit, simulation and file format packages.
//
// A literal packs a variable and a sign into one uint32: the variable
// occupies the high bits, the low bit is set for negative literals.  Hence
// negation is a single xor and the zero literal, LitNull, is never the
// literal of a valid variable.
package z
