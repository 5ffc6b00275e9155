// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "fmt"

// Lit is a literal: a variable or its negation.
type Lit uint32

// LitNull is the zero literal.  It refers to no variable and
// is used as a terminator and "undefined" marker.
const LitNull Lit = 0

// Dimacs returns the signed integer representation of m.
func (m Lit) Dimacs() int {
	v := int(m >> 1)
	if m.IsPos() {
		return v
	}
	return -v
}

// Var returns the variable of m.
func (m Lit) Var() Var {
	return Var(m >> 1)
}

// Not returns the negation of m.
func (m Lit) Not() Lit {
	return m ^ 1
}

// IsPos returns whether m is a positive literal.
func (m Lit) IsPos() bool {
	return m&1 == 0
}

// Sign returns 1 if m is positive and -1 otherwise.
func (m Lit) Sign() int8 {
	if m.IsPos() {
		return 1
	}
	return -1
}

func (m Lit) String() string {
	return fmt.Sprintf("%d", m.Dimacs())
}
