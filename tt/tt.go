// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package tt provides truth tables: the values of a Boolean function
// of nv variables under all 2^nv assignments, packed as bits.
//
// Bit k of a table over nv variables is the value of the function under
// the assignment which gives variable i the value of bit i of k.  Tables
// are values: the operations return new tables and never modify their
// operands.
package tt

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// MaxVars is the largest number of variables of a table.
const MaxVars = 40

// projections[i] is the table of variable i < 6 over 6 variables.
var projections = [6]uint64{
	0xaaaaaaaaaaaaaaaa,
	0xcccccccccccccccc,
	0xf0f0f0f0f0f0f0f0,
	0xff00ff00ff00ff00,
	0xffff0000ffff0000,
	0xffffffff00000000}

// T is a truth table.
type T struct {
	nv   int
	bits *bitset.BitSet
}

// New returns the constant false table over nv variables.
func New(nv int) T {
	checkVars(nv)
	return T{nv: nv, bits: bitset.New(uint(1) << uint(nv))}
}

// Const returns the constant table with value v over nv variables.
func Const(nv int, v bool) T {
	t := New(nv)
	if v {
		return t.Not()
	}
	return t
}

// NthVar returns the table over nv variables which is true exactly
// when variable i is true.
//
// NthVar panics unless 0 <= i < nv.
func NthVar(nv, i int) T {
	checkVars(nv)
	if i < 0 || i >= nv {
		panic(fmt.Sprintf("tt: variable %d out of range for %d variables", i, nv))
	}
	n := uint(1) << uint(nv)
	words := make([]uint64, nWords(n))
	if i < 6 {
		w := projections[i]
		if n < 64 {
			w &= (uint64(1) << n) - 1
		}
		for j := range words {
			words[j] = w
		}
	} else {
		s := uint(i - 6)
		for j := range words {
			if (uint(j)>>s)&1 != 0 {
				words[j] = ^uint64(0)
			}
		}
	}
	return T{nv: nv, bits: bitset.FromWithLength(n, words)}
}

// NumVars returns the number of variables of t.
func (t T) NumVars() int {
	return t.nv
}

// Len returns the number of bits of t, 2^t.NumVars().
func (t T) Len() uint {
	return t.bits.Len()
}

// Bit returns the value of t under assignment k.
func (t T) Bit(k uint) bool {
	return t.bits.Test(k)
}

// Count returns the number of assignments under which t is true.
func (t T) Count() uint {
	return t.bits.Count()
}

// IsConst0 returns whether t is false under every assignment.
func (t T) IsConst0() bool {
	return t.bits.None()
}

// Not returns the complement of t.
func (t T) Not() T {
	return T{nv: t.nv, bits: t.bits.Complement()}
}

// And returns the conjunction of t and u, which must have the same
// number of variables.
func (t T) And(u T) T {
	t.check(u)
	return T{nv: t.nv, bits: t.bits.Intersection(u.bits)}
}

// Or returns the disjunction of t and u.
func (t T) Or(u T) T {
	t.check(u)
	return T{nv: t.nv, bits: t.bits.Union(u.bits)}
}

// Xor returns the exclusive or of t and u.
func (t T) Xor(u T) T {
	t.check(u)
	return T{nv: t.nv, bits: t.bits.SymmetricDifference(u.bits)}
}

// Equal returns whether t and u are the same function over the
// same variables.
func (t T) Equal(u T) bool {
	return t.nv == u.nv && t.bits.Equal(u.bits)
}

// String returns t in hexadecimal, most significant assignment first.
func (t T) String() string {
	n := t.Len()
	digits := (n + 3) / 4
	var sb strings.Builder
	for d := digits; d > 0; d-- {
		var x uint
		for b := uint(0); b < 4; b++ {
			k := (d-1)*4 + b
			if k < n && t.bits.Test(k) {
				x |= 1 << b
			}
		}
		sb.WriteByte("0123456789abcdef"[x])
	}
	return sb.String()
}

func (t T) check(u T) {
	if t.nv != u.nv {
		panic(fmt.Sprintf("tt: mixing tables over %d and %d variables", t.nv, u.nv))
	}
}

func checkVars(nv int) {
	if nv < 0 || nv > MaxVars {
		panic(fmt.Sprintf("tt: invalid number of variables %d", nv))
	}
}

func nWords(n uint) int {
	return int((n + 63) / 64)
}
