// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command simcec checks combinational circuits in aiger format for
// equivalence by exhaustive simulation.
//
//	simcec check [--stats] [--exit-code] a.aig b.aig
//	simcec batch [--jobs N] pairs.yaml
//	simcec gen adder|multiplier|parity|rand [options] --out file
//
// Inputs may be "-" for stdin and may be compressed with gzip (.gz) or
// bzip2 (.bz2).  Circuits with more than 40 inputs are reported unknown.
//
// With --exit-code, check exits 20 if the circuits are equivalent, 10 if
// they are not, and 0 if the result is unknown.  I/O and format errors
// exit 1.
//
// Global options may also be given in a yaml file with --config:
//
//	log-level: debug
//	node-overhead: 32
//	jobs: 4
//
// Command line flags override the file.
package main
