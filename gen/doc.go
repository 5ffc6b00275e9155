// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen contains generators for common
// kinds of circuits.
//
// Several generators come in pairs which compute the same functions
// with different structure, such as the adders and the parity chains and
// trees.  Such pairs are useful for exercising equivalence checks, and
// Flip turns either side into an inequivalent one.
package gen
