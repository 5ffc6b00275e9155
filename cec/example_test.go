// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec_test

import (
	"fmt"

	"github.com/go-air/simcec/cec"
	"github.com/go-air/simcec/logic"
)

func ExampleCheck() {
	// (a or b or c) and (a or b or not c) versus (a or b)
	L := logic.NewC()
	a, b, c := L.NewIn(), L.NewIn(), L.NewIn()
	L.AddOutput(L.And(L.Ors(a, b, c), L.Ors(a, b, c.Not())))

	R := logic.NewC()
	a, b, _ = R.NewIn(), R.NewIn(), R.NewIn()
	R.AddOutput(R.Or(a, b))

	var st cec.Stats
	res := cec.Check(L, R, &st)
	fmt.Println(res, st.SplitVars, st.Rounds)
	//Output: equivalent 3 1
}
