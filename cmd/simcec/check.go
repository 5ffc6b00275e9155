// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-air/simcec/cec"
)

// exit statuses for --exit-code; 10 means the miter is satisfiable.
var resultExit = map[cec.Result]exitCode{
	cec.Equivalent:    20,
	cec.NotEquivalent: 10,
	cec.Unknown:       0}

func newCheckCmd() *cobra.Command {
	var stats, exit bool
	checkCmd := &cobra.Command{
		Use:   "check [flags] a b",
		Short: "check two aiger circuits for equivalence",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := runCheck(cmd.OutOrStdout(), args[0], args[1], stats)
			if err != nil {
				return err
			}
			if exit && resultExit[res] != 0 {
				return resultExit[res]
			}
			return nil
		},
	}
	checkCmd.Flags().BoolVar(&stats, "stats", false, "print the round plan")
	checkCmd.Flags().BoolVar(&exit, "exit-code", false, "exit 20 if equivalent, 10 if not, 0 if unknown")
	return checkCmd
}

func runCheck(w io.Writer, pa, pb string, stats bool) (cec.Result, error) {
	a, err := readAiger(pa)
	if err != nil {
		return cec.Unknown, err
	}
	b, err := readAiger(pb)
	if err != nil {
		return cec.Unknown, err
	}
	var st cec.Stats
	res := cfg.checker(log.WithField("pair", pa+" "+pb)).Check(a.Circuit(), b.Circuit(), &st)
	fmt.Fprintln(w, res)
	if stats {
		fmt.Fprintf(w, "split_var %d\nrounds %d\nrounds_run %d\n", st.SplitVars, st.Rounds, st.RoundsRun)
	}
	return res, nil
}
