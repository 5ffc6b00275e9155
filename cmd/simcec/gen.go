// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/go-air/simcec/gen"
	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/logic/aiger"
)

type genFlags struct {
	out    string
	binary bool
	n      int
	alt    bool
	flip   int
	flipAt uint64
}

func (g *genFlags) register(fs *pflag.FlagSet, alt string) {
	fs.StringVarP(&g.out, "out", "o", "-", "output file")
	fs.BoolVar(&g.binary, "binary", false, "write binary aiger")
	fs.IntVarP(&g.n, "width", "n", 8, "number of inputs, or bits per operand")
	if alt != "" {
		fs.BoolVar(&g.alt, "alt", false, alt)
	}
	fs.IntVar(&g.flip, "flip", -1, "if not negative, invert this output under the assignment --flip-at")
	fs.Uint64Var(&g.flipAt, "flip-at", 0, "assignment for --flip, bit i giving input i")
}

func (g *genFlags) write(c *logic.C) error {
	if g.flip >= c.NumOuts() {
		return errors.Errorf("cannot flip output %d of %d", g.flip, c.NumOuts())
	}
	if g.flip >= 0 {
		c = gen.Flip(c, g.flip, g.flipAt)
	}
	log.WithField("out", g.out).Debugf("%d inputs %d outputs %d nodes", c.NumIns(), c.NumOuts(), c.Size())
	return writeAiger(aiger.MakeFor(c), g.out, g.binary)
}

func newGenCmd() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "generate circuits",
	}
	genCmd.AddCommand(
		genSub("adder", "n bit adder", "use majority carries",
			func(g *genFlags) *logic.C { return gen.Adder(g.n, g.alt) }),
		genSub("multiplier", "n by n bit multiplier", "swap the operands",
			func(g *genFlags) *logic.C { return gen.Multiplier(g.n, g.alt) }),
		genSub("parity", "parity of n inputs", "use a balanced tree",
			func(g *genFlags) *logic.C {
				if g.alt {
					return gen.ParityTree(g.n)
				}
				return gen.ParityChain(g.n)
			}),
		newGenRandCmd())
	return genCmd
}

func genSub(use, short, alt string, mk func(g *genFlags) *logic.C) *cobra.Command {
	g := &genFlags{}
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.write(mk(g))
		},
	}
	g.register(cmd.Flags(), alt)
	return cmd
}

func newGenRandCmd() *cobra.Command {
	g := &genFlags{}
	var gates, outs int
	var seed int64
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "random circuit with n inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen.Seed(seed)
			return g.write(gen.RandC(g.n, gates, outs))
		},
	}
	g.register(cmd.Flags(), "")
	cmd.Flags().IntVar(&gates, "gates", 100, "number of and gates drawn")
	cmd.Flags().IntVar(&outs, "outs", 4, "number of outputs")
	cmd.Flags().Int64Var(&seed, "seed", 33, "random seed")
	return cmd
}
