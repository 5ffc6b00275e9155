// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package cec

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/tt"
)

// MaxIns is the largest number of inputs Check accepts.
const MaxIns = 40

// Result is the verdict of a check.
//
// The values follow the solver convention for the miter: 1 if some
// assignment distinguishes the circuits, -1 if none does, 0 if undetermined.
type Result int

const (
	Equivalent    Result = -1
	Unknown       Result = 0
	NotEquivalent Result = 1
)

func (r Result) String() string {
	switch r {
	case Equivalent:
		return "equivalent"
	case NotEquivalent:
		return "not equivalent"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Stats records the plan of a check and how much of it ran.
type Stats struct {
	SplitVars int
	Rounds    uint64
	RoundsRun uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("split_var=%d rounds=%d rounds_run=%d", s.SplitVars, s.Rounds, s.RoundsRun)
}

// Options configures a Checker.
type Options struct {
	// NodeOverhead is the per node bookkeeping, in bytes, assumed by
	// the round planner.  Zero means DefaultNodeOverhead.
	NodeOverhead uint64 `mapstructure:"node-overhead" yaml:"node-overhead"`

	// Log receives debug messages.  Nil means no logging.
	Log logrus.FieldLogger `mapstructure:"-" yaml:"-"`

	// OnRound, if not nil, is called with the index of each round
	// before it is simulated.
	OnRound func(round uint64) `mapstructure:"-" yaml:"-"`
}

// DefaultOptions returns the options used by Check.
func DefaultOptions() Options {
	return Options{NodeOverhead: DefaultNodeOverhead}
}

// Checker checks circuits for equivalence.  A Checker is not modified
// by Check and may be shared.
type Checker struct {
	opts Options
}

// New creates a Checker with options opts.
func New(opts Options) *Checker {
	if opts.NodeOverhead == 0 {
		opts.NodeOverhead = DefaultNodeOverhead
	}
	return &Checker{opts: opts}
}

// Check checks a and b for equivalence with DefaultOptions.
func Check(a, b *logic.C, st *Stats) Result {
	return New(DefaultOptions()).Check(a, b, st)
}

// replaced in tests
var miter = logic.Miter

var silent = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel}

// Check returns whether a and b compute the same functions: Equivalent,
// NotEquivalent, or Unknown if a has more than MaxIns inputs or the miter
// of a and b cannot be built.
//
// If st is not nil and the check reaches simulation, st receives the plan
// and the number of rounds simulated.  Otherwise st is left as is.
//
// Rounds run in order, and the first round in which some output of the
// miter is not constant false ends the check.
func (c *Checker) Check(a, b *logic.C, st *Stats) Result {
	log := c.logger()
	if a.NumIns() > MaxIns {
		log.WithField("ins", a.NumIns()).Debug("too many inputs")
		return Unknown
	}
	m, err := miter(a, b)
	if err != nil {
		log.WithError(err).Debug("no miter")
		return Unknown
	}
	p := NewPlan(m.NumIns(), m.Size(), c.opts.NodeOverhead)
	log.WithFields(logrus.Fields{
		"ins":       m.NumIns(),
		"size":      m.Size(),
		"split_var": p.SplitVars,
		"rounds":    p.Rounds}).Debug("planned")

	run, res := c.simulate(m, p)
	if st != nil {
		*st = Stats{SplitVars: p.SplitVars, Rounds: p.Rounds, RoundsRun: run}
	}
	log.WithFields(logrus.Fields{
		"result":     res,
		"rounds_run": run}).Debug("checked")
	return res
}

// simulate runs the rounds of p on the miter m and returns the number
// of rounds run and the verdict.
func (c *Checker) simulate(m *logic.C, p Plan) (uint64, Result) {
	n := m.NumIns()
	for r := uint64(0); r < p.Rounds; r++ {
		if c.opts.OnRound != nil {
			c.opts.OnRound(r)
		}
		outs := logic.Simulate[tt.T](m, p.Patterns(n, r))
		if !lo.EveryBy(outs, tt.T.IsConst0) {
			c.logger().WithField("round", r).Debug("outputs differ")
			return r + 1, NotEquivalent
		}
	}
	return p.Rounds, Equivalent
}

func (c *Checker) logger() logrus.FieldLogger {
	if c.opts.Log == nil {
		return silent
	}
	return c.opts.Log
}
