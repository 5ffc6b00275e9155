// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/go-air/simcec/cec"
)

// pair names two circuits to check.  Relative paths are relative to
// the manifest.
type pair struct {
	Name string `yaml:"name"`
	A    string `yaml:"a"`
	B    string `yaml:"b"`
}

type manifest struct {
	Pairs []pair `yaml:"pairs"`
}

type pairResult struct {
	pair
	res cec.Result
	st  cec.Stats
	err error
}

func (r pairResult) String() string {
	if r.err != nil {
		return fmt.Sprintf("%s\terror: %s", r.Name, r.err)
	}
	return fmt.Sprintf("%s\t%s\t%s", r.Name, r.res, r.st)
}

func readManifest(p string) (*manifest, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, errors.Wrapf(err, "read manifest %s", p)
	}
	m := &manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "parse manifest %s", p)
	}
	dir := filepath.Dir(p)
	for i := range m.Pairs {
		q := &m.Pairs[i]
		if q.A == "" || q.B == "" {
			return nil, errors.Errorf("%s: pair %d: missing circuit", p, i)
		}
		if q.Name == "" {
			q.Name = fmt.Sprintf("pair%d", i)
		}
		if !filepath.IsAbs(q.A) {
			q.A = filepath.Join(dir, q.A)
		}
		if !filepath.IsAbs(q.B) {
			q.B = filepath.Join(dir, q.B)
		}
	}
	return m, nil
}

func newBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch [flags] manifest.yaml",
		Short: "check the pairs of circuits listed in a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := readManifest(args[0])
			if err != nil {
				return err
			}
			return runBatch(cmd.OutOrStdout(), m.Pairs, cfg.Jobs)
		},
	}
	batchCmd.Flags().Int("jobs", 1, "number of checks to run at once")
	return batchCmd
}

// runBatch checks the pairs with at most jobs checks at a time and writes
// one line per pair, in order.  It returns the first error encountered,
// after all pairs are done.
func runBatch(w io.Writer, pairs []pair, jobs int) error {
	results := make([]pairResult, len(pairs))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i := range pairs {
		g.Go(func() error {
			r := &results[i]
			r.pair = pairs[i]
			a, err := readAiger(r.A)
			if err != nil {
				r.err = err
				return err
			}
			b, err := readAiger(r.B)
			if err != nil {
				r.err = err
				return err
			}
			r.res = cfg.checker(log.WithField("pair", r.Name)).Check(a.Circuit(), b.Circuit(), &r.st)
			log.WithField("pair", r.Name).Infof("%s", r.res)
			return nil
		})
	}
	err := g.Wait()
	lines := lo.Map(results, func(r pairResult, _ int) string { return r.String() })
	if len(lines) > 0 {
		fmt.Fprintln(w, strings.Join(lines, "\n"))
	}
	return err
}
