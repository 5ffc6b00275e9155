// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-air/simcec/gen"
	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/logic/aiger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeCircuit(t *testing.T, dir, name string, c *logic.C) string {
	t.Helper()
	p := filepath.Join(dir, name)
	var buf bytes.Buffer
	a := aiger.MakeFor(c)
	if strings.Contains(name, ".aig") {
		require.NoError(t, a.WriteBinary(&buf))
	} else {
		require.NoError(t, a.WriteAscii(&buf))
	}
	data := buf.Bytes()
	if strings.HasSuffix(name, ".gz") {
		var zb bytes.Buffer
		zw := gzip.NewWriter(&zb)
		_, err := zw.Write(data)
		require.NoError(t, err)
		require.NoError(t, zw.Close())
		data = zb.Bytes()
	}
	require.NoError(t, os.WriteFile(p, data, 0644))
	return p
}

func TestDecodeConfig(t *testing.T) {
	c := defaultConfig()
	require.NoError(t, decodeConfig([]byte("log-level: debug\nnode-overhead: 64\njobs: 3\n"), c))
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, uint64(64), c.NodeOverhead)
	assert.Equal(t, 3, c.Jobs)

	assert.Error(t, decodeConfig([]byte("bogus: 1\n"), defaultConfig()))
	assert.Error(t, decodeConfig([]byte("jobs: [1\n"), defaultConfig()))
}

func TestLoadConfigOverride(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "simcec.yaml")
	require.NoError(t, os.WriteFile(p, []byte("log-level: warn\nnode-overhead: 64\n"), 0644))

	root := newRootCmd()
	root.SetArgs([]string{"--config", p, "--node-overhead", "128", "gen", "parity", "--out", filepath.Join(dir, "p.aag")})
	require.NoError(t, root.Execute())
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, uint64(128), cfg.NodeOverhead)
	assert.Equal(t, 1, cfg.Jobs)

	root = newRootCmd()
	root.SetArgs([]string{"--log-level", "loud", "gen", "parity", "--out", filepath.Join(dir, "p.aag")})
	assert.Error(t, root.Execute())
}

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()
	a := writeCircuit(t, dir, "a.aag", gen.Adder(4, false))
	b := writeCircuit(t, dir, "b.aig.gz", gen.Adder(4, true))
	d := writeCircuit(t, dir, "d.aig", gen.Flip(gen.Adder(4, true), 4, 0x93))

	out, err := execute(t, "check", "--stats", a, b)
	require.NoError(t, err)
	assert.Equal(t, "equivalent\nsplit_var 8\nrounds 1\nrounds_run 1\n", out)

	out, err = execute(t, "check", "--exit-code", a, b)
	assert.Equal(t, exitCode(20), errors.Cause(err))
	assert.Equal(t, "equivalent\n", out)

	out, err = execute(t, "check", "--exit-code", a, d)
	assert.Equal(t, exitCode(10), errors.Cause(err))
	assert.Equal(t, "not equivalent\n", out)

	out, err = execute(t, "check", a, d)
	require.NoError(t, err)
	assert.Equal(t, "not equivalent\n", out)

	// interface mismatch
	p := writeCircuit(t, dir, "p.aag", gen.ParityChain(3))
	out, err = execute(t, "check", "--exit-code", a, p)
	require.NoError(t, err)
	assert.Equal(t, "unknown\n", out)

	_, err = execute(t, "check", a, filepath.Join(dir, "missing.aag"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.aag"), []byte("aag 1 0 1 0 0\n2 3\n"), 0644))
	_, err = execute(t, "check", a, filepath.Join(dir, "bad.aag"))
	assert.Equal(t, aiger.ErrSequential, errors.Cause(err))
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeCircuit(t, dir, "a.aag", gen.Multiplier(3, false))
	writeCircuit(t, dir, "b.aig", gen.Multiplier(3, true))
	writeCircuit(t, dir, "c.aag", gen.Flip(gen.Multiplier(3, true), 2, 0x15))
	writeCircuit(t, dir, "p.aag", gen.ParityChain(9))
	writeCircuit(t, dir, "q.aag", gen.ParityTree(9))
	mf := filepath.Join(dir, "pairs.yaml")
	require.NoError(t, os.WriteFile(mf, []byte(`pairs:
  - name: mul
    a: a.aag
    b: b.aig
  - name: mulbug
    a: a.aag
    b: c.aag
  - a: p.aag
    b: q.aag
`), 0644))

	out, err := execute(t, "batch", "--jobs", "3", mf)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "mul\tequivalent\t"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "mulbug\tnot equivalent\t"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "pair2\tequivalent\t"), lines[2])
	assert.Contains(t, lines[2], "split_var=9 rounds=1 rounds_run=1")
}

func TestBatchErrors(t *testing.T) {
	dir := t.TempDir()
	writeCircuit(t, dir, "a.aag", gen.ParityChain(4))
	var out bytes.Buffer
	err := runBatch(&out, []pair{
		{Name: "ok", A: filepath.Join(dir, "a.aag"), B: filepath.Join(dir, "a.aag")},
		{Name: "gone", A: filepath.Join(dir, "a.aag"), B: filepath.Join(dir, "nope.aag")}}, 1)
	require.Error(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ok\tequivalent"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "gone\terror: "), lines[1])

	mf := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(mf, []byte("pairs:\n  - a: a.aag\n"), 0644))
	_, err = readManifest(mf)
	assert.Error(t, err)
}

func TestGenCmd(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "tree.aig")
	_, err := execute(t, "gen", "parity", "-n", "5", "--alt", "--binary", "--out", p)
	require.NoError(t, err)
	a, err := readAiger(p)
	require.NoError(t, err)
	assert.Equal(t, 5, a.NumIns())
	assert.Equal(t, 1, a.NumOuts())

	q := filepath.Join(dir, "rand.aag")
	_, err = execute(t, "gen", "rand", "-n", "6", "--gates", "50", "--outs", "3", "--seed", "4", "--out", q)
	require.NoError(t, err)
	r, err := readAiger(q)
	require.NoError(t, err)
	assert.Equal(t, 6, r.NumIns())
	assert.Equal(t, 3, r.NumOuts())

	_, err = execute(t, "gen", "adder", "-n", "2", "--flip", "3", "--out", q)
	require.Error(t, err)
}
