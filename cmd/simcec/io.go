// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/simcec/logic/aiger"
)

type nopCloser struct{ io.Reader }

func (nopCloser) Close() error { return nil }

func path2Reader(p string) (io.ReadCloser, error) {
	if p == "-" {
		return nopCloser{os.Stdin}, nil
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	if strings.HasSuffix(p, ".gz") {
		r, e := gzip.NewReader(f)
		if e != nil {
			f.Close()
			return nil, e
		}
		return struct {
			io.Reader
			io.Closer
		}{r, f}, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return struct {
			io.Reader
			io.Closer
		}{bzip2.NewReader(f), f}, nil
	}
	return f, nil
}

// readAiger reads the aiger file at p, ascii or binary.
func readAiger(p string) (*aiger.T, error) {
	r, err := path2Reader(p)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", p)
	}
	defer r.Close()
	a, err := aiger.Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", p)
	}
	return a, nil
}

// writeAiger writes a to p, in binary format if binary is set.  The
// path "-" is stdout.
func writeAiger(a *aiger.T, p string, binary bool) error {
	var w io.Writer = os.Stdout
	if p != "-" {
		f, err := os.Create(p)
		if err != nil {
			return errors.Wrapf(err, "create %s", p)
		}
		defer f.Close()
		w = f
	}
	write := a.WriteAscii
	if binary {
		write = a.WriteBinary
	}
	if err := write(w); err != nil {
		return errors.Wrapf(err, "write %s", p)
	}
	return nil
}
