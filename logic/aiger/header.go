// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type aigerHeader struct {
	Binary     bool
	Max        uint
	In         uint
	Latch      uint
	Out        uint
	And        uint
	Bad        uint
	Constraint uint
	Justice    uint
	Fair       uint
}

func (h *aigerHeader) write(w *bufio.Writer) {
	tag := "aag"
	if h.Binary {
		tag = "aig"
	}
	fmt.Fprintf(w, "%s %d %d %d %d %d\n", tag, h.Max, h.In, h.Latch, h.Out, h.And)
}

func readHeader(r *bufio.Reader) (*aigerHeader, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF {
		return nil, ErrPrematureEOF
	}
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) < 6 || len(fields) > 10 {
		return nil, ErrBadHeader
	}
	hdr := &aigerHeader{}
	switch fields[0] {
	case "aag":
	case "aig":
		hdr.Binary = true
	default:
		return nil, ErrBadHeader
	}
	dst := []*uint{&hdr.Max, &hdr.In, &hdr.Latch, &hdr.Out, &hdr.And,
		&hdr.Bad, &hdr.Constraint, &hdr.Justice, &hdr.Fair}
	for i, f := range fields[1:] {
		u, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			return nil, ErrBadUInt
		}
		*dst[i] = uint(u)
	}
	if hdr.Latch != 0 || hdr.Bad != 0 || hdr.Constraint != 0 || hdr.Justice != 0 || hdr.Fair != 0 {
		return nil, ErrSequential
	}
	if hdr.Max < hdr.In+hdr.And {
		return nil, ErrBadHeader
	}
	if hdr.Binary && hdr.Max != hdr.In+hdr.And {
		return nil, ErrBadHeader
	}
	return hdr, nil
}

// readUint reads a decimal unsigned integer, leaving the byte
// following it unread.
func readUint(r *bufio.Reader) (uint, error) {
	var u uint
	n := 0
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			if n == 0 {
				return 0, ErrPrematureEOF
			}
			return u, nil
		}
		if e != nil {
			return 0, e
		}
		if b < '0' || b > '9' {
			r.UnreadByte()
			if n == 0 {
				return 0, ErrBadUInt
			}
			return u, nil
		}
		u = u*10 + uint(b-'0')
		n++
		if n > 10 {
			return 0, ErrBadUInt
		}
	}
}

func readNL(r *bufio.Reader) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return ErrPrematureEOF
	}
	if e != nil {
		return e
	}
	if b != '\n' {
		return ErrUnexpectedChar
	}
	return nil
}

func readSpace(r *bufio.Reader) error {
	b, e := r.ReadByte()
	if e == io.EOF {
		return ErrPrematureEOF
	}
	if e != nil {
		return e
	}
	if b != ' ' {
		return ErrUnexpectedChar
	}
	return nil
}

// read7 reads an unsigned integer in the 7 bits per byte delta
// encoding of binary aiger.
func read7(r *bufio.Reader) (uint, error) {
	var x, shift uint
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			return 0, ErrPrematureEOF
		}
		if e != nil {
			return 0, e
		}
		x |= uint(b&0x7f) << shift
		if b&0x80 == 0 {
			return x, nil
		}
		shift += 7
		if shift > 28 {
			return 0, ErrBadDeltaEncoding
		}
	}
}

func write7(w *bufio.Writer, x uint) {
	for x&^0x7f != 0 {
		w.WriteByte(byte(x&0x7f | 0x80))
		x >>= 7
	}
	w.WriteByte(byte(x))
}
