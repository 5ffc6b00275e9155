// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aiger

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/go-air/simcec/logic"
	"github.com/go-air/simcec/z"
)

// Errors related to IO and formatting
var (
	ErrPrematureEOF       = errors.New("premature EOF")
	ErrUnexpectedChar     = errors.New("unexpected char")
	ErrBadHeader          = errors.New("bad header")
	ErrBadUInt            = errors.New("malformed literal")
	ErrBinaryMismatch     = errors.New("binary mismatch")
	ErrLitOOB             = errors.New("literal out of bounds")
	ErrBadDeltaEncoding   = errors.New("bad delta encoding")
	ErrInvalidIndex       = errors.New("invalid index")
	ErrInvalidSymbolType  = errors.New("invalid symbol type")
	ErrInvalidName        = errors.New("invalid symbol name")
	ErrSignedInput        = errors.New("input is negated")
	ErrSignedAnd          = errors.New("and gate def is negated")
	ErrCombLoop           = errors.New("combinational logic has a loop")
	ErrAndMultiplyDefined = errors.New("and gate multiply defined")
	ErrUndefinedLit       = errors.New("literal not defined")
	ErrSequential         = errors.New("sequential aiger (latches or properties) not supported")
)

// T contains the information read from or written to disk in Aiger format
// version 1.9.  Inputs and outputs are those of the backing circuit.
type T struct {
	*logic.C                         // The circuit backing this Aiger object
	symbols  map[byte]map[int]string // symbol table
}

// MakeFor makes an Aiger object from a circuit.  The circuit
// is the backing store for the Aiger object, no copy is made.
func MakeFor(c *logic.C) *T {
	return &T{
		C: c,
		symbols: map[byte]map[int]string{
			'i': make(map[int]string),
			'o': make(map[int]string)}}
}

// Make makes an Aiger object with initial capacity hint c
// for the underlying logic.C object
func Make(c int) *T {
	return MakeFor(logic.NewCCap(c))
}

// Circuit returns the circuit backing a.
func (a *T) Circuit() *logic.C {
	return a.C
}

// NameInput names the index'th input nm.  It returns a non-nil error if
// index is out of bounds or nm contains a new line.
func (a *T) NameInput(index int, nm string) error {
	return a.name('i', index, a.NumIns(), nm)
}

// InputName gives the name of the index'th input.  If no such name
// exists, InputName returns ("", false).
func (a *T) InputName(index int) (string, bool) {
	nm, found := a.symbols['i'][index]
	return nm, found
}

// NameOutput names the index'th output nm.  It returns a non-nil error if
// index is out of bounds or nm contains a new line.
func (a *T) NameOutput(index int, nm string) error {
	return a.name('o', index, a.NumOuts(), nm)
}

// OutputName gives the name of the index'th output.  If no such name
// exists, OutputName returns ("", false).
func (a *T) OutputName(index int) (string, bool) {
	nm, found := a.symbols['o'][index]
	return nm, found
}

func (a *T) name(k byte, index, n int, nm string) error {
	if index < 0 || index >= n {
		return ErrInvalidIndex
	}
	if strings.Contains(nm, "\n") {
		return ErrInvalidName
	}
	a.symbols[k][index] = nm
	return nil
}

// WriteAscii writes an ASCII version of AIGER format
// for the object a to the writer w.  WriteAscii returns
// a non-nil error if there was an io error while writing.
//
// Variables are numbered as in the binary format: inputs first, then
// the and gates reachable from the outputs in topological order.
func (a *T) WriteAscii(w io.Writer) error {
	return a.write(w, false)
}

// WriteBinary writes a in binary AIGER format (version 1.9) to the
// writer w.  WriteBinary returns an error if there was an io error while
// writing.
func (a *T) WriteBinary(w io.Writer) error {
	return a.write(w, true)
}

func (a *T) write(w io.Writer, binary bool) error {
	bw := bufio.NewWriter(w)
	abw := &aigerWriter{
		c:     a.C,
		w:     bw,
		id:    2,
		idMap: make([]uint, a.Len())}

	// Stage1: create a mapping that matches binary aiger
	// identifier packing requirements
	// (const ids < all input ids < all and ids)
	ins := a.Inputs()
	for _, m := range ins {
		abw.mapLit(m)
	}
	dfs := newDfs(a.C, func(c *logic.C, m z.Lit) {
		if c.Type(m) == logic.TypeAnd {
			abw.mapLit(m)
			abw.ands = append(abw.ands, m)
		}
	})
	dfs.post(a.Outputs()...)

	nIn, nAnd := uint(len(ins)), uint(len(abw.ands))
	hdr := &aigerHeader{
		Binary: binary,
		Max:    nIn + nAnd,
		In:     nIn,
		Out:    uint(a.NumOuts()),
		And:    nAnd}
	hdr.write(bw)

	// Stage2: write the remaining data.
	if !binary {
		for _, m := range ins {
			fmt.Fprintf(bw, "%d\n", abw.forLit(m))
		}
	}
	for _, m := range a.Outputs() {
		fmt.Fprintf(bw, "%d\n", abw.forLit(m))
	}
	for _, m := range abw.ands {
		if binary {
			abw.writeBinAnd(m)
		} else {
			c0, c1 := a.Ins(m)
			fmt.Fprintf(bw, "%d %d %d\n", abw.forLit(m), abw.forLit(c0), abw.forLit(c1))
		}
	}
	a.writeSymtab(bw)
	writeComment(bw)
	return bw.Flush()
}

// Read reads an Aiger file (version 1.9) in either the ascii or the
// binary format, as indicated by its header.
func Read(r io.Reader) (*T, error) {
	br := bufio.NewReader(r)
	tag, err := br.Peek(3)
	if err != nil {
		if err == io.EOF {
			return nil, ErrPrematureEOF
		}
		return nil, err
	}
	switch string(tag) {
	case "aag":
		return readAscii(br)
	case "aig":
		return readBinary(br)
	}
	return nil, ErrBadHeader
}

// ReadAscii reads an ascii coded Aiger file (version 1.9)
// ReadAscii returns a possibly nil Aiger object paired with
// a possibly nil error.  If the Aiger object is nil, the error
// is non-nil and indicates the underlying problem.
func ReadAscii(r io.Reader) (*T, error) {
	return readAscii(bufio.NewReader(r))
}

func readAscii(br *bufio.Reader) (*T, error) {
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if hdr.Binary {
		return nil, ErrBinaryMismatch
	}
	aigrdr := makeAigerReader(Make(int(hdr.Max+2)), hdr)
	if err := aigrdr.readAsciiInputs(hdr, br); err != nil {
		return nil, err
	}
	if err := aigrdr.readOutputs(hdr.Out, hdr.Max, br); err != nil {
		return nil, err
	}
	if err := aigrdr.readAsciiAnds(hdr, br); err != nil {
		return nil, err
	}
	if err := aigrdr.readSymsAndComments(br); err != nil {
		return nil, err
	}
	if err := aigrdr.commit(); err != nil {
		return nil, err
	}
	return aigrdr.T, nil
}

// ReadBinary reads a binary Aiger file (version 1.9)
// ReadBinary returns a possibly nil Aiger object paired with
// a possibly nil error.  The error will be non-nil and describe
// the underlying problem if the Aiger object is nil.
func ReadBinary(r io.Reader) (*T, error) {
	return readBinary(bufio.NewReader(r))
}

func readBinary(br *bufio.Reader) (*T, error) {
	hdr, err := readHeader(br)
	if err != nil {
		return nil, err
	}
	if !hdr.Binary {
		return nil, ErrBinaryMismatch
	}
	aigrdr := makeAigerReader(Make(int(hdr.Max+2)), hdr)
	var i uint
	for i = 0; i < hdr.In; i++ {
		aigrdr.mapLit((i+1)*2, aigrdr.NewIn())
	}
	if err := aigrdr.readOutputs(hdr.Out, hdr.Max, br); err != nil {
		return nil, err
	}
	if err := aigrdr.readBinaryAnds(hdr, br); err != nil {
		return nil, err
	}
	if err := aigrdr.readSymsAndComments(br); err != nil {
		return nil, err
	}
	if err := aigrdr.commit(); err != nil {
		return nil, err
	}
	return aigrdr.T, nil
}

// write the symbol table, inputs then outputs by index.
func (a *T) writeSymtab(w *bufio.Writer) {
	for _, k := range []byte{'i', 'o'} {
		idx := make([]int, 0, len(a.symbols[k]))
		for i := range a.symbols[k] {
			idx = append(idx, i)
		}
		sort.Ints(idx)
		for _, i := range idx {
			fmt.Fprintf(w, "%c%d %s\n", k, i, a.symbols[k][i])
		}
	}
}

// writes a trailing comment saying who wrote the file
func writeComment(w *bufio.Writer) {
	w.WriteString("c\naiger file version 1.9 created by simcec\n")
}

// state information for writer
type aigerWriter struct {
	c     *logic.C
	w     *bufio.Writer
	id    uint
	idMap []uint
	ands  []z.Lit
}

// map literals from circuit to aiger encoding for writer
func (abw *aigerWriter) mapLit(m z.Lit) {
	abw.idMap[m.Var()] = abw.id
	abw.id += 2
}

// get an aiger literal for a circuit literal for writer
func (abw *aigerWriter) forLit(m z.Lit) uint {
	switch m {
	case abw.c.F:
		return 0
	case abw.c.T:
		return 1
	}
	a := abw.idMap[m.Var()]
	if m.IsPos() {
		return a
	}
	return a | 1
}

// writeBinAnd writes the delta encoding of and gate m.  Both
// children of m are mapped before m, so me > mc0 >= mc1.
func (abw *aigerWriter) writeBinAnd(m z.Lit) {
	c0, c1 := abw.c.Ins(m)
	mc0 := abw.forLit(c0)
	mc1 := abw.forLit(c1)
	if mc0 < mc1 {
		mc0, mc1 = mc1, mc0
	}
	me := abw.forLit(m)
	if me <= mc0 {
		panic(fmt.Sprintf("incorrect delta computation %s(%s,%s) me %d mc0 %d mc1 %d", m, c0, c1, me, mc0, mc1))
	}
	write7(abw.w, me-mc0)
	write7(abw.w, mc0-mc1)
}

// data for aiger ands -- we need to keep a copy
// of this info to verify comb loops/ multiple defs
// etc.
type aigAnd struct {
	children [2]uint
	defined  bool
	mapped   bool
	dfsColor uint8
}

type aigerReader struct {
	*T
	// the circuit may simplify away some ands, so the
	// translation from aiger literals is kept explicitly
	// and outputs are translated only after the ands.
	AigInputs  []uint // only used in ascii reading
	AigOutputs []uint
	litMap     []z.Lit
	AigAnds    []aigAnd
}

func makeAigerReader(a *T, hdr *aigerHeader) *aigerReader {
	abr := &aigerReader{
		T:          a,
		AigInputs:  make([]uint, 0, hdr.In),
		AigOutputs: make([]uint, 0, hdr.Out),
		litMap:     make([]z.Lit, hdr.Max+1)}
	abr.litMap[0] = a.F
	return abr
}

func (abr *aigerReader) mapLit(aigerLit uint, m z.Lit) {
	abr.litMap[int(aigerLit>>1)] = m
}

func (abr *aigerReader) litFor(aigerLit uint) z.Lit {
	m := abr.litMap[aigerLit>>1]
	if m == z.LitNull {
		return z.LitNull
	}
	if aigerLit&1 != 0 {
		return m.Not()
	}
	return m
}

// once everything is read, the outputs can be translated to
// circuit literals.
func (aigrdr *aigerReader) commit() error {
	for _, u := range aigrdr.AigOutputs {
		m := aigrdr.litFor(u)
		if m == z.LitNull {
			return ErrUndefinedLit
		}
		aigrdr.AddOutput(m)
	}
	return nil
}

func (aigrdr *aigerReader) readAsciiInputs(hdr *aigerHeader, r *bufio.Reader) error {
	var i uint
	for i = 0; i < hdr.In; i++ {
		in, err := readUint(r)
		if err != nil {
			return err
		}
		if in > hdr.Max*2+1 {
			return ErrLitOOB
		}
		if in&1 != 0 {
			return ErrSignedInput
		}
		if in == 0 || aigrdr.litMap[in>>1] != z.LitNull {
			return ErrAndMultiplyDefined
		}
		aigrdr.mapLit(in, aigrdr.NewIn())
		aigrdr.AigInputs = append(aigrdr.AigInputs, in)
		if err := readNL(r); err != nil {
			return err
		}
	}
	return nil
}

func (abr *aigerReader) readOutputs(nOut, max uint, r *bufio.Reader) error {
	var i uint
	for i = 0; i < nOut; i++ {
		u, e := readUint(r)
		if e != nil {
			return e
		}
		if u > 2*max+1 {
			return ErrLitOOB
		}
		abr.AigOutputs = append(abr.AigOutputs, u)
		if err := readNL(r); err != nil {
			return err
		}
	}
	return nil
}

func (aigrdr *aigerReader) readBinaryAnds(hdr *aigerHeader, r *bufio.Reader) error {
	id := (hdr.In + 1) * 2 // inputs and constant
	var i uint
	for i = 0; i < hdr.And; i++ {
		delta0, err0 := read7(r)
		if err0 != nil {
			return err0
		}
		if delta0 == 0 || delta0 > id {
			return ErrBadDeltaEncoding
		}
		c0 := id - delta0
		delta1, err1 := read7(r)
		if err1 != nil {
			return err1
		}
		if delta1 > c0 {
			return ErrBadDeltaEncoding
		}
		c1 := c0 - delta1
		aigrdr.mapLit(id, aigrdr.And(aigrdr.litFor(c0), aigrdr.litFor(c1)))
		id += 2
	}
	return nil
}

func (aigrdr *aigerReader) readAsciiAnds(hdr *aigerHeader, r *bufio.Reader) error {
	aigrdr.AigAnds = make([]aigAnd, hdr.Max+1)
	for _, m := range aigrdr.AigInputs {
		ag := &aigrdr.AigAnds[int(m>>1)]
		ag.defined = true
		ag.mapped = true
	}
	aigrdr.AigAnds[0].defined = true
	aigrdr.AigAnds[0].mapped = true
	var i uint
	for i = 0; i < hdr.And; i++ {
		g, gErr := readUint(r)
		if gErr != nil {
			return gErr
		}
		if g > hdr.Max*2+1 {
			return ErrLitOOB
		}
		if g&1 != 0 {
			return ErrSignedAnd
		}
		if err := readSpace(r); err != nil {
			return err
		}
		c0, c0Err := readUint(r)
		if c0Err != nil {
			return c0Err
		}
		if c0 > hdr.Max*2+1 {
			return ErrLitOOB
		}
		if err := readSpace(r); err != nil {
			return err
		}
		c1, c1Err := readUint(r)
		if c1Err != nil {
			return c1Err
		}
		if c1 > hdr.Max*2+1 {
			return ErrLitOOB
		}
		if err := readNL(r); err != nil {
			return err
		}
		// define the gate in terms of AigAnds
		aa := &aigrdr.AigAnds[int(g>>1)]
		if aa.defined {
			return ErrAndMultiplyDefined
		}
		aa.defined = true
		aa.children[0] = c0
		aa.children[1] = c1
	}
	return aigrdr.mapAnds()
}

func (aigrdr *aigerReader) mapAnds() error {
	for i := range aigrdr.AigAnds {
		ag := &aigrdr.AigAnds[i]
		if ag.defined && !ag.mapped {
			if err := aigrdr.mapAndsRec(ag, uint(i*2)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (aigrdr *aigerReader) mapAndsRec(ag *aigAnd, aig uint) error {
	switch ag.dfsColor {
	case 0:
		ag.dfsColor = 1
		var ms [2]z.Lit
		for i, c := range ag.children {
			agc := &aigrdr.AigAnds[int(c>>1)]
			if !agc.defined {
				return ErrUndefinedLit
			}
			if !agc.mapped {
				if err := aigrdr.mapAndsRec(agc, c); err != nil {
					return err
				}
			}
			ms[i] = aigrdr.litFor(c)
		}
		aigrdr.mapLit(aig, aigrdr.And(ms[0], ms[1]))
		ag.dfsColor = 2
		ag.mapped = true
	case 1:
		return ErrCombLoop
	case 2:
	default:
		panic("unknown dfs color")
	}
	return nil
}

func (aigrdr *aigerReader) readSymsAndComments(r *bufio.Reader) error {
	for {
		b, e := r.ReadByte()
		if e == io.EOF {
			return nil
		}
		if e != nil {
			return e
		}
		switch b {
		case 'c':
			bn, e := r.ReadByte()
			if e == io.EOF {
				return ErrPrematureEOF
			}
			if e != nil {
				return e
			}
			if bn != '\n' {
				// a constraint symbol
				return ErrSequential
			}
			return aigrdr.readComments(r)
		case 'i', 'o':
		case 'l', 'b', 'j', 'f':
			return ErrSequential
		default:
			return ErrInvalidSymbolType
		}
		index, err := readUint(r)
		if err != nil {
			return err
		}
		if err := readSpace(r); err != nil {
			return err
		}
		line, err := r.ReadString('\n')
		if err == io.EOF {
			return ErrPrematureEOF
		}
		if err != nil {
			return err
		}
		n := aigrdr.NumIns()
		if b == 'o' {
			n = len(aigrdr.AigOutputs)
		}
		if err := aigrdr.name(b, int(index), n, line[:len(line)-1]); err != nil {
			return err
		}
	}
}

func (ar *aigerReader) readComments(r *bufio.Reader) error {
	for {
		_, err := r.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
