package rs

import "github.com/pkg/errors"

// ErrUncorrectable is returned by Correct when the block cannot be
// repaired with the information given (inconsistent syndromes for a blind
// single-symbol correction, an out-of-range error locator, more erasures
// than the code's two parity bytes can resolve, or a singular erasure
// system).
var ErrUncorrectable = errors.New("rs: block uncorrectable")

// Codec is a RS(96,94) decoder/corrector over GF(256) with field
// polynomial p(X) = X^8 + X^4 + X^3 + X^2 + 1 and generator
// g(X) = (X-alpha)(X-alpha^2), T=1. Its tables are built once by New and
// are immutable afterward; a Codec is not safe for concurrent Decode and
// Correct calls from more than one goroutine (the reference codec it
// mirrors is single-threaded too).
type Codec struct {
	gf *gfTables
}

// New builds a Codec, computing its GF(256) exp/log tables once.
func New() *Codec {
	return &Codec{gf: newGFTables()}
}

// Syndrome is the result of evaluating a received codeword at the code's
// two generator roots, alpha^1 and alpha^2. IsZero reports whether the
// block, as currently laid out, is a valid RS(96,94) codeword.
type Syndrome struct {
	S1, S2 byte
}

// IsZero reports whether both syndrome components are zero, i.e. the
// block's syndrome check passes.
func (s Syndrome) IsZero() bool {
	return s.S1 == 0 && s.S2 == 0
}

// Decode evaluates block (which must have length RSBlockSize) at the
// code's two roots and returns the resulting Syndrome. It does not modify
// block. Horner's method treats block[0] as the coefficient of the
// codeword's highest-degree term and block[len-1] as the constant term.
func (c *Codec) Decode(block []byte) Syndrome {
	return Syndrome{
		S1: c.evalAt(block, c.gf.pow(1)),
		S2: c.evalAt(block, c.gf.pow(2)),
	}
}

func (c *Codec) evalAt(block []byte, x byte) byte {
	var acc byte
	for _, b := range block {
		acc = c.gf.mul(acc, x) ^ b
	}
	return acc
}

// Correct attempts to repair block in place.
//
// With no erasures given, it performs blind single-symbol correction: from
// S1 = e*alpha^p and S2 = e*alpha^(2p), the error locator alpha^p = S2/S1
// and the error value e = S1^2/S2 are solved directly (T=1, no
// Berlekamp-Massey/Chien search needed for a single root pair). If the
// syndromes are inconsistent with a single error, or the recovered
// position falls outside the 96-symbol block, Correct returns
// ErrUncorrectable and leaves block unchanged.
//
// With 1 or 2 erasure positions given (1-based, counted from the end of
// the block — erasures[0]==1 names the last byte), Correct solves the
// resulting 1x1 or 2x2 linear system over GF(256) for the corresponding
// error values directly, without needing the syndromes to implicate those
// positions on their own. More than 2 erasures exceed what two parity
// bytes can resolve and return ErrUncorrectable.
func (c *Codec) Correct(block []byte, erasures []int) error {
	switch len(erasures) {
	case 0:
		return c.correctBlind(block)
	case 1:
		return c.correctErasures(block, erasures)
	case 2:
		return c.correctErasures(block, erasures)
	default:
		return ErrUncorrectable
	}
}

func (c *Codec) correctBlind(block []byte) error {
	s := c.Decode(block)
	if s.IsZero() {
		return nil
	}
	if s.S1 == 0 || s.S2 == 0 {
		// one zero, one not: not consistent with a single error
		return ErrUncorrectable
	}

	locator := c.gf.div(s.S2, s.S1)            // alpha^p
	errVal := c.gf.div(c.gf.mul(s.S1, s.S1), s.S2)

	p := c.gf.log[locator]
	if p < 0 || p >= len(block) {
		return ErrUncorrectable
	}
	idx := len(block) - 1 - p
	block[idx] ^= errVal
	return nil
}

func (c *Codec) correctErasures(block []byte, erasures []int) error {
	n := len(block)
	idx := make([]int, len(erasures))
	loc := make([]byte, len(erasures))
	for i, e := range erasures {
		if e < 1 || e > n {
			return ErrUncorrectable
		}
		idx[i] = n - e
		loc[i] = c.gf.pow(e - 1)
	}

	s := c.Decode(block)

	switch len(erasures) {
	case 1:
		if loc[0] == 0 {
			return ErrUncorrectable
		}
		errVal := c.gf.div(s.S1, loc[0])
		block[idx[0]] ^= errVal
		return nil
	case 2:
		a, b := loc[0], loc[1]
		a2, b2 := c.gf.mul(a, a), c.gf.mul(b, b)
		det := c.gf.mul(a, b2) ^ c.gf.mul(b, a2)
		if det == 0 {
			return ErrUncorrectable
		}
		e1 := c.gf.div(c.gf.mul(s.S1, b2)^c.gf.mul(s.S2, b), det)
		e2 := c.gf.div(c.gf.mul(a, s.S2)^c.gf.mul(a2, s.S1), det)
		block[idx[0]] ^= e1
		block[idx[1]] ^= e2
		return nil
	default:
		return ErrUncorrectable
	}
}
