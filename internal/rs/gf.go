// Package rs implements the RS(96,94) codec the OOB FEC frame decoder
// relies on: GF(256) arithmetic under the field polynomial
// p(X) = X^8 + X^4 + X^3 + X^2 + 1, generator g(X) = (X-alpha)(X-alpha^2),
// T=1 symbol-error-correcting. It is grounded on the teacher's hand-rolled
// GF(256) table approach (dvbs/reedsolomon.go) but generalized into a
// real decode/correct adapter instead of an encode-only helper.
package rs

// fieldPoly is p(X) = X^8 + X^4 + X^3 + X^2 + 1, as specified by the OOB
// FEC code parameters (binary 1_0001_1101 = 0x11D).
const fieldPoly = 0x11D

// gfTables holds the exp/log lookup tables for GF(256) under fieldPoly,
// built once and shared by every Codec.
type gfTables struct {
	exp [510]byte // double length avoids a modulo in mul
	log [256]int  // log[0] is unused; 0 has no logarithm
}

func newGFTables() *gfTables {
	t := &gfTables{}
	x := 1
	for i := 0; i < 255; i++ {
		t.exp[i] = byte(x)
		t.log[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= fieldPoly
		}
	}
	for i := 255; i < 510; i++ {
		t.exp[i] = t.exp[i-255]
	}
	return t
}

func (t *gfTables) mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return t.exp[t.log[a]+t.log[b]]
}

func (t *gfTables) div(a, b byte) byte {
	if a == 0 {
		return 0
	}
	return t.exp[t.log[a]-t.log[b]+255]
}

// pow returns alpha^n for the field's primitive element alpha=2.
func (t *gfTables) pow(n int) byte {
	n %= 255
	if n < 0 {
		n += 255
	}
	return t.exp[n]
}

func (t *gfTables) inv(a byte) byte {
	return t.exp[255-t.log[a]]
}
