package rs

import "github.com/akacastor/oobin/consts"

// generator returns the two non-leading coefficients of
// g(X) = (X-alpha)(X-alpha^2), built the same way the teacher's
// NewRSEncoder builds its (longer) generator polynomial: repeated
// synthetic multiplication by (X - alpha^root) for each root, keeping only
// the low-order coefficients a shift-register encoder needs.
func (c *Codec) generator() [2]byte {
	g := make([]byte, 3)
	g[0] = 1
	for i := 0; i < 2; i++ {
		root := c.gf.pow(i + 1) // roots are alpha^1, alpha^2
		for j := i + 1; j > 0; j-- {
			g[j] ^= c.gf.mul(g[j-1], root)
		}
	}
	return [2]byte{g[1], g[2]}
}

// Encode computes the two RS(96,94) parity bytes for a 94-byte systematic
// message and returns the 96-byte systematic codeword (message followed by
// parity), using the same feedback shift-register technique as the
// teacher's RSEncoder.Encode, generalized to this code's 2-byte parity and
// g(X) = (X-alpha)(X-alpha^2) generator. It is not on the decode path —
// only internal/oobenc's test fixtures call it.
func (c *Codec) Encode(message []byte) []byte {
	g := c.generator()

	out := make([]byte, consts.RSBlockSize)
	copy(out, message)

	var parityReg [consts.RSParitySize]byte
	for _, d := range message {
		feedback := d ^ parityReg[0]
		copy(parityReg[:], parityReg[1:])
		parityReg[len(parityReg)-1] = 0
		if feedback != 0 {
			for j := range parityReg {
				parityReg[j] ^= c.gf.mul(g[j], feedback)
			}
		}
	}
	copy(out[consts.RSMessageSize:], parityReg[:])
	return out
}
