package oob

import "github.com/akacastor/oobin/consts"

// FindSync searches buf[start:len(buf)] for the smallest offset k such that
// start+k+384 <= len(buf), buf[start+k] == 0x47 and buf[start+k+192] ==
// 0x64 — the byte-alignment anchor for an OOB frame pair, valid on the
// pre-de-randomized stream (R[192] XOR 0x47 == 0x64, see
// randomizer_test.go).
//
// If no such k is found before the window runs out, FindSync returns
// (k, false) with k equal to the loop-terminal offset, the first k for
// which start+k+384 > len(buf) (that offset itself is not examined);
// the caller's own lookahead bounds check is expected to terminate the
// frame in that case, matching the reference decoder's behavior of
// returning the loop-terminal offset rather than a sentinel.
func FindSync(buf []byte, start int) (offset int, found bool) {
	n := len(buf)
	k := 0
	for start+k+consts.FrameSize <= n {
		if buf[start+k] == consts.TSSyncByte && buf[start+k+consts.SecondPacketOffset] == consts.SecondSyncByte {
			return k, true
		}
		k++
	}
	return k, false
}
