package oob

import "github.com/akacastor/oobin/consts"

var isRandomizerGap [384]bool

func init() {
	for _, g := range consts.RandomizerGaps {
		isRandomizerGap[g] = true
	}
}

// Derandomize XORs buf[0:len(buf)] against RandTable, starting at frame_pos
// within the 384-byte randomizer cycle, skipping the eight RS-parity gap
// positions (they are never randomized on the wire). It is self-inverse:
// calling Derandomize twice with the same framePos restores the original
// bytes, since XOR is its own inverse.
func Derandomize(buf []byte, framePos int) {
	for i := range buf {
		j := (framePos + i) % 384
		if isRandomizerGap[j] {
			continue
		}
		buf[i] ^= RandTable[j]
	}
}
