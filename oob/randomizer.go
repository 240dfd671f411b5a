package oob

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// RandTable is the 384-byte XOR mask used to de-randomize one OOB FEC
// frame. It is the constant, byte-exact output of ComputeRandTable, shipped
// here so that decoding never has to regenerate it.
var RandTable = [384]byte{
	0x00, 0x71, 0xC5, 0xBC, 0x41, 0x6E, 0x34, 0xC6, 0x04, 0xB6, 0xE5, 0x97, 0x2D, 0x7E, 0x7D, 0x02,
	0xED, 0xAF, 0xBE, 0x65, 0xE1, 0xF4, 0x99, 0xF8, 0x7A, 0x3A, 0x25, 0xDA, 0x98, 0x6A, 0x3A, 0xC6,
	0x51, 0xE0, 0xE8, 0xE6, 0xAF, 0xDD, 0xE9, 0x85, 0x2D, 0x81, 0x87, 0x15, 0x7F, 0x28, 0x5A, 0xD8,
	0x69, 0xB4, 0xEB, 0xB3, 0xEB, 0x99, 0x40, 0x9F, 0xF8, 0x5E, 0xA9, 0x94, 0xEA, 0x74, 0xFD, 0x68,
	0x45, 0x27, 0x2B, 0x46, 0xBB, 0x4F, 0x7C, 0x28, 0x48, 0x91, 0xB1, 0x2C, 0x9D, 0xF8, 0x42, 0xD8,
	0xFB, 0xFA, 0x2F, 0x70, 0x59, 0xC4, 0x0A, 0x92, 0x23, 0x70, 0x10, 0xE3, 0x68, 0xF3, 0xFA, 0x5E,
	0xB5, 0xE5, 0x85, 0x64, 0xA6, 0xE5, 0x74, 0xA6, 0x06, 0xFF, 0xDE, 0x84, 0x23, 0xB7, 0x08, 0x2A,
	0xDA, 0xC3, 0x04, 0x80, 0x3F, 0xFE, 0x85, 0xE4, 0xA1, 0xF9, 0x2F, 0x62, 0x10, 0x1C, 0x92, 0xE4,
	0x68, 0xD9, 0x51, 0x58, 0x0D, 0x24, 0xD4, 0xAE, 0xE5, 0x05, 0x63, 0xBA, 0xBE, 0xB0, 0xB0, 0xE5,
	0xB3, 0xBE, 0xCF, 0x4D, 0xEE, 0x7A, 0xFD, 0x3D, 0x13, 0x2A, 0x5A, 0xC4, 0x18, 0xDB, 0xFB, 0xE8,
	0x66, 0xA8, 0xC1, 0xB2, 0x41, 0x3B, 0x62, 0xCB, 0x75, 0x34, 0x46, 0x03, 0xAA, 0xBE, 0x53, 0x3B,
	0x9D, 0x31, 0x62, 0xA6, 0xC1, 0xE7, 0x17, 0x36, 0x13, 0x49, 0xD6, 0xA0, 0xC1, 0xC3, 0x84, 0x87,
	0x23, 0xA5, 0x41, 0xF2, 0x42, 0xB5, 0x4F, 0x29, 0x7E, 0x45, 0xE0, 0x33, 0x8F, 0x09, 0x7F, 0x82,
	0xF6, 0xC2, 0x8A, 0xB1, 0xAC, 0x9A, 0xE4, 0x19, 0x1C, 0xED, 0x19, 0x63, 0x10, 0x12, 0xAA, 0x53,
	0xE0, 0xF4, 0x97, 0xC0, 0xCD, 0xB2, 0x08, 0x1C, 0x00, 0xAA, 0xAC, 0x1A, 0xE3, 0x05, 0x47, 0x29,
	0x0F, 0x80, 0x5C, 0x72, 0xE1, 0x3D, 0xB9, 0x86, 0x40, 0x27, 0x1D, 0x9C, 0xD2, 0xE7, 0xE6, 0xF4,
	0xB3, 0x53, 0x7C, 0x82, 0xE4, 0x8B, 0x52, 0x29, 0xDA, 0xD1, 0x4D, 0x58, 0xA7, 0x88, 0xCE, 0x4D,
	0xE0, 0x42, 0x4A, 0xB5, 0x3E, 0xEC, 0xC2, 0x04, 0x8E, 0x07, 0x49, 0x0D, 0xC9, 0x67, 0x61, 0xEF,
	0xF4, 0xCC, 0xAE, 0x77, 0x4B, 0xA7, 0x79, 0x0C, 0xED, 0xFA, 0xE8, 0x68, 0x90, 0x76, 0x3A, 0x6C,
	0xFD, 0xFA, 0x0B, 0xE3, 0xE8, 0xF4, 0xE6, 0x05, 0x71, 0xF3, 0x66, 0x28, 0xC6, 0xAE, 0x1A, 0xFF,
	0x74, 0x28, 0x39, 0x54, 0x0D, 0x6D, 0xF3, 0xCC, 0x84, 0xDC, 0x4D, 0x1F, 0xB8, 0x5D, 0x27, 0xB9,
	0x08, 0x7F, 0x8C, 0xCE, 0x75, 0x02, 0x9C, 0x6A, 0x02, 0x24, 0x8F, 0xC0, 0x5F, 0xFC, 0xCC, 0xDF,
	0xB2, 0xF7, 0xE6, 0x17, 0x38, 0x2B, 0xFE, 0x5E, 0x8D, 0x07, 0x5B, 0x44, 0x11, 0xFF, 0x17, 0xA4,
	0x5D, 0x8D, 0x15, 0x12, 0x9C, 0x89, 0x89, 0x5C, 0x0D, 0x1C, 0x36, 0x70, 0xC5, 0xB2, 0x79, 0xD9,
}

// lfsrSeed is the 13-bit randomizer PN generator's initial state: stages 1
// and 10 set, all others clear.
const lfsrSeed uint16 = 0x0201

// ComputeRandTable regenerates RandTable from the 13-bit LFSR definition:
// seed 0x0201, taps at stages 1, 10, 11 and 13, 8 bits packed MSB-first per
// output byte. It exists to let callers verify RandTable independently of
// the constant above; the decode path never calls it.
func ComputeRandTable() ([384]byte, error) {
	var out [384]byte
	var buf bytes.Buffer
	bw := bitio.NewWriter(&buf)

	shiftReg := lfsrSeed
	for n := 0; n < 384; n++ {
		for i := 0; i < 8; i++ {
			bit := shiftReg & 0x1
			bit ^= (shiftReg & 0x200) >> 9
			bit ^= (shiftReg & 0x400) >> 10
			bit ^= (shiftReg & 0x1000) >> 12

			shiftReg >>= 1
			shiftReg |= bit << 12

			if err := bw.WriteBits(uint64(bit), 1); err != nil {
				return out, errors.Wrap(err, "oob: write randomizer bit")
			}
		}
	}
	if err := bw.Close(); err != nil {
		return out, errors.Wrap(err, "oob: close randomizer bit writer")
	}
	copy(out[:], buf.Bytes())
	return out, nil
}
