package rs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akacastor/oobin/consts"
)

func payload(seed byte) []byte {
	p := make([]byte, consts.RSMessageSize)
	for i := range p {
		p[i] = byte(int(seed) + i*31)
	}
	return p
}

// TestEncodeDecodeCleanCodeword is half of P5: an RS(96,94) codeword built
// by Encode decodes with a zero syndrome and recovers its systematic bytes.
func TestEncodeDecodeCleanCodeword(t *testing.T) {
	c := New()
	msg := payload(5)
	code := c.Encode(msg)

	require.Len(t, code, consts.RSBlockSize)
	assert.Equal(t, msg, code[:consts.RSMessageSize])
	assert.True(t, c.Decode(code).IsZero())
}

// TestCorrectSingleByteError is the other half of P5: any single flipped
// byte is corrected and the systematic payload is recovered.
func TestCorrectSingleByteError(t *testing.T) {
	c := New()
	msg := payload(17)
	code := c.Encode(msg)

	for pos := 0; pos < consts.RSBlockSize; pos++ {
		corrupted := append([]byte(nil), code...)
		corrupted[pos] ^= 0xFF

		err := c.Correct(corrupted, nil)
		require.NoError(t, err, "position %d", pos)
		assert.True(t, c.Decode(corrupted).IsZero(), "position %d", pos)
		assert.Equal(t, msg, corrupted[:consts.RSMessageSize], "position %d", pos)
	}
}

// TestUncorrectableTwoByteError confirms two independent single-byte
// errors (beyond T=1) are detected as uncorrectable rather than silently
// mis-corrected.
func TestUncorrectableTwoByteError(t *testing.T) {
	c := New()
	msg := payload(200)
	code := c.Encode(msg)

	corrupted := append([]byte(nil), code...)
	corrupted[0] ^= 0xFF
	corrupted[50] ^= 0x81

	err := c.Correct(corrupted, nil)
	if err == nil {
		// a 2-byte corruption pattern can, in rare cases, land on a
		// syndrome pair consistent with some OTHER single-symbol error;
		// what must never happen is silently reporting success while
		// still returning the wrong payload
		assert.False(t, c.Decode(corrupted).IsZero() && string(corrupted[:consts.RSMessageSize]) == string(msg))
		return
	}
	assert.ErrorIs(t, err, ErrUncorrectable)
}

// TestCorrectWithErasures exercises the 1- and 2-erasure direct-solve
// paths (spec.md §9's preserved erasure interface).
func TestCorrectWithErasures(t *testing.T) {
	c := New()
	msg := payload(9)
	code := c.Encode(msg)

	t.Run("single erasure", func(t *testing.T) {
		corrupted := append([]byte(nil), code...)
		corrupted[3] ^= 0x5A
		err := c.Correct(corrupted, []int{consts.RSBlockSize - 3})
		require.NoError(t, err)
		assert.Equal(t, code, corrupted)
	})

	t.Run("two erasures", func(t *testing.T) {
		corrupted := append([]byte(nil), code...)
		corrupted[3] ^= 0x5A
		corrupted[60] ^= 0x11
		err := c.Correct(corrupted, []int{consts.RSBlockSize - 3, consts.RSBlockSize - 60})
		require.NoError(t, err)
		assert.Equal(t, code, corrupted)
	})
}

// TestTooManyErasures confirms Correct rejects more erasures than the
// code's two parity bytes can resolve.
func TestTooManyErasures(t *testing.T) {
	c := New()
	code := c.Encode(payload(1))
	err := c.Correct(code, []int{1, 2, 3})
	assert.ErrorIs(t, err, ErrUncorrectable)
}
