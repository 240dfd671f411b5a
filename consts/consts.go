// Package consts holds the fixed frame geometry of the CableLabs OOB
// downstream FEC framing. Every size here comes from the wire format, not
// from runtime configuration.
package consts

const (
	// TSPacketSize is the length in bytes of one MPEG-2 Transport Stream
	// packet, first byte always TSSyncByte.
	TSPacketSize = 188

	// TSSyncByte is the first byte of every TS packet.
	TSSyncByte = 0x47

	// SecondSyncByte is the expected first byte of the second TS packet in
	// an OOB frame, before de-randomization.
	SecondSyncByte = 0x64

	// RSBlockSize is the length in bytes of one RS(96,94) codeword.
	RSBlockSize = 96

	// RSParitySize is the number of trailing parity bytes in one RS block.
	RSParitySize = 2

	// RSMessageSize is the number of systematic payload bytes in one RS
	// block (RSBlockSize - RSParitySize).
	RSMessageSize = RSBlockSize - RSParitySize

	// BlocksPerFrame is the number of RS blocks in one OOB FEC frame
	// (two TS packets, two RS blocks each).
	BlocksPerFrame = 4

	// BlocksPerTSPacket is the number of RS blocks that reassemble into
	// one TS packet.
	BlocksPerTSPacket = 2

	// FrameSize is the length in bytes of one OOB FEC frame:
	// BlocksPerFrame * RSBlockSize.
	FrameSize = BlocksPerFrame * RSBlockSize

	// InterleaveDepth is the convolutional interleaver depth (number of
	// lanes) used by the OOB downstream framing.
	InterleaveDepth = 8

	// InterleaveWindow is the number of bytes of interleaved input needed
	// to reassemble one RS block: InterleaveDepth * RSBlockSize.
	InterleaveWindow = InterleaveDepth * RSBlockSize

	// SecondPacketOffset is the byte offset, within one 384-byte frame, of
	// the second (pre-parity-strip) TS packet: half the frame.
	SecondPacketOffset = FrameSize / 2
)

// RandomizerGaps are the byte indices within one 384-byte frame that hold
// RS parity bytes; they are never XORed during (de-)randomization.
var RandomizerGaps = [...]int{94, 95, 190, 191, 286, 287, 382, 383}
