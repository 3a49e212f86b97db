// Package protocol implements the probe frames used to check a soft serial
// link end to end.
//
// A frame is
//
//	len | seq | payload... | crc8 | 0x7E
//
// where len counts the whole frame and the CRC-8 covers len, seq and the
// payload. Frames are small enough to sit in the receive ring of the device
// echoing them.
package protocol

// Frame layout constants
const (
	FrameHeaderSize  = 2
	FrameTrailerSize = 2
	FrameLengthMin   = FrameHeaderSize + FrameTrailerSize
	FrameLengthMax   = 32
	FramePayloadMax  = FrameLengthMax - FrameLengthMin
	FramePositionLen = 0
	FramePositionSeq = 1
	FrameValueSync   = 0x7E
)

// MessageMax is the size of a ScratchOutput
const MessageMax = 256
