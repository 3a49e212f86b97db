package protocol

import (
	"bytes"
	"errors"
)

// ErrPayloadTooLarge is returned when a payload does not fit one frame.
var ErrPayloadTooLarge = errors.New("protocol: payload too large")

// FrameHandler receives decoded frames. payload aliases the input buffer and
// is only valid during the call.
type FrameHandler func(seq uint8, payload []byte)

// EncodeFrame appends one frame carrying payload to output.
func EncodeFrame(output OutputBuffer, seq uint8, payload []byte) error {
	if len(payload) > FramePayloadMax {
		return ErrPayloadTooLarge
	}
	cursor := output.CurPosition()

	// Write header (length placeholder and sequence)
	output.Output([]byte{0, seq})
	output.Output(payload)

	// Update length field, then checksum everything before the trailer
	output.Update(cursor, uint8(len(output.DataSince(cursor))+FrameTrailerSize))
	crc := Checksum(output.DataSince(cursor))
	output.Output([]byte{crc, FrameValueSync})
	return nil
}

// Decoder splits a byte stream into frames, dropping anything that fails the
// length, sync or checksum test and resynchronising on the next sync byte.
type Decoder struct {
	handler FrameHandler
	lost    bool

	// Frames counts frames delivered to the handler
	Frames int
	// Bad counts resynchronisations
	Bad int
}

// NewDecoder creates a Decoder delivering frames to handler.
func NewDecoder(handler FrameHandler) *Decoder {
	return &Decoder{handler: handler}
}

// Feed consumes every complete frame in input. A trailing partial frame is
// left in input for the next call.
func (d *Decoder) Feed(input InputBuffer) {
	data := input.Data()

	for len(data) > 0 {
		if d.lost {
			// Skip garbage up to and including the next sync byte
			i := bytes.IndexByte(data, FrameValueSync)
			if i < 0 {
				data = nil
				break
			}
			data = data[i+1:]
			d.lost = false
			continue
		}

		// Skip leading sync bytes
		if data[0] == FrameValueSync {
			data = data[1:]
			continue
		}

		if len(data) < FrameLengthMin {
			break
		}

		n := int(data[FramePositionLen])
		if n < FrameLengthMin || n > FrameLengthMax {
			d.resync()
			continue
		}

		// Wait for full frame
		if len(data) < n {
			break
		}

		if data[n-1] != FrameValueSync || Checksum(data[:n-FrameTrailerSize]) != data[n-FrameTrailerSize] {
			d.resync()
			continue
		}

		seq := data[FramePositionSeq]
		payload := data[FrameHeaderSize : n-FrameTrailerSize]
		data = data[n:]

		d.Frames++
		if d.handler != nil {
			d.handler(seq, payload)
		}
	}

	// Remove consumed bytes from input
	if consumed := input.Available() - len(data); consumed > 0 {
		input.Pop(consumed)
	}
}

func (d *Decoder) resync() {
	d.lost = true
	d.Bad++
}
