// Package link drives a soft serial device from the host through a
// USB-serial adapter. The device firmware echoes every byte it receives, so
// whatever goes out must come back unchanged.
package link

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"softserial/host/serial"
	"softserial/protocol"
)

// Link represents a connection to a device running the echo firmware
type Link struct {
	port serial.Port

	// Verbose prints every frame exchanged
	Verbose bool
}

// CheckConfig controls an integrity run
type CheckConfig struct {
	Frames     int           // number of probe frames to send
	PayloadLen int           // payload bytes per frame
	Timeout    time.Duration // how long to wait for each echo
}

// DefaultCheckConfig returns a run that fits comfortably in the device's
// receive ring at 9600 baud.
func DefaultCheckConfig() CheckConfig {
	return CheckConfig{
		Frames:     100,
		PayloadLen: 16,
		Timeout:    500 * time.Millisecond,
	}
}

// Report summarises an integrity run
type Report struct {
	Sent       int // frames written
	Received   int // frames echoed intact
	Missing    int // frames with no intact echo before the timeout
	Mismatched int // intact frames carrying the wrong sequence or payload
	Bad        int // resynchronisations caused by corrupted bytes
}

// OK reports whether every frame came back intact.
func (r Report) OK() bool {
	return r.Sent == r.Received && r.Missing == 0 && r.Mismatched == 0 && r.Bad == 0
}

func (r Report) String() string {
	return fmt.Sprintf("sent=%d received=%d missing=%d mismatched=%d bad=%d",
		r.Sent, r.Received, r.Missing, r.Mismatched, r.Bad)
}

// New wraps an open port
func New(port serial.Port) *Link {
	return &Link{port: port}
}

// Connect opens device with the default configuration
func Connect(device string) (*Link, error) {
	return ConnectWithConfig(serial.DefaultConfig(device))
}

// ConnectWithConfig opens a port with a custom serial config
func ConnectWithConfig(cfg *serial.Config) (*Link, error) {
	port, err := serial.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}

	// Drop whatever the device sent before we were listening
	if err := port.Flush(); err != nil {
		port.Close()
		return nil, fmt.Errorf("failed to flush serial port: %w", err)
	}
	return New(port), nil
}

// Port returns the underlying serial port
func (l *Link) Port() serial.Port {
	return l.port
}

// Close closes the connection
func (l *Link) Close() error {
	if l.port == nil {
		return nil
	}
	return l.port.Close()
}

// Pattern returns the deterministic payload of frame i.
func Pattern(i, n int) []byte {
	p := make([]byte, n)
	for j := range p {
		p[j] = byte((i+j)*31 + 0x55)
	}
	return p
}

// Check sends cfg.Frames probe frames one at a time and waits for each echo.
// Errors are only returned for port failures; link errors are counted in
// the report.
func (l *Link) Check(cfg CheckConfig) (Report, error) {
	var (
		rep     Report
		wantSeq uint8
		want    []byte
		matched bool
	)

	dec := protocol.NewDecoder(func(seq uint8, payload []byte) {
		if seq == wantSeq && bytes.Equal(payload, want) {
			matched = true
			return
		}
		rep.Mismatched++
		if l.Verbose {
			fmt.Printf("  unexpected frame seq=%d len=%d\n", seq, len(payload))
		}
	})

	in := protocol.NewStreamBuffer(4 * protocol.FrameLengthMax)
	out := protocol.NewScratchOutput()
	buf := make([]byte, protocol.FrameLengthMax)

	for i := 0; i < cfg.Frames; i++ {
		wantSeq = uint8(i)
		want = Pattern(i, cfg.PayloadLen)
		matched = false

		out.Reset()
		if err := protocol.EncodeFrame(out, wantSeq, want); err != nil {
			return rep, err
		}
		if _, err := l.port.Write(out.Result()); err != nil {
			return rep, fmt.Errorf("failed to write frame %d: %w", i, err)
		}
		rep.Sent++
		if l.Verbose {
			fmt.Printf("> frame %d (%d bytes)\n", i, len(out.Result()))
		}

		deadline := time.Now().Add(cfg.Timeout)
		for !matched && time.Now().Before(deadline) {
			n, err := l.port.Read(buf)
			if err != nil && !errors.Is(err, io.EOF) {
				return rep, fmt.Errorf("failed to read echo of frame %d: %w", i, err)
			}
			if n > 0 {
				in.Write(buf[:n])
				dec.Feed(in)
			}
		}

		if matched {
			rep.Received++
		} else {
			rep.Missing++
			if l.Verbose {
				fmt.Printf("< frame %d missing\n", i)
			}
		}
	}

	rep.Bad = dec.Bad
	return rep, nil
}
