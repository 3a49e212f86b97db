// Package core implements a bit-banged 8N1 serial port for TinyGo targets.
//
// Reception is driven by an any-edge external interrupt on the RX pin: the
// interrupt samples the whole frame with calibrated delays and pushes the
// byte into a ring shared by every instance. Only one instance, the active
// listener, receives at a time. Transmission is synchronous and runs with
// interrupts disabled for the whole frame.
package core

import (
	"errors"

	"tinygo.org/x/drivers"
)

var (
	// ErrNoData is returned by the read path when nothing is buffered or the
	// instance is not the active listener.
	ErrNoData = errors.New("softserial: no data")

	// ErrUnsupportedBaud is returned by Begin when the compiled delay table
	// has no row for the requested rate.
	ErrUnsupportedBaud = errors.New("softserial: unsupported baud rate")

	// ErrWriteUnconfigured is returned by Write when no transmit delay is set.
	ErrWriteUnconfigured = errors.New("softserial: write before a valid Begin")
)

var _ drivers.UART = (*SoftSerial)(nil)

// Config describes one soft serial port.
type Config struct {
	RX GPIOPin
	TX GPIOPin

	// InverseLogic swaps the line levels: idle low, start bit high, a 1 bit
	// driven low.
	InverseLogic bool

	// Receiver to listen on. Nil selects DefaultReceiver, which is the one
	// the target's interrupt vectors dispatch to. Firmware leaves this nil:
	// a second Receiver would be a second active listener. Tests inject
	// private ones.
	Receiver *Receiver
}

// SoftSerial is one bit-banged serial port.
type SoftSerial struct {
	rxPin   GPIOPin
	rx      PinBinding
	tx      PinBinding
	inverse bool

	profile Profile

	receiver   *Receiver
	overflow   bool
	writeError bool
}

// New resolves the pins of cfg through the registered PinDriver and leaves
// the lines idle. The port does nothing until Begin is called.
func New(cfg Config) (*SoftSerial, error) {
	pins := MustPins()
	s := &SoftSerial{
		rxPin:    cfg.RX,
		inverse:  cfg.InverseLogic,
		receiver: cfg.Receiver,
	}
	if s.receiver == nil {
		s.receiver = DefaultReceiver()
	}

	// The pull-up holds an idle line high; with inverse logic idle is low.
	if err := pins.ConfigureInput(cfg.RX, !cfg.InverseLogic); err != nil {
		return nil, err
	}
	rx, err := bindInput(pins, cfg.RX)
	if err != nil {
		return nil, err
	}
	s.rx = rx

	// A shared RX/TX pin is a half-duplex single wire; leave it an input.
	if cfg.TX != cfg.RX {
		if err := pins.ConfigureOutput(cfg.TX, s.idleLevel()); err != nil {
			return nil, err
		}
	}
	tx, err := bindOutput(pins, cfg.TX)
	if err != nil {
		return nil, err
	}
	s.tx = tx

	return s, nil
}

// Begin selects the delay profile for baud, arms the RX edge interrupt when
// reception is possible at that rate and makes s the active listener.
// An unsupported rate still makes s the listener; it just never receives and
// every transmit is refused. So does a failure to arm the edge interrupt,
// whose error is returned after listening.
func (s *SoftSerial) Begin(baud uint32) error {
	s.profile = LookupProfile(baud)

	var irqErr error
	if s.profile.CanReceive() {
		irq := MustInterrupts()
		if irqErr = irq.EnableEdge(s.rxPin, s.receiver.HandleInterrupt); irqErr == nil {
			irq.EnableGlobal()

			// If the line was low this establishes the end of that level.
			MustDelay().Delay(s.profile.TxDelay)
		}
	}

	if s.Listen() {
		recordEvent(EvtListen, uint32(s.rxPin))
	}

	if irqErr != nil {
		DebugPrintln("softserial: cannot arm RX interrupt: " + irqErr.Error())
		return irqErr
	}
	if !s.profile.CanTransmit() {
		recordEvent(EvtBadBaud, baud)
		DebugPrintln("softserial: no delay table row for baud " + utoa(baud))
		return ErrUnsupportedBaud
	}
	recordEvent(EvtBegin, baud)
	return nil
}

// End masks this port's edge interrupt and clears the global interrupt
// flag. The global part is coarse: it silences every interrupt-driven
// component in the program, not only this port.
func (s *SoftSerial) End() {
	irq := MustInterrupts()
	irq.DisableEdge(s.rxPin)
	irq.DisableGlobal()
	recordEvent(EvtEnd, uint32(s.rxPin))
}

// Listen makes s the active listener. It returns true when the listener
// changed, in which case buffered data from the previous owner is dropped and
// the overflow flag cleared.
func (s *SoftSerial) Listen() bool {
	return s.receiver.Listen(s)
}

// IsListening reports whether s is the active listener.
func (s *SoftSerial) IsListening() bool {
	return s.receiver.IsActive(s)
}

// Overflow reports whether a received byte was dropped because the ring was
// full. The flag stays set until s next takes over listening.
func (s *SoftSerial) Overflow() bool {
	return s.overflow
}

// WriteError reports whether a transmit was refused since the last
// ClearWriteError.
func (s *SoftSerial) WriteError() bool {
	return s.writeError
}

// ClearWriteError resets the sticky write error.
func (s *SoftSerial) ClearWriteError() {
	s.writeError = false
}

// Profile returns the delay profile chosen by the last Begin.
func (s *SoftSerial) Profile() Profile {
	return s.profile
}

// InverseLogic reports whether the port uses inverted line levels.
func (s *SoftSerial) InverseLogic() bool {
	return s.inverse
}

// ReadByte pops the oldest received byte.
func (s *SoftSerial) ReadByte() (byte, error) {
	if !s.IsListening() {
		return 0, ErrNoData
	}
	b, ok := s.receiver.ring.Get()
	if !ok {
		return 0, ErrNoData
	}
	return b, nil
}

// PeekByte returns the oldest received byte without consuming it.
func (s *SoftSerial) PeekByte() (byte, error) {
	if !s.IsListening() {
		return 0, ErrNoData
	}
	b, ok := s.receiver.ring.Peek()
	if !ok {
		return 0, ErrNoData
	}
	return b, nil
}

// Available returns the number of received bytes waiting to be read.
func (s *SoftSerial) Available() int {
	if !s.IsListening() {
		return 0
	}
	return s.receiver.ring.Used()
}

// Buffered is Available under the name drivers.UART expects.
func (s *SoftSerial) Buffered() int {
	return s.Available()
}

// Read copies buffered bytes into p. It never blocks: with nothing buffered
// it returns 0, nil.
func (s *SoftSerial) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := s.ReadByte()
		if err != nil {
			break
		}
		p[n] = b
		n++
	}
	return n, nil
}

// DiscardBuffered drops every unread byte.
func (s *SoftSerial) DiscardBuffered() {
	if !s.IsListening() {
		return
	}
	s.receiver.discard()
}

// WriteByte transmits one byte.
func (s *SoftSerial) WriteByte(c byte) error {
	if s.Transmit(c) == 0 {
		return ErrWriteUnconfigured
	}
	return nil
}

// Write transmits p one frame at a time and blocks for the whole duration.
func (s *SoftSerial) Write(p []byte) (int, error) {
	for i, c := range p {
		if s.Transmit(c) == 0 {
			return i, ErrWriteUnconfigured
		}
	}
	return len(p), nil
}

// idleLevel is the line level between frames, which is also the stop bit.
func (s *SoftSerial) idleLevel() bool {
	return !s.inverse
}
