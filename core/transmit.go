package core

// Transmit sends one frame and returns the number of bytes sent, 0 or 1.
// Without a transmit delay it sets the sticky write error and leaves the
// line untouched. Interrupts stay disabled from the start bit until the
// stop level is on the line, so no port receives while any port transmits.
func (s *SoftSerial) Transmit(b byte) int {
	p := s.profile
	if !p.CanTransmit() {
		s.writeError = true
		recordEvent(EvtWriteRefused, uint32(b))
		return 0
	}
	d := MustDelay()

	s.sendFrame(d, p, b)

	// Hold the stop bit for a full bit time.
	d.Delay(p.TxDelay)
	return 1
}

func (s *SoftSerial) sendFrame(d Delayer, p Profile, b byte) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	idle := s.idleLevel()

	// start bit
	s.tx.write(!idle)
	d.Delay(p.startBitDelay())

	for mask := uint8(1); mask != 0; mask <<= 1 {
		s.tx.write((b&mask != 0) != s.inverse)
		d.Delay(p.TxDelay)
	}

	// restore pin to natural state
	s.tx.write(idle)
}
