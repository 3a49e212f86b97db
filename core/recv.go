package core

// recv decodes one frame. It runs inside the RX edge interrupt, which fires
// on both edges, so it first checks that the line is at the start-bit level.
func (s *SoftSerial) recv() {
	if s.rx.read() != s.inverse {
		return
	}

	d := MustDelay()
	p := &s.profile

	// Wait about half a bit to sample in the middle of each bit.
	d.Delay(p.RxCentering)

	var v uint8
	for mask := uint8(1); mask != 0; mask <<= 1 {
		d.Delay(p.RxIntrabit)
		notMask := ^mask
		if s.rx.read() {
			v |= mask
		} else {
			// keeps both branches the same length
			v &= notMask
		}
	}

	// skip the stop bit
	d.Delay(p.RxStopbit)

	if s.inverse {
		v = ^v
	}

	if !s.receiver.ring.Put(v) {
		s.overflow = true
	}
}
