package core

// Receiver owns the receive ring and the single instance allowed to fill it.
// A target routes its external interrupt vectors to HandleInterrupt; only the
// active listener decodes anything.
type Receiver struct {
	ring   RingBuffer
	active *SoftSerial
}

var defaultReceiver Receiver

// DefaultReceiver returns the process-wide receiver used by instances that
// are not given one explicitly.
func DefaultReceiver() *Receiver {
	return &defaultReceiver
}

// Listen hands the receiver to s. It returns false, and leaves buffered data
// alone, when s already owns it. On a handoff the ring is emptied and s's
// overflow flag cleared before any further interrupt can reach it.
func (r *Receiver) Listen(s *SoftSerial) bool {
	if r.active == s {
		return false
	}
	s.overflow = false

	state := disableInterrupts()
	defer restoreInterrupts(state)

	r.ring.Clear()
	r.active = s
	return true
}

// Active returns the current listener, or nil.
func (r *Receiver) Active() *SoftSerial {
	return r.active
}

// IsActive reports whether s is the current listener.
func (r *Receiver) IsActive(s *SoftSerial) bool {
	return s != nil && r.active == s
}

// HandleInterrupt is the edge interrupt entry point.
func (r *Receiver) HandleInterrupt() {
	if s := r.active; s != nil {
		s.recv()
	}
}

// discard empties the ring under a critical section.
func (r *Receiver) discard() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	r.ring.Clear()
}
