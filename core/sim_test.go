package core

import (
	"errors"
	"testing"
)

// simClock counts delay units instead of burning them.
type simClock struct {
	now uint32
}

func (c *simClock) Delay(units uint16) {
	c.now += uint32(units)
}

type edge struct {
	at     uint32
	high   bool
	masked bool
}

// simWire is one signal line. Writes are time-stamped with the simulated
// clock and reads return the level at the current simulated time, so a
// frame written by one port can be replayed into another port's receiver.
type simWire struct {
	clock   *simClock
	initial bool
	edges   []edge
}

func (w *simWire) levelAt(t uint32) bool {
	lvl := w.initial
	for _, e := range w.edges {
		if e.at > t {
			break
		}
		lvl = e.high
	}
	return lvl
}

func (w *simWire) drive(high bool) {
	w.edges = append(w.edges, edge{at: w.clock.now, high: high, masked: interruptsMasked()})
}

func (w *simWire) Get() uint8 {
	if w.levelAt(w.clock.now) {
		return 1
	}
	return 0
}

func (w *simWire) SetBits(value uint8) {
	if value != 0 {
		w.drive(true)
	}
}

func (w *simWire) ClearBits(value uint8) {
	if value != 0 {
		w.drive(false)
	}
}

var errNoSuchPin = errors.New("no such pin")

// fakePins maps pin numbers to wires. Two pins may share a wire to model a
// loopback cable.
type fakePins struct {
	clock   *simClock
	wires   map[GPIOPin]*simWire
	pullUps map[GPIOPin]bool
	outputs map[GPIOPin]bool
}

func (f *fakePins) wire(pin GPIOPin) *simWire {
	w, ok := f.wires[pin]
	if !ok {
		w = &simWire{clock: f.clock}
		f.wires[pin] = w
	}
	return w
}

// connect makes pin b the same wire as pin a.
func (f *fakePins) connect(a, b GPIOPin) {
	f.wires[b] = f.wire(a)
}

func (f *fakePins) ConfigureInput(pin GPIOPin, pullUp bool) error {
	if pin == 0xFF {
		return errNoSuchPin
	}
	f.pullUps[pin] = pullUp
	w := f.wire(pin)
	if len(w.edges) == 0 {
		w.initial = pullUp
	}
	return nil
}

func (f *fakePins) ConfigureOutput(pin GPIOPin, high bool) error {
	if pin == 0xFF {
		return errNoSuchPin
	}
	f.outputs[pin] = true
	f.wire(pin).drive(high)
	return nil
}

func (f *fakePins) InputPort(pin GPIOPin) (Port, uint8, error) {
	return f.wire(pin), 1, nil
}

func (f *fakePins) OutputPort(pin GPIOPin) (Port, uint8, error) {
	return f.wire(pin), 1, nil
}

type fakeIRQ struct {
	edgeErr       error
	handlers      map[GPIOPin]func()
	disabled      []GPIOPin
	globalEnabled bool
}

func (f *fakeIRQ) EnableEdge(pin GPIOPin, handler func()) error {
	if f.edgeErr != nil {
		return f.edgeErr
	}
	f.handlers[pin] = handler
	return nil
}

func (f *fakeIRQ) DisableEdge(pin GPIOPin) {
	delete(f.handlers, pin)
	f.disabled = append(f.disabled, pin)
}

func (f *fakeIRQ) EnableGlobal()  { f.globalEnabled = true }
func (f *fakeIRQ) DisableGlobal() { f.globalEnabled = false }

type harness struct {
	clock *simClock
	pins  *fakePins
	irq   *fakeIRQ
}

// newHarness installs simulated HAL drivers for the duration of the test.
func newHarness(t *testing.T) *harness {
	t.Helper()
	clock := &simClock{}
	h := &harness{
		clock: clock,
		pins: &fakePins{
			clock:   clock,
			wires:   make(map[GPIOPin]*simWire),
			pullUps: make(map[GPIOPin]bool),
			outputs: make(map[GPIOPin]bool),
		},
		irq: &fakeIRQ{handlers: make(map[GPIOPin]func())},
	}
	SetPinDriver(h.pins)
	SetInterruptController(h.irq)
	SetDelayer(clock)
	t.Cleanup(func() {
		SetPinDriver(nil)
		SetInterruptController(nil)
		SetDelayer(defaultDelayer())
	})
	return h
}

func (h *harness) port(t *testing.T, cfg Config) *SoftSerial {
	t.Helper()
	s, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", cfg, err)
	}
	return s
}

// link builds a listener on its own receiver and a sender on another one,
// with the sender's TX wired to the listener's RX. Both run at baud.
func (h *harness) link(t *testing.T, baud uint32, inverse bool) (listener, sender *SoftSerial, r *Receiver) {
	t.Helper()
	r = &Receiver{}
	listener = h.port(t, Config{RX: 2, TX: 3, InverseLogic: inverse, Receiver: r})
	h.pins.connect(2, 5)
	sender = h.port(t, Config{RX: 4, TX: 5, InverseLogic: inverse, Receiver: &Receiver{}})

	if err := listener.Begin(baud); err != nil {
		t.Fatalf("listener Begin(%d) failed: %v", baud, err)
	}
	if err := sender.Begin(baud); err != nil {
		t.Fatalf("sender Begin(%d) failed: %v", baud, err)
	}
	return listener, sender, r
}

// send transmits b from the sender and replays the frame into r as the
// edge interrupt would, starting at the start-bit edge.
func (h *harness) send(t *testing.T, sender *SoftSerial, r *Receiver, b byte) {
	t.Helper()
	start := h.clock.now
	if n := sender.Transmit(b); n != 1 {
		t.Fatalf("Transmit(0x%02X) = %d, want 1", b, n)
	}
	end := h.clock.now

	h.clock.now = start
	r.HandleInterrupt()
	if h.clock.now < end {
		h.clock.now = end
	}
}
