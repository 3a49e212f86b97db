//go:build atmega328p

package atmega328p

import (
	"device/avr"
	"errors"
	"machine"
	"runtime/interrupt"

	"softserial/core"
)

// EICRA / EIMSK bits (ATmega328P datasheet, section 13.2)
const (
	isc00 = 1 << 0
	isc01 = 1 << 1
	isc10 = 1 << 2
	isc11 = 1 << 3
	int0  = 1 << 0
	int1  = 1 << 1
)

var errNoExternalInterrupt = errors.New("pin has no external interrupt")

// edgeHandler is what both INT0 and INT1 dispatch to
var edgeHandler func()

// InterruptController implements core.InterruptController over INT0
// (PD2) and INT1 (PD3). Create it once; it registers both vectors.
type InterruptController struct{}

// NewInterruptController registers the INT0 and INT1 vectors
func NewInterruptController() *InterruptController {
	interrupt.New(avr.IRQ_INT0, handleINT0)
	interrupt.New(avr.IRQ_INT1, handleINT1)
	return &InterruptController{}
}

func handleINT0(interrupt.Interrupt) { dispatch() }
func handleINT1(interrupt.Interrupt) { dispatch() }

func dispatch() {
	if edgeHandler != nil {
		edgeHandler()
	}
}

// EnableEdge triggers the pin's external interrupt on any logical change
func (c *InterruptController) EnableEdge(pin core.GPIOPin, handler func()) error {
	edgeHandler = handler
	switch machine.Pin(pin) {
	case machine.PD2:
		avr.EICRA.ClearBits(isc01)
		avr.EICRA.SetBits(isc00)
		avr.EIMSK.SetBits(int0)
	case machine.PD3:
		avr.EICRA.ClearBits(isc11)
		avr.EICRA.SetBits(isc10)
		avr.EIMSK.SetBits(int1)
	default:
		return errNoExternalInterrupt
	}
	return nil
}

// DisableEdge masks the pin's external interrupt
func (c *InterruptController) DisableEdge(pin core.GPIOPin) {
	switch machine.Pin(pin) {
	case machine.PD2:
		avr.EIMSK.ClearBits(int0)
	case machine.PD3:
		avr.EIMSK.ClearBits(int1)
	}
}

func (c *InterruptController) EnableGlobal()  { avr.Asm("sei") }
func (c *InterruptController) DisableGlobal() { avr.Asm("cli") }
