//go:build attiny85

package main

import (
	"device/avr"
	"errors"
	"runtime/interrupt"

	"softserial/core"
)

// MCUCR / GIMSK bits (ATtiny85 datasheet, section 9.3)
const (
	isc00   = 1 << 0
	isc01   = 1 << 1
	gimskI0 = 1 << 6
	int0Pin = core.GPIOPin(2) // PB2
)

var errNoExternalInterrupt = errors.New("only PB2 has an external interrupt")

var edgeHandler func()

// TinyInterruptController implements core.InterruptController over INT0.
type TinyInterruptController struct{}

func NewTinyInterruptController() *TinyInterruptController {
	interrupt.New(avr.IRQ_INT0, handleINT0)
	return &TinyInterruptController{}
}

func handleINT0(interrupt.Interrupt) {
	if edgeHandler != nil {
		edgeHandler()
	}
}

func (c *TinyInterruptController) EnableEdge(pin core.GPIOPin, handler func()) error {
	if pin != int0Pin {
		return errNoExternalInterrupt
	}
	edgeHandler = handler
	avr.MCUCR.ClearBits(isc01)
	avr.MCUCR.SetBits(isc00)
	avr.GIMSK.SetBits(gimskI0)
	return nil
}

func (c *TinyInterruptController) DisableEdge(pin core.GPIOPin) {
	if pin == int0Pin {
		avr.GIMSK.ClearBits(gimskI0)
	}
}

func (c *TinyInterruptController) EnableGlobal()  { avr.Asm("sei") }
func (c *TinyInterruptController) DisableGlobal() { avr.Asm("cli") }
