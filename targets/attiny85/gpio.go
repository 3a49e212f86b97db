//go:build attiny85

package main

import (
	"device/avr"
	"errors"
	"machine"

	"softserial/core"
)

var errInvalidPin = errors.New("invalid pin")

// TinyGPIODriver implements core.PinDriver for the ATtiny85, which only
// has port B (PB0..PB5).
type TinyGPIODriver struct{}

func NewTinyGPIODriver() *TinyGPIODriver {
	return &TinyGPIODriver{}
}

func (d *TinyGPIODriver) ConfigureInput(pin core.GPIOPin, pullUp bool) error {
	if pin > 5 {
		return errInvalidPin
	}
	mode := machine.PinInput
	if pullUp {
		mode = machine.PinInputPullup
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (d *TinyGPIODriver) ConfigureOutput(pin core.GPIOPin, high bool) error {
	if pin > 5 {
		return errInvalidPin
	}
	p := machine.Pin(pin)
	p.Set(high)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(high)
	return nil
}

func (d *TinyGPIODriver) InputPort(pin core.GPIOPin) (core.Port, uint8, error) {
	if pin > 5 {
		return nil, 0, errInvalidPin
	}
	return avr.PINB, 1 << pin, nil
}

func (d *TinyGPIODriver) OutputPort(pin core.GPIOPin) (core.Port, uint8, error) {
	if pin > 5 {
		return nil, 0, errInvalidPin
	}
	return avr.PORTB, 1 << pin, nil
}
