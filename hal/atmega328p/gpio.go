//go:build atmega328p

// Package atmega328p provides the soft serial HAL drivers for the
// ATmega328P: GPIO over the PINx/PORTx registers and edge interrupts over
// INT0 (PD2) and INT1 (PD3). Firmware and examples for Uno-class boards
// register them with core.SetPinDriver and core.SetInterruptController.
package atmega328p

import (
	"device/avr"
	"errors"
	"machine"
	"runtime/volatile"

	"softserial/core"
)

var errInvalidPin = errors.New("invalid pin")

// GPIODriver implements core.PinDriver.
// Pin numbers follow TinyGo's machine.Pin: port B, C, D in blocks of 8.
type GPIODriver struct{}

// NewGPIODriver creates a new GPIO driver
func NewGPIODriver() *GPIODriver {
	return &GPIODriver{}
}

// ConfigureInput configures a pin as input, with pull-up when asked
func (d *GPIODriver) ConfigureInput(pin core.GPIOPin, pullUp bool) error {
	if pin >= 24 {
		return errInvalidPin
	}
	mode := machine.PinInput
	if pullUp {
		mode = machine.PinInputPullup
	}
	machine.Pin(pin).Configure(machine.PinConfig{Mode: mode})
	return nil
}

// ConfigureOutput configures a pin as output at the given level
func (d *GPIODriver) ConfigureOutput(pin core.GPIOPin, high bool) error {
	if pin >= 24 {
		return errInvalidPin
	}
	p := machine.Pin(pin)
	// Set the level first so the line never glitches to the wrong state
	p.Set(high)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Set(high)
	return nil
}

// InputPort returns the PINx register and bit of a pin
func (d *GPIODriver) InputPort(pin core.GPIOPin) (core.Port, uint8, error) {
	in, _, err := registers(pin)
	return in, 1 << (pin % 8), err
}

// OutputPort returns the PORTx register and bit of a pin
func (d *GPIODriver) OutputPort(pin core.GPIOPin) (core.Port, uint8, error) {
	_, out, err := registers(pin)
	return out, 1 << (pin % 8), err
}

func registers(pin core.GPIOPin) (in, out *volatile.Register8, err error) {
	switch pin / 8 {
	case 0:
		return avr.PINB, avr.PORTB, nil
	case 1:
		return avr.PINC, avr.PORTC, nil
	case 2:
		return avr.PIND, avr.PORTD, nil
	}
	return nil, nil, errInvalidPin
}
