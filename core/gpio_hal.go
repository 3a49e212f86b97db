package core

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint8

// Port is an 8-bit I/O register. TinyGo's *volatile.Register8 satisfies it,
// so targets can hand out their PORTx/PINx registers directly.
type Port interface {
	Get() uint8
	SetBits(value uint8)
	ClearBits(value uint8)
}

// PinDriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
type PinDriver interface {
	// ConfigureInput configures a pin as a digital input, optionally with
	// the internal pull-up enabled
	ConfigureInput(pin GPIOPin, pullUp bool) error

	// ConfigureOutput configures a pin as a digital output driven to the
	// given level
	ConfigureOutput(pin GPIOPin, high bool) error

	// InputPort returns the register the pin level is read from and the
	// pin's bit within it
	InputPort(pin GPIOPin) (Port, uint8, error)

	// OutputPort returns the register the pin is driven through and the
	// pin's bit within it
	OutputPort(pin GPIOPin) (Port, uint8, error)
}

// Global singleton used by core code.
var pinDriver PinDriver

// SetPinDriver is called by target-specific code to register its driver.
func SetPinDriver(d PinDriver) {
	pinDriver = d
}

// MustPins returns the configured driver or panics if missing.
func MustPins() PinDriver {
	if pinDriver == nil {
		panic("GPIO driver not configured")
	}
	return pinDriver
}
