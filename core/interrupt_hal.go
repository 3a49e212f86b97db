package core

// InterruptController is the external-interrupt HAL a target provides.
type InterruptController interface {
	// EnableEdge arms the pin's external interrupt on any edge and routes
	// it to handler. Every vector that can fire for the pin must end up in
	// the same handler.
	EnableEdge(pin GPIOPin, handler func()) error

	// DisableEdge masks the pin's external interrupt source
	DisableEdge(pin GPIOPin)

	// EnableGlobal sets the global interrupt enable flag
	EnableGlobal()

	// DisableGlobal clears the global interrupt enable flag
	DisableGlobal()
}

// Global singleton used by core code.
var irqController InterruptController

// SetInterruptController is called by target-specific code to register its
// interrupt controller.
func SetInterruptController(c InterruptController) {
	irqController = c
}

// MustInterrupts returns the configured controller or panics if missing.
func MustInterrupts() InterruptController {
	if irqController == nil {
		panic("interrupt controller not configured")
	}
	return irqController
}
