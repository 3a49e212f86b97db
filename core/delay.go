package core

// Delayer is the calibrated busy-wait used for every bit boundary.
// Delay must burn exactly the requested number of loop units without
// yielding, so it is only ever called with interrupts disabled or from the
// receive interrupt itself.
type Delayer interface {
	Delay(units uint16)
}

// DelayFunc adapts a plain function to Delayer.
type DelayFunc func(units uint16)

// Delay calls f(units).
func (f DelayFunc) Delay(units uint16) { f(units) }

// Global singleton used by the bit engines.
var delayer Delayer = defaultDelayer()

// SetDelayer replaces the delay loop. Tables must be re-calibrated against
// any loop other than the default one.
func SetDelayer(d Delayer) {
	delayer = d
}

// MustDelay returns the configured delay loop or panics if missing.
func MustDelay() Delayer {
	if delayer == nil {
		panic("delay loop not configured")
	}
	return delayer
}
