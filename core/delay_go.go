//go:build !tinygo

package core

// defaultDelayer is a no-op on regular Go (for testing)
func defaultDelayer() Delayer {
	return DelayFunc(func(uint16) {})
}
