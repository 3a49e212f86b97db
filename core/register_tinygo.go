//go:build tinygo

package core

import "runtime/volatile"

// reg8 keeps ring indices in memory so the interrupt and the main loop
// always see each other's updates.
type reg8 = volatile.Register8
