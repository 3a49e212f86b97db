//go:build tinygo

package core

import "runtime/volatile"

// tunedDelay counts a volatile register down to zero. The counter lives in
// a volatile so the compiler keeps every iteration; on AVR each pass has a
// fixed cycle cost, which is what the delay tables are calibrated against.
type tunedDelay struct{}

func (tunedDelay) Delay(units uint16) {
	var n volatile.Register16
	n.Set(units)
	for n.Get() != 0 {
		n.Set(n.Get() - 1)
	}
}

func defaultDelayer() Delayer {
	return tunedDelay{}
}
