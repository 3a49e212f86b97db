//go:build !tinygo

package core

// State is the saved nesting depth on regular Go.
type State int

// masked counts open critical sections. Host builds have no interrupts; the
// count lets tests see whether a line change happened inside one.
var masked int

func disableInterrupts() State {
	masked++
	return State(masked - 1)
}

func restoreInterrupts(state State) {
	masked = int(state)
}

func interruptsMasked() bool {
	return masked > 0
}
