//go:build !tinygo

package core

// reg8 stands in for volatile.Register8 on regular Go. It remembers whether
// the last Set happened inside a critical section.
type reg8 struct {
	v      uint8
	masked bool
}

func (r *reg8) Get() uint8 { return r.v }

func (r *reg8) Set(v uint8) {
	r.v = v
	r.masked = interruptsMasked()
}
