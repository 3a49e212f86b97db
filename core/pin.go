package core

// PinBinding is a pin resolved to its register and bit mask once, so the
// bit engines never go through the generic GPIO driver.
type PinBinding struct {
	port Port
	mask uint8
}

func bindInput(d PinDriver, pin GPIOPin) (PinBinding, error) {
	port, mask, err := d.InputPort(pin)
	if err != nil {
		return PinBinding{}, err
	}
	return PinBinding{port: port, mask: mask}, nil
}

func bindOutput(d PinDriver, pin GPIOPin) (PinBinding, error) {
	port, mask, err := d.OutputPort(pin)
	if err != nil {
		return PinBinding{}, err
	}
	return PinBinding{port: port, mask: mask}, nil
}

// Valid reports whether the binding points at a register.
func (b PinBinding) Valid() bool {
	return b.port != nil && b.mask != 0
}

func (b PinBinding) read() bool {
	return b.port.Get()&b.mask != 0
}

func (b PinBinding) write(high bool) {
	if high {
		b.port.SetBits(b.mask)
	} else {
		b.port.ClearBits(b.mask)
	}
}
