//go:build atmega328p

// Arduino Uno bridge: bytes from the hardware UART go out on the soft serial
// port and bytes received on it come back over the hardware UART.
//
// Wiring: soft RX = D2 (INT0), soft TX = D4.
package main

import (
	"machine"

	"softserial/core"
	"softserial/hal/atmega328p"
)

const (
	softBaud = 9600
	softRX   = machine.D2
	softTX   = machine.D4
)

func main() {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 57600})

	core.SetDebugWriter(func(s string) { println(s) })
	core.SetPinDriver(atmega328p.NewGPIODriver())
	core.SetInterruptController(atmega328p.NewInterruptController())

	soft, err := core.New(core.Config{
		RX: core.GPIOPin(softRX),
		TX: core.GPIOPin(softTX),
	})
	if err != nil {
		println("softserial:", err.Error())
		return
	}
	if err := soft.Begin(softBaud); err != nil {
		println("softserial:", err.Error())
		core.DumpEvents()
		return
	}

	overflowReported := false
	for {
		for uart.Buffered() > 0 {
			b, err := uart.ReadByte()
			if err != nil {
				break
			}
			soft.WriteByte(b)
		}

		for soft.Available() > 0 {
			b, err := soft.ReadByte()
			if err != nil {
				break
			}
			uart.WriteByte(b)
		}

		if soft.Overflow() && !overflowReported {
			core.SetDebugEnabled(true)
			core.DebugPrintln("softserial: receive buffer overflow")
			overflowReported = true
		}
	}
}
