//go:build attiny85

// Digispark echo firmware for softserial-host -mode check.
//
// Received bytes are held until the line has been quiet for a few character
// times and then echoed as one burst. Transmitting masks interrupts, so
// echoing byte by byte while a frame is still arriving would lose its tail.
//
// Wiring: RX = PB2 (INT0), TX = PB0. The LED on PB1 toggles per burst.
package main

import (
	"machine"
	"time"

	"softserial/core"
)

const (
	baud  = 9600
	rxPin = core.GPIOPin(2)
	txPin = core.GPIOPin(0)
	quiet = 5 * time.Millisecond
)

func main() {
	led := machine.Pin(1)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})

	core.SetPinDriver(NewTinyGPIODriver())
	core.SetInterruptController(NewTinyInterruptController())

	soft, err := core.New(core.Config{RX: rxPin, TX: txPin})
	if err != nil {
		blinkForever(led)
	}
	if err := soft.Begin(baud); err != nil {
		blinkForever(led)
	}

	var burst [core.BufferSize]byte
	for {
		n := soft.Available()
		if n == 0 {
			continue
		}
		time.Sleep(quiet)
		if soft.Available() != n {
			continue
		}

		m, _ := soft.Read(burst[:])
		soft.Write(burst[:m])
		led.Set(!led.Get())
	}
}

// blinkForever signals a setup failure; the part has no console.
func blinkForever(led machine.Pin) {
	for {
		led.Set(!led.Get())
		time.Sleep(100 * time.Millisecond)
	}
}
