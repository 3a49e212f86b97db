//go:build cpu16mhz || (!cpu8mhz && !cpu16m5hz && !cpu20mhz && !digispark && (arduino || arduino_nano || !tinygo))

package core

// ClockHz is the CPU clock the delay table was calibrated for.
const ClockHz = 16000000

// XmitStartAdjustment lengthens the transmitted start bit.
const XmitStartAdjustment = 0

var delayTable = table16MHz
