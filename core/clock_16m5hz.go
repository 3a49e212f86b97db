//go:build cpu16m5hz || (!cpu8mhz && !cpu16mhz && !cpu20mhz && digispark)

package core

// ClockHz is the CPU clock the delay table was calibrated for.
const ClockHz = 16500000

// XmitStartAdjustment lengthens the transmitted start bit.
const XmitStartAdjustment = 0

var delayTable = table16M5Hz
