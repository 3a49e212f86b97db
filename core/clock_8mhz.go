//go:build cpu8mhz

package core

// ClockHz is the CPU clock the delay table was calibrated for.
const ClockHz = 8000000

// XmitStartAdjustment lengthens the transmitted start bit.
const XmitStartAdjustment = 4

var delayTable = table8MHz
