//go:build cpu20mhz

package core

// ClockHz is the CPU clock the delay table was calibrated for.
const ClockHz = 20000000

// XmitStartAdjustment lengthens the transmitted start bit.
const XmitStartAdjustment = 6

var delayTable = table20MHz
