//go:build tinygo && !cpu8mhz && !cpu16mhz && !cpu16m5hz && !cpu20mhz && !arduino && !arduino_nano && !digispark

package core

// There is no delay table for this clock. Build with one of the tags
// cpu8mhz, cpu16mhz, cpu16m5hz or cpu20mhz.
var _ = softserialSupportsOnly8_16_16m5_and_20MHzClocks
