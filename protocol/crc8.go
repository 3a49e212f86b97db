package protocol

import "github.com/sigurn/crc8"

var frameCRCTable = crc8.MakeTable(crc8.CRC8)

// Checksum returns the CRC-8 (poly 0x07, init 0x00) of data.
func Checksum(data []byte) uint8 {
	return crc8.Checksum(data, frameCRCTable)
}
