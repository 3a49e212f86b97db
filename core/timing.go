package core

// Profile holds the delay-loop counts for one baud rate.
// All values are in Delayer units and already account for the fixed overhead
// of the code around each delay, so they are only valid for the loop they were
// calibrated against.
type Profile struct {
	RxCentering uint16 // start edge to middle of the start bit
	RxIntrabit  uint16 // between two data samples
	RxStopbit   uint16 // last data sample to end of the stop bit
	TxDelay     uint16 // one transmitted bit
}

// CanTransmit reports whether the profile holds a usable transmit delay.
// A zero TxDelay is the "unconfigured" sentinel.
func (p Profile) CanTransmit() bool {
	return p.TxDelay != 0
}

// CanReceive reports whether reception can be enabled with this profile.
func (p Profile) CanReceive() bool {
	return p.RxStopbit != 0
}

// delayRow is one line of a clock-specific delay table
type delayRow struct {
	baud    uint32
	profile Profile
}

// LookupProfile returns the profile for an exact baud match in the compiled
// table, or the zero Profile when the rate is not supported.
func LookupProfile(baud uint32) Profile {
	return lookupIn(delayTable, baud)
}

func lookupIn(table []delayRow, baud uint32) Profile {
	for i := range table {
		if table[i].baud == baud {
			return table[i].profile
		}
	}
	return Profile{}
}

// SupportedBauds lists the baud rates of the compiled table, fastest first.
func SupportedBauds() []uint32 {
	bauds := make([]uint32, len(delayTable))
	for i := range delayTable {
		bauds[i] = delayTable[i].baud
	}
	return bauds
}

// startBitDelay is the length of the transmitted start bit.
// The adjustment compensates for the extra work done before the first data bit.
func (p Profile) startBitDelay() uint16 {
	return uint16(int(p.TxDelay) + XmitStartAdjustment)
}
