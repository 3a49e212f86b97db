package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event records a lifecycle step of a soft serial port for post-mortem
// analysis. Events are only recorded from the main loop, never from the
// receive interrupt.
type Event struct {
	Type  uint8  // Event type code
	Value uint32 // Context-dependent value
}

// Event type codes
const (
	EvtBegin        = 1 // Begin with a supported baud (value: baud)
	EvtBadBaud      = 2 // Begin with no table row (value: baud)
	EvtListen       = 3 // listener changed (value: RX pin)
	EvtEnd          = 4 // End called (value: RX pin)
	EvtWriteRefused = 5 // Transmit without a profile (value: byte)
)

const (
	EventRingSize = 8 // Keep last 8 events
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	eventRing     [EventRingSize]Event
	eventRingHead uint8
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

func recordEvent(eventType uint8, value uint32) {
	idx := eventRingHead
	eventRing[idx] = Event{Type: eventType, Value: value}
	eventRingHead = (idx + 1) % EventRingSize
}

// Events returns the recorded events, oldest first.
func Events() []Event {
	out := make([]Event, 0, EventRingSize)
	start := eventRingHead
	for i := uint8(0); i < EventRingSize; i++ {
		evt := eventRing[(start+i)%EventRingSize]
		if evt.Type == 0 {
			continue // Empty slot
		}
		out = append(out, evt)
	}
	return out
}

// DumpEvents writes the event ring through the debug writer.
func DumpEvents() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[SOFTSERIAL] === Event Dump ===")
	for _, evt := range Events() {
		var name string
		switch evt.Type {
		case EvtBegin:
			name = "BEGIN"
		case EvtBadBaud:
			name = "BAD_BAUD!"
		case EvtListen:
			name = "LISTEN"
		case EvtEnd:
			name = "END"
		case EvtWriteRefused:
			name = "WRITE_REFUSED"
		default:
			name = "UNKNOWN"
		}
		debugPrintln("[SOFTSERIAL] " + name + " v=" + utoa(evt.Value))
	}
	debugPrintln("[SOFTSERIAL] === End Dump ===")
}

// ClearEvents clears the event ring
func ClearEvents() {
	for i := range eventRing {
		eventRing[i] = Event{}
	}
	eventRingHead = 0
}
