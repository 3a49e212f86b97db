package core

import (
	"strings"
	"testing"
)

func TestEventsRecordLifecycle(t *testing.T) {
	h := newHarness(t)
	ClearEvents()
	defer ClearEvents()

	s := h.port(t, Config{RX: 2, TX: 3, Receiver: &Receiver{}})
	s.Begin(9600)
	s.Begin(1234)
	s.End()

	var types []uint8
	for _, evt := range Events() {
		types = append(types, evt.Type)
	}
	want := []uint8{EvtListen, EvtBegin, EvtBadBaud, EvtEnd}
	if len(types) != len(want) {
		t.Fatalf("Events = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %d, want %d", i, types[i], want[i])
		}
	}
}

func TestEventRingKeepsNewest(t *testing.T) {
	ClearEvents()
	defer ClearEvents()

	for i := uint32(0); i < EventRingSize+3; i++ {
		recordEvent(EvtBegin, i)
	}
	evts := Events()
	if len(evts) != EventRingSize {
		t.Fatalf("Expected %d events, got %d", EventRingSize, len(evts))
	}
	if evts[0].Value != 3 || evts[len(evts)-1].Value != EventRingSize+2 {
		t.Errorf("Expected values 3..%d, got %d..%d", EventRingSize+2, evts[0].Value, evts[len(evts)-1].Value)
	}
}

func TestDebugWriter(t *testing.T) {
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	defer SetDebugWriter(func(string) {})
	defer SetDebugEnabled(false)

	DebugPrintln("hidden")
	if len(lines) != 0 {
		t.Fatalf("DebugPrintln wrote while disabled: %v", lines)
	}

	SetDebugEnabled(true)
	DebugPrintln("shown")
	if len(lines) != 1 || lines[0] != "shown" {
		t.Fatalf("Expected [shown], got %v", lines)
	}

	lines = nil
	ClearEvents()
	recordEvent(EvtBadBaud, 1234)
	DumpEvents()
	ClearEvents()
	if len(lines) != 3 || !strings.Contains(lines[1], "BAD_BAUD! v=1234") {
		t.Errorf("unexpected dump: %v", lines)
	}
}

func TestUtoa(t *testing.T) {
	testCases := map[uint32]string{
		0:          "0",
		7:          "7",
		9600:       "9600",
		115200:     "115200",
		4294967295: "4294967295",
	}
	for in, want := range testCases {
		if got := utoa(in); got != want {
			t.Errorf("utoa(%d) = %q, want %q", in, got, want)
		}
	}
}
