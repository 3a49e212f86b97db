package core

import "testing"

func TestRingBufferFIFO(t *testing.T) {
	var rb RingBuffer

	if _, ok := rb.Get(); ok {
		t.Fatal("Get on empty buffer returned data")
	}

	for i := 0; i < 10; i++ {
		if !rb.Put(byte(i)) {
			t.Fatalf("Put(%d) failed on a non-full buffer", i)
		}
	}
	if rb.Used() != 10 {
		t.Errorf("Expected 10 bytes used, got %d", rb.Used())
	}

	if b, ok := rb.Peek(); !ok || b != 0 {
		t.Errorf("Peek = %d,%v, want 0,true", b, ok)
	}
	if rb.Used() != 10 {
		t.Errorf("Peek consumed data: %d bytes used", rb.Used())
	}

	for i := 0; i < 10; i++ {
		b, ok := rb.Get()
		if !ok || b != byte(i) {
			t.Fatalf("Get #%d = %d,%v, want %d,true", i, b, ok, i)
		}
	}
	if rb.Used() != 0 {
		t.Errorf("Expected empty buffer, got %d bytes", rb.Used())
	}
}

func TestRingBufferFullKeepsOldest(t *testing.T) {
	var rb RingBuffer
	capacity := rb.Size() - 1

	for i := 0; i < capacity; i++ {
		if !rb.Put(byte(i)) {
			t.Fatalf("Put(%d) failed before the buffer was full", i)
		}
	}
	if rb.Put(0xAA) {
		t.Fatal("Put succeeded on a full buffer")
	}
	if rb.Used() != capacity {
		t.Errorf("Expected %d bytes used, got %d", capacity, rb.Used())
	}

	b, _ := rb.Get()
	if b != 0 {
		t.Errorf("Expected oldest byte 0 to survive, got %d", b)
	}
}

func TestRingBufferWrapAround(t *testing.T) {
	var rb RingBuffer

	// Walk the indices past the end of the array several times.
	next := byte(0)
	want := byte(0)
	for round := 0; round < 5*int(BufferSize); round++ {
		rb.Put(next)
		next++
		if round%3 == 2 {
			for rb.Used() > 0 {
				b, _ := rb.Get()
				if b != want {
					t.Fatalf("round %d: got %d, want %d", round, b, want)
				}
				want++
			}
		}
	}
}

func TestRingBufferClear(t *testing.T) {
	var rb RingBuffer
	rb.Put(1)
	rb.Put(2)
	rb.Get()

	rb.Clear()

	if rb.Used() != 0 {
		t.Errorf("Expected empty buffer after Clear, got %d", rb.Used())
	}
	if rb.head.Get() != 0 || rb.tail.Get() != 0 {
		t.Errorf("Expected indices reset, got head=%d tail=%d", rb.head.Get(), rb.tail.Get())
	}
}

func TestRingBufferUsedAcrossWrap(t *testing.T) {
	var rb RingBuffer
	testCases := []struct {
		head, tail uint8
		want       int
	}{
		{0, 0, 0},
		{BufferSize - 4, 3, 7},
		{5, 4, int(BufferSize) - 1},
		{BufferSize - 1, 0, 1},
	}

	for _, tc := range testCases {
		rb.head.Set(tc.head)
		rb.tail.Set(tc.tail)
		if got := rb.Used(); got != tc.want {
			t.Errorf("head=%d tail=%d: Used = %d, want %d", tc.head, tc.tail, got, tc.want)
		}
	}
}
