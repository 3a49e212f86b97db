package core

// BufferSize is the capacity of the shared receive ring. One slot is kept
// free to tell full from empty, so at most BufferSize-1 bytes are held.
const BufferSize uint8 = 64

// RingBuffer is a single-producer (receive interrupt) / single-consumer
// (main loop) byte ring. tail is the next slot to write, head the next byte
// to read.
type RingBuffer struct {
	buf  [BufferSize]byte
	head reg8
	tail reg8
}

// Size returns the total capacity of the buffer in bytes.
func (rb *RingBuffer) Size() int {
	return int(BufferSize)
}

// Used returns how many unread bytes the buffer holds.
func (rb *RingBuffer) Used() int {
	return (int(rb.tail.Get()) + int(BufferSize) - int(rb.head.Get())) % int(BufferSize)
}

// Put stores a byte. It returns false and leaves the buffer untouched when
// the buffer is full; existing data is never overwritten.
func (rb *RingBuffer) Put(b byte) bool {
	t := rb.tail.Get()
	next := (t + 1) % BufferSize
	if next == rb.head.Get() {
		return false
	}
	rb.buf[t] = b     // 1) write data
	rb.tail.Set(next) // 2) publish
	return true
}

// Get pops the oldest byte. It returns (0, false) when empty.
func (rb *RingBuffer) Get() (byte, bool) {
	h := rb.head.Get()
	if h == rb.tail.Get() {
		return 0, false
	}
	b := rb.buf[h]
	rb.head.Set((h + 1) % BufferSize)
	return b, true
}

// Peek returns the oldest byte without consuming it.
func (rb *RingBuffer) Peek() (byte, bool) {
	h := rb.head.Get()
	if h == rb.tail.Get() {
		return 0, false
	}
	return rb.buf[h], true
}

// Clear resets the head and tail indices to zero, dropping unread data.
// Callers running outside the receive interrupt must hold a critical section.
func (rb *RingBuffer) Clear() {
	rb.head.Set(0)
	rb.tail.Set(0)
}
