package bluefruit

import "errors"

// ErrQueueFull is returned by Enqueue when the queue is at capacity.
var ErrQueueFull = errors.New("frame queue full")

// FrameQueue is a fixed-capacity FIFO of pre-encoded frames, used to stage
// low-latency outgoing frames ahead of time so they can be drained to the
// transport one at a time without re-encoding. Occupancy is tracked with an
// explicit count, so an all-zero frame is a valid element.
//
// A FrameQueue is intended for a single producer and a single consumer;
// it does no locking of its own.
type FrameQueue struct {
	slots []Frame
	read  int
	write int
	count int
}

// NewFrameQueue creates a queue holding at most capacity frames.
func NewFrameQueue(capacity int) *FrameQueue {
	return &FrameQueue{slots: make([]Frame, capacity)}
}

// Enqueue puts a frame at the end of the queue.
func (q *FrameQueue) Enqueue(f Frame) error {
	if q.count == len(q.slots) {
		return ErrQueueFull
	}
	q.slots[q.write] = f
	q.write = (q.write + 1) % len(q.slots)
	q.count++
	return nil
}

// Dequeue removes the oldest frame from the queue.
// ok is false if the queue is empty.
func (q *FrameQueue) Dequeue() (f Frame, ok bool) {
	if q.count == 0 {
		return f, false
	}
	f = q.slots[q.read]
	q.read = (q.read + 1) % len(q.slots)
	q.count--
	return f, true
}

// Len returns the number of queued frames.
func (q *FrameQueue) Len() int { return q.count }

// Cap returns the queue's capacity.
func (q *FrameQueue) Cap() int { return len(q.slots) }
