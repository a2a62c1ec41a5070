package bloom

import "time"

// FrameFunc is a callback run once at the next rendered frame. now is the
// frame timestamp on the driver's monotonic clock.
type FrameFunc func(now time.Duration)

// FrameDriver schedules callbacks for the next display frame, the way a
// browser's requestAnimationFrame does. Each request fires exactly once.
type FrameDriver interface {
	RequestFrame(fn FrameFunc)
}

// FrameQueue is a FrameDriver that holds requests until Flush. Scenes and
// the terminal loop flush it once per frame; tests flush it by hand.
type FrameQueue struct {
	pending []FrameFunc
	running []FrameFunc
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	q.pending = append(q.pending, fn)
}

// Pending returns the number of callbacks waiting for the next Flush.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Flush runs every callback queued before the call, in request order, and
// returns how many ran. Callbacks requested while flushing wait for the next
// Flush.
func (q *FrameQueue) Flush(now time.Duration) int {
	if len(q.pending) == 0 {
		return 0
	}
	q.running, q.pending = q.pending, q.running[:0]
	for i, fn := range q.running {
		fn(now)
		q.running[i] = nil
	}
	n := len(q.running)
	q.running = q.running[:0]
	return n
}
