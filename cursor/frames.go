package cursor

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// FrameScheduler is the display timing surface the engine drives its loop with.
// RequestFrame runs fn once before the next repaint. CancelFrame is a no-op for
// ids that already fired or were never issued.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameRequest struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameScheduler advanced explicitly by the host once per
// presented frame. Callbacks requested while a frame is running are deferred
// to the next Advance.
type FrameQueue struct {
	nextID  FrameID
	pending []frameRequest
	running []frameRequest
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame schedules fn for the next Advance.
func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	q.nextID++
	q.pending = append(q.pending, frameRequest{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame drops a pending request. A request belonging to the frame that
// is currently running is skipped if it has not fired yet.
func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i := range q.pending {
		if q.pending[i].id == id {
			copy(q.pending[i:], q.pending[i+1:])
			q.pending[len(q.pending)-1] = frameRequest{}
			q.pending = q.pending[:len(q.pending)-1]
			return
		}
	}
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// Advance runs every callback requested before this call and returns how many fired.
func (q *FrameQueue) Advance() int {
	q.running = append(q.running[:0], q.pending...)
	for i := range q.pending {
		q.pending[i] = frameRequest{}
	}
	q.pending = q.pending[:0]

	fired := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		fired++
	}
	q.running = q.running[:0]
	return fired
}

// Pending returns the number of requests waiting for the next Advance.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
