package scenes

import "sync"

// jobs runs blocking work on goroutines and hands the results back to the
// update goroutine, which applies them in Drain.
type jobs struct {
	mu      sync.Mutex
	done    []func()
	running int
	closed  bool
}

// Go runs work on a new goroutine. The function work returns is applied by
// the next Drain; a nil result is skipped.
func (j *jobs) Go(work func() func()) {
	j.mu.Lock()
	j.running++
	j.mu.Unlock()

	go func() {
		apply := work()
		j.mu.Lock()
		defer j.mu.Unlock()
		if j.closed {
			return
		}
		j.done = append(j.done, apply)
	}()
}

// Drain applies finished results in completion order.
func (j *jobs) Drain() {
	j.mu.Lock()
	done := j.done
	j.done = nil
	j.running -= len(done)
	j.mu.Unlock()

	for _, apply := range done {
		if apply != nil {
			apply()
		}
	}
}

// Busy reports whether any job has not been applied yet.
func (j *jobs) Busy() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running > 0
}

// Close drops results that finish after the scene unmounted.
func (j *jobs) Close() {
	j.mu.Lock()
	j.closed = true
	j.done = nil
	j.running = 0
	j.mu.Unlock()
}
