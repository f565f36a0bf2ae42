package nkdemo

import "sync"

// Intent is a request raised outside the frame loop (key callback, signal
// handler, menu item) and applied by the loop at a fixed point each frame.
type Intent int

const (
	IntentClose Intent = iota + 1
	IntentResetCamera
	IntentResetUI
)

func (i Intent) String() string {
	switch i {
	case IntentClose:
		return "close"
	case IntentResetCamera:
		return "reset-camera"
	case IntentResetUI:
		return "reset-ui"
	default:
		return "unknown"
	}
}

// intentBuffer bounds how many distinct intents can wait between two frames.
const intentBuffer = 16

// Intents is a non-blocking queue of intents. Post is safe to call from any
// goroutine; Drain must only be called by the frame loop.
type Intents struct {
	mu      sync.Mutex
	pending []Intent
}

// NewIntents creates an empty queue.
func NewIntents() *Intents {
	return &Intents{pending: make([]Intent, 0, intentBuffer)}
}

// Post enqueues an intent without blocking. An intent that is already
// waiting is coalesced. When the buffer is full the intent is dropped and
// Post returns false.
func (q *Intents) Post(i Intent) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) >= intentBuffer {
		return false
	}
	for _, p := range q.pending {
		if p == i {
			return true
		}
	}
	q.pending = append(q.pending, i)
	return true
}

// Len returns the number of pending intents.
func (q *Intents) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain hands every pending intent to fn in posting order and empties the
// queue. Intents posted by fn itself are kept for the next Drain.
func (q *Intents) Drain(fn func(Intent)) {
	q.mu.Lock()
	batch := q.pending
	q.pending = make([]Intent, 0, intentBuffer)
	q.mu.Unlock()

	for _, i := range batch {
		fn(i)
	}
}
