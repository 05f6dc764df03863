// Package mailbox moves completions of asynchronous work back onto the frame goroutine.
package mailbox

import "sync"

// Mailbox is a FIFO of callbacks posted from any goroutine and run by the frame goroutine when it drains.
type Mailbox struct {
	mu      sync.Mutex
	pending []func()
}

// New creates an empty mailbox.
func New() *Mailbox {
	return &Mailbox{}
}

// Post queues fn to run on the next Drain. Safe to call from any goroutine.
func (m *Mailbox) Post(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	m.pending = append(m.pending, fn)
	m.mu.Unlock()
}

// Drain runs every callback queued before the call, in post order. Callbacks posted while draining run on the next Drain.
//
// Returns:
//   - int: number of callbacks run
func (m *Mailbox) Drain() int {
	m.mu.Lock()
	batch := m.pending
	m.pending = nil
	m.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Len returns the number of queued callbacks.
func (m *Mailbox) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}
