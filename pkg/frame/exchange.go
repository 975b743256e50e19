package frame

import "sync"

// Exchange hands the newest completed frame from the decoder to the
// display task through a single pending slot. A pending frame that was
// never displayed is dropped when a newer one arrives; frames are
// never queued, so together with the pool at most three frames are
// ever live regardless of input rate.
//
// Critical sections bound pointer swaps only: no I/O, no allocation.
type Exchange struct {
	mu      sync.Mutex
	pool    *Pool
	pending *Frame
	drops   uint64
}

// NewExchange creates an exchange whose dropped and consumed frames
// return to pool.
func NewExchange(pool *Pool) *Exchange {
	return &Exchange{pool: pool}
}

// Publish installs done as the pending frame, dropping any previous
// undisplayed frame, and returns a fresh frame for the caller to keep
// receiving into. A fresh frame is guaranteed available: publishing
// releases at least as many frames as it takes.
func (e *Exchange) Publish(done *Frame) *Frame {
	e.mu.Lock()
	if e.pending != nil {
		e.pool.Put(e.pending)
		e.drops++
	}
	e.pending = done
	e.mu.Unlock()
	return e.pool.Get()
}

// TakePending swaps the pending frame with current if one is waiting
// and returns the frame to display; the superseded current frame goes
// back to the pool. Without a pending frame, current is returned
// untouched. Called by the display task at row-1 ticks only.
func (e *Exchange) TakePending(current *Frame) *Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending == nil {
		return current
	}
	next := e.pending
	e.pending = nil
	e.pool.Put(current)
	return next
}

// Drops reports how many completed frames were superseded before ever
// being displayed.
func (e *Exchange) Drops() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drops
}
