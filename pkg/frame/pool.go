package frame

import "sync"

// PoolCap is the number of preallocated frames: one being displayed,
// one being received, and at most one pending. The ownership protocol
// never needs more.
const PoolCap = 3

// Pool hands out exclusive ownership of preallocated frames. It never
// grows after construction: running out means the ownership protocol
// was violated, which is fatal rather than recoverable.
type Pool struct {
	mu   sync.Mutex
	free []*Frame
}

// NewPool preallocates PoolCap frames.
func NewPool() *Pool {
	p := &Pool{free: make([]*Frame, 0, PoolCap)}
	for i := 0; i < PoolCap; i++ {
		p.free = append(p.free, new(Frame))
	}
	return p
}

// Get transfers ownership of a free frame to the caller.
func (p *Pool) Get() *Frame {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		panic("frame: pool exhausted")
	}
	f := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	return f
}

// Put returns ownership of f to the pool.
func (p *Pool) Put(f *Frame) {
	if f == nil {
		panic("frame: freeing nil frame")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == PoolCap {
		panic("frame: freeing into a full pool")
	}
	p.free = append(p.free, f)
}

// Free reports how many frames are currently unallocated.
func (p *Pool) Free() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
