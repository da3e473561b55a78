// Package scratch pools packed-pixel buffers reused across traversal passes.
package scratch

import (
	"sync"

	"github.com/gogpu/packpix/pixel"
)

// Pool is a thread-safe pool of []pixel.Word buffers grouped by length.
//
// Repeated morphology passes over one image ask for the same buffer size
// every time, so one bucket per length keeps allocation flat.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]pixel.Word
	maxSize int // max buffers per bucket, 0 or less means unlimited
}

// NewPool creates a pool keeping at most maxPerBucket buffers per length.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]pixel.Word),
		maxSize: maxPerBucket,
	}
}

// Get returns a buffer of exactly n words. Its contents are unspecified;
// callers are expected to overwrite it.
func (p *Pool) Get(n int) []pixel.Word {
	p.mu.Lock()
	bucket := p.buckets[n]
	if len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[n] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return make([]pixel.Word, n)
}

// Put returns buf to the pool. Nil buffers and buffers arriving at a full
// bucket are dropped.
func (p *Pool) Put(buf []pixel.Word) {
	if buf == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[len(buf)]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[len(buf)] = append(bucket, buf)
}

// Len returns the number of pooled buffers of length n.
func (p *Pool) Len(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[n])
}

// defaultPool is the package-level pool.
var defaultPool = NewPool(4)

// Get retrieves a buffer from the default pool.
func Get(n int) []pixel.Word {
	return defaultPool.Get(n)
}

// Put returns a buffer to the default pool.
func Put(buf []pixel.Word) {
	defaultPool.Put(buf)
}
