// Package counter holds the in-process request counter of the posts list
// endpoint.
package counter

import "sync"

// Counter is an int64 guarded by a single mutex. The zero value is ready to
// use and starts at 0.
type Counter struct {
	mu    sync.Mutex
	value int64
}

func New() *Counter {
	return &Counter{}
}

// Increment adds one to the counter.
func (c *Counter) Increment() {
	c.mu.Lock()
	c.value++
	c.mu.Unlock()
}

// Value returns the current count without changing it.
func (c *Counter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}
