package trace

import (
	"sync"
	"sync/atomic"
)

// siteKey identifies a lexical call site
type siteKey struct {
	file string
	line int
}

// Registry holds one counter per source call site. Counters are
// created lazily on the first hit, start at zero, and live until the
// process terminates; they are never reset.
//
// The original facility incremented its counters without any
// synchronization. Counters here are atomic — a documented
// strengthening so that concurrent goroutines hitting the same site
// still produce the exact invocation count.
type Registry struct {
	sites sync.Map // siteKey -> *uint64
}

// Hit increments the counter owned by the given call site and returns
// its new value. The first hit of a site returns 1.
func (r *Registry) Hit(file string, line int) uint64 {
	key := siteKey{file: file, line: line}
	if c, ok := r.sites.Load(key); ok {
		return atomic.AddUint64(c.(*uint64), 1)
	}

	c, _ := r.sites.LoadOrStore(key, new(uint64))
	return atomic.AddUint64(c.(*uint64), 1)
}

// Count returns the current value of a site's counter without
// incrementing it. Unknown sites report 0.
func (r *Registry) Count(file string, line int) uint64 {
	c, ok := r.sites.Load(siteKey{file: file, line: line})
	if !ok {
		return 0
	}
	return atomic.LoadUint64(c.(*uint64))
}

// Sites returns the number of distinct call sites seen so far
func (r *Registry) Sites() int {
	n := 0
	r.sites.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
