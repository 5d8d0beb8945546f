package stream

import (
	"io"
	"sync"
)

// Stream serializes writes to a shared process stream. The original
// facility wrote to stdout/stderr with no synchronization at all; the
// mutex here is a documented strengthening for multi-goroutine
// programs so that concurrently emitted lines stay intact.
type Stream struct {
	mu    sync.Mutex
	w     io.Writer
	stats *Stats
}

// New wraps a writer in a Stream
func New(w io.Writer) *Stream {
	return &Stream{
		w:     w,
		stats: NewStats(),
	}
}

// Write writes p under the stream's lock. The byte count and error
// follow the underlying writer; the facility itself never inspects
// them beyond counting.
func (s *Stream) Write(p []byte) (int, error) {
	s.mu.Lock()
	n, err := s.w.Write(p)
	s.mu.Unlock()

	if err != nil {
		s.stats.IncrementFailed()
	} else {
		s.stats.IncrementProcessed()
	}

	return n, err
}

// Stats returns a snapshot of the current statistics
func (s *Stream) Stats() Snapshot {
	return s.stats.GetSnapshot()
}
