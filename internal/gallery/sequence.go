package gallery

import "sync/atomic"

// Sequence numbers fetches so that only the latest response is applied.
type Sequence struct {
	n atomic.Uint64
}

// Next issues a new request number.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

// Latest reports whether n is the most recently issued number.
func (s *Sequence) Latest(n uint64) bool {
	return s.n.Load() == n
}
