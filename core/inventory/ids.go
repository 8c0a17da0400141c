package inventory

import "sync/atomic"

// IDGenerator issues identifiers for variations, options and offerings that
// have not been persisted yet.
type IDGenerator interface {
	Next() int64
}

// NegativeSequence issues -1, -2, -3, ... and is safe for concurrent use.
// Negative ids never collide with persisted (positive) ids.
type NegativeSequence struct {
	last atomic.Int64
}

// NewNegativeSequence creates a sequence starting at -1.
func NewNegativeSequence() *NegativeSequence {
	return &NegativeSequence{}
}

// Next returns the next unused negative id.
func (s *NegativeSequence) Next() int64 {
	return s.last.Add(-1)
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() int64

// Next calls f.
func (f IDFunc) Next() int64 {
	return f()
}
