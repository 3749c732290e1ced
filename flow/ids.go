package flow

import (
	"fmt"
	"sync/atomic"
)

// IDGenerator produces fresh block ids, monotonic within one conversion
// pass. Ids are opaque to everything downstream; only freshness matters.
type IDGenerator struct {
	next atomic.Int64
}

// NewIDGenerator returns a generator starting at 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh id with the given prefix.
func (g *IDGenerator) Next(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, g.next.Add(1))
}
