package id

import (
	"strconv"
	"sync"
	"time"
)

// Generator creates opaque IDs suitable for external references.
type Generator interface {
	NewID() (string, error)
}

// TimestampGenerator issues millisecond-timestamp IDs, bumped forward on
// collision so the sequence is strictly increasing. A later create can
// therefore never reissue an ID that an earlier delete removed.
type TimestampGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewTimestampGenerator() *TimestampGenerator {
	return &TimestampGenerator{now: time.Now}
}

// NewTimestampGeneratorAt pins the clock, for tests.
func NewTimestampGeneratorAt(now func() time.Time) *TimestampGenerator {
	if now == nil {
		now = time.Now
	}
	return &TimestampGenerator{now: now}
}

func (g *TimestampGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return strconv.FormatInt(ms, 10), nil
}
