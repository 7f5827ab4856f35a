package proposal

import (
	"sync"
	"time"
)

// IDSource hands out service item ids.
type IDSource interface {
	NextID() int64
}

// ClockIDs issues ids from the wall clock in milliseconds, bumping past the
// last issued id so values are strictly increasing.
type ClockIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewClockIDs creates a source that never issues an id <= floor.
func NewClockIDs(now func() time.Time, floor int64) *ClockIDs {
	if now == nil {
		now = time.Now
	}
	return &ClockIDs{now: now, last: floor}
}

// NextID returns the next id.
func (c *ClockIDs) NextID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.now().UnixMilli()
	if id <= c.last {
		id = c.last + 1
	}
	c.last = id
	return id
}

// MaxServiceID returns the largest service id in p, or 0.
func MaxServiceID(p Proposal) int64 {
	var max int64
	for _, item := range p.Services {
		if item.ID > max {
			max = item.ID
		}
	}
	return max
}
