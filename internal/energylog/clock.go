package energylog

import (
	"sync"
	"time"
)

// monotonicClock hands out strictly increasing UTC timestamps. When the
// underlying source stalls or steps backwards, the previous reading is
// advanced by one microsecond, the finest resolution every backend keeps.
type monotonicClock struct {
	mu   sync.Mutex
	now  func() time.Time
	last time.Time
}

func newMonotonicClock(now func() time.Time) *monotonicClock {
	return &monotonicClock{now: now}
}

// Now returns the next reading.
func (c *monotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}

	c.last = t
	return t
}
