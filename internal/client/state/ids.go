package state

import (
	"strconv"
	"sync"
	"time"
)

// IDGenerator yields identifiers for new moods, habits and chat messages.
type IDGenerator interface {
	Next() string
}

// TimeIDs produces Unix-millisecond timestamps as decimal strings. Ids are
// strictly increasing: a second id within the same millisecond is bumped
// past the previous one.
type TimeIDs struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewTimeIDs(now func() time.Time) *TimeIDs {
	if now == nil {
		now = time.Now
	}
	return &TimeIDs{now: now}
}

func (g *TimeIDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
