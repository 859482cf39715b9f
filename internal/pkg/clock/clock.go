package clock

import (
	"sort"
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
	// AfterFunc runs f in its own goroutine (RealClock) or inline during Add (MockClock) once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
}

type mockTimer struct {
	clock *MockClock
	at    time.Time
	seq   uint64
	f     func()
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &mockTimer{clock: c, at: c.currentTime.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Add moves the clock forward, firing due timers in chronological order.
// Callbacks run on the caller's goroutine and may register new timers, which
// fire within the same call if they fall due before the target time.
func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	target := c.currentTime.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.popDueLocked(target)
		if next == nil {
			c.currentTime = target
			c.mu.Unlock()
			return
		}
		c.currentTime = next.at
		c.mu.Unlock()

		next.f()
	}
}

// PendingTimers reports how many timers are armed and not yet fired.
func (c *MockClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *MockClock) popDueLocked(target time.Time) *mockTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
	head := c.timers[0]
	if head.at.After(target) {
		return nil
	}
	c.timers = c.timers[1:]
	return head
}

func (t *mockTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, pending := range c.timers {
		if pending == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return true
		}
	}
	return false
}
