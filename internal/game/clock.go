package game

import (
	"sync"
	"time"
)

// Clock schedules the blitz countdown.
type Clock interface {
	// Every calls fn once per period d until the returned stop is called.
	// stop is safe to call more than once and from inside fn.
	Every(d time.Duration, fn func()) (stop func())
}

// RealClock is a Clock backed by time.Ticker.
type RealClock struct{}

func (RealClock) Every(d time.Duration, fn func()) func() {
	t := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				fn()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.Stop()
			close(done)
		})
	}
}

// FakeClock is a manually advanced Clock for tests.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	nextID int
	timers map[int]*fakeTimer
}

type fakeTimer struct {
	id    int
	every time.Duration
	next  time.Duration
	fn    func()
}

// NewFakeClock returns a FakeClock at time zero with no timers.
func NewFakeClock() *FakeClock {
	return &FakeClock{timers: make(map[int]*fakeTimer)}
}

func (c *FakeClock) Every(d time.Duration, fn func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	c.timers[id] = &fakeTimer{id: id, every: d, next: c.now + d, fn: fn}
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.timers, id)
	}
}

// Advance moves time forward by d, firing due callbacks in time order.
// Callbacks run without the clock's lock held.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due *fakeTimer
		for _, t := range c.timers {
			if t.next > target {
				continue
			}
			if due == nil || t.next < due.next || (t.next == due.next && t.id < due.id) {
				due = t
			}
		}
		if due == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = due.next
		due.next += due.every
		fn := due.fn
		c.mu.Unlock()

		fn()
	}
}

// Active returns the number of running timers.
func (c *FakeClock) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
