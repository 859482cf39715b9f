//go:build unit

package clock_test

import (
	"testing"
	"time"

	"storefront-sim/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMockClockAdd(t *testing.T) {
	t.Run("fires due timers in order", func(t *testing.T) {
		c := clock.NewMockClock(epoch)
		var fired []string
		var firedAt []time.Duration

		record := func(name string) func() {
			return func() {
				fired = append(fired, name)
				firedAt = append(firedAt, c.Now().Sub(epoch))
			}
		}
		c.AfterFunc(3*time.Second, record("c"))
		c.AfterFunc(1*time.Second, record("a"))
		c.AfterFunc(2*time.Second, record("b"))
		c.AfterFunc(2*time.Second, record("b2"))
		c.AfterFunc(10*time.Second, record("late"))

		c.Add(5 * time.Second)

		assert.Equal(t, []string{"a", "b", "b2", "c"}, fired)
		assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 2 * time.Second, 3 * time.Second}, firedAt)
		assert.Equal(t, epoch.Add(5*time.Second), c.Now())
		assert.Equal(t, 1, c.PendingTimers())
	})

	t.Run("timers armed during a callback fire in the same call", func(t *testing.T) {
		c := clock.NewMockClock(epoch)
		count := 0
		var tick func()
		tick = func() {
			count++
			c.AfterFunc(time.Second, tick)
		}
		c.AfterFunc(time.Second, tick)

		c.Add(3500 * time.Millisecond)

		assert.Equal(t, 3, count)
		assert.Equal(t, 1, c.PendingTimers())
	})

	t.Run("zero delay fires on the next add", func(t *testing.T) {
		c := clock.NewMockClock(epoch)
		fired := false
		c.AfterFunc(0, func() { fired = true })

		assert.False(t, fired)
		c.Add(0)
		assert.True(t, fired)
	})
}

func TestMockTimerStop(t *testing.T) {
	c := clock.NewMockClock(epoch)
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Add(2 * time.Second)
	assert.False(t, fired)
	assert.Equal(t, 0, c.PendingTimers())
}

func TestMockClockSet(t *testing.T) {
	c := clock.NewMockClock(epoch)
	later := epoch.Add(time.Hour)

	c.Set(later)

	assert.Equal(t, later, c.Now())
}

func TestRealClockAfterFunc(t *testing.T) {
	c := clock.NewRealClock()
	done := make(chan struct{})

	c.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
