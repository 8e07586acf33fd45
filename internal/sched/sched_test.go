package sched

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) step(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock { return &fakeClock{t: time.Unix(1000, 0)} }

func newScheduler(c *fakeClock) *Scheduler { return New(c.now) }

func TestRunFiresDueTasksInOrder(t *testing.T) {
	clk := newClock()
	s := newScheduler(clk)

	var got []string
	s.After(200*time.Millisecond, func() { got = append(got, "b") })
	s.After(100*time.Millisecond, func() { got = append(got, "a") })
	s.After(time.Second, func() { got = append(got, "late") })

	assert.Zero(t, s.Run())
	clk.step(250 * time.Millisecond)
	assert.Equal(t, 2, s.Run())
	assert.Equal(t, []string{"a", "b"}, got)
	assert.Equal(t, 1, s.Pending())
}

func TestCancel(t *testing.T) {
	clk := newClock()
	s := newScheduler(clk)

	fired := false
	task := s.After(10*time.Millisecond, func() { fired = true })
	assert.True(t, s.Cancel(task))
	assert.False(t, s.Cancel(task))

	clk.step(time.Second)
	s.Run()
	assert.False(t, fired)
}

func TestInvalidateDropsStaleTasks(t *testing.T) {
	clk := newClock()
	s := newScheduler(clk)

	fired := 0
	s.After(10*time.Millisecond, func() { fired++ })
	s.Invalidate()
	s.After(20*time.Millisecond, func() { fired += 10 })

	clk.step(time.Second)
	s.Run()
	assert.Equal(t, 10, fired)
	assert.Equal(t, uint64(1), s.Generation())
}

func TestCallbackInvalidatingSkipsRemainingDueTasks(t *testing.T) {
	clk := newClock()
	s := newScheduler(clk)

	var got []string
	s.After(10*time.Millisecond, func() {
		got = append(got, "first")
		s.Invalidate()
	})
	s.After(20*time.Millisecond, func() { got = append(got, "second") })

	clk.step(time.Second)
	assert.Equal(t, 1, s.Run())
	assert.Equal(t, []string{"first"}, got)
	assert.Zero(t, s.Pending())
}

func TestTasksScheduledDuringRunWaitForNextRun(t *testing.T) {
	clk := newClock()
	s := newScheduler(clk)

	nested := false
	s.After(0, func() {
		s.After(0, func() { nested = true })
	})

	assert.Equal(t, 1, s.Run())
	assert.False(t, nested)
	assert.Equal(t, 1, s.Run())
	assert.True(t, nested)
}
