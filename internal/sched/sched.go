// Package sched runs deferred callbacks on the game goroutine.
//
// Nothing here starts a goroutine or a runtime timer: tasks only fire from
// Run, which the session calls once per update. Every task is stamped with
// the generation it was scheduled in, and Invalidate moves the generation
// forward so nothing scheduled before it can fire afterwards.
package sched

import (
	"sort"
	"time"
)

// Task identifies a scheduled callback. The zero Task is never issued.
type Task uint64

type entry struct {
	id  Task
	gen uint64
	due time.Time
	fn  func()
}

// Scheduler is not safe for concurrent use.
type Scheduler struct {
	now   func() time.Time
	gen   uint64
	next  Task
	tasks map[Task]*entry
}

// New returns a scheduler reading time from now.
func New(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		now:   now,
		tasks: make(map[Task]*entry),
	}
}

// After schedules fn to run on the first Run at least d from now.
func (s *Scheduler) After(d time.Duration, fn func()) Task {
	s.next++
	s.tasks[s.next] = &entry{
		id:  s.next,
		gen: s.gen,
		due: s.now().Add(d),
		fn:  fn,
	}
	return s.next
}

// Cancel drops a pending task. It reports whether the task was still pending.
func (s *Scheduler) Cancel(t Task) bool {
	if _, ok := s.tasks[t]; !ok {
		return false
	}
	delete(s.tasks, t)
	return true
}

// Invalidate drops every pending task and starts a new generation.
func (s *Scheduler) Invalidate() {
	s.gen++
	clear(s.tasks)
}

// Generation is the number of Invalidate calls so far.
func (s *Scheduler) Generation() uint64 { return s.gen }

// Pending is the number of tasks waiting to fire.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Run fires every task that is due, earliest first, and returns how many
// fired. Tasks scheduled by a callback wait for the next Run. A task that a
// callback cancels or invalidates is skipped.
func (s *Scheduler) Run() int {
	now := s.now()
	var due []*entry
	for _, e := range s.tasks {
		if !e.due.After(now) {
			due = append(due, e)
		}
	}
	if len(due) == 0 {
		return 0
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due.Equal(due[j].due) {
			return due[i].id < due[j].id
		}
		return due[i].due.Before(due[j].due)
	})

	fired := 0
	for _, e := range due {
		live, ok := s.tasks[e.id]
		if !ok || live.gen != s.gen {
			continue
		}
		delete(s.tasks, e.id)
		e.fn()
		fired++
	}
	return fired
}
