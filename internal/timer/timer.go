// Package timer schedules tweens, delayed calls and repeating tasks against
// simulated time. It is advanced explicitly by the game loop, so everything
// runs on the caller's goroutine and tests can drive it deterministically.
//
// Scheduling always goes through a Group. A game state owns one group and
// cancels it on exit; a cancelled task never runs its callback, even when its
// deadline was reached earlier in the same Update.
package timer

import "time"

// Timer owns every scheduled task and advances them on Update.
type Timer struct {
	tasks []*Task
}

// New creates an empty timer.
func New() *Timer {
	return &Timer{}
}

// NewGroup returns a scheduling scope bound to this timer.
func (t *Timer) NewGroup() *Group {
	return &Group{timer: t}
}

// Update advances every live task by dt.
// Tasks scheduled by callbacks during this call start on the next Update.
func (t *Timer) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	current := make([]*Task, len(t.tasks))
	copy(current, t.tasks)

	for _, task := range current {
		if task.live() {
			task.advance(dt)
		}
	}

	live := t.tasks[:0]
	for _, task := range t.tasks {
		if task.live() {
			live = append(live, task)
		}
	}
	for i := len(live); i < len(t.tasks); i++ {
		t.tasks[i] = nil
	}
	t.tasks = live
}

// Pending returns the number of tasks that have neither finished nor been cancelled.
func (t *Timer) Pending() int {
	n := 0
	for _, task := range t.tasks {
		if task.live() {
			n++
		}
	}
	return n
}

// Clear cancels every task. Groups stay usable.
func (t *Timer) Clear() {
	for _, task := range t.tasks {
		task.cancelled = true
	}
	t.tasks = nil
}

func (t *Timer) schedule(task *Task) {
	t.tasks = append(t.tasks, task)
}
