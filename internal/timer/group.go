package timer

import "time"

// Step is one link of a Sequence. It must call next exactly once when done.
type Step func(next func())

// Group scopes scheduled work to a single owner.
// Cancelling the group cancels every task ever scheduled through it, drops
// pending Join and Sequence continuations, and rejects later scheduling.
type Group struct {
	timer     *Timer
	tasks     []*Task
	cancelled bool
}

// Tween animates *target to `to` over d.
func (g *Group) Tween(target *float64, to float64, d time.Duration, ease Easing, done func()) *Task {
	return g.TweenMany([]Prop{{Target: target, To: to}}, d, ease, done)
}

// TweenMany animates several attributes jointly over d and calls done once
// all of them have arrived.
func (g *Group) TweenMany(props []Prop, d time.Duration, ease Easing, done func()) *Task {
	if ease == nil {
		ease = Linear
	}
	from := make([]float64, len(props))
	for i, p := range props {
		from[i] = *p.Target
	}
	return g.add(&Task{
		kind:     kindTween,
		duration: d,
		ease:     ease,
		props:    props,
		from:     from,
		fn:       done,
	})
}

// After calls fn once delay has elapsed.
func (g *Group) After(delay time.Duration, fn func()) *Task {
	return g.add(&Task{kind: kindAfter, duration: delay, fn: fn})
}

// Every calls fn each time interval elapses. A positive limit stops the task
// after that many calls; zero repeats until cancelled.
func (g *Group) Every(interval time.Duration, fn func(), limit int) *Task {
	return g.add(&Task{kind: kindEvery, duration: interval, fn: fn, limit: limit})
}

// Join returns a signal function; done runs once after it has been called n times.
// With n <= 0 done runs immediately.
func (g *Group) Join(n int, done func()) func() {
	remaining := n
	fired := false
	signal := func() {
		remaining--
		if remaining > 0 || fired || g.cancelled {
			return
		}
		fired = true
		if done != nil {
			done()
		}
	}
	if n <= 0 {
		remaining = 1
		signal()
	}
	return signal
}

// Sequence runs steps strictly in order. Each step starts when the previous
// one calls next.
func (g *Group) Sequence(steps ...Step) {
	var run func(i int)
	run = func(i int) {
		if g.cancelled || i >= len(steps) {
			return
		}
		called := false
		steps[i](func() {
			if called {
				return
			}
			called = true
			run(i + 1)
		})
	}
	run(0)
}

// Cancel cancels every task of the group.
func (g *Group) Cancel() {
	g.cancelled = true
	for _, task := range g.tasks {
		task.cancelled = true
	}
	g.tasks = nil
}

func (g *Group) add(task *Task) *Task {
	if g.cancelled {
		task.cancelled = true
		return task
	}
	if len(g.tasks) >= 64 {
		g.prune()
	}
	g.tasks = append(g.tasks, task)
	g.timer.schedule(task)
	return task
}

func (g *Group) prune() {
	live := g.tasks[:0]
	for _, task := range g.tasks {
		if task.live() {
			live = append(live, task)
		}
	}
	g.tasks = live
}
