package timer

import "time"

type taskKind int

const (
	kindTween taskKind = iota
	kindAfter
	kindEvery
)

// Prop is one numeric attribute animated by a tween.
type Prop struct {
	Target *float64
	To     float64
}

// Task is a handle to a scheduled tween, delayed call or repeating call.
type Task struct {
	kind     taskKind
	duration time.Duration
	elapsed  time.Duration
	ease     Easing

	props []Prop
	from  []float64

	fn    func()
	limit int
	count int

	finished  bool
	cancelled bool
}

// Cancel stops the task. Its callback will not run afterwards.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

func (t *Task) live() bool {
	return !t.finished && !t.cancelled
}

func (t *Task) advance(dt time.Duration) {
	t.elapsed += dt

	switch t.kind {
	case kindTween:
		t.step()
	case kindAfter:
		if t.elapsed >= t.duration {
			t.finish()
		}
	case kindEvery:
		t.repeat()
	}
}

// step interpolates every prop and finishes the tween at full progress.
func (t *Task) step() {
	progress := 1.0
	if t.duration > 0 && t.elapsed < t.duration {
		progress = float64(t.elapsed) / float64(t.duration)
	}
	k := t.ease(progress)
	for i, p := range t.props {
		*p.Target = t.from[i] + (p.To-t.from[i])*k
	}
	if progress >= 1 {
		for _, p := range t.props {
			*p.Target = p.To
		}
		t.finish()
	}
}

func (t *Task) repeat() {
	if t.duration <= 0 {
		// A zero interval fires once per update.
		t.elapsed = 0
		t.fire()
		return
	}
	for t.elapsed >= t.duration {
		if !t.live() {
			return
		}
		t.elapsed -= t.duration
		t.fire()
	}
}

func (t *Task) fire() {
	t.count++
	if t.limit > 0 && t.count >= t.limit {
		t.finished = true
	}
	if t.fn != nil {
		t.fn()
	}
}

func (t *Task) finish() {
	t.finished = true
	if t.fn != nil {
		t.fn()
	}
}
