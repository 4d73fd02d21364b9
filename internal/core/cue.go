package core

// Cue is a named audio/visual signal a game emits, such as "match" or "error".
// Cues are fire-and-forget: the platform decides how, or whether, to play them.
type Cue string

// CueSink receives cues as they happen.
type CueSink interface {
	Play(c Cue)
}

// CueFunc adapts a function to the CueSink interface.
type CueFunc func(c Cue)

// Play calls f(c).
func (f CueFunc) Play(c Cue) {
	f(c)
}

// CueRecorder collects cues in order. The zero value is ready to use.
type CueRecorder struct {
	cues []Cue
}

// Play records c.
func (r *CueRecorder) Play(c Cue) {
	r.cues = append(r.cues, c)
}

// Drain returns the recorded cues and resets the recorder.
func (r *CueRecorder) Drain() []Cue {
	if len(r.cues) == 0 {
		return nil
	}
	out := r.cues
	r.cues = nil
	return out
}

// Count returns how many times c was recorded since the last Drain.
func (r *CueRecorder) Count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}
