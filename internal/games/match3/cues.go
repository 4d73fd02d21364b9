package match3

import "github.com/vovakirdan/tui-match3/internal/core"

// Cues emitted by the session.
const (
	CueSelect   core.Cue = "select"
	CueError    core.Cue = "error"
	CueMatch    core.Cue = "match"
	CueVictory  core.Cue = "victory"
	CueGameOver core.Cue = "game-over"
	CueLowTime  core.Cue = "low-time"
)

type nopSink struct{}

func (nopSink) Play(core.Cue) {}
