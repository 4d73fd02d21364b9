package match3

import (
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/timer"
)

// overState is the game over screen. It keeps the final level and score
// until the player returns to the title.
type overState struct {
	group *timer.Group
	level int
	score int
}

func (s *Session) enterGameOver(level, score int) {
	s.over = &overState{
		group: s.timer.NewGroup(),
		level: level,
		score: score,
	}
	s.log.Debug("game over", "level", level, "score", score)
}

func (o *overState) update(s *Session, in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
		s.toTitle()
	}
}
