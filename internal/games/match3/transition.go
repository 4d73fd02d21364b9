package match3

import (
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/timer"
)

// Label positions as fractions of the screen size.
const (
	labelStartX = -0.5
	labelStartY = -0.2
	labelCenter = 0.5
	labelExitX  = 1.5
	labelExitY  = 1.2
)

// introState is the level transition: a fresh matchless board is built and a
// fixed script fades the screen in and slides a "Level N" label across it.
type introState struct {
	group *timer.Group
	level int
	score int
	board *board.Board

	alpha  float64
	labelX float64
	labelY float64
}

func (s *Session) enterLevelTransition(level, score int) {
	in := &introState{
		group:  s.timer.NewGroup(),
		level:  level,
		score:  score,
		alpha:  1,
		labelX: labelStartX,
		labelY: labelStartY,
	}
	s.intro = in

	in.board = s.newBoard(level)
	attempts := in.board.InitializePlayable()
	s.log.Debug("level board ready", "level", level, "attempts", attempts)

	a := s.cfg.Animation
	g := in.group
	g.Sequence(
		func(next func()) {
			g.Tween(&in.alpha, 0, s.ms(a.FadeMs), timer.Linear, next)
		},
		func(next func()) {
			// Both slide together; only the horizontal slide is awaited.
			g.Tween(&in.labelY, labelCenter, s.ms(a.LabelSlideMs), timer.EaseOutQuad, nil)
			g.Tween(&in.labelX, labelCenter, s.ms(a.LabelSlideMs), timer.EaseOutQuad, next)
		},
		func(next func()) {
			g.After(s.ms(a.LabelHoldMs), next)
		},
		func(next func()) {
			g.Tween(&in.labelY, labelExitY, s.ms(a.LabelSlideMs), timer.EaseInQuad, nil)
			g.Tween(&in.labelX, labelExitX, s.ms(a.LabelSlideMs), timer.EaseInQuad, next)
		},
		func(func()) {
			s.toPlay(in.level, in.score, in.board)
		},
	)
}
