package match3

import (
	"time"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/timer"
)

// Title menu entries.
const (
	MenuStart = iota
	MenuQuit
)

// titleState is the title screen: a decorative board that keeps shuffling,
// cycling title letters and a Start/Quit menu.
type titleState struct {
	group *timer.Group
	board *board.Board

	menu       int
	colorShift int
	swapping   bool
	starting   bool
	fade       float64
}

func (s *Session) enterTitle() {
	t := &titleState{group: s.timer.NewGroup()}
	s.title = t

	// Matches on the demo board are never resolved.
	t.board = s.newBoard(1)
	t.board.Initialize()

	t.group.Every(s.ms(s.cfg.Animation.AutoSwapMs), func() { t.autoSwap(s) }, 0)
	t.group.Every(s.ms(s.cfg.Animation.TitleColorMs), func() { t.colorShift++ }, 0)
}

// autoSwap swaps a random adjacent pair unless the previous swap is still animating.
func (t *titleState) autoSwap(s *Session) {
	if t.swapping {
		return
	}
	a, b := t.board.RandomAdjacentPair(s.rng)
	if a == nil {
		return
	}
	t.swapping = true
	t.board.Swap(a, b)
	tweenSwap(t.group, a, b, s.ms(s.cfg.Animation.SwapMs), func() { t.swapping = false })
}

func (t *titleState) update(s *Session, in core.InputFrame) {
	if t.starting {
		return
	}

	if dx, dy := in.Direction(); dy != 0 && dx == 0 {
		t.menu = 1 - t.menu
		s.cue(CueSelect)
	}

	if !in.Has(core.ActionConfirm) {
		return
	}
	switch t.menu {
	case MenuStart:
		t.starting = true
		t.group.Tween(&t.fade, 1, s.ms(s.cfg.Animation.StartFadeMs), timer.Linear, s.startRun)
	case MenuQuit:
		s.transition(PhaseExit, nil)
	}
}

// tweenSwap animates two swapped tiles to their new slots and calls done
// once both have arrived.
func tweenSwap(g *timer.Group, a, b *board.Tile, d time.Duration, done func()) {
	join := g.Join(2, done)
	for _, t := range []*board.Tile{a, b} {
		g.TweenMany([]timer.Prop{
			{Target: &t.X, To: float64(t.Col)},
			{Target: &t.Y, To: float64(t.Row)},
		}, d, timer.EaseOutQuad, join)
	}
}
