package match3

import (
	"time"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/timer"
)

// playState is an active level.
type playState struct {
	group *timer.Group
	board *board.Board

	level         int
	score         int
	goal          int
	timeRemaining int
	maxTime       int

	cursor    board.Position
	selection *board.Tile

	// busy is set while a swap or cascade is resolving; new swaps and the
	// victory and defeat checks wait for it to clear.
	busy bool

	hint     *board.Hint
	hintTask *timer.Task

	flashTiles []*board.Tile
	flashOn    bool
}

func (s *Session) enterPlay(level, score int, b *board.Board) {
	p := &playState{
		group: s.timer.NewGroup(),
		board: b,
		level: level,
		score: score,
	}
	s.play = p

	p.goal = NextGoal(s.previousGoal, level, s.cfg.Scoring.GoalScale)
	s.previousGoal = p.goal
	p.maxTime = s.difficulty.MaxTime(s.cfg.Timer.MaxSecs, level)
	p.timeRemaining = p.maxTime

	b.SetMatchHook(func(board.Group) { s.cue(CueMatch) })
	p.group.Every(time.Second, func() { p.countdown(s) }, 0)

	s.log.Debug("level start", "level", level, "score", score, "goal", p.goal, "time", p.maxTime)
}

func (p *playState) countdown(s *Session) {
	if p.timeRemaining > 0 {
		p.timeRemaining--
	}
	if p.timeRemaining <= s.cfg.Timer.LowTimeSecs {
		s.cue(CueLowTime)
	}
}

func (p *playState) update(s *Session, in core.InputFrame) {
	if !p.busy {
		if p.score >= p.goal {
			s.cue(CueVictory)
			s.log.Debug("level cleared", "level", p.level, "score", p.score, "goal", p.goal)
			// Points beyond the goal are not carried over.
			s.toLevelTransition(p.level+1, p.goal)
			return
		}
		if p.timeRemaining <= 0 {
			s.cue(CueGameOver)
			s.log.Debug("time up", "level", p.level, "score", p.score)
			s.toGameOver(p.level, p.score)
			return
		}
	}

	if dx, dy := in.Direction(); dx != 0 || dy != 0 {
		p.moveCursor(s, dx, dy)
	}
	if in.Has(core.ActionConfirm) {
		p.confirm(s)
	}
	if in.Has(core.ActionHint) {
		p.requestHint(s)
	}
}

func (p *playState) moveCursor(s *Session, dx, dy int) {
	next := board.Position{
		Col: core.Clamp(p.cursor.Col+dx, 0, p.board.Width()-1),
		Row: core.Clamp(p.cursor.Row+dy, 0, p.board.Height()-1),
	}
	if next == p.cursor {
		return
	}
	p.cursor = next
	s.cue(CueSelect)
}

func (p *playState) confirm(s *Session) {
	if p.busy {
		return
	}
	target := p.board.At(p.cursor.Col, p.cursor.Row)

	switch {
	case p.selection == nil:
		p.selection = target
		s.cue(CueSelect)
	case p.selection == target:
		p.selection = nil
	case p.selection.Position().Manhattan(target.Position()) > 1:
		p.selection = nil
		s.cue(CueError)
	default:
		a := p.selection
		p.selection = nil
		p.swapAndResolve(s, a, target)
	}
}

// swapAndResolve commits a swap, resolves the cascade one level at a time
// while its animations play, and applies the total award once the board has
// settled. An unproductive swap is flashed and swapped back.
func (p *playState) swapAndResolve(s *Session, a, b *board.Tile) {
	p.busy = true
	p.clearHint()

	p.board.Swap(a, b)
	tweenSwap(p.group, a, b, s.ms(s.cfg.Animation.SwapMs), func() {
		p.resolve(s, a, b, 0, Award{})
	})
}

func (p *playState) resolve(s *Session, a, b *board.Tile, depth int, total Award) {
	level, ok := p.board.ResolveStep()
	if !ok {
		if depth == 0 {
			p.reject(s, a, b)
			return
		}
		p.applyAward(s, total, depth)
		p.busy = false
		return
	}

	total = total.Add(ScoreGroups(s.cfg.Scoring, level.Groups))
	p.animateLevel(s, level, func() {
		p.resolve(s, a, b, depth+1, total)
	})
}

// animateLevel drops fallen tiles together, then brings in refilled tiles.
func (p *playState) animateLevel(s *Session, level board.CascadeLevel, done func()) {
	g := p.group
	anim := s.cfg.Animation

	g.Sequence(
		func(next func()) {
			join := g.Join(len(level.Falls), next)
			for _, f := range level.Falls {
				g.Tween(&f.Tile.Y, float64(f.ToRow), s.ms(anim.FallMs), timer.EaseInQuad, join)
			}
		},
		func(next func()) {
			if !anim.SequentialRefill {
				join := g.Join(len(level.Entries), next)
				for _, e := range level.Entries {
					g.Tween(&e.Tile.Y, float64(e.Row), s.ms(anim.RefillMs), timer.EaseInQuad, join)
				}
				return
			}
			steps := make([]timer.Step, 0, len(level.Entries)+1)
			for _, e := range level.Entries {
				steps = append(steps, func(step func()) {
					g.Tween(&e.Tile.Y, float64(e.Row), s.ms(anim.RefillMs), timer.EaseInQuad, step)
				})
			}
			steps = append(steps, func(func()) { next() })
			g.Sequence(steps...)
		},
		func(func()) {
			done()
		},
	)
}

// reject handles a swap that matched nothing.
func (p *playState) reject(s *Session, a, b *board.Tile) {
	s.cue(CueError)
	if !s.cfg.Rules.RevertUnproductive {
		p.busy = false
		return
	}

	g := p.group
	anim := s.cfg.Animation
	p.flashTiles = []*board.Tile{a, b}

	g.Sequence(
		func(next func()) {
			if anim.FlashCount <= 0 {
				next()
				return
			}
			flashes := 0
			g.Every(s.ms(anim.FlashMs), func() {
				p.flashOn = !p.flashOn
				flashes++
				if flashes == anim.FlashCount*2 {
					next()
				}
			}, anim.FlashCount*2)
		},
		func(next func()) {
			p.flashOn = false
			p.flashTiles = nil
			p.board.Swap(a, b)
			tweenSwap(g, a, b, s.ms(anim.SwapMs), next)
		},
		func(func()) {
			p.busy = false
		},
	)
}

func (p *playState) applyAward(s *Session, total Award, depth int) {
	p.score += total.Score
	// A clock that ran out mid-cascade stays out.
	if p.timeRemaining > 0 {
		p.timeRemaining = min(p.timeRemaining+total.Time, p.maxTime)
	}
	s.log.Debug("cascade settled",
		"depth", depth,
		"groups", total.Groups,
		"tiles", total.Tiles,
		"points", total.Score,
		"bonus_secs", total.Time,
		"score", p.score,
	)
}

func (p *playState) requestHint(s *Session) {
	if p.busy {
		return
	}
	h, ok := p.board.FindHint()
	if !ok {
		s.cue(CueError)
		s.log.Debug("no hint available", "level", p.level)
		return
	}

	p.clearHint()
	p.hint = &h
	p.hintTask = p.group.After(s.ms(s.cfg.Animation.HintMs), func() {
		p.hint = nil
		p.hintTask = nil
	})
	s.log.Debug("hint", "a", h.A, "b", h.B)
}

func (p *playState) clearHint() {
	if p.hintTask != nil {
		p.hintTask.Cancel()
		p.hintTask = nil
	}
	p.hint = nil
}
