package match3

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
	"github.com/vovakirdan/tui-match3/internal/timer"
)

// Phase identifies the active state of a session.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseLevelTransition
	PhasePlay
	PhaseGameOver
	PhaseExit // Quit was chosen on the title screen
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseLevelTransition:
		return "level-transition"
	case PhasePlay:
		return "play"
	case PhaseGameOver:
		return "game-over"
	case PhaseExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Session is the game state machine. It owns the active board, score, level
// and countdown, and drives the board through swap and cascade cycles.
//
// Exactly one phase is active at a time. Each phase schedules its animations
// and callbacks through its own timer group, which is cancelled when the
// phase is left, so nothing fires against a state that is no longer active.
type Session struct {
	cfg        config.Match3Config
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	timer      *timer.Timer
	cues       core.CueSink
	log        *log.Logger

	phase Phase
	title *titleState
	intro *introState
	play  *playState
	over  *overState

	// previousGoal is the goal of the last level entered in this run.
	previousGoal int
}

// Option configures a Session.
type Option func(*Session)

// WithCues sends cues to sink.
func WithCues(sink core.CueSink) Option {
	return func(s *Session) {
		if sink != nil {
			s.cues = sink
		}
	}
}

// WithLogger writes debug logs to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates a session on the title screen.
func NewSession(cfg config.Match3Config, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(seed)),
		timer:      timer.New(),
		cues:       nopSink{},
		log:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.transition(PhaseTitle, func() { s.enterTitle() })
	return s
}

// Update advances timers and animations by dt, then applies one tick of
// input to the active phase.
func (s *Session) Update(dt time.Duration, in core.InputFrame) {
	s.timer.Update(dt)

	switch s.phase {
	case PhaseTitle:
		s.title.update(s, in)
	case PhaseLevelTransition:
		// Scripted; input is ignored.
	case PhasePlay:
		s.play.update(s, in)
	case PhaseGameOver:
		s.over.update(s, in)
	case PhaseExit:
	}
}

// transition is the only way to change phase. It cancels every task of the
// outgoing phase before the incoming one is entered.
func (s *Session) transition(next Phase, enter func()) {
	prev := s.phase
	if g := s.activeGroup(); g != nil {
		g.Cancel()
	}
	s.title, s.intro, s.play, s.over = nil, nil, nil, nil
	s.phase = next
	s.log.Debug("phase change", "from", prev, "to", next)
	if enter != nil {
		enter()
	}
}

// Close cancels every pending callback. The session must not be updated
// afterwards.
func (s *Session) Close() {
	s.timer.Clear()
	s.log.Debug("session closed", "phase", s.phase)
}

func (s *Session) activeGroup() *timer.Group {
	switch {
	case s.title != nil:
		return s.title.group
	case s.intro != nil:
		return s.intro.group
	case s.play != nil:
		return s.play.group
	case s.over != nil:
		return s.over.group
	}
	return nil
}

func (s *Session) cue(c core.Cue) {
	s.cues.Play(c)
}

func (s *Session) ms(n int) time.Duration {
	return config.Ms(n)
}

// newBoard builds a board whose tile generator uses the power chance for level.
func (s *Session) newBoard(level int) *board.Board {
	chance := s.difficulty.PowerChance(s.cfg.Board.PowerChance, level)
	gen := board.NewRandomGenerator(s.rng, chance)
	return board.New(s.cfg.Board.Width, s.cfg.Board.Height, gen)
}

// startRun begins a new game from level 1.
func (s *Session) startRun() {
	s.previousGoal = s.cfg.Scoring.BaseGoal
	s.toLevelTransition(1, 0)
}

func (s *Session) toLevelTransition(level, score int) {
	s.transition(PhaseLevelTransition, func() { s.enterLevelTransition(level, score) })
}

func (s *Session) toPlay(level, score int, b *board.Board) {
	s.transition(PhasePlay, func() { s.enterPlay(level, score, b) })
}

func (s *Session) toGameOver(level, score int) {
	s.transition(PhaseGameOver, func() { s.enterGameOver(level, score) })
}

func (s *Session) toTitle() {
	s.transition(PhaseTitle, func() { s.enterTitle() })
}

// Phase returns the active phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Pending returns the number of live timer tasks.
func (s *Session) Pending() int {
	return s.timer.Pending()
}

// Board returns the board shown by the active phase, or nil.
func (s *Session) Board() *board.Board {
	switch s.phase {
	case PhaseTitle:
		return s.title.board
	case PhaseLevelTransition:
		return s.intro.board
	case PhasePlay:
		return s.play.board
	}
	return nil
}

// Level returns the current level, or 0 outside a run.
func (s *Session) Level() int {
	switch s.phase {
	case PhaseLevelTransition:
		return s.intro.level
	case PhasePlay:
		return s.play.level
	case PhaseGameOver:
		return s.over.level
	}
	return 0
}

// Score returns the current score, or 0 outside a run.
func (s *Session) Score() int {
	switch s.phase {
	case PhaseLevelTransition:
		return s.intro.score
	case PhasePlay:
		return s.play.score
	case PhaseGameOver:
		return s.over.score
	}
	return 0
}

// Goal returns the score goal of the level being played.
func (s *Session) Goal() int {
	if s.phase == PhasePlay {
		return s.play.goal
	}
	return 0
}

// TimeRemaining returns the countdown in seconds while playing.
func (s *Session) TimeRemaining() int {
	if s.phase == PhasePlay {
		return s.play.timeRemaining
	}
	return 0
}

// MaxTime returns the countdown length of the level being played.
func (s *Session) MaxTime() int {
	if s.phase == PhasePlay {
		return s.play.maxTime
	}
	return 0
}

// LowTime reports whether the countdown is in its warning range.
func (s *Session) LowTime() bool {
	return s.phase == PhasePlay && s.play.timeRemaining <= s.cfg.Timer.LowTimeSecs
}

// Cursor returns the highlighted cell while playing.
func (s *Session) Cursor() board.Position {
	if s.phase == PhasePlay {
		return s.play.cursor
	}
	return board.Position{}
}

// Selection returns the tile waiting for a swap partner, or nil.
func (s *Session) Selection() *board.Tile {
	if s.phase == PhasePlay {
		return s.play.selection
	}
	return nil
}

// Busy reports whether a swap or cascade is being resolved.
func (s *Session) Busy() bool {
	return s.phase == PhasePlay && s.play.busy
}

// Hint returns the hint being shown, if any.
func (s *Session) Hint() (board.Hint, bool) {
	if s.phase == PhasePlay && s.play.hint != nil {
		return *s.play.hint, true
	}
	return board.Hint{}, false
}

// Flashing returns the tiles highlighted after an unproductive swap while
// the flash is in its visible half.
func (s *Session) Flashing() []*board.Tile {
	if s.phase == PhasePlay && s.play.flashOn {
		return s.play.flashTiles
	}
	return nil
}

// MenuIndex returns the selected title menu entry (0 Start, 1 Quit).
func (s *Session) MenuIndex() int {
	if s.phase == PhaseTitle {
		return s.title.menu
	}
	return 0
}

// TitleColorShift returns how many times the title letters changed colour.
func (s *Session) TitleColorShift() int {
	if s.phase == PhaseTitle {
		return s.title.colorShift
	}
	return 0
}

// Fade returns the white overlay opacity in [0,1] for the title and level
// transition screens.
func (s *Session) Fade() float64 {
	switch s.phase {
	case PhaseTitle:
		return s.title.fade
	case PhaseLevelTransition:
		return s.intro.alpha
	}
	return 0
}

// Label returns the level label position during a level transition, as
// fractions of the screen size.
func (s *Session) Label() (x, y float64) {
	if s.phase == PhaseLevelTransition {
		return s.intro.labelX, s.intro.labelY
	}
	return 0, 0
}
