// Package match3 implements a timed match-3 puzzle: swap adjacent tiles to
// line up three or more of a colour, clear them for points and beat the level
// goal before the countdown runs out.
//
// The Session type is the game state machine and has no terminal
// dependencies. Game adapts it to the platform registry.
package match3

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

// Game IDs.
const (
	IDClassic = "match3"
	IDCommit  = "match3_commit" // unproductive swaps stay on the board
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session debug logs
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger new sessions write to. Nil discards logs.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts a Session to registry.Game.
type Game struct {
	commit bool

	runtime core.RuntimeConfig
	cfg     config.Match3Config
	session *Session
	cues    core.CueRecorder

	screenW  int
	screenH  int
	tooSmall bool
	tick     uint64
}

// New creates a match-3 game that swaps unproductive moves back.
func New() *Game {
	return &Game{}
}

// NewCommit creates a match-3 game that keeps unproductive swaps.
func NewCommit() *Game {
	return &Game{commit: true}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDCommit, func() registry.Game {
		return NewCommit()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.commit {
		return IDCommit
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.commit {
		return "Match-3 (Commit Swaps)"
	}
	return "Match-3"
}

// Description implements registry.Describer.
func (g *Game) Description() string {
	if g.commit {
		return "Every swap sticks, matching or not"
	}
	return "Swaps that make no match are undone"
}

// Reset loads the configuration and starts a new session on the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultMatch3Config()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if g.commit {
		cfg.Rules.RevertUnproductive = false
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a new session with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.Match3Config) {
	g.runtime = runtime
	g.cfg = cfg
	g.tick = 0
	g.cues.Drain()
	if g.session != nil {
		g.session.Close()
	}
	g.session = NewSession(cfg, runtime.Seed, WithCues(&g.cues), WithLogger(logger))
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	minW, minH := minScreenSize(g.cfg.Board.Width, g.cfg.Board.Height)
	g.tooSmall = width < minW || height < minH
}

// Session returns the underlying state machine.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the session by one tick. The session is frozen while the
// screen is too small to draw the board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.session.Update(g.runtime.TickDuration(), in)
	return core.StepResult{State: g.State(), Cues: g.cues.Drain()}
}

// State returns the platform view of the session.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: phase == PhaseGameOver,
		Exit:     phase == PhaseExit,
	}
}
