package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// cueLabels are shown on the status line when a cue is played.
var cueLabels = map[core.Cue]string{
	"match":     "Match!",
	"error":     "Nope",
	"victory":   "Level cleared!",
	"game-over": "Time's up",
	"low-time":  "Hurry!",
}

// bellCues ring the terminal bell when the bell is enabled.
var bellCues = map[core.Cue]bool{
	"error":     true,
	"victory":   true,
	"game-over": true,
}

// statusTicks is how long a cue label stays on the status line.
const statusTicks = 45

// CuePlayer turns game cues into terminal feedback: a status line label,
// an optional bell and a debug log entry.
type CuePlayer struct {
	bell   io.Writer // nil disables the bell
	logger *log.Logger

	label     string
	labelLeft int
}

// NewCuePlayer creates a player. A nil bell writer disables the bell.
func NewCuePlayer(bell io.Writer, logger *log.Logger) *CuePlayer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &CuePlayer{bell: bell, logger: logger}
}

// Play implements core.CueSink.
func (p *CuePlayer) Play(c core.Cue) {
	p.logger.Debug("cue", "name", string(c))
	if label, ok := cueLabels[c]; ok {
		p.label = label
		p.labelLeft = statusTicks
	}
	if p.bell != nil && bellCues[c] {
		//nolint:errcheck // Best-effort bell
		p.bell.Write([]byte{'\a'})
	}
}

// Tick ages the status label by one tick.
func (p *CuePlayer) Tick() {
	if p.labelLeft > 0 {
		p.labelLeft--
		if p.labelLeft == 0 {
			p.label = ""
		}
	}
}

// Status returns the label to show, or "".
func (p *CuePlayer) Status() string {
	return p.label
}
