package match3

import "github.com/vovakirdan/tui-match3/internal/games/match3/board"

// Snapshot captures the observable game state for determinism testing.
type Snapshot struct {
	Tick     uint64
	Phase    string
	Level    int
	Score    int
	Goal     int
	TimeLeft int
	Cursor   board.Position
	Busy     bool
	Rows     []string // Board layout codes, nil when no board is shown
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:     g.tick,
		Phase:    s.Phase().String(),
		Level:    s.Level(),
		Score:    s.Score(),
		Goal:     s.Goal(),
		TimeLeft: s.TimeRemaining(),
		Cursor:   s.Cursor(),
		Busy:     s.Busy(),
	}
	if b := s.Board(); b != nil {
		snap.Rows = b.Rows()
	}
	return snap
}
