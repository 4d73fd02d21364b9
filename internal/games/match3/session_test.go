package match3

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// stripes refills with colours the fixtures never use, so refills cannot
// start a cascade.
var stripes = board.GeneratorFunc(func(col, row int) *board.Tile {
	palette := []board.Color{board.DarkBlue, board.LightGrey, board.DarkPurple, board.Grey}
	return board.NewTile(col, row, palette[(col*2+row)%len(palette)], board.PatternFlat)
})

var checkerboard = []string{
	"abab",
	"baba",
	"abab",
	"baba",
}

// staggered has no swap that makes a match.
var staggered = []string{
	"abdi",
	"dika",
	"kabd",
	"bdik",
}

// testConfig returns defaults with instant animations. Countdown and auto
// swaps still need real time, so settle never expires a level.
func testConfig() config.Match3Config {
	cfg := config.DefaultMatch3Config()
	a := &cfg.Animation
	a.SwapMs = 0
	a.FallMs = 0
	a.RefillMs = 0
	a.FlashMs = 0
	a.FadeMs = 0
	a.LabelSlideMs = 0
	a.LabelHoldMs = 0
	a.StartFadeMs = 0
	return cfg
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// settle runs zero-length updates until the session is idle in play or has
// left the play phase.
func settle(t *testing.T, s *Session) {
	t.Helper()
	for range 200 {
		s.Update(0, core.NewInputFrame())
		if s.Phase() == PhasePlay && !s.Busy() {
			return
		}
		if s.Phase() != PhasePlay && s.Phase() != PhaseLevelTransition {
			return
		}
	}
	t.Fatalf("session did not settle: phase %v busy %v", s.Phase(), s.Busy())
}

// playSession returns a session already playing level 1 on a fixed board.
func playSession(t *testing.T, cfg config.Match3Config, score int, rows ...string) (*Session, *core.CueRecorder) {
	t.Helper()
	rec := &core.CueRecorder{}
	s := NewSession(cfg, 1, WithCues(rec))
	s.previousGoal = cfg.Scoring.BaseGoal
	s.toPlay(1, score, board.FromRows(stripes, rows...))
	rec.Drain()
	return s, rec
}

// swapAt selects the tile under the cursor at a, moves to b and confirms.
func swapAt(s *Session, a, b board.Position) {
	moveTo(s, a)
	s.Update(0, press(core.ActionConfirm))
	moveTo(s, b)
	s.Update(0, press(core.ActionConfirm))
}

func moveTo(s *Session, p board.Position) {
	for s.Cursor().Col < p.Col {
		s.Update(0, press(core.ActionRight))
	}
	for s.Cursor().Col > p.Col {
		s.Update(0, press(core.ActionLeft))
	}
	for s.Cursor().Row < p.Row {
		s.Update(0, press(core.ActionDown))
	}
	for s.Cursor().Row > p.Row {
		s.Update(0, press(core.ActionUp))
	}
}

func rowsOf(s *Session) string {
	return strings.Join(s.Board().Rows(), "/")
}

func TestNewSessionStartsOnTitle(t *testing.T) {
	s := NewSession(testConfig(), 1)

	if s.Phase() != PhaseTitle {
		t.Fatalf("Phase() = %v, expected title", s.Phase())
	}
	if s.Board() == nil || !s.Board().Full() {
		t.Error("title should show a full demo board")
	}
	if s.MenuIndex() != MenuStart {
		t.Errorf("MenuIndex() = %d, expected %d", s.MenuIndex(), MenuStart)
	}
}

func TestTitleQuit(t *testing.T) {
	rec := &core.CueRecorder{}
	s := NewSession(testConfig(), 1, WithCues(rec))

	s.Update(0, press(core.ActionDown))
	if s.MenuIndex() != MenuQuit {
		t.Fatalf("MenuIndex() = %d, expected %d", s.MenuIndex(), MenuQuit)
	}
	if rec.Count(CueSelect) != 1 {
		t.Errorf("select cues = %d, expected 1", rec.Count(CueSelect))
	}

	s.Update(0, press(core.ActionConfirm))
	if s.Phase() != PhaseExit {
		t.Errorf("Phase() = %v, expected exit", s.Phase())
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d after exit, expected 0", s.Pending())
	}
}

func TestTitleStartEntersLevelOne(t *testing.T) {
	s := NewSession(testConfig(), 7)

	s.Update(0, press(core.ActionConfirm))
	for range 20 {
		s.Update(0, core.NewInputFrame())
		if s.Phase() == PhasePlay {
			break
		}
	}

	if s.Phase() != PhasePlay {
		t.Fatalf("Phase() = %v, expected play", s.Phase())
	}
	if s.Level() != 1 || s.Score() != 0 {
		t.Errorf("level %d score %d, expected 1 and 0", s.Level(), s.Score())
	}
	if s.Goal() != 250 {
		t.Errorf("Goal() = %d, expected 250", s.Goal())
	}
	if s.TimeRemaining() != 60 {
		t.Errorf("TimeRemaining() = %d, expected 60", s.TimeRemaining())
	}
	if m := s.Board().FindMatches(); len(m) != 0 {
		t.Errorf("level board starts with %d matches", len(m))
	}
}

func TestTitleIgnoresInputWhileStarting(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.StartFadeMs = 1000
	s := NewSession(cfg, 1)

	s.Update(0, press(core.ActionConfirm))
	s.Update(0, press(core.ActionDown))
	if s.MenuIndex() != MenuStart {
		t.Error("menu moved during the start fade")
	}

	s.Update(500*time.Millisecond, core.NewInputFrame())
	if f := s.Fade(); f < 0.4 || f > 0.6 {
		t.Errorf("Fade() = %.2f halfway through, expected ~0.5", f)
	}
}

func TestCursorClampedToBoard(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0, checkerboard...)

	s.Update(0, press(core.ActionLeft))
	s.Update(0, press(core.ActionUp))
	if s.Cursor() != (board.Position{}) {
		t.Errorf("Cursor() = %v, expected origin", s.Cursor())
	}
	if rec.Count(CueSelect) != 0 {
		t.Error("blocked moves should not emit a cue")
	}

	for range 10 {
		s.Update(0, press(core.ActionRight))
	}
	if s.Cursor().Col != 3 {
		t.Errorf("Cursor().Col = %d, expected 3", s.Cursor().Col)
	}
}

func TestSelectAndDeselect(t *testing.T) {
	s, _ := playSession(t, testConfig(), 0, checkerboard...)

	s.Update(0, press(core.ActionConfirm))
	if sel := s.Selection(); sel == nil || sel.Position() != (board.Position{}) {
		t.Fatalf("Selection() = %v, expected tile at origin", sel)
	}
	s.Update(0, press(core.ActionConfirm))
	if s.Selection() != nil {
		t.Error("confirming the selected tile again should deselect it")
	}
}

func TestNonAdjacentSwapRejected(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0, checkerboard...)
	before := rowsOf(s)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 2, Row: 2})

	if rec.Count(CueError) != 1 {
		t.Errorf("error cues = %d, expected 1", rec.Count(CueError))
	}
	if s.Selection() != nil {
		t.Error("selection should be cleared")
	}
	if s.Busy() {
		t.Error("no swap should be in progress")
	}
	if got := rowsOf(s); got != before {
		t.Errorf("board = %s, expected unchanged %s", got, before)
	}
}

func TestUnproductiveSwapReverts(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0, checkerboard...)
	before := rowsOf(s)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	if !s.Busy() {
		t.Fatal("swap should mark the session busy")
	}
	settle(t, s)

	if got := rowsOf(s); got != before {
		t.Errorf("board = %s, expected reverted %s", got, before)
	}
	if rec.Count(CueError) != 1 {
		t.Errorf("error cues = %d, expected 1", rec.Count(CueError))
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	for _, tile := range s.Board().Tiles() {
		if !tile.AtRest() {
			t.Errorf("%v not at rest after revert", tile)
		}
	}
}

func TestUnproductiveSwapFlashes(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.FlashMs = 80
	s, _ := playSession(t, cfg, 0, checkerboard...)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	s.Update(0, core.NewInputFrame())
	s.Update(0, core.NewInputFrame())
	s.Update(80*time.Millisecond, core.NewInputFrame())

	if got := len(s.Flashing()); got != 2 {
		t.Errorf("Flashing() has %d tiles, expected 2", got)
	}
	s.Update(80*time.Millisecond, core.NewInputFrame())
	if got := len(s.Flashing()); got != 0 {
		t.Errorf("Flashing() has %d tiles in the dark half, expected 0", got)
	}
}

func TestUnproductiveSwapCommitted(t *testing.T) {
	cfg := testConfig()
	cfg.Rules.RevertUnproductive = false
	s, _ := playSession(t, cfg, 0, checkerboard...)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	settle(t, s)

	expected := "baab/baba/abab/baba"
	if got := rowsOf(s); got != expected {
		t.Errorf("board = %s, expected %s", got, expected)
	}
	if s.Busy() {
		t.Error("session should be idle")
	}
}

func TestProductiveSwapScores(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0,
		"abaa",
		"dkdk",
		"kdkd",
		"dkdk",
	)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	settle(t, s)

	if s.Score() != 15 {
		t.Errorf("Score() = %d, expected 15", s.Score())
	}
	if rec.Count(CueMatch) != 1 {
		t.Errorf("match cues = %d, expected 1", rec.Count(CueMatch))
	}
	if got := s.Board().Rows()[0]; got != "bomo" {
		t.Errorf("row 0 = %q, expected %q", got, "bomo")
	}
	if s.TimeRemaining() != s.MaxTime() {
		t.Errorf("TimeRemaining() = %d, expected capped at %d", s.TimeRemaining(), s.MaxTime())
	}
	if err := s.Board().CheckInvariant(); err != nil {
		t.Error(err)
	}
}

func TestTimeBonusAdded(t *testing.T) {
	s, _ := playSession(t, testConfig(), 0,
		"abaa",
		"dkdk",
		"kdkd",
		"dkdk",
	)
	s.play.timeRemaining = 30

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	settle(t, s)

	if s.TimeRemaining() != 33 {
		t.Errorf("TimeRemaining() = %d, expected 33", s.TimeRemaining())
	}
}

func TestChainedCascadeScoresEveryLevel(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0,
		"kdbd",
		"kbdb",
		"Aaia",
		"kdab",
	)
	s.play.timeRemaining = s.MaxTime() - 2

	// Clearing row 2 drops column 0 into a run of three k.
	swapAt(s, board.Position{Col: 2, Row: 2}, board.Position{Col: 2, Row: 3})
	settle(t, s)

	scoring := testConfig().Scoring
	first := 3*scoring.BaseScore + scoring.PowerScore
	second := 3 * scoring.BaseScore
	if s.Score() != first+second {
		t.Errorf("Score() = %d, expected %d", s.Score(), first+second)
	}
	if rec.Count(CueMatch) != 2 {
		t.Errorf("match cues = %d, expected one per level", rec.Count(CueMatch))
	}
	if s.TimeRemaining() != s.MaxTime() {
		t.Errorf("TimeRemaining() = %d, expected capped at %d", s.TimeRemaining(), s.MaxTime())
	}
	if got, expected := rowsOf(s), "momo/ndbd/obdb/mdib"; got != expected {
		t.Errorf("board = %s, expected %s", got, expected)
	}
	if err := s.Board().CheckInvariant(); err != nil {
		t.Error(err)
	}
}

func TestInputIgnoredWhileBusy(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.SwapMs = 200
	s, rec := playSession(t, cfg, 0, checkerboard...)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	rec.Drain()
	s.Update(0, press(core.ActionConfirm))
	s.Update(0, press(core.ActionHint))

	if s.Selection() != nil {
		t.Error("confirm while busy should not select")
	}
	if _, ok := s.Hint(); ok {
		t.Error("hint while busy should be ignored")
	}
	if cues := rec.Drain(); len(cues) != 0 {
		t.Errorf("cues while busy = %v, expected none", cues)
	}
}

func TestVictoryClampsScoreToGoal(t *testing.T) {
	s, rec := playSession(t, testConfig(), 245,
		"abaa",
		"dkdk",
		"kdkd",
		"dkdk",
	)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	for range 50 {
		if s.Phase() != PhasePlay {
			break
		}
		s.Update(0, core.NewInputFrame())
	}

	if s.Phase() != PhaseLevelTransition {
		t.Fatalf("Phase() = %v, expected level transition", s.Phase())
	}
	if s.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", s.Level())
	}
	if s.Score() != 250 {
		t.Errorf("Score() = %d, expected the goal 250", s.Score())
	}
	if rec.Count(CueVictory) != 1 {
		t.Errorf("victory cues = %d, expected 1", rec.Count(CueVictory))
	}

	settle(t, s)
	if s.Phase() != PhasePlay || s.Goal() != 500 {
		t.Errorf("phase %v goal %d, expected play with goal 500", s.Phase(), s.Goal())
	}
}

func TestVictoryBeatsDefeat(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0, checkerboard...)
	s.play.score = s.play.goal
	s.play.timeRemaining = 0

	s.Update(0, core.NewInputFrame())

	if s.Phase() != PhaseLevelTransition {
		t.Errorf("Phase() = %v, expected level transition", s.Phase())
	}
	if rec.Count(CueGameOver) != 0 {
		t.Error("game over should not be signalled on a winning tick")
	}
}

func TestChecksWaitForCascade(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.SwapMs = 200
	s, _ := playSession(t, cfg, 0, checkerboard...)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	s.play.timeRemaining = 0
	s.Update(0, core.NewInputFrame())

	if s.Phase() != PhasePlay {
		t.Errorf("Phase() = %v, expected play while busy", s.Phase())
	}
}

func TestClockExpiredDuringCascadeEndsGame(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.SwapMs = 200
	s, rec := playSession(t, cfg, 0,
		"abaa",
		"dkdk",
		"kdkd",
		"dkdk",
	)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	s.play.timeRemaining = 0
	for range 50 {
		if s.Phase() != PhasePlay {
			break
		}
		s.Update(50*time.Millisecond, core.NewInputFrame())
	}

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", s.Phase())
	}
	if s.Score() != 15 {
		t.Errorf("Score() = %d, expected the cascade's 15 points", s.Score())
	}
	if rec.Count(CueGameOver) != 1 {
		t.Errorf("game over cues = %d, expected 1", rec.Count(CueGameOver))
	}
}

func TestClockExpiredDuringCascadeStillWins(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.SwapMs = 200
	s, rec := playSession(t, cfg, 245,
		"abaa",
		"dkdk",
		"kdkd",
		"dkdk",
	)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	s.play.timeRemaining = 0
	for range 50 {
		if s.Phase() != PhasePlay {
			break
		}
		s.Update(50*time.Millisecond, core.NewInputFrame())
	}

	if s.Phase() != PhaseLevelTransition {
		t.Fatalf("Phase() = %v, expected level transition", s.Phase())
	}
	if rec.Count(CueGameOver) != 0 {
		t.Error("game over should not be signalled when the cascade reaches the goal")
	}
}

func TestDefeatWhenTimeRunsOut(t *testing.T) {
	s, rec := playSession(t, testConfig(), 40, checkerboard...)
	s.play.timeRemaining = 1

	s.Update(time.Second, core.NewInputFrame())

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", s.Phase())
	}
	if s.Score() != 40 || s.Level() != 1 {
		t.Errorf("score %d level %d, expected 40 and 1", s.Score(), s.Level())
	}
	if rec.Count(CueGameOver) != 1 {
		t.Errorf("game over cues = %d, expected 1", rec.Count(CueGameOver))
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected play tasks cancelled", s.Pending())
	}

	s.Update(0, press(core.ActionConfirm))
	if s.Phase() != PhaseTitle {
		t.Errorf("Phase() = %v, expected title", s.Phase())
	}
}

func TestCountdown(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0, checkerboard...)

	s.Update(time.Second, core.NewInputFrame())
	if s.TimeRemaining() != 59 {
		t.Errorf("TimeRemaining() = %d, expected 59", s.TimeRemaining())
	}
	if s.LowTime() {
		t.Error("59s should not be low time")
	}

	s.play.timeRemaining = 6
	s.Update(time.Second, core.NewInputFrame())
	if !s.LowTime() || rec.Count(CueLowTime) != 1 {
		t.Errorf("low time %v with %d cues, expected a low-time cue", s.LowTime(), rec.Count(CueLowTime))
	}
}

func TestHint(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0, checkerboard...)

	s.Update(0, press(core.ActionHint))
	h, ok := s.Hint()
	if !ok {
		t.Fatal("checkerboard should have a hint")
	}
	want, _ := s.Board().FindHint()
	if h != want {
		t.Errorf("Hint() = %v, expected %v", h, want)
	}

	s.Update(1500*time.Millisecond, core.NewInputFrame())
	if _, ok := s.Hint(); ok {
		t.Error("hint should expire")
	}
	if rec.Count(CueError) != 0 {
		t.Error("an available hint should not emit an error")
	}
}

func TestHintUnavailable(t *testing.T) {
	s, rec := playSession(t, testConfig(), 0, staggered...)

	s.Update(0, press(core.ActionHint))

	if _, ok := s.Hint(); ok {
		t.Error("staggered board should have no hint")
	}
	if rec.Count(CueError) != 1 {
		t.Errorf("error cues = %d, expected 1", rec.Count(CueError))
	}
}

func TestGoalsCompound(t *testing.T) {
	s := NewSession(testConfig(), 1)
	s.previousGoal = 250

	expected := []int{250, 500, 1500}
	for i, want := range expected {
		level := i + 1
		s.toPlay(level, 0, board.FromRows(stripes, checkerboard...))
		if s.Goal() != want {
			t.Errorf("level %d goal = %d, expected %d", level, s.Goal(), want)
		}
	}
}

func TestTransitionCancelsPendingCallbacks(t *testing.T) {
	cfg := testConfig()
	cfg.Animation.SwapMs = 200
	s, _ := playSession(t, cfg, 0, checkerboard...)
	before := rowsOf(s)

	swapAt(s, board.Position{Col: 0, Row: 0}, board.Position{Col: 1, Row: 0})
	b := s.Board()
	s.toGameOver(1, 0)
	s.Update(time.Second, core.NewInputFrame())

	if s.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game over", s.Phase())
	}
	// The revert never ran: the board keeps the committed swap.
	if got := strings.Join(b.Rows(), "/"); got == before {
		t.Error("cancelled resolution should not have swapped back")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseTitle, "title"},
		{PhaseLevelTransition, "level-transition"},
		{PhasePlay, "play"},
		{PhaseGameOver, "game-over"},
		{PhaseExit, "exit"},
		{Phase(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", int(tt.phase), got, tt.expected)
		}
	}
}
