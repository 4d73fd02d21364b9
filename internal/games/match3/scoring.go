package match3

import (
	"math"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3/board"
)

// Award is the score and countdown bonus earned by cleared groups.
type Award struct {
	Score  int
	Time   int // Seconds
	Groups int
	Tiles  int
}

// Add returns the sum of two awards.
func (a Award) Add(b Award) Award {
	return Award{
		Score:  a.Score + b.Score,
		Time:   a.Time + b.Time,
		Groups: a.Groups + b.Groups,
		Tiles:  a.Tiles + b.Tiles,
	}
}

// ScoreGroup returns the award for one cleared group: the base score per
// ordinary tile, the power score per power tile and the time bonus per tile.
func ScoreGroup(s config.Match3Scoring, g board.Group) Award {
	flat, power := g.FlatCount(), g.PowerCount()
	return Award{
		Score:  flat*s.BaseScore + power*s.PowerScore,
		Time:   (flat + power) * s.TimeBonusSecs,
		Groups: 1,
		Tiles:  flat + power,
	}
}

// ScoreGroups sums ScoreGroup over every group. A tile that belongs to a row
// group and a column group scores in both.
func ScoreGroups(s config.Match3Scoring, groups []board.Group) Award {
	var total Award
	for _, g := range groups {
		total = total.Add(ScoreGroup(s, g))
	}
	return total
}

// NextGoal returns the goal of a level given the goal of the level before.
// Goals compound: previous * floor(level * scale).
func NextGoal(previous, level int, scale float64) int {
	factor := int(math.Floor(float64(level) * scale))
	if factor < 1 {
		factor = 1
	}
	return previous * factor
}
