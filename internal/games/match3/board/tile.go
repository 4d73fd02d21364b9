// Package board implements the match-3 grid engine: tile generation, swaps,
// match detection with power-tile line clears, gravity, refill, cascade
// resolution and hint search.
//
// The engine is a pure state transformer. It never animates or plays sounds;
// every mutation returns a description of what changed so the caller can
// animate it. Invalid coordinates and tiles that are not on the board are
// programmer errors and panic.
package board

import "fmt"

// Color is a tile colour from the full visual palette.
type Color int

// The visual palette. Only GenerationPalette is used for new tiles.
const (
	Beige Color = iota
	DarkPink
	DarkBeige
	Pink
	DarkGreen
	Red
	Green
	DarkRed
	LightGreen
	Brown
	Blue
	Orange
	DarkBlue
	LightGrey
	DarkPurple
	Grey
	Purple
	DarkGrey

	colorCount
)

var colorNames = [...]string{
	"Beige", "DarkPink", "DarkBeige", "Pink", "DarkGreen", "Red",
	"Green", "DarkRed", "LightGreen", "Brown", "Blue", "Orange",
	"DarkBlue", "LightGrey", "DarkPurple", "Grey", "Purple", "DarkGrey",
}

// GenerationPalette is the colour subset new tiles are drawn from.
var GenerationPalette = []Color{Beige, Pink, Purple, LightGreen, Blue, Orange}

// String returns the colour name.
func (c Color) String() string {
	if c < 0 || c >= colorCount {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Code returns the single-letter layout code of the colour ('a' for Beige).
func (c Color) Code() rune {
	return 'a' + rune(c)
}

// ColorFromCode maps a lowercase layout code back to a colour.
func ColorFromCode(r rune) (Color, bool) {
	c := Color(r - 'a')
	if r < 'a' || c >= colorCount {
		return 0, false
	}
	return c, true
}

// Pattern distinguishes ordinary tiles from power tiles.
type Pattern int

const (
	PatternFlat Pattern = iota
	PatternPower
)

// Position is a grid coordinate.
type Position struct {
	Col, Row int
}

// Manhattan returns the grid distance between two positions.
func (p Position) Manhattan(o Position) int {
	dc := p.Col - o.Col
	if dc < 0 {
		dc = -dc
	}
	dr := p.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	return dc + dr
}

// Tile is a single piece on the board.
// Col and Row are authoritative. X and Y are the render position in tile
// units, owned by the animation layer; at rest they equal Col and Row.
type Tile struct {
	Col, Row int
	Color    Color
	Pattern  Pattern
	X, Y     float64
}

// NewTile creates a tile resting at (col, row).
func NewTile(col, row int, color Color, pattern Pattern) *Tile {
	return &Tile{
		Col:     col,
		Row:     row,
		Color:   color,
		Pattern: pattern,
		X:       float64(col),
		Y:       float64(row),
	}
}

// IsPower reports whether the tile clears its whole line when matched.
func (t *Tile) IsPower() bool {
	return t.Pattern == PatternPower
}

// Position returns the tile's grid coordinate.
func (t *Tile) Position() Position {
	return Position{Col: t.Col, Row: t.Row}
}

// AtRest reports whether the render position has converged on the grid position.
func (t *Tile) AtRest() bool {
	return t.X == float64(t.Col) && t.Y == float64(t.Row)
}

// Settle snaps the render position to the grid position.
func (t *Tile) Settle() {
	t.X = float64(t.Col)
	t.Y = float64(t.Row)
}

func (t *Tile) String() string {
	if t.IsPower() {
		return fmt.Sprintf("%s*@(%d,%d)", t.Color, t.Col, t.Row)
	}
	return fmt.Sprintf("%s@(%d,%d)", t.Color, t.Col, t.Row)
}
