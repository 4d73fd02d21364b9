package board

import (
	"fmt"
	"strings"
)

const (
	DefaultWidth  = 8
	DefaultHeight = 8

	// MinimumMatchLength is the shortest run that counts as a match.
	MinimumMatchLength = 3
)

// Board is a width x height grid of tile slots.
// Slots are stored in row-major order: index = row*width + col.
// A non-empty slot always holds a tile whose Col and Row equal the slot.
type Board struct {
	width  int
	height int
	slots  []*Tile
	gen    Generator

	onMatch func(Group)
}

// New creates an empty board.
func New(width, height int, gen Generator) *Board {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("board: invalid size %dx%d", width, height))
	}
	if gen == nil {
		panic("board: nil generator")
	}
	return &Board{
		width:  width,
		height: height,
		slots:  make([]*Tile, width*height),
		gen:    gen,
	}
}

// FromRows builds a board from a text layout, one string per row.
// Lowercase letters are colour codes (see Color.Code), uppercase letters are
// power tiles of that colour and '.' is an empty slot. Refills use gen.
// It panics on malformed layouts; it is meant for fixtures and demos.
func FromRows(gen Generator, rows ...string) *Board {
	if len(rows) == 0 {
		panic("board: empty layout")
	}
	width := len([]rune(rows[0]))
	b := New(width, len(rows), gen)
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			panic(fmt.Sprintf("board: layout row %d has %d cells, expected %d", row, len(runes), width))
		}
		for col, r := range runes {
			if r == '.' {
				continue
			}
			pattern := PatternFlat
			if r >= 'A' && r <= 'Z' {
				pattern = PatternPower
				r += 'a' - 'A'
			}
			color, ok := ColorFromCode(r)
			if !ok {
				panic(fmt.Sprintf("board: unknown layout code %q at (%d,%d)", r, col, row))
			}
			b.Place(NewTile(col, row, color, pattern))
		}
	}
	return b
}

// SetMatchHook registers fn to be called once per group cleared by RemoveMatches.
func (b *Board) SetMatchHook(fn func(Group)) {
	b.onMatch = fn
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (col, row) is a slot of the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

func (b *Board) index(col, row int) int {
	if !b.InBounds(col, row) {
		panic(fmt.Sprintf("board: position (%d,%d) outside %dx%d grid", col, row, b.width, b.height))
	}
	return row*b.width + col
}

// At returns the tile at (col, row), or nil for an empty slot.
func (b *Board) At(col, row int) *Tile {
	return b.slots[b.index(col, row)]
}

// Place writes t into the slot named by its own coordinates.
func (b *Board) Place(t *Tile) {
	b.slots[b.index(t.Col, t.Row)] = t
}

// Contains reports whether t currently occupies its slot.
func (b *Board) Contains(t *Tile) bool {
	return t != nil && b.InBounds(t.Col, t.Row) && b.slots[b.index(t.Col, t.Row)] == t
}

func (b *Board) mustContain(t *Tile) {
	if t == nil {
		panic("board: nil tile")
	}
	if !b.Contains(t) {
		panic(fmt.Sprintf("board: tile %s is not on the board", t))
	}
}

// Tiles returns every tile in row-major order.
func (b *Board) Tiles() []*Tile {
	tiles := make([]*Tile, 0, len(b.slots))
	for _, t := range b.slots {
		if t != nil {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// Slots returns a copy of the slot array, nil for empty slots.
func (b *Board) Slots() []*Tile {
	slots := make([]*Tile, len(b.slots))
	copy(slots, b.slots)
	return slots
}

// Full reports whether every slot holds a tile.
func (b *Board) Full() bool {
	for _, t := range b.slots {
		if t == nil {
			return false
		}
	}
	return true
}

// Initialize fills every slot with a freshly generated tile.
// Matches are allowed; use InitializePlayable for a matchless board.
func (b *Board) Initialize() {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			b.slots[b.index(col, row)] = b.generate(col, row)
		}
	}
}

// InitializePlayable re-initializes the whole board until it holds no match
// and returns the number of attempts.
func (b *Board) InitializePlayable() int {
	attempts := 0
	for {
		attempts++
		b.Initialize()
		if len(b.FindMatches()) == 0 {
			return attempts
		}
	}
}

func (b *Board) generate(col, row int) *Tile {
	t := b.gen.Tile(col, row)
	if t == nil {
		panic(fmt.Sprintf("board: generator returned nil for (%d,%d)", col, row))
	}
	t.Col, t.Row = col, row
	t.Settle()
	return t
}

// Swap exchanges the slots and coordinates of two tiles on the board.
// It does not check adjacency or whether the swap is productive.
// Calling it twice with the same tiles restores the previous state.
func (b *Board) Swap(a, c *Tile) {
	b.mustContain(a)
	b.mustContain(c)
	b.swapSlots(a.Col, a.Row, c.Col, c.Row)
}

func (b *Board) swapSlots(col1, row1, col2, row2 int) {
	i, j := b.index(col1, row1), b.index(col2, row2)
	b.slots[i], b.slots[j] = b.slots[j], b.slots[i]
	if t := b.slots[i]; t != nil {
		t.Col, t.Row = col1, row1
	}
	if t := b.slots[j]; t != nil {
		t.Col, t.Row = col2, row2
	}
}

// CheckInvariant verifies that every tile's coordinates match its slot.
func (b *Board) CheckInvariant() error {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			t := b.slots[row*b.width+col]
			if t != nil && (t.Col != col || t.Row != row) {
				return fmt.Errorf("board: slot (%d,%d) holds tile claiming (%d,%d)", col, row, t.Col, t.Row)
			}
		}
	}
	return nil
}

// Rows renders the board in the layout format accepted by FromRows.
func (b *Board) Rows() []string {
	rows := make([]string, b.height)
	for row := 0; row < b.height; row++ {
		var sb strings.Builder
		for col := 0; col < b.width; col++ {
			t := b.slots[row*b.width+col]
			switch {
			case t == nil:
				sb.WriteRune('.')
			case t.IsPower():
				sb.WriteRune(t.Color.Code() - 'a' + 'A')
			default:
				sb.WriteRune(t.Color.Code())
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

func (b *Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
