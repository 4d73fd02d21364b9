package board

import "math/rand"

// Hint is a pair of adjacent slots whose swap creates a match.
type Hint struct {
	A, B Position
}

// FindHint searches row-major for the first adjacent swap, right neighbour
// before lower neighbour, after which either moved tile sits in a horizontal
// or vertical run of MinimumMatchLength. The check is local: swaps that only
// pay off through a power tile's line clear are not reported.
// The board is unchanged on return.
func (b *Board) FindHint() (Hint, bool) {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if col+1 < b.width && b.trySwap(col, row, col+1, row) {
				return Hint{A: Position{col, row}, B: Position{col + 1, row}}, true
			}
			if row+1 < b.height && b.trySwap(col, row, col, row+1) {
				return Hint{A: Position{col, row}, B: Position{col, row + 1}}, true
			}
		}
	}
	return Hint{}, false
}

func (b *Board) trySwap(col1, row1, col2, row2 int) bool {
	if b.At(col1, row1) == nil || b.At(col2, row2) == nil {
		return false
	}
	b.swapSlots(col1, row1, col2, row2)
	ok := b.inRun(col1, row1) || b.inRun(col2, row2)
	b.swapSlots(col1, row1, col2, row2)
	return ok
}

// inRun reports whether the tile at (col, row) is part of a local run.
func (b *Board) inRun(col, row int) bool {
	t := b.At(col, row)
	if t == nil {
		return false
	}
	horizontal := 1 + b.count(col, row, -1, 0, t.Color) + b.count(col, row, 1, 0, t.Color)
	if horizontal >= MinimumMatchLength {
		return true
	}
	vertical := 1 + b.count(col, row, 0, -1, t.Color) + b.count(col, row, 0, 1, t.Color)
	return vertical >= MinimumMatchLength
}

// count walks from (col, row) in direction (dc, dr) counting tiles of color.
func (b *Board) count(col, row, dc, dr int, color Color) int {
	n := 0
	for {
		col += dc
		row += dr
		if !b.InBounds(col, row) {
			return n
		}
		t := b.slots[row*b.width+col]
		if t == nil || t.Color != color {
			return n
		}
		n++
	}
}

// RandomAdjacentPair picks a random interior tile and one of its four
// neighbours. It is used by the title screen's decorative shuffling.
// Boards narrower or shorter than three pick from the whole grid.
func (b *Board) RandomAdjacentPair(rng *rand.Rand) (*Tile, *Tile) {
	col := randomInterior(rng, b.width)
	row := randomInterior(rng, b.height)

	type step struct{ dc, dr int }
	dirs := []step{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, d := range dirs {
		nc, nr := col+d.dc, row+d.dr
		if b.InBounds(nc, nr) && b.At(col, row) != nil && b.At(nc, nr) != nil {
			return b.At(col, row), b.At(nc, nr)
		}
	}
	return nil, nil
}

func randomInterior(rng *rand.Rand, n int) int {
	if n < 3 {
		return rng.Intn(n)
	}
	return 1 + rng.Intn(n-2)
}
