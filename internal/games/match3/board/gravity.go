package board

// Fall records a tile that moved down a column during compaction.
type Fall struct {
	Tile    *Tile
	FromRow int
	ToRow   int
}

// Entry records a tile generated into an empty slot by Refill.
type Entry struct {
	Tile *Tile
	Row  int
}

// EntryRow is the render row refilled tiles start from, just above the grid.
const EntryRow = -1

// ComputeFallout compacts every column downward, keeping the top-to-bottom
// order of the remaining tiles, and returns one Fall per moved tile.
// Render positions are left untouched for the animation layer.
func (b *Board) ComputeFallout() []Fall {
	var falls []Fall
	for col := 0; col < b.width; col++ {
		space := -1
		for row := b.height - 1; row >= 0; row-- {
			t := b.slots[b.index(col, row)]
			if t == nil {
				if space < 0 {
					space = row
				}
				continue
			}
			if space < 0 {
				continue
			}

			b.slots[b.index(col, space)] = t
			b.slots[b.index(col, row)] = nil
			falls = append(falls, Fall{Tile: t, FromRow: row, ToRow: space})
			t.Row = space

			// Resume just above the slot that was filled.
			row = space
			space = -1
		}
	}
	return falls
}

// Refill generates a tile for every empty slot, column by column from the
// top, and places its render position above the grid.
func (b *Board) Refill() []Entry {
	var entries []Entry
	for col := 0; col < b.width; col++ {
		for row := 0; row < b.height; row++ {
			i := b.index(col, row)
			if b.slots[i] != nil {
				continue
			}
			t := b.generate(col, row)
			t.Y = EntryRow
			b.slots[i] = t
			entries = append(entries, Entry{Tile: t, Row: row})
		}
	}
	return entries
}
