package board

import (
	"github.com/zyedidia/generic/mapset"
)

// Orientation is the direction of a match group.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Group is a set of tiles cleared together: a run of equal colours, or the
// whole line when the run contains a power tile.
type Group struct {
	Orientation Orientation
	Tiles       []*Tile
}

// PowerCount returns the number of power tiles in the group.
func (g Group) PowerCount() int {
	n := 0
	for _, t := range g.Tiles {
		if t.IsPower() {
			n++
		}
	}
	return n
}

// FlatCount returns the number of ordinary tiles in the group.
func (g Group) FlatCount() int {
	return len(g.Tiles) - g.PowerCount()
}

// FindMatches scans rows top to bottom, then columns left to right, and
// returns every run of MinimumMatchLength or more equal colours.
// A run containing a power tile becomes its entire row or column.
// A tile can appear in both a row group and a column group.
func (b *Board) FindMatches() []Group {
	var groups []Group
	for row := 0; row < b.height; row++ {
		groups = b.scanLine(groups, Horizontal, row, b.width)
	}
	for col := 0; col < b.width; col++ {
		groups = b.scanLine(groups, Vertical, col, b.height)
	}
	return groups
}

func (b *Board) lineAt(o Orientation, line, i int) *Tile {
	if o == Horizontal {
		return b.slots[line*b.width+i]
	}
	return b.slots[i*b.width+line]
}

// scanLine appends the groups of one row or column.
func (b *Board) scanLine(groups []Group, o Orientation, line, length int) []Group {
	start := 0
	for i := 1; i <= length; i++ {
		first := b.lineAt(o, line, start)
		if i < length {
			t := b.lineAt(o, line, i)
			if first != nil && t != nil && t.Color == first.Color {
				continue
			}
		}
		if first != nil && i-start >= MinimumMatchLength {
			groups = append(groups, b.runGroup(o, line, start, i, length))
		}
		start = i
	}
	return groups
}

func (b *Board) runGroup(o Orientation, line, from, to, length int) Group {
	run := make([]*Tile, 0, to-from)
	power := false
	for i := from; i < to; i++ {
		t := b.lineAt(o, line, i)
		run = append(run, t)
		power = power || t.IsPower()
	}
	if !power {
		return Group{Orientation: o, Tiles: run}
	}

	whole := make([]*Tile, 0, length)
	for i := 0; i < length; i++ {
		if t := b.lineAt(o, line, i); t != nil {
			whole = append(whole, t)
		}
	}
	return Group{Orientation: o, Tiles: whole}
}

// Removal describes the slots cleared by RemoveMatches.
type Removal struct {
	cleared mapset.Set[Position]
	order   []Position
	groups  int
}

// Count returns the number of distinct slots cleared.
func (r Removal) Count() int {
	return len(r.order)
}

// Groups returns the number of groups that were removed.
func (r Removal) Groups() int {
	return r.groups
}

// Has reports whether the slot at p was cleared.
func (r Removal) Has(p Position) bool {
	return r.order != nil && r.cleared.Has(p)
}

// Positions returns the cleared slots in the order they were cleared.
func (r Removal) Positions() []Position {
	return r.order
}

// RemoveMatches clears every slot referenced by the groups and calls the
// match hook once per group. Tiles shared by two groups are cleared once.
func (b *Board) RemoveMatches(groups []Group) Removal {
	r := Removal{cleared: mapset.New[Position]()}
	for _, g := range groups {
		for _, t := range g.Tiles {
			p := t.Position()
			if r.cleared.Has(p) {
				continue
			}
			b.mustContain(t)
			b.slots[b.index(p.Col, p.Row)] = nil
			r.cleared.Put(p)
			r.order = append(r.order, p)
		}
		r.groups++
		if b.onMatch != nil {
			b.onMatch(g)
		}
	}
	return r
}
