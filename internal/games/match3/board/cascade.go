package board

// CascadeLevel is one pass of match removal, gravity and refill.
type CascadeLevel struct {
	Groups  []Group
	Removed Removal
	Falls   []Fall
	Entries []Entry
}

// Resolution is the record of a full cascade, one level per pass.
type Resolution struct {
	Levels []CascadeLevel
}

// Matched reports whether any pass cleared a match.
func (r Resolution) Matched() bool {
	return len(r.Levels) > 0
}

// Groups returns every group cleared across all levels, in order.
func (r Resolution) Groups() []Group {
	var groups []Group
	for _, level := range r.Levels {
		groups = append(groups, level.Groups...)
	}
	return groups
}

// ResolveStep runs a single cascade pass. It returns false, leaving the
// board untouched, when there is nothing to match.
func (b *Board) ResolveStep() (CascadeLevel, bool) {
	groups := b.FindMatches()
	if len(groups) == 0 {
		return CascadeLevel{}, false
	}
	level := CascadeLevel{Groups: groups}
	level.Removed = b.RemoveMatches(groups)
	level.Falls = b.ComputeFallout()
	level.Entries = b.Refill()
	return level, true
}

// Cascade resolves passes until the board holds no match.
func (b *Board) Cascade() Resolution {
	var r Resolution
	for {
		level, ok := b.ResolveStep()
		if !ok {
			return r
		}
		r.Levels = append(r.Levels, level)
	}
}
