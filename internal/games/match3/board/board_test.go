package board

import (
	"math/rand"
	"strings"
	"testing"
)

// stripes generates refill tiles from colours absent in the fixtures below,
// laid out so that no two neighbours share a colour.
var stripes = GeneratorFunc(func(col, row int) *Tile {
	palette := []Color{DarkBlue, LightGrey, DarkPurple, Grey}
	return NewTile(col, row, palette[(col*2+row)%len(palette)], PatternFlat)
})

func randomBoard(seed int64, powerChance float64) *Board {
	gen := NewRandomGenerator(rand.New(rand.NewSource(seed)), powerChance)
	return New(DefaultWidth, DefaultHeight, gen)
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected panic", name)
			return
		}
		if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "board:") {
			t.Errorf("%s: panic %v should carry the board: prefix", name, r)
		}
	}()
	fn()
}

func TestFromRowsRoundTrip(t *testing.T) {
	rows := []string{
		"abK.",
		"dQia",
	}
	b := FromRows(stripes, rows...)

	if b.Width() != 4 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 4x2", b.Width(), b.Height())
	}
	if got := b.Rows(); strings.Join(got, "/") != strings.Join(rows, "/") {
		t.Errorf("Rows() = %v, expected %v", got, rows)
	}
	if tile := b.At(2, 0); tile.Color != Blue || !tile.IsPower() {
		t.Errorf("At(2,0) = %v, expected power Blue", tile)
	}
	if b.At(3, 0) != nil {
		t.Error("'.' should be an empty slot")
	}
	if err := b.CheckInvariant(); err != nil {
		t.Error(err)
	}
}

func TestInitializePlayableIsMatchless(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		b := randomBoard(seed, DefaultPowerChance)
		attempts := b.InitializePlayable()

		if attempts < 1 {
			t.Errorf("seed %d: attempts = %d", seed, attempts)
		}
		if !b.Full() {
			t.Errorf("seed %d: board not full", seed)
		}
		if m := b.FindMatches(); len(m) != 0 {
			t.Errorf("seed %d: playable board has %d matches\n%s", seed, len(m), b)
		}
		if err := b.CheckInvariant(); err != nil {
			t.Errorf("seed %d: %v", seed, err)
		}
		for _, tile := range b.Tiles() {
			if !tile.AtRest() {
				t.Fatalf("seed %d: %v not at rest", seed, tile)
			}
		}
	}
}

func TestInitializeAllowsMatches(t *testing.T) {
	mono := GeneratorFunc(func(col, row int) *Tile {
		return NewTile(col, row, Orange, PatternFlat)
	})
	b := New(4, 4, mono)
	b.Initialize()

	// Four rows and four columns of four equal tiles.
	if got := len(b.FindMatches()); got != 8 {
		t.Errorf("FindMatches() = %d groups, expected 8", got)
	}
}

func TestRandomGeneratorUsesPalette(t *testing.T) {
	gen := NewRandomGenerator(rand.New(rand.NewSource(7)), 1)
	allowed := map[Color]bool{}
	for _, c := range GenerationPalette {
		allowed[c] = true
	}
	for i := 0; i < 200; i++ {
		tile := gen.Tile(0, 0)
		if !allowed[tile.Color] {
			t.Fatalf("generated %v outside the generation palette", tile.Color)
		}
		if !tile.IsPower() {
			t.Fatal("PowerChance 1 should always produce power tiles")
		}
	}

	gen.PowerChance = 0
	for i := 0; i < 200; i++ {
		if gen.Tile(0, 0).IsPower() {
			t.Fatal("PowerChance 0 should never produce power tiles")
		}
	}
}

func TestSwapIsReversible(t *testing.T) {
	b := randomBoard(42, DefaultPowerChance)
	b.Initialize()
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		tiles := b.Tiles()
		a := tiles[rng.Intn(len(tiles))]
		c := tiles[rng.Intn(len(tiles))]
		before := b.Slots()
		positions := make([]Position, len(before))
		for j, tile := range before {
			positions[j] = tile.Position()
		}

		b.Swap(a, c)
		if err := b.CheckInvariant(); err != nil {
			t.Fatalf("after swap: %v", err)
		}
		b.Swap(a, c)

		after := b.Slots()
		for j := range before {
			if after[j] != before[j] {
				t.Fatalf("slot %d holds a different tile after double swap", j)
			}
			if after[j].Position() != positions[j] {
				t.Fatalf("slot %d tile moved to %v", j, after[j].Position())
			}
		}
	}
}

func TestSwapExchangesSlots(t *testing.T) {
	b := FromRows(stripes, "ab")
	a, c := b.At(0, 0), b.At(1, 0)
	b.Swap(a, c)

	if b.At(0, 0) != c || b.At(1, 0) != a {
		t.Error("slots not exchanged")
	}
	if a.Col != 1 || c.Col != 0 {
		t.Errorf("coordinates not exchanged: a=%v c=%v", a, c)
	}
	if a.Color != Beige || c.Color != DarkPink {
		t.Error("swap must not recolour tiles")
	}
}

func TestProgrammerErrorsPanic(t *testing.T) {
	b := FromRows(stripes, "ab", "da")
	stray := NewTile(0, 0, Beige, PatternFlat)

	expectPanic(t, "At out of range", func() { b.At(2, 0) })
	expectPanic(t, "At negative", func() { b.At(0, -1) })
	expectPanic(t, "Swap stray tile", func() { b.Swap(stray, b.At(1, 0)) })
	expectPanic(t, "Swap nil tile", func() { b.Swap(nil, b.At(1, 0)) })
	expectPanic(t, "New invalid size", func() { New(0, 3, stripes) })
	expectPanic(t, "New nil generator", func() { New(3, 3, nil) })
	expectPanic(t, "FromRows unknown code", func() { FromRows(stripes, "a?") })
}

func TestCheckInvariantDetectsDrift(t *testing.T) {
	b := FromRows(stripes, "ab", "da")
	b.At(1, 1).Row = 0

	if err := b.CheckInvariant(); err == nil {
		t.Error("expected invariant violation")
	}
}

func TestRandomAdjacentPair(t *testing.T) {
	b := randomBoard(5, 0)
	b.Initialize()
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		a, c := b.RandomAdjacentPair(rng)
		if a == nil || c == nil {
			t.Fatal("expected a pair on a full board")
		}
		if a.Position().Manhattan(c.Position()) != 1 {
			t.Fatalf("%v and %v are not adjacent", a, c)
		}
		if a.Col < 1 || a.Col > b.Width()-2 || a.Row < 1 || a.Row > b.Height()-2 {
			t.Fatalf("%v is not an interior tile", a)
		}
	}
}
