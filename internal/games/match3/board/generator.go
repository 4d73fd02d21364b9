package board

import "math/rand"

// DefaultPowerChance is the probability that a generated tile is a power tile.
const DefaultPowerChance = 0.05

// Generator produces the tile for an empty slot.
type Generator interface {
	Tile(col, row int) *Tile
}

// RandomGenerator draws a colour uniformly from Palette and, independently,
// makes the tile a power tile with probability PowerChance.
type RandomGenerator struct {
	rng         *rand.Rand
	Palette     []Color
	PowerChance float64
}

// NewRandomGenerator creates a generator over GenerationPalette.
func NewRandomGenerator(rng *rand.Rand, powerChance float64) *RandomGenerator {
	return &RandomGenerator{
		rng:         rng,
		Palette:     GenerationPalette,
		PowerChance: powerChance,
	}
}

// Tile generates a new tile for (col, row).
func (g *RandomGenerator) Tile(col, row int) *Tile {
	color := g.Palette[g.rng.Intn(len(g.Palette))]
	pattern := PatternFlat
	if g.rng.Float64() < g.PowerChance {
		pattern = PatternPower
	}
	return NewTile(col, row, color, pattern)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(col, row int) *Tile

// Tile calls f(col, row).
func (f GeneratorFunc) Tile(col, row int) *Tile {
	return f(col, row)
}
