package engine

import (
	"fmt"
	"math/rand"
)

// DefaultFourProbability is the chance that a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.1

// Tile is a spawned tile and where it landed.
type Tile struct {
	Row   int
	Col   int
	Value int
}

// Spawner places new tiles on a board using an injected random source.
type Spawner struct {
	rng             *rand.Rand
	fourProbability float64
}

// NewSpawner creates a spawner drawing from src. fourProbability is clamped to [0, 1].
func NewSpawner(src rand.Source, fourProbability float64) *Spawner {
	switch {
	case fourProbability < 0:
		fourProbability = 0
	case fourProbability > 1:
		fourProbability = 1
	}
	return &Spawner{
		rng:             rand.New(src),
		fourProbability: fourProbability,
	}
}

// FourProbability returns the chance of spawning a 4.
func (sp *Spawner) FourProbability() float64 {
	return sp.fourProbability
}

// Spawn puts a 2 (or, with the configured probability, a 4) on an empty
// cell chosen uniformly among all empty cells. A full board is an error and
// leaves the state untouched.
func (sp *Spawner) Spawn(state *GameState) (Tile, error) {
	b := state.Board
	if b == nil || b.Released() {
		return Tile{}, fmt.Errorf("engine: spawn on released board: %w", ErrAllocation)
	}

	empty := b.EmptyCount()
	if empty == 0 {
		return Tile{}, fmt.Errorf("engine: spawn on full board: %w", ErrNoEmptyCell)
	}

	target := sp.rng.Intn(empty)
	value := 2
	if sp.rng.Float64() < sp.fourProbability {
		value = 4
	}

	seen := 0
	for i, v := range b.cells {
		if v != 0 {
			continue
		}
		if seen == target {
			b.cells[i] = value
			return Tile{Row: i / b.size, Col: i % b.size, Value: value}, nil
		}
		seen++
	}

	// EmptyCount and the walk above see the same cells, so this is unreachable.
	return Tile{}, fmt.Errorf("engine: empty cell %d of %d not found: %w", target, empty, ErrNoEmptyCell)
}
