package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnFillsOnlyEmptyCell(t *testing.T) {
	const trials = 10000
	fours := 0

	for seed := range int64(trials) {
		state := &GameState{Board: mustBoard(t, [][]int{
			{2, 4, 8},
			{16, 0, 32},
			{64, 128, 256},
		})}
		sp := NewSpawner(rand.NewSource(seed), DefaultFourProbability)

		tile, err := sp.Spawn(state)
		if err != nil {
			t.Fatalf("seed %d: Spawn failed: %v", seed, err)
		}
		if tile.Row != 1 || tile.Col != 1 {
			t.Fatalf("seed %d: spawned at (%d,%d), want (1,1)", seed, tile.Row, tile.Col)
		}
		if got := state.Board.Get(1, 1); got != tile.Value {
			t.Fatalf("seed %d: cell = %d, tile value = %d", seed, got, tile.Value)
		}

		switch tile.Value {
		case 2:
		case 4:
			fours++
		default:
			t.Fatalf("seed %d: spawned value %d, want 2 or 4", seed, tile.Value)
		}
	}

	ratio := float64(fours) / trials
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("fraction of 4s = %.3f, want about 0.10", ratio)
	}
}

func TestSpawnIsUniformOverEmptyCells(t *testing.T) {
	const trials = 4000
	sp := NewSpawner(rand.NewSource(42), DefaultFourProbability)
	counts := make(map[[2]int]int)

	for range trials {
		state := &GameState{Board: mustBoard(t, [][]int{{0, 0}, {0, 0}})}
		tile, err := sp.Spawn(state)
		if err != nil {
			t.Fatalf("Spawn failed: %v", err)
		}
		if state.Board.TileCount() != 1 {
			t.Fatalf("TileCount() = %d after one spawn, want 1", state.Board.TileCount())
		}
		counts[[2]int{tile.Row, tile.Col}]++
	}

	if len(counts) != 4 {
		t.Fatalf("spawned into %d distinct cells, want 4", len(counts))
	}
	for cell, n := range counts {
		if n < 850 || n > 1150 {
			t.Errorf("cell %v chosen %d times out of %d, want about %d", cell, n, trials, trials/4)
		}
	}
}

func TestSpawnOnFullBoard(t *testing.T) {
	state := &GameState{Board: mustBoard(t, [][]int{{2, 4}, {4, 2}})}
	before := state.Board.Clone()

	_, err := NewSpawner(rand.NewSource(1), DefaultFourProbability).Spawn(state)
	if !errors.Is(err, ErrNoEmptyCell) {
		t.Errorf("Spawn on full board error = %v, want ErrNoEmptyCell", err)
	}
	if !state.Board.Equal(before) {
		t.Errorf("full board was modified:\n%v", state.Board)
	}
}

func TestSpawnProbabilityExtremes(t *testing.T) {
	tests := []struct {
		p    float64
		want int
	}{
		{p: 0, want: 2},
		{p: 1, want: 4},
		{p: -1, want: 2},
		{p: 3, want: 4},
	}

	for _, tt := range tests {
		sp := NewSpawner(rand.NewSource(7), tt.p)
		for range 50 {
			state := &GameState{Board: mustBoard(t, [][]int{{0, 0}, {0, 0}})}
			tile, err := sp.Spawn(state)
			if err != nil {
				t.Fatalf("Spawn failed: %v", err)
			}
			if tile.Value != tt.want {
				t.Fatalf("p=%v: spawned %d, want %d", tt.p, tile.Value, tt.want)
			}
		}
	}
}
