package autoplay

import (
	"math/rand"

	"github.com/vovakirdan/slide2048/internal/engine"
	"github.com/vovakirdan/slide2048/internal/registry"
)

func init() {
	registry.Register("random", func(seed int64) registry.Strategy {
		return NewRandom(seed)
	})
	registry.Register("greedy", func(int64) registry.Strategy {
		return Greedy{}
	})
	registry.Register("corner", func(int64) registry.Strategy {
		return Corner{}
	})
}

// candidate is the outcome of one possible move.
type candidate struct {
	dir   engine.Direction
	board *engine.Board
	score int
}

// candidates returns every direction that changes the snapshot's board,
// in engine.Directions order.
func candidates(snap engine.Snapshot) []candidate {
	b, err := engine.BoardFromRows(snap.Rows)
	if err != nil {
		return nil
	}

	var out []candidate
	for _, dir := range engine.Directions {
		next, score, changed := engine.Slide(b, dir)
		if changed {
			out = append(out, candidate{dir: dir, board: next, score: score})
		}
	}
	return out
}

// Random picks uniformly among the moves that change the board.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ID() string    { return "random" }
func (r *Random) Title() string { return "Random legal move" }

func (r *Random) Next(snap engine.Snapshot) (engine.Direction, bool) {
	moves := candidates(snap)
	if len(moves) == 0 {
		return 0, false
	}
	return moves[r.rng.Intn(len(moves))].dir, true
}

// Greedy takes the move with the highest immediate merge score, breaking
// ties by the number of empty cells left and then by direction order.
type Greedy struct{}

func (Greedy) ID() string    { return "greedy" }
func (Greedy) Title() string { return "Greedy (best immediate score)" }

func (Greedy) Next(snap engine.Snapshot) (engine.Direction, bool) {
	moves := candidates(snap)
	if len(moves) == 0 {
		return 0, false
	}

	best := moves[0]
	for _, m := range moves[1:] {
		if m.score > best.score ||
			(m.score == best.score && m.board.EmptyCount() > best.board.EmptyCount()) {
			best = m
		}
	}
	return best.dir, true
}

// cornerOrder keeps big tiles in the bottom-left corner.
var cornerOrder = [...]engine.Direction{engine.Left, engine.Down, engine.Right, engine.Up}

// Corner plays the first legal move from a fixed preference order.
type Corner struct{}

func (Corner) ID() string    { return "corner" }
func (Corner) Title() string { return "Corner (left, down, right, up)" }

func (Corner) Next(snap engine.Snapshot) (engine.Direction, bool) {
	moves := candidates(snap)
	for _, want := range cornerOrder {
		for _, m := range moves {
			if m.dir == want {
				return want, true
			}
		}
	}
	return 0, false
}
