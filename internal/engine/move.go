package engine

import (
	"fmt"
	"strings"
)

// Direction is the travel direction of a move. The numbering matches the
// classic command codes: 0 up, 1 right, 2 down, 3 left.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every valid direction in command-code order.
var Directions = [...]Direction{Up, Right, Down, Left}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// ParseDirection converts a name such as "left" or "L" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "right", "r":
		return Right, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	}
	return 0, fmt.Errorf("engine: unknown direction %q: %w", s, ErrInvalidArgument)
}

// traversal describes how a direction walks the board: lines are rows or
// columns, and each line is read starting at the edge tiles slide toward.
type traversal struct {
	vertical bool // lines are columns
	reverse  bool // gravity edge is the far end of the line
}

func traversalFor(d Direction) traversal {
	switch d {
	case Up:
		return traversal{vertical: true}
	case Down:
		return traversal{vertical: true, reverse: true}
	case Right:
		return traversal{reverse: true}
	default:
		return traversal{}
	}
}

// index maps position k (counted from the gravity edge) of a line to a cell index.
func (t traversal) index(size, line, k int) int {
	if t.reverse {
		k = size - 1 - k
	}
	if t.vertical {
		return k*size + line
	}
	return line*size + k
}

// compact moves non-zero values to the front of line, keeping their order,
// and zero-fills the rest. It returns the number of non-zero values.
func compact(line []int) int {
	n := 0
	for _, v := range line {
		if v != 0 {
			line[n] = v
			n++
		}
	}
	for i := n; i < len(line); i++ {
		line[i] = 0
	}
	return n
}

// mergeLine slides and merges a single line toward index 0.
// A merged tile is consumed for the rest of the move, so [2 2 2] becomes
// [4 2], never [8]. Returns the score gained.
func mergeLine(line []int) int {
	score := 0
	n := compact(line)
	for i := 0; i+1 < n; i++ {
		if line[i] == line[i+1] {
			line[i] *= 2
			score += line[i]
			line[i+1] = 0
			i++
		}
	}
	if score > 0 {
		compact(line)
	}
	return score
}

// ApplyMove slides every line of the board in dir and merges equal neighbours.
// Board and score are updated in place only when some cell changed.
// An invalid direction is a no-op.
func ApplyMove(state *GameState, dir Direction) (changed bool, delta int) {
	if !dir.Valid() || state == nil || state.Board == nil || state.Board.Released() {
		return false, 0
	}

	b := state.Board
	t := traversalFor(dir)
	var before, line [MaxSize]int

	for l := range b.size {
		for k := range b.size {
			v := b.cells[t.index(b.size, l, k)]
			before[k] = v
			line[k] = v
		}

		gained := mergeLine(line[:b.size])
		if line == before {
			continue
		}

		changed = true
		delta += gained
		for k := range b.size {
			b.cells[t.index(b.size, l, k)] = line[k]
		}
	}

	if changed {
		state.Score += delta
	}
	return changed, delta
}

// Slide returns the board that results from moving b in dir, together with
// the score gained and whether anything changed. b itself is not modified.
func Slide(b *Board, dir Direction) (*Board, int, bool) {
	scratch := &GameState{Board: b.Clone()}
	changed, delta := ApplyMove(scratch, dir)
	return scratch.Board, delta, changed
}

// CanMove reports whether dir would change the board.
func CanMove(b *Board, dir Direction) bool {
	_, _, changed := Slide(b, dir)
	return changed
}
