// Package engine implements the sliding-tile merge puzzle: boards, moves,
// tile spawning, terminal detection and a bounded undo/redo history.
// It has no knowledge of terminals or rendering; the platform layer reads
// Snapshot values and forwards commands.
package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Board size limits.
const (
	MinSize     = 2
	MaxSize     = 8
	DefaultSize = 4
)

// Board is a square grid of tile values stored row-major in one buffer.
// 0 means empty; every other value is a power of two.
type Board struct {
	size  int
	cells []int
}

// NewBoard allocates a size x size board with every cell empty.
func NewBoard(size int) (*Board, error) {
	if size < MinSize || size > MaxSize {
		return nil, fmt.Errorf("engine: board size %d outside [%d, %d]: %w", size, MinSize, MaxSize, ErrInvalidArgument)
	}
	return &Board{
		size:  size,
		cells: make([]int, size*size),
	}, nil
}

// BoardFromRows builds a board from literal rows.
// Rows must form a square of a supported size and hold only 0 or powers of two.
func BoardFromRows(rows [][]int) (*Board, error) {
	b, err := NewBoard(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("engine: row %d has %d cells, want %d: %w", r, len(row), b.size, ErrInvalidArgument)
		}
		for c, v := range row {
			if !isTileValue(v) {
				return nil, fmt.Errorf("engine: cell (%d,%d) value %d is not 0 or a power of two: %w", r, c, v, ErrInvalidArgument)
			}
			b.cells[r*b.size+c] = v
		}
	}
	return b, nil
}

// isTileValue reports whether v is 0 or a positive power of two.
func isTileValue(v int) bool {
	return v == 0 || (v > 0 && v&(v-1) == 0)
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// Released reports whether the board's storage has been released.
func (b *Board) Released() bool {
	return b.cells == nil
}

// Release drops the board's storage. Calling it more than once is a no-op.
func (b *Board) Release() {
	b.cells = nil
}

// Get returns the value at (row, col).
func (b *Board) Get(row, col int) int {
	return b.cells[row*b.size+col]
}

// Set stores v at (row, col).
func (b *Board) Set(row, col, v int) {
	b.cells[row*b.size+col] = v
}

// CopyFrom copies every cell of src into b. Both boards must have the same size.
func (b *Board) CopyFrom(src *Board) error {
	if src == nil || b.size != src.size {
		return fmt.Errorf("engine: copy between mismatched boards: %w", ErrInvalidArgument)
	}
	if b.Released() || src.Released() {
		return fmt.Errorf("engine: copy with released board: %w", ErrAllocation)
	}
	copy(b.cells, src.cells)
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{size: b.size}
	if b.cells != nil {
		c.cells = make([]int, len(b.cells))
		copy(c.cells, b.cells)
	}
	return c
}

// Equal reports whether both boards have the same size and cell values.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size || len(b.cells) != len(other.cells) {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rows returns a copy of the board as a slice of rows.
func (b *Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range b.size {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	n := 0
	for _, v := range b.cells {
		if v == 0 {
			n++
		}
	}
	return n
}

// TileCount returns the number of non-empty cells.
func (b *Board) TileCount() int {
	return len(b.cells) - b.EmptyCount()
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for _, v := range b.cells {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// String formats the board as right-aligned columns, one row per line.
func (b *Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	if width < 1 {
		width = 1
	}

	var sb strings.Builder
	for r := range b.size {
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.Get(r, c)
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
