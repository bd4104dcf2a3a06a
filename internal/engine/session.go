package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/slide2048/internal/core"
)

// Options configures a new Session. Zero values select the defaults, except
// FourProbability: zero means only 2s spawn. Callers wanting the classic mix
// pass DefaultFourProbability.
type Options struct {
	Size            int
	HistoryCapacity int
	FourProbability float64
	Source          rand.Source
	Logger          *log.Logger
}

func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	if o.HistoryCapacity == 0 {
		o.HistoryCapacity = DefaultHistoryCapacity
	}
	if o.Source == nil {
		o.Source = rand.NewSource(time.Now().UnixNano())
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Snapshot is a read-only view of the session for renderers.
type Snapshot struct {
	Size     int
	Rows     [][]int
	Score    int
	Terminal bool
	MaxTile  int
	CanUndo  bool
	CanRedo  bool
}

// Session owns one game: the live state, its history and the spawner.
// It is not safe for concurrent use; one control loop drives it.
type Session struct {
	size    int
	state   *GameState
	history *History
	spawner *Spawner
	logger  *log.Logger
	closed  bool
}

// NewSession validates opts and starts a game with two random tiles.
// The initial position is the first history entry.
func NewSession(opts Options) (*Session, error) {
	opts = opts.withDefaults()

	if opts.Size < MinSize || opts.Size > MaxSize {
		return nil, fmt.Errorf("engine: board size %d outside [%d, %d]: %w", opts.Size, MinSize, MaxSize, ErrInvalidArgument)
	}
	if opts.FourProbability < 0 || opts.FourProbability > 1 {
		return nil, fmt.Errorf("engine: four probability %v outside [0, 1]: %w", opts.FourProbability, ErrInvalidArgument)
	}

	history, err := NewHistory(opts.HistoryCapacity)
	if err != nil {
		return nil, err
	}

	s := &Session{
		size:    opts.Size,
		history: history,
		spawner: NewSpawner(opts.Source, opts.FourProbability),
		logger:  opts.Logger,
	}

	state, err := s.newGame()
	if err != nil {
		return nil, err
	}
	s.state = state
	s.history.Save(state)

	s.logger.Debug("session started", "size", s.size, "history", history.Capacity(), "p4", opts.FourProbability)
	return s, nil
}

// newGame builds a fresh state with two spawned tiles.
func (s *Session) newGame() (*GameState, error) {
	board, err := NewBoard(s.size)
	if err != nil {
		return nil, err
	}
	state := &GameState{Board: board}
	for range 2 {
		if _, err := s.spawner.Spawn(state); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// Move applies dir. If the board changes, a tile is spawned, the terminal
// flag is recomputed and the new state is saved to history. A move that
// changes nothing is a no-op and returns false. On error the session is
// left exactly as it was.
func (s *Session) Move(dir Direction) (bool, error) {
	if s.closed {
		return false, fmt.Errorf("engine: move on closed session: %w", ErrAllocation)
	}
	if !dir.Valid() {
		return false, fmt.Errorf("engine: move %v: %w", dir, ErrInvalidArgument)
	}

	next := s.state.Clone()
	changed, delta := ApplyMove(next, dir)
	if !changed {
		next.release()
		return false, nil
	}

	tile, err := s.spawner.Spawn(next)
	if err != nil {
		next.release()
		return false, err
	}
	next.Terminal = IsTerminal(next.Board)

	if s.history.Save(next) {
		s.logger.Debug("history full, oldest snapshot evicted", "evicted", s.history.Evicted())
	}
	s.state.release()
	s.state = next

	s.logger.Debug("move", "dir", dir, "gained", delta, "score", next.Score,
		"spawn_row", tile.Row, "spawn_col", tile.Col, "spawn", tile.Value)
	if next.Terminal {
		s.logger.Info("game over", "score", next.Score, "max_tile", next.Board.MaxTile())
	}
	return true, nil
}

// Undo restores the previous snapshot, including its terminal flag.
func (s *Session) Undo() bool {
	if s.closed {
		return false
	}
	ok := s.history.Undo(s.state)
	if ok {
		s.logger.Debug("undo", "cursor", s.history.Cursor(), "score", s.state.Score)
	}
	return ok
}

// Redo re-applies the next snapshot, including its terminal flag.
func (s *Session) Redo() bool {
	if s.closed {
		return false
	}
	ok := s.history.Redo(s.state)
	if ok {
		s.logger.Debug("redo", "cursor", s.history.Cursor(), "score", s.state.Score)
	}
	return ok
}

// Restart discards the current game and its history and starts a new one.
func (s *Session) Restart() error {
	if s.closed {
		return fmt.Errorf("engine: restart on closed session: %w", ErrAllocation)
	}

	state, err := s.newGame()
	if err != nil {
		return err
	}

	s.state.release()
	s.history.Reset()
	s.state = state
	s.history.Save(state)

	s.logger.Info("restart", "size", s.size)
	return nil
}

// Apply executes a presentation-layer command. It reports whether the
// visible state changed. ActionNone and ActionQuit are ignored.
func (s *Session) Apply(a core.Action) (bool, error) {
	switch a {
	case core.ActionUp:
		return s.Move(Up)
	case core.ActionRight:
		return s.Move(Right)
	case core.ActionDown:
		return s.Move(Down)
	case core.ActionLeft:
		return s.Move(Left)
	case core.ActionUndo:
		return s.Undo(), nil
	case core.ActionRedo:
		return s.Redo(), nil
	case core.ActionRestart:
		if err := s.Restart(); err != nil {
			return false, err
		}
		return true, nil
	default:
		return false, nil
	}
}

// Close releases the board and every history snapshot. Later calls are no-ops.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.history.Reset()
	s.state.release()
}

// Size returns the board dimension.
func (s *Session) Size() int {
	return s.size
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.state.Score
}

// Terminal reports whether no move is left.
func (s *Session) Terminal() bool {
	return s.state.Terminal
}

// Cell returns the tile value at (row, col).
func (s *Session) Cell(row, col int) int {
	return s.state.Board.Get(row, col)
}

// Board returns a copy of the live board.
func (s *Session) Board() *Board {
	return s.state.Board.Clone()
}

// Snapshot returns a copy of everything a renderer needs.
func (s *Session) Snapshot() Snapshot {
	if s.closed {
		return Snapshot{Size: s.size}
	}
	return Snapshot{
		Size:     s.size,
		Rows:     s.state.Board.Rows(),
		Score:    s.state.Score,
		Terminal: s.state.Terminal,
		MaxTile:  s.state.Board.MaxTile(),
		CanUndo:  s.history.CanUndo(),
		CanRedo:  s.history.CanRedo(),
	}
}
