package engine

// GameState is one complete game position: board, score and terminal flag.
// History snapshots are GameState values that own their own board.
type GameState struct {
	Board    *Board
	Score    int
	Terminal bool
}

// Clone returns a deep copy; the board is never shared.
func (s *GameState) Clone() *GameState {
	return &GameState{
		Board:    s.Board.Clone(),
		Score:    s.Score,
		Terminal: s.Terminal,
	}
}

// restore overwrites s with src, copying cell values into s's own board.
func (s *GameState) restore(src *GameState) error {
	if err := s.Board.CopyFrom(src.Board); err != nil {
		return err
	}
	s.Score = src.Score
	s.Terminal = src.Terminal
	return nil
}

// release drops the state's board storage.
func (s *GameState) release() {
	if s.Board != nil {
		s.Board.Release()
	}
}
