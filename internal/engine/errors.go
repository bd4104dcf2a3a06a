package engine

import "errors"

var (
	// ErrInvalidArgument reports a precondition violation such as an
	// out-of-range board size or mismatched board dimensions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoEmptyCell is returned when a tile is spawned on a full board.
	ErrNoEmptyCell = errors.New("no empty cell")

	// ErrAllocation is returned when a board has no backing storage,
	// e.g. it was used after Release.
	ErrAllocation = errors.New("board storage unavailable")
)
