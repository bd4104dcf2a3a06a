package engine

import "fmt"

// DefaultHistoryCapacity is the number of snapshots kept for undo/redo.
const DefaultHistoryCapacity = 100

// History is a bounded, linear undo/redo list of game snapshots.
//
// Slots [0, last] hold valid snapshots and cursor points at the one that
// matches the live game. Saving while cursor < last drops the redo branch.
// When every slot is in use, saving evicts the oldest snapshot so the most
// recent Capacity() states remain reachable.
type History struct {
	slots   []*GameState
	cursor  int
	last    int
	evicted int
}

// NewHistory creates an empty history holding at most capacity snapshots.
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("engine: history capacity %d must be positive: %w", capacity, ErrInvalidArgument)
	}
	return &History{
		slots:  make([]*GameState, capacity),
		cursor: -1,
		last:   -1,
	}, nil
}

// Capacity returns the maximum number of snapshots.
func (h *History) Capacity() int {
	return len(h.slots)
}

// Len returns the number of valid snapshots, including redoable ones.
func (h *History) Len() int {
	return h.last + 1
}

// Cursor returns the index of the current snapshot, or -1 when empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Last returns the index of the newest valid snapshot, or -1 when empty.
func (h *History) Last() int {
	return h.last
}

// Evicted returns how many snapshots were dropped because history was full.
func (h *History) Evicted() int {
	return h.evicted
}

// CanUndo reports whether an older snapshot is available.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a newer snapshot is available.
func (h *History) CanRedo() bool {
	return h.cursor < h.last
}

// Save stores a deep copy of state after the current snapshot and makes it
// current. Any redoable snapshots are discarded first.
// It reports whether the oldest snapshot had to be evicted.
func (h *History) Save(state *GameState) bool {
	next := h.cursor + 1
	h.truncate(next)

	evicted := false
	if next == len(h.slots) {
		h.slots[0].release()
		copy(h.slots, h.slots[1:])
		h.slots[len(h.slots)-1] = nil
		next--
		h.evicted++
		evicted = true
	}

	h.slots[next] = state.Clone()
	h.cursor = next
	h.last = next
	return evicted
}

// Undo restores the previous snapshot into state. It is a no-op returning
// false when there is nothing to undo.
func (h *History) Undo(state *GameState) bool {
	if !h.CanUndo() {
		return false
	}
	if err := state.restore(h.slots[h.cursor-1]); err != nil {
		return false
	}
	h.cursor--
	return true
}

// Redo restores the next snapshot into state. It is a no-op returning false
// when there is nothing to redo.
func (h *History) Redo(state *GameState) bool {
	if !h.CanRedo() {
		return false
	}
	if err := state.restore(h.slots[h.cursor+1]); err != nil {
		return false
	}
	h.cursor++
	return true
}

// Reset releases every snapshot and empties the history.
func (h *History) Reset() {
	h.truncate(0)
	h.cursor = -1
	h.last = -1
	h.evicted = 0
}

// truncate releases snapshots from index from through last.
func (h *History) truncate(from int) {
	for i := from; i <= h.last; i++ {
		h.slots[i].release()
		h.slots[i] = nil
	}
	if h.last >= from {
		h.last = from - 1
	}
}
