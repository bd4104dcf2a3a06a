package engine

import (
	"errors"
	"testing"
)

func stateWithScore(t *testing.T, score int) *GameState {
	t.Helper()
	b, err := NewBoard(2)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	b.Set(0, 0, 2)
	return &GameState{Board: b, Score: score}
}

func TestNewHistoryCapacity(t *testing.T) {
	if _, err := NewHistory(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewHistory(0) error = %v, want ErrInvalidArgument", err)
	}

	h, err := NewHistory(5)
	if err != nil {
		t.Fatalf("NewHistory(5) failed: %v", err)
	}
	if h.Capacity() != 5 || h.Len() != 0 || h.Cursor() != -1 {
		t.Errorf("new history: capacity=%d len=%d cursor=%d", h.Capacity(), h.Len(), h.Cursor())
	}
	if h.CanUndo() || h.CanRedo() {
		t.Error("empty history should not allow undo or redo")
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	h, _ := NewHistory(10)
	for score := range 3 {
		h.Save(stateWithScore(t, score*10))
	}

	live := stateWithScore(t, 20)
	if !h.Undo(live) || live.Score != 10 {
		t.Fatalf("first undo: score = %d, want 10", live.Score)
	}
	if !h.Undo(live) || live.Score != 0 {
		t.Fatalf("second undo: score = %d, want 0", live.Score)
	}
	if h.Undo(live) {
		t.Error("undo at oldest snapshot should be a no-op")
	}
	if live.Score != 0 {
		t.Errorf("no-op undo changed score to %d", live.Score)
	}

	if !h.Redo(live) || live.Score != 10 {
		t.Fatalf("redo: score = %d, want 10", live.Score)
	}
	if !h.Redo(live) || live.Score != 20 {
		t.Fatalf("redo: score = %d, want 20", live.Score)
	}
	if h.Redo(live) {
		t.Error("redo at newest snapshot should be a no-op")
	}
}

func TestHistorySaveDiscardsRedoBranch(t *testing.T) {
	h, _ := NewHistory(10)
	h.Save(stateWithScore(t, 0))
	h.Save(stateWithScore(t, 1))
	h.Save(stateWithScore(t, 2))

	live := stateWithScore(t, 2)
	h.Undo(live)
	h.Undo(live)
	h.Save(stateWithScore(t, 99))

	if h.CanRedo() {
		t.Error("redo should be impossible after saving on an undone branch")
	}
	if h.Len() != 2 || h.Cursor() != 1 || h.Last() != 1 {
		t.Errorf("len=%d cursor=%d last=%d, want 2/1/1", h.Len(), h.Cursor(), h.Last())
	}
	if h.Redo(live) {
		t.Error("Redo returned true on discarded branch")
	}

	h.Undo(live)
	if live.Score != 0 {
		t.Errorf("undo after branch: score = %d, want 0", live.Score)
	}
	h.Redo(live)
	if live.Score != 99 {
		t.Errorf("redo after branch: score = %d, want 99", live.Score)
	}
}

func TestHistoryEvictsOldestWhenFull(t *testing.T) {
	h, _ := NewHistory(3)
	for score := range 5 {
		evicted := h.Save(stateWithScore(t, score))
		if want := score >= 3; evicted != want {
			t.Errorf("Save(%d) evicted = %v, want %v", score, evicted, want)
		}
	}

	if h.Len() != 3 || h.Evicted() != 2 {
		t.Fatalf("len=%d evicted=%d, want 3/2", h.Len(), h.Evicted())
	}

	live := stateWithScore(t, 4)
	h.Undo(live)
	h.Undo(live)
	if live.Score != 2 {
		t.Errorf("oldest reachable score = %d, want 2", live.Score)
	}
	if h.Undo(live) {
		t.Error("undo past evicted snapshots should be a no-op")
	}
}

func TestHistorySnapshotsAreDeepCopies(t *testing.T) {
	h, _ := NewHistory(4)
	src := stateWithScore(t, 0)
	h.Save(src)

	// Mutating the saved source must not reach the snapshot.
	src.Board.Set(1, 1, 1024)
	src.Score = 500
	h.Save(src)

	live := stateWithScore(t, 0)
	h.Undo(live)
	if live.Board.Get(1, 1) != 0 || live.Score != 0 {
		t.Errorf("snapshot aliased source: cell=%d score=%d", live.Board.Get(1, 1), live.Score)
	}

	// Mutating the restored state must not reach the snapshot either.
	live.Board.Set(0, 1, 8)
	h.Redo(live)
	h.Undo(live)
	if live.Board.Get(0, 1) != 0 {
		t.Errorf("restored state aliased snapshot: cell=%d", live.Board.Get(0, 1))
	}
}

func TestHistoryRestoresTerminalFlag(t *testing.T) {
	h, _ := NewHistory(4)
	h.Save(stateWithScore(t, 0))
	done := stateWithScore(t, 8)
	done.Terminal = true
	h.Save(done)

	live := done.Clone()
	h.Undo(live)
	if live.Terminal {
		t.Error("undo should restore terminal = false")
	}
	h.Redo(live)
	if !live.Terminal {
		t.Error("redo should restore terminal = true")
	}
}

func TestHistoryReset(t *testing.T) {
	h, _ := NewHistory(4)
	h.Save(stateWithScore(t, 0))
	h.Save(stateWithScore(t, 1))
	h.Reset()

	if h.Len() != 0 || h.Cursor() != -1 || h.CanUndo() || h.CanRedo() {
		t.Errorf("after Reset: len=%d cursor=%d", h.Len(), h.Cursor())
	}
}
