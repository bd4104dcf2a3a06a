// Package autoplay drives a session headlessly with a registered strategy.
package autoplay

import (
	"fmt"
	"io"

	"github.com/vovakirdan/slide2048/internal/engine"
	"github.com/vovakirdan/slide2048/internal/registry"
)

// RunConfig controls a headless run.
type RunConfig struct {
	MaxMoves int  // 0 = play until game over
	Verbose  bool // Print the board after every move
}

// Result summarises a finished run.
type Result struct {
	Strategy string
	Score    int
	Moves    int
	MaxTile  int
	Terminal bool
}

// Run plays s with st until the game is over, the strategy gives up or
// cfg.MaxMoves moves were made. Progress and the final summary go to w.
func Run(w io.Writer, s *engine.Session, st registry.Strategy, cfg RunConfig) (Result, error) {
	moves := 0

	if cfg.Verbose {
		fmt.Fprintf(w, "=== slide2048 autoplay: %s ===\n\n", st.Title())
	}

	for !s.Terminal() && (cfg.MaxMoves <= 0 || moves < cfg.MaxMoves) {
		dir, ok := st.Next(s.Snapshot())
		if !ok {
			break
		}

		changed, err := s.Move(dir)
		if err != nil {
			return summarize(st, s, moves), fmt.Errorf("autoplay: move %d (%v): %w", moves+1, dir, err)
		}
		if !changed {
			// A strategy that proposes a no-op would loop forever.
			break
		}
		moves++

		if cfg.Verbose {
			fmt.Fprintf(w, "Move %d: %s  Score: %d\n", moves, dir, s.Score())
			fmt.Fprintln(w, s.Board())
		}
	}

	res := summarize(st, s, moves)

	// Final result is always shown
	fmt.Fprint(w, s.Board())
	if res.Terminal {
		fmt.Fprintln(w, "=== Game Over ===")
	} else {
		fmt.Fprintln(w, "=== Stopped ===")
	}
	fmt.Fprintf(w, "Strategy:    %s\n", res.Strategy)
	fmt.Fprintf(w, "Final Score: %d\n", res.Score)
	fmt.Fprintf(w, "Total Moves: %d\n", res.Moves)
	fmt.Fprintf(w, "Max Tile:    %d\n", res.MaxTile)

	return res, nil
}

func summarize(st registry.Strategy, s *engine.Session, moves int) Result {
	snap := s.Snapshot()
	return Result{
		Strategy: st.ID(),
		Score:    snap.Score,
		Moves:    moves,
		MaxTile:  snap.MaxTile,
		Terminal: snap.Terminal,
	}
}
