package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/slide2048/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  Z/U               - Undo
  Y/Ctrl+R          - Redo
  R                 - Restart
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5x5 board, 5% fours
  normal - 4x4 board, 10% fours
  hard   - 4x4 board, 20% fours

Examples:
  slide2048 play
  slide2048 play --size 6
  slide2048 play --difficulty hard --log-file /tmp/slide2048.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play needs an interactive terminal")
		fmt.Fprintln(os.Stderr, "Run 'slide2048 autoplay' for headless play.")
		os.Exit(1)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to a file if one is set.
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	session, seed, err := newSession(cfg, logger)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("play", "size", cfg.Board.Size, "seed", seed)

	runErr := tui.Run(session, logger)

	// Release game state before potential exit
	session.Close()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
