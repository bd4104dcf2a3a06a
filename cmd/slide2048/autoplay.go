package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/slide2048/internal/autoplay"
	"github.com/vovakirdan/slide2048/internal/registry"
)

var (
	flagStrategy string
	flagMaxMoves int
	flagGames    int
	flagQuiet    bool
)

var autoplayCmd = &cobra.Command{
	Use:   "autoplay",
	Short: "Let a strategy play headlessly",
	Long: `Play one or more games with a built-in strategy and print the results.

Examples:
  slide2048 autoplay
  slide2048 autoplay --strategy random --games 20 --quiet
  slide2048 autoplay --strategy corner --seed 7 --max-moves 200`,
	Args: cobra.NoArgs,
	Run:  runAutoplay,
}

func init() {
	autoplayCmd.Flags().StringVar(&flagStrategy, "strategy", "greedy", "Strategy ID (see 'slide2048 strategies')")
	autoplayCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop each game after this many moves (0 = until game over)")
	autoplayCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	autoplayCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the final result of each game")
}

func runAutoplay(cmd *cobra.Command, args []string) {
	if err := autoplayGames(cmd); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func autoplayGames(cmd *cobra.Command) error {
	if !registry.Exists(flagStrategy) {
		return fmt.Errorf("unknown strategy %q (run 'slide2048 strategies' to see available strategies)", flagStrategy)
	}
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	session, seed, err := newSession(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	defer session.Close()

	strategy, err := registry.Create(flagStrategy, seed)
	if err != nil {
		return err
	}
	logger.Info("autoplay", "strategy", strategy.ID(), "size", cfg.Board.Size, "seed", seed, "games", flagGames)

	runCfg := autoplay.RunConfig{MaxMoves: flagMaxMoves, Verbose: !flagQuiet}
	out := cmd.OutOrStdout()
	total, best := 0, 0

	for game := 1; game <= flagGames; game++ {
		if game > 1 {
			if err := session.Restart(); err != nil {
				return fmt.Errorf("restarting game: %w", err)
			}
			fmt.Fprintln(out)
		}

		res, err := autoplay.Run(out, session, strategy, runCfg)
		if err != nil {
			return err
		}
		total += res.Score
		best = max(best, res.Score)
	}

	if flagGames > 1 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Average: %d  Best: %d\n", flagGames, total/flagGames, best)
	}
	return nil
}
