// slide2048 is a terminal sliding-tile merge puzzle.
//
// Usage:
//
//	slide2048 play              - Play in the terminal
//	slide2048 autoplay          - Let a strategy play headlessly
//	slide2048 strategies        - List autoplay strategies
//
// Global flags:
//
//	--config <path>     - Config file (default: XDG config, then ./configs, then built-in)
//	--size <n>          - Board size, 2-8
//	--history <n>       - Number of undo states kept
//	--difficulty <name> - Preset: easy, normal, hard
//	--seed <value>      - RNG seed for reproducible games
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import strategies to register them
	_ "github.com/vovakirdan/slide2048/internal/autoplay"

	"github.com/vovakirdan/slide2048/internal/config"
	"github.com/vovakirdan/slide2048/internal/engine"
)

var (
	// Global flags
	flagConfig     string
	flagSize       int
	flagHistory    int
	flagDifficulty string
	flagSeed       int64
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide2048",
	Short: "slide2048 - the 2048 sliding-tile puzzle in your terminal",
	Long: `slide2048 is a terminal version of the 2048 sliding-tile puzzle with
undo and redo.

Available commands:
  play        - Play interactively
  autoplay    - Watch a built-in strategy play
  strategies  - List autoplay strategies

Examples:
  slide2048 play
  slide2048 play --size 5 --difficulty easy
  slide2048 autoplay --strategy greedy --seed 42
  slide2048 strategies`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagSize, "size", 0, "Board size (2-8)")
	rootCmd.PersistentFlags().IntVar(&flagHistory, "history", 0, "Undo history capacity")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(autoplayCmd)
	rootCmd.AddCommand(strategiesCmd)
}

// loadConfig reads the config file and applies the preset, then explicit flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Board.Size = flagSize
	}
	if flags.Changed("history") {
		cfg.History.Capacity = flagHistory
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	return cfg, cfg.Validate()
}

// newLogger builds the process logger. Output goes to cfg.Log.File when set,
// otherwise to fallback. The returned func closes the log file.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "slide2048",
	})

	level := log.InfoLevel
	if cfg.Log.Level != "" {
		parsed, err := log.ParseLevel(cfg.Log.Level)
		if err != nil {
			closeFn()
			return nil, func() {}, fmt.Errorf("invalid log level: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)

	return logger, closeFn, nil
}

// newSession starts a game from cfg. A zero seed is replaced by the clock.
func newSession(cfg config.Config, logger *log.Logger) (*engine.Session, int64, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := engine.NewSession(engine.Options{
		Size:            cfg.Board.Size,
		HistoryCapacity: cfg.History.Capacity,
		FourProbability: cfg.Spawn.FourProbability,
		Source:          rand.NewSource(seed),
		Logger:          logger,
	})
	return s, seed, err
}
