// protopong is Pong for the terminal: a fixed-timestep simulation hosted by
// Bubble Tea, playable locally or over SSH.
//
// Usage:
//
//	protopong                  - Play (same as "protopong play")
//	protopong play             - Play in this terminal
//	protopong demo             - Watch the computer play itself, headless
//	protopong history          - Show recorded matches
//	protopong serve            - Start SSH server for remote play
//	protopong config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible computer play
//	--db <path>          - Set database path (default: ~/.protopong/history.db)
//	--config <path>      - Use a specific config file
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/proto-pong/internal/config"
	"github.com/vovakirdan/proto-pong/internal/core"
	"github.com/vovakirdan/proto-pong/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "protopong",
	Short: "Proto Pong - Pong in your terminal",
	Long: `Proto Pong is a two-paddle table tennis game rendered with half-block
characters. Play against the computer, against a friend on the same
keyboard, or over SSH.

Available commands:
  play     - Play in this terminal (default)
  demo     - Computer vs computer, headless
  history  - Show recorded matches
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  protopong
  protopong play --difficulty hard
  protopong demo --matches 5 --seed 42
  protopong serve --ssh :2222
  protopong history --limit 10`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Never ring the terminal bell")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// settings is everything a command needs after flags and config are merged.
type settings struct {
	config  config.Config
	source  string
	runtime core.RuntimeConfig
}

// loadSettings reads the config file and applies the global flags over it.
func loadSettings() (settings, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}
	if err := config.SelectDifficulty(&cfg, flagDifficulty); err != nil {
		return settings{}, err
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}
	if flagMute {
		cfg.Display.Bell = false
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return settings{
		config: cfg,
		source: source,
		runtime: core.RuntimeConfig{
			TickRate: cfg.Timing.TickRate,
			DrawRate: cfg.Timing.DrawRate,
			Seed:     seed,
		},
	}, nil
}

// view returns the configured world area.
func (s settings) view() core.Vec2 {
	return core.V(s.config.Display.ViewWidth, s.config.Display.ViewHeight)
}

// newLogger builds the command logger. Logs go to --log-file when set and to
// fallback otherwise. The returned closer must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "protopong",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the history database. A failure is only a warning: the
// game works without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
