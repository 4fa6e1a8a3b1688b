package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/proto-pong/internal/platform/tui"
	"github.com/vovakirdan/proto-pong/internal/pong"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Up/Down    - Right paddle
  W/S        - Left paddle (two players)
  1 / 2      - Single player / two players
  Space      - Continue after a point
  H          - Show controls
  Esc/Q      - Back, pause or exit
  Ctrl+C     - Quit immediately

Difficulty options:
  easy   - The computer replans slowly and misses more
  normal - Default tuning (or the ai section of your config)
  hard   - The computer reacts fast and aims for sharp angles

Terminals do not report key releases: a paddle keeps moving while the
key repeats and stops shortly after it is let go.

Examples:
  protopong play
  protopong play --difficulty hard
  protopong play --config ./my-pong.yaml --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	// stderr is the screen while playing, so logs are dropped unless a file
	// is given.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	s.runtime.ScreenW = width
	s.runtime.ScreenH = height

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := []pong.Option{
		pong.WithLogger(logger),
		pong.WithSeed(s.runtime.Seed),
		pong.WithAITuning(s.config.AI.Tuning()),
		pong.OnMatchEnd(store.Recorder(logger)),
	}
	if s.config.Display.Bell {
		opts = append(opts, pong.WithAudio(tui.NewBell(os.Stdout)))
	}

	logger.Info("starting", "config", s.source, "difficulty", s.config.Difficulty,
		"tick_rate", s.runtime.TickRate, "seed", s.runtime.Seed)

	err = tui.Run(pong.New(opts...), tui.Options{
		Runtime: s.runtime,
		View:    s.view(),
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
