package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/proto-pong/internal/clock"
	"github.com/vovakirdan/proto-pong/internal/core"
	"github.com/vovakirdan/proto-pong/internal/loop"
	"github.com/vovakirdan/proto-pong/internal/pong"
)

var (
	flagDemoMatches int
	flagDemoSave    bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch the computer play itself, headless",
	Long: `Run computer vs computer matches without a screen, as fast as the
machine allows, and print the results.

The simulation is deterministic for a given --seed and --fps, which makes
demo runs useful for tuning the computer opponent.

Examples:
  protopong demo
  protopong demo --matches 20 --seed 7 --difficulty hard
  protopong demo --save --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runDemoCmd,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoMatches, "matches", 1, "Number of matches to play")
	demoCmd.Flags().BoolVar(&flagDemoSave, "save", false, "Record results in the match history")
}

// demoReport is the outcome of a demo run.
type demoReport struct {
	Results []pong.MatchResult
	Ticks   uint64
	Stats   loop.TickStats
}

// runDemo plays the given number of computer-only matches. Every driver frame advances
// exactly one tick. It stops early when ctx is canceled.
func runDemo(ctx context.Context, matches, tickRate int, opts ...pong.Option) (demoReport, error) {
	var report demoReport
	opts = append(opts, pong.OnMatchEnd(func(res pong.MatchResult) {
		report.Results = append(report.Results, res)
	}))
	game := pong.New(opts...)

	platform := loop.NewHeadless(true)
	monitor := loop.NewTickMonitor()
	driver := loop.New(game, platform,
		loop.WithClock(clock.Fixed{Step: time.Second / time.Duration(tickRate)}),
		loop.WithTickRate(tickRate),
		loop.WithMonitor(monitor),
	)

	game.StartMatch(pong.ModeDemo)
	for len(report.Results) < matches {
		if err := ctx.Err(); err != nil {
			report.Ticks, report.Stats = driver.Ticks(), monitor.Stats()
			return report, err
		}
		if !driver.Frame() {
			break
		}

		switch game.State() {
		case pong.StateKickoff:
			platform.Push(core.EventNext)
		case pong.StateWin:
			if len(report.Results) < matches {
				game.StartMatch(pong.ModeDemo)
			}
		}
	}

	report.Ticks, report.Stats = driver.Ticks(), monitor.Stats()
	return report, nil
}

func runDemoCmd(_ *cobra.Command, _ []string) error {
	if flagDemoMatches <= 0 {
		return fmt.Errorf("--matches must be positive, got %d", flagDemoMatches)
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	opts := []pong.Option{
		pong.WithLogger(logger),
		pong.WithSeed(s.runtime.Seed),
		pong.WithAITuning(s.config.AI.Tuning()),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("running demo", "matches", flagDemoMatches, "difficulty", s.config.Difficulty,
		"tick_rate", s.runtime.TickRate, "seed", s.runtime.Seed)

	start := time.Now()
	report, runErr := runDemo(ctx, flagDemoMatches, s.runtime.TickRate, opts...)
	if runErr != nil {
		logger.Warn("demo interrupted", "played", len(report.Results))
	}

	if flagDemoSave {
		saveResults(logger, report.Results)
	}

	printDemoReport(report, s.runtime.TickRate, time.Since(start))
	return nil
}

func saveResults(logger *log.Logger, results []pong.MatchResult) {
	store := openStore(logger)
	if store == nil {
		return
	}
	defer store.Close()

	record := store.Recorder(logger)
	for _, res := range results {
		record(res)
	}
}

func printDemoReport(r demoReport, tickRate int, wall time.Duration) {
	fmt.Println()
	fmt.Println("  DEMO RESULTS")
	fmt.Println("  ════════════════════════════════════════")
	fmt.Println()
	fmt.Printf("  %-4s %-8s %-7s %-10s %s\n", "#", "WINNER", "SCORE", "TICKS", "GAME TIME")
	fmt.Println("  ────────────────────────────────────────")

	wins := map[pong.Point]int{}
	for i, res := range r.Results {
		wins[res.Winner]++
		gameTime := time.Duration(res.Ticks) * time.Second / time.Duration(tickRate)
		fmt.Printf("  %-4d %-8s %2d : %-2d  %-10d %s\n",
			i+1, res.Winner, res.ScoreB, res.ScoreA, res.Ticks, gameTime.Round(time.Second))
	}

	fmt.Println()
	fmt.Printf("  Left wins: %d   Right wins: %d\n", wins[pong.PointB], wins[pong.PointA])
	fmt.Printf("  Ticks: %d in %s\n", r.Ticks, wall.Round(time.Millisecond))
	if r.Stats.Samples > 0 {
		period := time.Second / time.Duration(tickRate)
		fmt.Printf("  Update: avg %s, max %s (%.1f%% of tick budget)\n",
			r.Stats.Average, r.Stats.Max, r.Stats.Budget(period)*100)
	}
	fmt.Println()
}
