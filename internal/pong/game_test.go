package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/proto-pong/internal/core"
)

func send(g *Game, types ...core.EventType) {
	for _, t := range types {
		g.Handle(core.NewEvent(t))
	}
}

func newStartedGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	g := New(opts...)
	require.Equal(t, StateStart, g.State())
	g.Update(step)
	require.Equal(t, StateMain, g.State())
	return g
}

// forcePoint makes the next update score for p.
func forcePoint(t *testing.T, g *Game, p Point) {
	t.Helper()
	b, ok := g.Ball()
	require.True(t, ok)
	b.point = p
	g.Update(step)
}

func TestGameStartsAtMainMenu(t *testing.T) {
	g := newStartedGame(t)
	assert.Contains(t, g.Overlay(), "PROTO")
	assert.Contains(t, g.Overlay(), "Press (1) for single player")
	assert.False(t, g.Done())

	_, ok := g.Ball()
	assert.False(t, ok, "no match entities on the menu")
}

func TestGameMainMenuTransitions(t *testing.T) {
	tests := []struct {
		name  string
		event core.EventType
		want  State
		mode  Mode
	}{
		{"one player", core.EventOne, StateMatch, ModeSingle},
		{"two players", core.EventTwo, StateMatch, ModeVersus},
		{"help", core.EventHelp, StateHelp, ModeSingle},
		{"quit", core.EventQuit, StateDone, ModeSingle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newStartedGame(t)
			send(g, tt.event)
			assert.Equal(t, tt.want, g.State())
			if tt.want == StateMatch {
				assert.Equal(t, tt.mode, g.Mode())
				assert.Empty(t, g.Overlay())
			}
		})
	}
}

func TestGameControllersPerMode(t *testing.T) {
	tests := []struct {
		mode   Mode
		humanA bool
		humanB bool
	}{
		{ModeSingle, true, false},
		{ModeVersus, true, true},
		{ModeDemo, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			g := newStartedGame(t)
			g.StartMatch(tt.mode)

			a, ok := g.PaddleA()
			require.True(t, ok)
			b, ok := g.PaddleB()
			require.True(t, ok)

			_, isHuman := a.Controller().(*Human)
			assert.Equal(t, tt.humanA, isHuman)
			_, isHuman = b.Controller().(*Human)
			assert.Equal(t, tt.humanB, isHuman)
		})
	}
}

func TestGameMatchLayout(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventTwo)

	tbl, ok := g.Table()
	require.True(t, ok)
	a, _ := g.PaddleA()
	b, _ := g.PaddleB()
	ball, _ := g.Ball()

	assert.Equal(t, core.V(0, -10), tbl.Position())
	assert.Equal(t, core.V(90, -10), a.Position())
	assert.Equal(t, core.V(-90, -10), b.Position())
	assert.Equal(t, tbl.Position(), ball.Position())
	assert.Equal(t, core.V(InitialSpeed, 0), ball.Velocity())
}

func TestGameForwardsMovementEvents(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventTwo)
	b, _ := g.PaddleB()
	start := b.Position().Y

	send(g, core.EventPlayerBMoveUp)
	g.Update(step)
	assert.Greater(t, b.Position().Y, start)

	// Releases still reach the paddle while the abort overlay is up.
	send(g, core.EventQuit, core.EventPlayerBMoveUpReleased, core.EventNo)
	require.Equal(t, StateMatch, g.State())
	g.Update(step)
	assert.Equal(t, 0.0, b.Speed())
}

func TestGamePointGoesToKickoff(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventTwo)

	a, _ := g.PaddleA()
	send(g, core.EventPlayerAMoveUp)
	g.Update(step)
	send(g, core.EventPlayerAMoveUpReleased)

	forcePoint(t, g, PointA)

	assert.Equal(t, StateKickoff, g.State())
	sa, sb := g.Scores()
	assert.Equal(t, 1, sa)
	assert.Equal(t, 0, sb)
	assert.Equal(t, []string{"Press (SPACE) to continue"}, g.Overlay())

	ball, _ := g.Ball()
	tbl, _ := g.Table()
	assert.False(t, ball.Scored())
	assert.Equal(t, tbl.Position(), ball.Position())
	assert.Equal(t, core.V(InitialSpeed, 0), ball.Velocity(), "serve toward the scorer's opponent side")
	assert.Equal(t, tbl.Position().Y, a.Position().Y)
	assert.Equal(t, 0.0, a.Speed())

	// Kickoff freezes the match.
	g.Update(step)
	assert.Equal(t, tbl.Position(), ball.Position())

	send(g, core.EventNext)
	assert.Equal(t, StateMatch, g.State())
	assert.Empty(t, g.Overlay())
}

func TestGamePointForLeftServesLeft(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventTwo)
	forcePoint(t, g, PointB)

	ball, _ := g.Ball()
	assert.Equal(t, core.V(-InitialSpeed, 0), ball.Velocity())
	_, sb := g.Scores()
	assert.Equal(t, 1, sb)
}

func TestGameScoreLabelsFollowScores(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventTwo)
	forcePoint(t, g, PointB)
	send(g, core.EventNext)
	forcePoint(t, g, PointB)

	labelB := mustLookup[*Label](g.match, g.labelB)
	labelA := mustLookup[*Label](g.match, g.labelA)
	assert.Equal(t, "2", labelB.Text())
	assert.Equal(t, "0", labelA.Text())
}

func TestGameRightPlayerWins(t *testing.T) {
	var results []MatchResult
	g := newStartedGame(t, OnMatchEnd(func(r MatchResult) { results = append(results, r) }))
	send(g, core.EventTwo)

	for i := 0; i < MaxPoints; i++ {
		forcePoint(t, g, PointA)
		if i < MaxPoints-1 {
			require.Equal(t, StateKickoff, g.State())
			send(g, core.EventNext)
		}
	}

	require.Equal(t, StateWin, g.State())
	assert.Equal(t, []string{"Right player won!!!", "Press (ESC) to exit"}, g.Overlay())

	require.Len(t, results, 1)
	assert.Equal(t, MatchResult{
		Mode:   ModeVersus,
		ScoreA: MaxPoints,
		ScoreB: 0,
		Winner: PointA,
		Reason: EndCompleted,
		Ticks:  MaxPoints,
	}, results[0])

	send(g, core.EventNext)
	assert.Equal(t, StateMain, g.State())
	assert.Contains(t, g.Overlay(), "PROTO")
	_, ok := g.Ball()
	assert.False(t, ok)
}

func TestGameLeftPlayerWins(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventOne)

	for i := 0; i < MaxPoints; i++ {
		forcePoint(t, g, PointB)
		send(g, core.EventNext)
	}

	// The last Next left the win screen.
	assert.Equal(t, StateMain, g.State())
}

func TestGameAbortFlow(t *testing.T) {
	for _, resume := range []core.EventType{core.EventNo, core.EventQuit} {
		t.Run("resume on "+resume.String(), func(t *testing.T) {
			g := newStartedGame(t)
			send(g, core.EventTwo, core.EventPlayerAMoveDown)
			g.Update(step)
			g.Update(step)

			a, _ := g.PaddleA()
			ball, _ := g.Ball()
			require.NotEqual(t, ball.Position(), ball.Previous())

			send(g, core.EventQuit)
			require.Equal(t, StateAbort, g.State())
			assert.Equal(t, []string{"Are you sure you want to quit?", "(Y)es  (N)o"}, g.Overlay())
			assert.Equal(t, ball.Position(), ball.Previous())
			assert.Equal(t, a.Position(), a.Previous())

			// Abort freezes the match.
			pos := ball.Position()
			g.Update(step)
			assert.Equal(t, pos, ball.Position())

			send(g, resume)
			assert.Equal(t, StateMatch, g.State())
			assert.Empty(t, g.Overlay())
			assert.Equal(t, ball.Position(), ball.Previous())
			assert.Equal(t, a.Position(), a.Previous())
		})
	}
}

func TestGameMinimizeAborts(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventOne, core.EventMinimize)
	assert.Equal(t, StateAbort, g.State())
}

func TestGameAbortConfirmed(t *testing.T) {
	var results []MatchResult
	g := newStartedGame(t, OnMatchEnd(func(r MatchResult) { results = append(results, r) }))
	send(g, core.EventOne)
	forcePoint(t, g, PointB)
	send(g, core.EventNext)

	send(g, core.EventQuit, core.EventYes)

	assert.Equal(t, StateMain, g.State())
	_, ok := g.Ball()
	assert.False(t, ok)
	_, ok = g.PaddleA()
	assert.False(t, ok)

	require.Len(t, results, 1)
	assert.Equal(t, EndAborted, results[0].Reason)
	assert.Equal(t, PointNone, results[0].Winner)
	assert.Equal(t, 1, results[0].ScoreB)
	assert.Equal(t, ModeSingle, results[0].Mode)
}

func TestGameHelpScreen(t *testing.T) {
	g := newStartedGame(t)
	send(g, core.EventHelp)
	require.Equal(t, StateHelp, g.State())
	assert.Contains(t, g.Overlay(), "Controls")

	send(g, core.EventOne)
	assert.Equal(t, StateHelp, g.State(), "help ignores menu keys")

	send(g, core.EventQuit)
	assert.Equal(t, StateMain, g.State())
	assert.Contains(t, g.Overlay(), "PONG")
}

func TestGameBounceSoundGoesThroughAudio(t *testing.T) {
	plays := 0
	g := newStartedGame(t, WithAudio(core.AudioFunc(func() { plays++ })))
	send(g, core.EventTwo)

	ball, _ := g.Ball()
	tbl, _ := g.Table()
	ball.Reset(core.V(0, tbl.Top()-ballRadius-0.1), 0)
	ball.SetVelocity(core.V(0, 60))
	g.Update(step)

	assert.Equal(t, 1, plays)
}

func TestGameDemoRunsUnattended(t *testing.T) {
	var results []MatchResult
	g := newStartedGame(t, WithSeed(3), OnMatchEnd(func(r MatchResult) { results = append(results, r) }))
	g.StartMatch(ModeDemo)

	tbl, _ := g.Table()
	for i := 0; i < 60*60*10 && len(results) == 0; i++ {
		if g.State() == StateKickoff {
			send(g, core.EventNext)
		}
		g.Update(step)

		ball, ok := g.Ball()
		require.True(t, ok)
		require.LessOrEqual(t, ball.Top(), tbl.Top()+1e-9)
		require.GreaterOrEqual(t, ball.Bottom(), tbl.Bottom()-1e-9)
	}

	a, b := g.Scores()
	assert.LessOrEqual(t, a, MaxPoints)
	assert.LessOrEqual(t, b, MaxPoints)
	if len(results) == 1 {
		assert.Equal(t, StateWin, g.State())
		assert.Equal(t, EndCompleted, results[0].Reason)
	}
}

func TestGameDraw(t *testing.T) {
	g := newStartedGame(t)

	var menu core.QuadRecorder
	g.Draw(step, 1, &menu)
	assert.Positive(t, menu.Len())

	send(g, core.EventTwo)
	var match core.QuadRecorder
	g.Draw(step, 1, &match)
	// Table, two score digits, paddles and ball.
	assert.Greater(t, match.Len(), 5+3)
}

func TestStateAndModeNames(t *testing.T) {
	assert.Equal(t, "kickoff", StateKickoff.String())
	assert.Equal(t, "unknown", State(99).String())

	for _, m := range []Mode{ModeSingle, ModeVersus, ModeDemo} {
		got, ok := ParseMode(m.String())
		require.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := ParseMode("tournament")
	assert.False(t, ok)
}
