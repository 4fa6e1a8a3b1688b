package pong

import (
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/proto-pong/internal/core"
)

// Match rules.
const (
	MaxPoints    = 10
	InitialSpeed = 100.0
)

// Match layout in world units.
var (
	tablePosition = core.V(0, -10)
	tableSize     = core.V(200, 140)
	paddleSize    = core.V(5, 30)
	paddleInset   = 10.0
	ballRadius    = 2.5
)

// State is a state of the game flow.
type State int

const (
	StateStart State = iota
	StateMain
	StateMatch
	StateKickoff
	StateWin
	StateAbort
	StateHelp
	StateDone
)

var stateNames = [...]string{"start", "main", "match", "kickoff", "win", "abort", "help", "done"}

// String returns the lowercase state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Mode selects who controls the paddles.
type Mode int

const (
	// ModeSingle puts a human on the right paddle against the computer.
	ModeSingle Mode = iota
	// ModeVersus puts a human on each paddle.
	ModeVersus
	// ModeDemo lets the computer play both paddles.
	ModeDemo
)

// String returns the mode name used in logs and match history.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeVersus:
		return "versus"
	case ModeDemo:
		return "demo"
	default:
		return "unknown"
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, bool) {
	for _, m := range []Mode{ModeSingle, ModeVersus, ModeDemo} {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// EndReason tells how a match finished.
type EndReason string

const (
	EndCompleted EndReason = "completed"
	EndAborted   EndReason = "aborted"
)

// MatchResult summarizes a finished match.
type MatchResult struct {
	Mode   Mode
	ScoreA int
	ScoreB int
	// Winner is PointNone for aborted matches.
	Winner Point
	Reason EndReason
	// Ticks is the number of simulation steps played.
	Ticks int
}

// Option configures a Game.
type Option func(*Game)

// WithAudio sets the sound played on bounces.
func WithAudio(a core.Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

// WithLogger sets the logger for state transitions and points.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRand sets the random source of computer opponents.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithSeed seeds the random source of computer opponents.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithAITuning sets the computer opponent parameters.
func WithAITuning(t AITuning) Option {
	return func(g *Game) { g.tuning = t }
}

// OnMatchEnd registers a callback run when a match is won or abandoned.
func OnMatchEnd(fn func(MatchResult)) Option {
	return func(g *Game) { g.onMatchEnd = fn }
}

// Game runs menus and matches. It owns two scenes: match entities and the
// overlay drawn on top of them.
type Game struct {
	audio      core.Audio
	logger     *log.Logger
	rng        *rand.Rand
	tuning     AITuning
	onMatchEnd func(MatchResult)

	menus *Scene
	match *Scene

	state  State
	mode   Mode
	scoreA int
	scoreB int
	ticks  int

	// Valid only while a match is set up.
	table   Ref
	ball    Ref
	paddleA Ref
	paddleB Ref
	labelA  Ref
	labelB  Ref
}

// New creates a game in the Start state.
func New(opts ...Option) *Game {
	g := &Game{
		audio:  core.NopAudio{},
		logger: log.New(io.Discard),
		tuning: DefaultAITuning(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(1))
	}
	g.menus = NewScene(g)
	g.match = NewScene(g)
	return g
}

// Audio returns the bounce sound.
func (g *Game) Audio() core.Audio { return g.audio }

// Done reports whether the game reached its terminal state.
func (g *Game) Done() bool { return g.state == StateDone }

func (g *Game) State() State { return g.state }
func (g *Game) Mode() Mode   { return g.mode }

// Scores returns the points of paddle A (right) and paddle B (left).
func (g *Game) Scores() (a, b int) { return g.scoreA, g.scoreB }

// Ball returns the ball of the current match.
func (g *Game) Ball() (*Ball, bool) { return lookup[*Ball](g.match, g.ball) }

// Table returns the table of the current match.
func (g *Game) Table() (*Table, bool) { return lookup[*Table](g.match, g.table) }

// PaddleA returns the right paddle of the current match.
func (g *Game) PaddleA() (*Paddle, bool) { return lookup[*Paddle](g.match, g.paddleA) }

// PaddleB returns the left paddle of the current match.
func (g *Game) PaddleB() (*Paddle, bool) { return lookup[*Paddle](g.match, g.paddleB) }

// Overlay returns the texts currently shown by the menu scene.
func (g *Game) Overlay() []string {
	var out []string
	g.menus.Each(func(_ Ref, e Entity) {
		if l, ok := e.(*Label); ok {
			out = append(out, l.Text())
		}
	})
	return out
}

// StartMatch drops whatever is on screen and starts a match in mode.
func (g *Game) StartMatch(mode Mode) {
	g.clear()
	g.setupMatch(mode)
	g.setState(StateMatch)
}

// Handle forwards movement events to the paddles and drives the state
// machine.
func (g *Game) Handle(ev core.Event) {
	if ev.IsPlayerA() {
		if p, ok := g.PaddleA(); ok {
			p.Handle(ev)
		}
	}
	if ev.IsPlayerB() {
		if p, ok := g.PaddleB(); ok {
			p.Handle(ev)
		}
	}

	switch g.state {
	case StateMain:
		switch ev.Type {
		case core.EventOne:
			g.StartMatch(ModeSingle)
		case core.EventTwo:
			g.StartMatch(ModeVersus)
		case core.EventHelp:
			g.clear()
			g.setupHelp()
			g.setState(StateHelp)
		case core.EventQuit:
			g.clear()
			g.setState(StateDone)
		}

	case StateMatch:
		switch ev.Type {
		case core.EventWin:
			g.setupWin()
			g.setState(StateWin)
			g.finish(EndCompleted)
		case core.EventQuit, core.EventMinimize:
			g.pause()
			g.setupAbort()
			g.setState(StateAbort)
		}

	case StateKickoff:
		switch ev.Type {
		case core.EventNext, core.EventQuit:
			g.menus.Clear()
			g.setState(StateMatch)
		}

	case StateWin:
		switch ev.Type {
		case core.EventNext, core.EventQuit:
			g.clear()
			g.setupMain()
			g.setState(StateMain)
		}

	case StateAbort:
		switch ev.Type {
		case core.EventNo, core.EventQuit:
			g.menus.Clear()
			g.pause()
			g.setState(StateMatch)
		case core.EventYes:
			g.finish(EndAborted)
			g.clear()
			g.setupMain()
			g.setState(StateMain)
		}

	case StateHelp:
		if ev.Type == core.EventQuit {
			g.clear()
			g.setupMain()
			g.setState(StateMain)
		}
	}
}

// Update advances the game by one simulation step of dt seconds.
func (g *Game) Update(dt float64) {
	if g.state == StateStart {
		g.setupMain()
		g.setState(StateMain)
	}

	if g.state == StateMatch {
		g.ticks++
		g.match.Update(dt)
		if ball := mustLookup[*Ball](g.match, g.ball); ball.Scored() {
			g.score(ball)
		}
	}

	g.menus.Update(dt)
}

// Draw draws the match and then the overlay.
func (g *Game) Draw(dt, interp float64, r core.Renderer) {
	g.match.Draw(dt, interp, r)
	g.menus.Draw(dt, interp, r)
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Debug("state change", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) score(ball *Ball) {
	switch ball.ScoredFor() {
	case PointA:
		g.scoreA++
	case PointB:
		g.scoreB++
	}
	mustLookup[*Label](g.match, g.labelA).SetText(strconv.Itoa(g.scoreA))
	mustLookup[*Label](g.match, g.labelB).SetText(strconv.Itoa(g.scoreB))
	g.logger.Debug("point", "for", ball.ScoredFor(), "right", g.scoreA, "left", g.scoreB)

	if g.scoreA >= MaxPoints || g.scoreB >= MaxPoints {
		g.Handle(core.NewEvent(core.EventWin))
		return
	}

	table := mustLookup[*Table](g.match, g.table)
	if ball.PointPaddleA() {
		ball.Reset(table.Position(), InitialSpeed)
	} else {
		ball.Reset(table.Position(), -InitialSpeed)
	}
	mustLookup[*Paddle](g.match, g.paddleA).Reset(table.Position().Y)
	mustLookup[*Paddle](g.match, g.paddleB).Reset(table.Position().Y)

	g.setupKickoff()
	g.setState(StateKickoff)
}

// pause freezes interpolation of every moving entity.
func (g *Game) pause() {
	ev := core.NewEvent(core.EventPause)
	if p, ok := g.PaddleA(); ok {
		p.Handle(ev)
	}
	if p, ok := g.PaddleB(); ok {
		p.Handle(ev)
	}
	if b, ok := g.Ball(); ok {
		b.Handle(ev)
	}
}

func (g *Game) finish(reason EndReason) {
	res := MatchResult{
		Mode:   g.mode,
		ScoreA: g.scoreA,
		ScoreB: g.scoreB,
		Reason: reason,
		Ticks:  g.ticks,
	}
	if reason == EndCompleted {
		if b, ok := g.Ball(); ok {
			res.Winner = b.ScoredFor()
		}
	}
	g.logger.Info("match finished", "mode", res.Mode, "right", res.ScoreA, "left", res.ScoreB,
		"winner", res.Winner, "reason", res.Reason)
	if g.onMatchEnd != nil {
		g.onMatchEnd(res)
	}
}

// clear drops both scenes. Refs are reset first so nothing can resolve into
// a scene being torn down.
func (g *Game) clear() {
	g.table, g.ball = Ref{}, Ref{}
	g.paddleA, g.paddleB = Ref{}, Ref{}
	g.labelA, g.labelB = Ref{}, Ref{}
	g.menus.Clear()
	g.match.Clear()
}

func (g *Game) setupMain() {
	g.menus.Append(NewLabel(20, core.V(0, 60), core.ColorBlue, "PROTO"))
	g.menus.Append(NewLabel(20, core.V(0, 35), core.ColorBlue, "PONG"))
	g.menus.Append(NewLabel(5, core.V(0, -20), core.ColorWhite, "Press (1) for single player"))
	g.menus.Append(NewLabel(5, core.V(0, -35), core.ColorWhite, "Press (2) for player vs player"))
	g.menus.Append(NewLabel(5, core.V(0, -50), core.ColorWhite, "Press (h) to view controls"))
	g.menus.Append(NewLabel(5, core.V(0, -65), core.ColorWhite, "Press (ESC) to exit"))
}

func (g *Game) setupHelp() {
	g.menus.Append(NewLabel(10, core.V(0, 60), core.ColorBlue, "Controls"))
	g.menus.Append(NewLabel(5, core.V(0, 20), core.ColorWhite, "Right player:"))
	g.menus.Append(NewLabel(5, core.V(0, 5), core.ColorWhite, "(up arrow) move up, (down arrow) move down"))
	g.menus.Append(NewLabel(5, core.V(0, -10), core.ColorWhite, "Left player:"))
	g.menus.Append(NewLabel(5, core.V(0, -25), core.ColorWhite, "(w) move up, (s) move down"))
	g.menus.Append(NewLabel(5, core.V(0, -60), core.ColorWhite, "Press (ESC) to return"))
}

func (g *Game) setupMatch(mode Mode) {
	g.mode = mode
	g.scoreA, g.scoreB = 0, 0
	g.ticks = 0

	tbl := NewTable(tablePosition, tableSize)

	top := 100 - (100-tbl.Top())*0.5
	left := tbl.Left() - 0.5*(tbl.Left()-tbl.Position().X)
	right := tbl.Right() - 0.5*(tbl.Right()-tbl.Position().X)

	g.table = g.match.Append(tbl)
	g.labelA = g.match.Append(NewLabel(15, core.V(right, top), core.ColorWhite, "0"))
	g.labelB = g.match.Append(NewLabel(15, core.V(left, top), core.ColorWhite, "0"))

	ca, cb := g.controllers(mode)
	paddleA := NewPaddle(ca, core.V(tbl.Right()-paddleInset, tbl.Position().Y), paddleSize)
	paddleB := NewPaddle(cb, core.V(tbl.Left()+paddleInset, tbl.Position().Y), paddleSize)
	ball := NewBall(tbl.Position(), ballRadius)

	g.paddleA = g.match.Append(paddleA)
	g.paddleB = g.match.Append(paddleB)
	g.ball = g.match.Append(ball)

	paddleA.Setup(g.table, g.ball)
	paddleB.Setup(g.table, g.ball)
	ball.Setup(g.table, g.paddleA, g.paddleB)
}

func (g *Game) controllers(mode Mode) (a, b Controller) {
	switch mode {
	case ModeVersus:
		return NewHuman(SideA), NewHuman(SideB)
	case ModeDemo:
		return NewAI(g.tuning, g.rng), NewAI(g.tuning, g.rng)
	default:
		return NewHuman(SideA), NewAI(g.tuning, g.rng)
	}
}

func (g *Game) setupKickoff() {
	table := mustLookup[*Table](g.match, g.table)
	g.menus.Append(NewLabel(5, core.V(0, table.Position().Y+20), core.ColorWhite, "Press (SPACE) to continue"))
}

func (g *Game) setupWin() {
	table := mustLookup[*Table](g.match, g.table)
	text := "Left player won!!!"
	if mustLookup[*Ball](g.match, g.ball).PointPaddleA() {
		text = "Right player won!!!"
	}
	y := table.Position().Y
	g.menus.Append(NewLabel(5, core.V(0, y+7.5), core.ColorRed, text))
	g.menus.Append(NewLabel(5, core.V(0, y-7.5), core.ColorRed, "Press (ESC) to exit"))
}

func (g *Game) setupAbort() {
	y := mustLookup[*Table](g.match, g.table).Position().Y
	g.menus.Append(NewLabel(5, core.V(0, y+7.5), core.ColorRed, "Are you sure you want to quit?"))
	g.menus.Append(NewLabel(5, core.V(0, y-7.5), core.ColorRed, "(Y)es  (N)o"))
}
