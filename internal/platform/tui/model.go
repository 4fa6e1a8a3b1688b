package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/proto-pong/internal/clock"
	"github.com/vovakirdan/proto-pong/internal/core"
	"github.com/vovakirdan/proto-pong/internal/loop"
	"github.com/vovakirdan/proto-pong/internal/pong"
)

// footerLines is the height of the status and help area under the playfield.
const footerLines = 2

// DefaultView is the world area shown by default: the table plus margins,
// at a 4:3 aspect ratio.
var DefaultView = core.V(800.0/3.0, 200)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorBlue.Hex()))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorGray.Hex()))
	scoreStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(core.ColorWhite.Hex()))
	overlayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorRed.Hex()))
)

// Options configures a Model.
type Options struct {
	Runtime core.RuntimeConfig
	// View is the world area mapped onto the terminal. Zero means DefaultView.
	View    core.Vec2
	Logger  *log.Logger
	Monitor *loop.TickMonitor
	// Clock overrides the frame clock. Tests use a fixed clock.
	Clock clock.Clock
}

// terminal is the loop.Platform behind a Bubble Tea program. Input arrives
// as messages and frames are painted into the rasterizer.
type terminal struct {
	events []core.Event
	raster *Rasterizer
}

func (t *terminal) push(types ...core.EventType) {
	for _, et := range types {
		t.events = append(t.events, core.NewEvent(et))
	}
}

func (t *terminal) Poll() []core.Event {
	out := t.events
	t.events = nil
	return out
}

func (t *terminal) Begin() core.Renderer {
	t.raster.Clear()
	return t.raster
}

func (t *terminal) End() {}

// Synchronized is true: frames are paced by tick messages, so the driver
// must never sleep inside Update.
func (t *terminal) Synchronized() bool { return true }

// Model is the Bubble Tea model running one game.
type Model struct {
	game     *pong.Game
	driver   *loop.Driver
	term     *terminal
	keys     *KeyMapper
	help     help.Model
	styles   styleCache
	config   core.RuntimeConfig
	now      func() time.Time
	quitting bool
}

// NewModel creates a model hosting game.
func NewModel(game *pong.Game, opts Options) Model {
	cfg := opts.Runtime
	def := core.DefaultConfig()
	if cfg.TickRate <= 0 {
		cfg.TickRate = def.TickRate
	}
	if cfg.DrawRate <= 0 {
		cfg.DrawRate = def.DrawRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	view := opts.View
	if view.X <= 0 || view.Y <= 0 {
		view = DefaultView
	}

	term := &terminal{raster: NewRasterizer(cfg.ScreenW, cfg.ScreenH-footerLines, view)}
	driverOpts := []loop.Option{
		loop.WithTickRate(cfg.TickRate),
		loop.WithDrawRate(cfg.DrawRate),
		loop.WithLogger(opts.Logger),
		loop.WithMonitor(opts.Monitor),
	}
	if opts.Clock != nil {
		driverOpts = append(driverOpts, loop.WithClock(opts.Clock))
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		driver: loop.New(game, term, driverOpts...),
		term:   term,
		keys:   NewKeyMapper(DefaultKeyMap(), DefaultInitialHold, DefaultRepeatHold),
		help:   h,
		styles: styleCache{},
		config: cfg,
		now:    time.Now,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.DrawRate)
}

// Update handles messages and runs frames.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		events, forceQuit := m.keys.MapKey(msg, m.now())
		if forceQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.term.push(events...)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.term.raster.Resize(msg.Width, msg.Height-footerLines)
		m.help.Width = msg.Width

	case tea.BlurMsg:
		m.term.push(m.keys.ReleaseAll()...)
		m.term.push(core.EventMinimize)

	case tea.FocusMsg:
		m.term.push(core.EventMaximize)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick runs one loop frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.term.push(m.keys.Expire(m.now())...)
	if !m.driver.Frame() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.DrawRate)
}

// View renders the playfield and the footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	canvas := renderScreen(m.term.raster.Screen(), m.styles)
	keys := stateKeys{keys: m.keys.Keys(), state: m.game.State(), mode: m.game.Mode()}
	return lipgloss.JoinVertical(lipgloss.Left, canvas, m.status(), m.help.View(keys))
}

// status summarizes the game on one line. The overlay text is repeated here
// because block-font labels are hard to read at terminal resolution.
func (m Model) status() string {
	parts := []string{titleStyle.Render("PROTO PONG")}

	switch m.game.State() {
	case pong.StateMatch, pong.StateKickoff, pong.StateAbort, pong.StateWin:
		a, b := m.game.Scores()
		parts = append(parts,
			statusStyle.Render(m.game.Mode().String()),
			scoreStyle.Render(fmt.Sprintf("left %d : %d right", b, a)))
	}

	if overlay := m.game.Overlay(); len(overlay) > 0 {
		style := statusStyle
		switch m.game.State() {
		case pong.StateAbort, pong.StateWin:
			style = overlayStyle
		}
		parts = append(parts, style.Render(strings.Join(overlay, " · ")))
	}
	return strings.Join(parts, "  ")
}

// Game returns the hosted game.
func (m Model) Game() *pong.Game {
	return m.game
}

// Run starts a Bubble Tea program for game on the local terminal.
func Run(game *pong.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),   // Use alternate screen buffer
		tea.WithReportFocus(), // Focus loss aborts a running match
	)

	_, err := p.Run()
	return err
}
