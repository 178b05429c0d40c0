package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/core"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
	"github.com/vovakirdan/tsprite/internal/storage"
)

// Time scale limits for the faster/slower keys.
const (
	minSpeed = 0.125
	maxSpeed = 8
)

// chromeRows is the number of rows below the world: status and help.
const chromeRows = 2

// Model is the Bubble Tea model that runs and draws one simulation world.
type Model struct {
	id         int64
	scenario   string
	scenarioCf config.ScenarioConfig
	world      *sim.World
	screen     *core.Screen
	view       Viewport
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       ViewerKeyMap
	help       help.Model
	inputFrame core.InputFrame
	last       sim.StepResult
	speed      float64
	paused     bool
	started    time.Time
	runSaved   bool // Whether the current world has been stored
	quitting   bool
	backToMenu bool
	standalone bool // Back quits instead of returning to a menu
}

// NewModel builds scenario id from scfg and wraps it in a viewer.
// A zero cfg.Seed falls back to the scenario seed, then to the clock.
// store and logger may be nil.
func NewModel(id string, scfg config.ScenarioConfig, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = scfg.World.Seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = scfg.World.TickRate
	}
	cfg.Debug = cfg.Debug || scfg.Debug
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		id:         nextViewerID(),
		scenario:   id,
		scenarioCf: scfg,
		store:      store,
		logger:     logger,
		config:     cfg,
		view:       NewViewport(scfg.Render),
		keys:       DefaultViewerKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		speed:      1,
	}
	if err := m.build(); err != nil {
		return Model{}, err
	}
	m.screen = core.NewScreen(m.screenSize())
	return m, nil
}

// build replaces the world with a fresh one from the current seed.
func (m *Model) build() error {
	w, err := registry.Build(m.scenario, m.scenarioCf, m.config.Seed,
		sim.WithLogger(m.logger),
		sim.WithDebug(m.config.Debug),
	)
	if err != nil {
		return err
	}
	m.world = w
	m.last = sim.StepResult{}
	m.started = time.Now()
	m.runSaved = false
	m.logger.Info("world built", "scenario", m.scenario, "seed", m.config.Seed, "sprites", len(w.Sprites))
	return nil
}

// screenSize returns the buffer size: the terminal minus the chrome rows,
// or the panel size before the terminal size is known.
func (m Model) screenSize() (int, int) {
	if m.config.ScreenW > 0 && m.config.ScreenH > chromeRows {
		return m.config.ScreenW, m.config.ScreenH - chromeRows
	}
	return m.view.ScreenSize(m.world.Panel)
}

// World returns the world being viewed.
func (m Model) World() *sim.World {
	return m.world
}

// Paused reports whether ticks are currently skipped.
func (m Model) Paused() bool {
	return m.paused
}

// Speed returns the time scale applied to each tick.
func (m Model) Speed() float64 {
	return m.speed
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.id, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(m.screenSize())
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the key's action for the next tick. Quit and back
// take effect immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.saveRun()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick applies pending actions and advances the world unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame

	if in.Has(core.ActionRestart) {
		m.saveRun()
		m.config.Seed = time.Now().UnixNano()
		if err := m.build(); err != nil {
			m.logger.Error("rebuild failed", "scenario", m.scenario, "error", err)
		}
		m.inputFrame.Clear()
		return m, tickCmd(m.id, m.config.TickRate)
	}

	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if in.Has(core.ActionToggleDebug) {
		m.config.Debug = !m.config.Debug
		m.world.SetDebug(m.config.Debug)
	}
	if in.Has(core.ActionSpawn) {
		if m.world.SpawnOne() == nil {
			m.world.Spawn(m.scenarioCf.Sprites.Width, m.scenarioCf.Sprites.Height)
		}
	}
	if in.Has(core.ActionFaster) {
		m.speed = min(m.speed*2, maxSpeed)
	}
	if in.Has(core.ActionSlower) {
		m.speed = max(m.speed/2, minSpeed)
	}

	if !m.paused || in.Has(core.ActionStep) {
		m.last = m.world.Step(m.config.TickMillis() * m.speed)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.id, m.config.TickRate)
}

// saveRun stores the current world's stats once. Worlds that never
// stepped are not stored.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved || m.world.Tick() == 0 {
		return
	}
	stats := m.world.Stats()
	id, err := m.store.SaveRun(storage.RunRecord{
		Scenario:   m.scenario,
		Seed:       m.config.Seed,
		Ticks:      stats.Ticks,
		Collisions: stats.Collisions,
		WallHits:   stats.WallHits,
		Purged:     stats.Purged,
		Spawned:    stats.Spawned,
		PeakActive: stats.PeakActive,
		Duration:   time.Since(m.started),
	})
	if err != nil {
		m.logger.Warn("could not save run", "scenario", m.scenario, "error", err)
		return
	}
	m.runSaved = true
	m.logger.Info("run saved", "id", id, "scenario", m.scenario, "ticks", stats.Ticks)
}

// View renders the world, a status line and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawWorld(m.screen, m.world, m.view, m.config.Debug)
	if m.config.Debug {
		DrawCollisions(m.screen, m.view, m.last.Collisions)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		m.statusLine(),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) statusLine() string {
	var b strings.Builder
	if m.paused {
		b.WriteString(pausedStyle.Render(" PAUSED "))
	}
	stats := m.world.Stats()
	status := fmt.Sprintf(" %s  tick %d  sprites %d  hits %d  walls %d  x%g  seed %d ",
		m.scenario, m.world.Tick(), len(m.world.Sprites), stats.Collisions, stats.WallHits,
		m.speed, m.config.Seed)
	if m.config.Debug {
		status += " debug "
	}
	b.WriteString(statusStyle.Render(status))
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the viewer.
func Run(id string, scfg config.ScenarioConfig, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(id, scfg, store, cfg, logger)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
