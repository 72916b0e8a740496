package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/arcade-hub/internal/audio"
	"github.com/vovakirdan/arcade-hub/internal/config"
	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/input"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

const (
	// footerRows is the height of the status line below the game.
	footerRows = 1
	// holdWindow is how long a key counts as down after its last press or
	// auto-repeat.
	holdWindow = 100 * time.Millisecond
	// DefaultResizeDelay is how long the terminal must stay one size before
	// the game is rebuilt for it.
	DefaultResizeDelay = 200 * time.Millisecond
	volumeStep         = 0.1
)

// Options configures a game host. Zero values select defaults.
type Options struct {
	// Config holds the terminal size, tick rate, seed and difficulty.
	// An empty difficulty level selects the stored one.
	Config core.RuntimeConfig

	// Local stores high scores and difficulty selections.
	Local *storage.Local

	// Store keeps the score history, may be nil.
	Store *storage.Store

	Audio       audio.Source
	Logger      *log.Logger
	Renderer    *lipgloss.Renderer
	ResizeDelay time.Duration

	// Context ends the host when done, for SSH sessions.
	Context context.Context
}

// Model is the Bubble Tea model hosting one game. It owns the game loop,
// the input source and the audio source of the game.
type Model struct {
	game     registry.Game
	cfg      core.RuntimeConfig
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	help     help.Model

	loop        *core.GameLoop
	interval    time.Duration // between display frames
	input       *input.Source
	frame       core.InputFrame
	unsubscribe func()

	audio      audio.Source
	lastVolume float64
	muted      bool

	local  *storage.Local
	store  *storage.Store
	logger *log.Logger

	state   core.GameState
	saved   bool
	best    int
	hasBest bool
	status  string

	ctx           context.Context
	cancel        context.CancelFunc
	resize        *core.Debouncer
	settled       chan struct{}
	width         int
	height        int
	pendingResize bool

	view     string
	err      error
	quitting bool
}

// NewModel creates a host for game and resets the game to its start screen.
func NewModel(game registry.Game, opts Options) *Model {
	cfg := opts.Config
	def := core.DefaultConfig()
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = def.FrameRate
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "arcade"})
	}
	local := opts.Local
	if local == nil {
		local = storage.NewLocal(nil, logger)
	}
	if cfg.Difficulty.Level == "" {
		cfg.Difficulty = config.ForLevel(local.Difficulty(game.ID()))
	}
	snd := opts.Audio
	if snd == nil {
		snd = &audio.Silent{}
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	delay := opts.ResizeDelay
	if delay <= 0 {
		delay = DefaultResizeDelay
	}

	m := &Model{
		game:       game,
		cfg:        cfg,
		renderer:   NewRenderer(opts.Renderer),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		frame:      core.NewInputFrame(),
		audio:      snd,
		lastVolume: snd.Volume(),
		local:      local,
		store:      opts.Store,
		logger:     logger,
		settled:    make(chan struct{}, 1),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.ctx, m.cancel = context.WithCancel(ctx)
	m.cfg.ScreenH = max(cfg.ScreenH-footerRows, 1)
	m.screen = core.NewScreen(m.cfg.ScreenW, m.cfg.ScreenH)
	m.help.Width = cfg.ScreenW

	m.input = input.New(input.WithHoldWindow(holdWindow), input.WithLogger(logger))
	m.unsubscribe = m.input.On(input.KeyDown, func(code string) {
		if a := m.keys.Action(code); a != core.ActionNone {
			m.frame.Set(a)
		}
	})
	m.interval = time.Second / time.Duration(cfg.FrameRate)
	m.loop = core.NewGameLoop(m.update, m.draw)
	m.resize = core.Debounce(func() {
		select {
		case m.settled <- struct{}{}:
		default:
		}
	}, delay)

	m.resetGame()
	m.draw()
	return m
}

// Init starts the game loop.
func (m *Model) Init() tea.Cmd {
	token := m.loop.Start()
	return tea.Batch(frameCmd(token, m.interval), waitResize(m.ctx, m.settled))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)
		return m, nil

	case resizeSettledMsg:
		m.applyResize()
		return m, waitResize(m.ctx, m.settled)

	case TickMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// View returns the last rendered frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view
}

// Err returns the error that halted the game loop, if any.
func (m *Model) Err() error {
	return m.err
}

// State returns the game state after the last update.
func (m *Model) State() core.GameState {
	return m.state
}

// Close stops the loop and releases the input source. It is safe to call
// more than once.
func (m *Model) Close() {
	m.cancel()
	m.loop.Stop()
	m.resize.Stop()
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	m.input.Destroy()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code := msg.String()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case code == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Difficulty):
		m.selectLevel(m.cfg.Difficulty.Level.Next())
		return m, nil
	case key.Matches(msg, m.keys.VolumeUp):
		m.setVolume(m.audio.Volume() + volumeStep)
		return m, nil
	case key.Matches(msg, m.keys.VolumeDown):
		m.setVolume(m.audio.Volume() - volumeStep)
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.toggleMute()
		return m, nil
	}
	if level, ok := m.keys.Level(code); ok {
		m.selectLevel(level)
		return m, nil
	}

	if m.err == nil {
		m.input.Press(code, time.Now())
	}
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.resize.Call()
}

// applyResize rebuilds the game for the settled terminal size. A run in
// progress keeps its layout until it ends.
func (m *Model) applyResize() {
	w, h := m.width, max(m.height-footerRows, 1)
	if w == m.cfg.ScreenW && h == m.cfg.ScreenH {
		return
	}
	m.cfg.ScreenW, m.cfg.ScreenH = w, h
	m.logger.Debug("terminal resized", "width", w, "height", h)

	switch m.state.Phase {
	case core.PhaseIdle:
		m.resetGame()
		m.draw()
	default:
		m.pendingResize = true
	}
}

func (m *Model) handleFrame(msg TickMsg) (tea.Model, tea.Cmd) {
	m.input.Expire(msg.Time)

	next, err := m.loop.Frame(msg.Token, msg.Time)
	if err != nil {
		m.err = err
		m.logger.Error("game loop halted", "game", m.game.ID(), "error", err)
		m.drawError()
		return m, nil
	}
	if !next {
		return m, nil
	}
	return m, frameCmd(msg.Token, m.interval)
}

// update runs one fixed step of the game.
func (m *Model) update(time.Duration) {
	for _, code := range m.input.Down() {
		if a := m.keys.Action(code); a != core.ActionNone {
			m.frame.Hold(a)
		}
	}

	if m.pendingResize && m.resizeDue() {
		restart := m.frame.Has(core.ActionRestart)
		m.resetGame()
		if restart {
			m.frame.Set(core.ActionConfirm)
		}
	}

	res := m.game.Step(m.frame)
	m.frame.Clear()

	for _, snd := range res.Sounds {
		m.audio.Play(string(snd))
	}
	m.observe(res.State)
}

// resizeDue reports whether a deferred resize can be applied: on the start
// screen, or on the game-over screen once the player presses a key.
func (m *Model) resizeDue() bool {
	switch m.state.Phase {
	case core.PhaseIdle:
		return true
	case core.PhaseGameOver:
		return len(m.frame.Actions) > 0
	}
	return false
}

func (m *Model) observe(st core.GameState) {
	m.state = st
	if !st.GameOver() {
		m.saved = false
		return
	}
	if !m.saved {
		m.saved = true
		m.recordRun(st)
	}
}

// recordRun saves the result of a finished run once. Time-based games only
// record solved runs.
func (m *Model) recordRun(st core.GameState) {
	id, level, order := m.game.ID(), m.cfg.Difficulty.Level, m.game.ScoreOrder()
	if order == core.LowerIsBetter && !st.Won {
		m.logger.Debug("unsolved run not recorded", "game", id)
		return
	}

	runID := uuid.NewString()
	m.logger.Info("run finished", "game", id, "level", level, "score", st.Score, "won", st.Won, "run", runID)

	if m.local.SetHighScore(id, level, st.Score, order) {
		m.status = "New high score!"
		m.loadBest()
	}

	if m.store == nil || (order == core.HigherIsBetter && st.Score <= 0) {
		return
	}
	if _, err := m.store.SaveScore(storage.ScoreEntry{
		RunID:  runID,
		GameID: id,
		Level:  string(level),
		Score:  st.Score,
	}); err != nil {
		m.logger.Warn("cannot save score history", "game", id, "error", err)
	}
}

func (m *Model) resetGame() {
	m.game.Reset(m.cfg)
	m.state = m.game.State()
	m.saved = false
	m.pendingResize = false
	m.loadBest()
}

func (m *Model) loadBest() {
	m.best, m.hasBest = m.local.HighScore(m.game.ID(), m.cfg.Difficulty.Level)
}

// selectLevel applies a difficulty for the next run and remembers it.
func (m *Model) selectLevel(level core.Level) {
	d := config.ForLevel(level)
	if err := m.game.SetDifficulty(d); err != nil {
		m.status = "Finish the run to change difficulty"
		return
	}
	m.cfg.Difficulty = d
	m.local.SetDifficulty(m.game.ID(), level)
	m.loadBest()
	m.status = "Difficulty: " + string(level)
	m.logger.Debug("difficulty selected", "game", m.game.ID(), "level", level)
}

func (m *Model) setVolume(v float64) {
	m.muted = false
	m.audio.SetVolume(v)
	m.lastVolume = m.audio.Volume()
	m.status = fmt.Sprintf("Volume %d%%", int(m.lastVolume*100+0.5))
}

func (m *Model) toggleMute() {
	if m.muted {
		m.muted = false
		m.audio.SetVolume(m.lastVolume)
		m.status = "Sound on"
		return
	}
	m.lastVolume = m.audio.Volume()
	m.muted = true
	m.audio.SetVolume(0)
	m.status = "Muted"
}

// draw renders the game and the footer into the cached view.
func (m *Model) draw() {
	m.game.Render(m.screen)
	m.view = m.renderer.Screen(m.screen) + "\n" + m.footer()
}

func (m *Model) drawError() {
	m.screen.Clear()
	msg := m.err.Error()
	if limit := m.screen.Width() - 6; limit > 3 && len(msg) > limit {
		msg = msg[:limit-3] + "..."
	}
	m.screen.DrawPanel("Something went wrong", msg, "Press Q to quit")
	m.view = m.renderer.Screen(m.screen) + "\n" + m.footer()
}

var (
	footerInfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	footerStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	footerHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *Model) footer() string {
	best := "-"
	if m.hasBest {
		best = fmt.Sprintf("%d", m.best)
	}
	vol := fmt.Sprintf("%d%%", int(m.audio.Volume()*100+0.5))
	if m.muted {
		vol = "muted"
	}
	info := footerInfoStyle.Render(fmt.Sprintf(" %s  best %s  vol %s ", m.cfg.Difficulty.Level, best, vol))
	if m.status != "" {
		info += footerStatusStyle.Render(m.status + " ")
	}

	m.help.Width = max(m.width-lipgloss.Width(info), 0)
	return info + footerHelpStyle.Render(m.help.View(m.keys))
}

// saveScreenshot saves the current screen as text under ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.status = "Saved " + name
}

// Run hosts game in the current terminal until the player quits. It returns
// the error that halted the game loop, if any.
func Run(game registry.Game, opts Options) error {
	m := NewModel(game, opts)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return m.Err()
}
