package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tether/internal/config"
	"github.com/vovakirdan/tether/internal/core"
	"github.com/vovakirdan/tether/internal/game"
	"github.com/vovakirdan/tether/internal/level"
	"github.com/vovakirdan/tether/internal/storage"
)

// Muter silences sound output.
type Muter interface {
	SetMuted(muted bool)
}

// Options configures a Model beyond the game itself.
type Options struct {
	Store       *storage.Store // Optional; scores are not saved without it
	Player      string
	Watcher     *level.Watcher // Optional; enables level hot reload
	Audio       Muter          // Optional; enables the mute key
	Muted       bool           // Initial mute state of Audio
	Logger      *log.Logger
	HoldWindow  time.Duration
	RepeatDelay time.Duration
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that runs a tether game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	log        *log.Logger
	keys       KeyMap
	help       help.Model
	held       *HoldTracker
	gameState  core.GameState
	quitting   bool
	muted      bool
	scoreSaved bool // Whether score has been saved for current game over
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	keys := DefaultKeyMap()
	keys.SetDebug(cfg.Debug)
	keys.Mute.SetEnabled(opts.Audio != nil)

	return Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		opts:   opts,
		log:    logger,
		keys:   keys,
		help:   help.New(),
		held:   NewHoldTracker(opts.HoldWindow, opts.RepeatDelay),
		muted:  opts.Muted,
		now:    time.Now,
	}
}

// Init starts the game, the tick loop and the level watcher.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(tickCmd(m.config.TickRate), waitForLevel(m.opts.Watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelChangedMsg:
		lvl := game.LoadOrEmpty(string(msg), m.log)
		if !m.game.ReloadLevel(lvl) {
			m.log.Debug("ignoring change to level outside the run", "path", string(msg))
		}
		return m, waitForLevel(m.opts.Watcher)

	case levelWatchErrMsg:
		m.log.Warn("level watcher error", "error", msg.err)
		return m, waitForLevel(m.opts.Watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.game.Abandon()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeScreen()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		m.opts.Audio.SetMuted(m.muted)
		m.log.Debug("sound toggled", "muted", m.muted)
		return m, nil
	}

	m.held.Press(m.keys.Action(msg), m.now())
	return m, nil
}

// Muted reports whether the mute key has silenced the sound.
func (m Model) Muted() bool { return m.muted }

// handleResize processes window resize events. The simulation does not
// depend on the terminal size, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.resizeScreen()
	return m, nil
}

// resizeScreen fits the game screen above the help view.
func (m *Model) resizeScreen() {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-helpLines, 1))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame(m.now()))
	m.gameState = result.State

	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	entry := storage.ScoreEntry{
		Player:     m.opts.Player,
		Score:      m.gameState.Score,
		Levels:     m.game.LevelsCleared(),
		Difficulty: string(m.game.Preset()),
	}
	if _, err := m.opts.Store.SaveScore(entry); err != nil {
		m.log.Warn("could not save score", "error", err)
		return
	}
	m.log.Info("score saved", "player", entry.Player, "score", entry.Score, "levels", entry.Levels)
}

// saveScreenshot writes the current screen as plain text under the user
// directory.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := filepath.Join(config.UserDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState { return m.gameState }

// Run starts the Bubble Tea program for a game.
func Run(g *game.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
