package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/basket-catch/internal/canvas"
	"github.com/vovakirdan/basket-catch/internal/config"
	"github.com/vovakirdan/basket-catch/internal/core"
	"github.com/vovakirdan/basket-catch/internal/games/basket"
)

// footerRows is the number of terminal rows reserved below the playfield.
const footerRows = 1

// Model is the Bubble Tea model for running a basket game.
type Model struct {
	game     *basket.Game
	surface  *CellSurface
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	renderer *lipgloss.Renderer
	status   lipgloss.Style
	config   core.RuntimeConfig
	basket   config.BasketConfig
	logger   *log.Logger
	message  string
	err      error
	quitting bool
}

// NewModel creates a model sized to the terminal in cfg.
// A nil renderer or logger falls back to the package defaults.
func NewModel(cfg core.RuntimeConfig, bcfg config.BasketConfig, r *lipgloss.Renderer, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}

	surface := NewCellSurface(float64(bcfg.Canvas.Width), float64(bcfg.Canvas.Height), cfg.ScreenW, playRows(cfg.ScreenH))
	game, err := basket.New(surface, bcfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("#00A2FF"))
	h.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortSeparator = r.NewStyle().Foreground(lipgloss.Color("240"))

	return Model{
		game:     game,
		surface:  surface,
		screen:   core.NewScreen(surface.Cols(), surface.Rows()),
		keys:     DefaultKeyMap(),
		help:     h,
		renderer: r,
		status:   r.NewStyle().Foreground(lipgloss.Color("#FF6347")),
		config:   cfg,
		basket:   bcfg,
		logger:   logger,
	}, nil
}

func playRows(screenH int) int {
	return core.Max(screenH-footerRows, 0)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
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
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.message = "screenshot failed"
		} else {
			m.logger.Debug("screenshot saved", "path", path)
			m.message = "saved " + filepath.Base(path)
		}
	case core.ActionLeft, core.ActionRight:
		m.game.MoveBasket(basket.Direction(action.Direction()))
	}
	return m, nil
}

// handleResize re-maps the canvas onto the new terminal size.
// The game keeps its state; only the cell grid changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.surface.Resize(msg.Width, playRows(msg.Height))
	m.screen.Resize(m.surface.Cols(), m.surface.Rows())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if err := m.game.Update(); err != nil {
		m.err = fmt.Errorf("tui: frame %d: %w", m.game.Frame(), err)
		m.quitting = true
		return m, tea.Quit
	}
	m.surface.Flush(m.screen)

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot renders the current state to a PNG under ~/.basket/screenshots.
func (m Model) saveScreenshot() (string, error) {
	img, err := canvas.NewImageSurface(m.basket.Canvas.Width, m.basket.Canvas.Height)
	if err != nil {
		return "", err
	}
	if err := m.game.Render(img); err != nil {
		return "", err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".basket", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("basket_%s.png", timestamp))
	if err := img.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	if m.message != "" {
		footer += "  " + m.status.Render(m.message)
	}
	return RenderScreen(m.screen, m.renderer) + "\n" + footer
}

// Err returns the error that ended the game, if any.
func (m Model) Err() error {
	return m.err
}

// Game returns the running game.
func (m Model) Game() *basket.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg core.RuntimeConfig, bcfg config.BasketConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, bcfg, nil, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
