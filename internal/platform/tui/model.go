package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// maxPendingKeys bounds how many keystrokes wait for upcoming ticks.
const maxPendingKeys = 8

// Model is the Bubble Tea model for running the game.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	styles  Styles
	logger  *log.Logger
	pending []core.Action // Keystrokes not yet consumed, one per tick

	gameState core.GameState
	tooSmall  bool
	quitting  bool
	done      bool
}

// NewModel creates a new Bubble Tea model for a game that has already been reset.
func NewModel(game registry.Game, opts registry.Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:      game,
		screen:    core.NewScreen(game.FrameSize()),
		config:    opts.Runtime,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		styles:    NewStyles(opts.Palette),
		logger:    logger,
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval)
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

// handleKey queues direction keys and handles quit.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.logger.Info("quit requested", "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	if len(m.pending) < maxPendingKeys {
		m.pending = append(m.pending, action)
	}
	return m, nil
}

// handleResize pauses the game while the window cannot hold the frame.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	fw, fh := m.game.FrameSize()
	// One extra line for the help bar
	m.tooSmall = msg.Width < fw || msg.Height < fh+1
	return m, nil
}

// handleTick feeds one queued keystroke to the game and advances it.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done || m.quitting {
		return m, nil
	}
	if m.tooSmall {
		return m, tickCmd(m.config.TickInterval)
	}

	var input core.InputFrame
	if len(m.pending) > 0 {
		input.Set(m.pending[0])
		m.pending = m.pending[1:]
	}

	result := m.game.Step(input)
	m.gameState = result.State

	switch result.Event {
	case core.EventFoodEaten:
		m.logger.Debug("food eaten", "score", result.State.Score)
	case core.EventCollision, core.EventBoardFull:
		m.logger.Info("game over", "reason", result.Event, "score", result.State.Score)
	}

	if m.gameState.GameOver {
		m.done = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickInterval)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.done {
		return ""
	}

	if m.tooSmall {
		fw, fh := m.game.FrameSize()
		return fmt.Sprintf("%s: window too small, need %dx%d, have %dx%d",
			m.game.Title(), fw, fh+1, m.config.ScreenW, m.config.ScreenH)
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.styles, m.screen.Height()-1) + "\n" + m.help.View(m.keys)
}

// Frontend plays the game inside a Bubble Tea program.
type Frontend struct{}

// FrontendID is the registry identifier of the Bubble Tea front end.
const FrontendID = "tea"

func init() {
	registry.Register(FrontendID, func() registry.Frontend {
		return Frontend{}
	})
}

// ID returns the front end identifier.
func (Frontend) ID() string {
	return FrontendID
}

// Title returns the display name.
func (Frontend) Title() string {
	return "Bubble Tea (styled, alternate screen)"
}

// Run starts the Bubble Tea program and blocks until the game ends, the
// player quits, or ctx is cancelled. Bubble Tea restores the terminal on exit.
func (Frontend) Run(ctx context.Context, game registry.Game, opts registry.Options) (registry.Outcome, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := p.Run()

	outcome := registry.Outcome{State: game.State()}
	if fm, ok := final.(Model); ok {
		outcome.Quit = fm.quitting
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return outcome, ctx.Err()
		}
		return outcome, fmt.Errorf("tui: %w", err)
	}
	return outcome, nil
}
