// Package registry provides a global registry for front ends.
// Front ends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the interface a front end drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The front end handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over).
	State() core.GameState

	// FrameSize returns the dimensions Render draws into.
	FrameSize() (int, int)
}

// Palette holds lipgloss color specs for the board glyphs.
type Palette struct {
	Wall  string
	Food  string
	Snake string
	Score string
}

// Options configures a front end run.
type Options struct {
	Runtime core.RuntimeConfig
	Palette Palette
	Logger  *log.Logger
}

// Outcome is how a run ended.
type Outcome struct {
	State core.GameState
	Quit  bool // The player quit before the game ended
}

// Frontend runs a game on some kind of display until it ends.
type Frontend interface {
	ID() string
	Title() string
	Run(ctx context.Context, game Game, opts Options) (Outcome, error)
}

// Info contains metadata about a registered front end.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new front end.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front end factory to the registry.
// Typically called from a front end's init() function.
// Panics if a front end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered front ends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a front end by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a front end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
