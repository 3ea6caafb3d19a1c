// Package snake implements the classic single-player snake game: movement,
// growth, collision and food placement on a fixed walled board.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the controller state of a game.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
	StatusBoardFull
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Game implements the Snake game.
type Game struct {
	bounds core.Bounds
	rng    *rand.Rand
	tick   uint64
	score  int
	status Status

	snake   *Snake
	food    core.Point
	hasFood bool
}

// New creates a Snake game on the default board.
func New() *Game {
	g, err := NewWithBounds(core.DefaultBounds())
	if err != nil {
		panic(err)
	}
	return g
}

// NewWithBounds creates a game on a board of the given size. The board must
// have interior cells and fit within the snake's body capacity.
func NewWithBounds(b core.Bounds) (*Game, error) {
	if b.InteriorCells() == 0 {
		return nil, fmt.Errorf("snake: board %dx%d has no interior", b.W, b.H)
	}
	if _, err := NewSnake(b, b.Center(), core.DirRight, MaxLength); err != nil {
		return nil, err
	}
	return &Game{bounds: b}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Bounds returns the board the game is played on.
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// FrameSize returns the dimensions of a rendered frame: the board plus the
// score line.
func (g *Game) FrameSize() (int, int) {
	return g.bounds.W, g.bounds.H + 1
}

// Reset initializes/restarts the game: a length-1 snake at the board
// center facing right, score 0, and one food placed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.status = StatusRunning

	// Bounds were validated by NewWithBounds.
	g.snake, _ = NewSnake(g.bounds, g.bounds.Center(), core.DirRight, MaxLength)
	g.spawnFood()
}

// spawnFood places food on a free interior cell, or ends the game when
// none is left.
func (g *Game) spawnFood() {
	g.food, g.hasFood = Respawn(g.snake, g.bounds, g.rng)
	if !g.hasFood {
		g.status = StatusBoardFull
	}
}

// Step advances the game by one tick: apply the input's direction, move,
// then eat food if the head landed on it.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.status != StatusRunning {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	if dir, ok := input.Action.Direction(); ok {
		g.snake.ChangeDirection(dir)
	}

	if !g.snake.Move() {
		g.status = StatusGameOver
		return core.StepResult{State: g.State(), Event: core.EventCollision}
	}

	if g.hasFood && g.snake.Head() == g.food {
		g.score++
		g.snake.Grow()
		g.spawnFood()
		if g.status == StatusBoardFull {
			return core.StepResult{State: g.State(), Event: core.EventBoardFull}
		}
		return core.StepResult{State: g.State(), Event: core.EventFoodEaten}
	}

	return core.StepResult{State: g.State(), Event: core.EventMoved}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status != StatusRunning,
		Won:      g.status == StatusBoardFull,
	}
}

// Status returns the controller state.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Snake returns the player's snake.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food position and whether food is on the board.
func (g *Game) Food() (core.Point, bool) {
	return g.food, g.hasFood
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", g.tick, g.score, g.status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", g.snake.Len(), g.snake.Direction())
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", g.snake.Head().X, g.snake.Head().Y, g.food.X, g.food.Y)
	return b.String()
}
