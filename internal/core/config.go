package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// Front ends use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Delay between simulation ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultTickInterval is the delay between ticks when none is configured.
const DefaultTickInterval = 120 * time.Millisecond

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the front end.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended because the board is full
}

// Event describes what happened during a single tick.
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventFoodEaten
	EventCollision
	EventBoardFull
)

func (e Event) String() string {
	switch e {
	case EventMoved:
		return "moved"
	case EventFoodEaten:
		return "food_eaten"
	case EventCollision:
		return "collision"
	case EventBoardFull:
		return "board_full"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Event Event
}
