// Package engine drives a game through its fixed-rate tick loop:
// poll input, step, render, sleep. Everything runs on the caller's goroutine.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Game is the part of a game the loop needs.
type Game interface {
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	FrameSize() (int, int)
}

// Input yields at most one action per tick without blocking.
type Input interface {
	Poll() core.InputFrame
}

// Sink displays a rendered frame.
type Sink interface {
	Draw(s *core.Screen) error
}

// debugStater is implemented by games that can describe their whole state.
type debugStater interface {
	DebugState() string
}

// StopFunc reports whether the loop should end after a tick.
type StopFunc func(core.GameState) bool

// StopOnGameOver ends the loop when the game is over.
func StopOnGameOver(s core.GameState) bool {
	return s.GameOver
}

// Options configures a Loop. Zero fields take defaults.
type Options struct {
	Interval time.Duration
	Clock    Clock
	Stop     StopFunc
	Logger   *log.Logger
}

// Loop runs a game at a fixed tick interval.
type Loop struct {
	game     Game
	input    Input
	sink     Sink
	interval time.Duration
	clock    Clock
	stop     StopFunc
	logger   *log.Logger
	ticks    uint64
}

// Result is the outcome of a finished loop.
type Result struct {
	State core.GameState
	Ticks uint64
	Quit  bool // Ended by a quit request rather than by the game
}

// New creates a loop for the given game, input and sink.
func New(game Game, input Input, sink Sink, opts Options) *Loop {
	if opts.Interval <= 0 {
		opts.Interval = core.DefaultTickInterval
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}
	if opts.Stop == nil {
		opts.Stop = StopOnGameOver
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Loop{
		game:     game,
		input:    input,
		sink:     sink,
		interval: opts.Interval,
		clock:    opts.Clock,
		stop:     opts.Stop,
		logger:   opts.Logger,
	}
}

// Run ticks until the stop condition holds, a quit action arrives, or ctx
// is cancelled. On cancellation the context error is returned alongside
// the last state.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	screen := core.NewScreen(l.game.FrameSize())

	for {
		if err := ctx.Err(); err != nil {
			return l.result(false), err
		}

		in := l.input.Poll()
		if in.Has(core.ActionQuit) {
			l.logger.Info("quit requested", "tick", l.ticks)
			return l.result(true), nil
		}

		res := l.game.Step(in)
		l.ticks++
		l.logStep(res)

		if l.stop(res.State) {
			if d, ok := l.game.(debugStater); ok {
				l.logger.Debug("game ended", "tick", l.ticks, "state", d.DebugState())
			}
			return l.result(false), nil
		}

		screen.Clear()
		l.game.Render(screen)
		if err := l.sink.Draw(screen); err != nil {
			return l.result(false), fmt.Errorf("engine: draw frame: %w", err)
		}

		if err := l.clock.Sleep(ctx, l.interval); err != nil {
			return l.result(false), err
		}
	}
}

func (l *Loop) result(quit bool) Result {
	return Result{
		State: l.game.State(),
		Ticks: l.ticks,
		Quit:  quit,
	}
}

func (l *Loop) logStep(res core.StepResult) {
	switch res.Event {
	case core.EventFoodEaten:
		l.logger.Debug("food eaten", "tick", l.ticks, "score", res.State.Score)
	case core.EventCollision:
		l.logger.Info("collision", "tick", l.ticks, "score", res.State.Score)
	case core.EventBoardFull:
		l.logger.Info("board full", "tick", l.ticks, "score", res.State.Score)
	}
}
