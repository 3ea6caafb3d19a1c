package term

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// FrontendID is the registry identifier of the raw terminal front end.
const FrontendID = "term"

func init() {
	registry.Register(FrontendID, func() registry.Frontend {
		return Frontend{In: os.Stdin, Out: os.Stdout}
	})
}

// Frontend plays the game on a raw-mode terminal with ANSI redraws.
type Frontend struct {
	In  *os.File
	Out *os.File
}

// ID returns the front end identifier.
func (Frontend) ID() string {
	return FrontendID
}

// Title returns the display name.
func (Frontend) Title() string {
	return "Raw terminal (ANSI redraw)"
}

// Run takes over the terminal and ticks the game until it ends, the player
// quits, or ctx is cancelled. The terminal is restored on every return path.
func (f Frontend) Run(ctx context.Context, game registry.Game, opts registry.Options) (outcome registry.Outcome, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fw, fh := game.FrameSize()
	if w, h, sizeErr := Size(f.Out); sizeErr == nil && (w < fw || h < fh) {
		logger.Warn("terminal smaller than the board", "have", [2]int{w, h}, "need", [2]int{fw, fh})
	}

	sess, err := Open(f.In, f.Out, logger)
	if err != nil {
		return registry.Outcome{}, err
	}
	defer func() {
		if closeErr := sess.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	loop := engine.New(game, sess, sess, engine.Options{
		Interval: opts.Runtime.TickInterval,
		Logger:   logger,
	})
	res, err := loop.Run(ctx)
	return registry.Outcome{State: res.State, Quit: res.Quit}, err
}
