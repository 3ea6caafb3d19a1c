// Package cells is a front end built on tcell. A goroutine pumps terminal
// events into a small queue; the engine loop drains it one action per tick
// and draws frames cell by cell.
package cells

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// FrontendID is the registry identifier of the tcell front end.
const FrontendID = "tcell"

// queueSize bounds the keystrokes waiting for upcoming ticks.
const queueSize = 8

func init() {
	registry.Register(FrontendID, func() registry.Frontend {
		return Frontend{NewScreen: tcell.NewScreen}
	})
}

// Frontend plays the game on a tcell screen.
type Frontend struct {
	NewScreen func() (tcell.Screen, error)
}

// ID returns the front end identifier.
func (Frontend) ID() string {
	return FrontendID
}

// Title returns the display name.
func (Frontend) Title() string {
	return "tcell (colored cells)"
}

// Run initializes the screen and ticks the game until it ends, the player
// quits, or ctx is cancelled. The screen is finalized on every return path.
func (f Frontend) Run(ctx context.Context, game registry.Game, opts registry.Options) (registry.Outcome, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	screen, err := f.NewScreen()
	if err != nil {
		return registry.Outcome{}, fmt.Errorf("cells: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return registry.Outcome{}, fmt.Errorf("cells: init screen: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	fw, fh := game.FrameSize()
	if w, h := screen.Size(); w < fw || h < fh {
		logger.Warn("terminal smaller than the board", "have", [2]int{w, h}, "need", [2]int{fw, fh})
	}

	in := newEventInput(screen, logger)
	go in.pump()

	loop := engine.New(game, in, newScreenSink(screen, opts.Palette), engine.Options{
		Interval: opts.Runtime.TickInterval,
		Logger:   logger,
	})
	res, err := loop.Run(ctx)
	return registry.Outcome{State: res.State, Quit: res.Quit}, err
}

// eventInput turns tcell events into per-tick input frames.
type eventInput struct {
	screen tcell.Screen
	events chan tcell.Event
	logger *log.Logger
}

func newEventInput(screen tcell.Screen, logger *log.Logger) *eventInput {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &eventInput{
		screen: screen,
		events: make(chan tcell.Event, queueSize),
		logger: logger,
	}
}

// pump forwards events until the screen is finalized.
// Events arriving while the queue is full are dropped.
func (in *eventInput) pump() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		default:
			in.logger.Debug("input queue full, dropping event")
		}
	}
}

// Poll returns the first queued event that maps to an action.
// It never blocks.
func (in *eventInput) Poll() core.InputFrame {
	for {
		select {
		case ev := <-in.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a, ok := actionForKey(ev); ok {
					return core.NewInputFrame(a)
				}
			case *tcell.EventResize:
				in.screen.Sync()
			}
		default:
			return core.InputFrame{}
		}
	}
}

// actionForKey maps a key event to an action.
func actionForKey(ev *tcell.EventKey) (core.Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.ActionUp, true
	case tcell.KeyDown:
		return core.ActionDown, true
	case tcell.KeyLeft:
		return core.ActionLeft, true
	case tcell.KeyRight:
		return core.ActionRight, true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return core.ActionQuit, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r > 0x7f {
			return core.ActionNone, false
		}
		return core.ActionForByte(byte(r))
	}
	return core.ActionNone, false
}

// screenSink draws frames onto a tcell screen.
type screenSink struct {
	screen tcell.Screen
	wall   tcell.Style
	food   tcell.Style
	snake  tcell.Style
	text   tcell.Style
}

func newScreenSink(screen tcell.Screen, p registry.Palette) *screenSink {
	return &screenSink{
		screen: screen,
		wall:   styleFor(p.Wall),
		food:   styleFor(p.Food),
		snake:  styleFor(p.Snake),
		text:   styleFor(p.Score),
	}
}

// styleFor accepts ANSI palette indexes ("245") as well as color names and
// hex values understood by tcell.
func styleFor(spec string) tcell.Style {
	style := tcell.StyleDefault
	if spec == "" {
		return style
	}
	if n, err := strconv.Atoi(spec); err == nil && n >= 0 && n < 256 {
		return style.Foreground(tcell.PaletteColor(n))
	}
	return style.Foreground(tcell.GetColor(spec))
}

// Draw copies the frame to the screen and shows it. The last row holds the
// score and is drawn with the text style.
func (s *screenSink) Draw(frame *core.Screen) error {
	boardRows := frame.Height() - 1
	for y := 0; y < frame.Height(); y++ {
		for x := 0; x < frame.Width(); x++ {
			r := frame.Get(x, y)
			style := s.text
			if y < boardRows {
				style = s.styleForRune(r)
			}
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *screenSink) styleForRune(r rune) tcell.Style {
	switch r {
	case snake.GlyphWall:
		return s.wall
	case snake.GlyphFood:
		return s.food
	case snake.GlyphSnake:
		return s.snake
	default:
		return s.text
	}
}
