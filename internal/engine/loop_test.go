package engine

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// stubGame ends after a fixed number of steps and records its inputs.
type stubGame struct {
	endAfter int
	steps    int
	inputs   []core.Action
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.inputs = append(g.inputs, in.Action)
	return core.StepResult{State: g.State(), Event: core.EventMoved}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Set(0, 0, '#')
}

func (g *stubGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.steps >= g.endAfter}
}

func (g *stubGame) FrameSize() (int, int) {
	return 4, 2
}

// scriptedInput replays one action per poll, then reports no input.
type scriptedInput struct {
	actions []core.Action
}

func (in *scriptedInput) Poll() core.InputFrame {
	if len(in.actions) == 0 {
		return core.InputFrame{}
	}
	a := in.actions[0]
	in.actions = in.actions[1:]
	return core.NewInputFrame(a)
}

type recordingSink struct {
	frames []string
	err    error
}

func (s *recordingSink) Draw(screen *core.Screen) error {
	if s.err != nil {
		return s.err
	}
	s.frames = append(s.frames, strings.Join(screen.Lines(), "\n"))
	return nil
}

// fakeClock records requested sleeps without waiting.
type fakeClock struct {
	sleeps  []time.Duration
	onSleep func(n int)
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	if c.onSleep != nil {
		c.onSleep(len(c.sleeps))
	}
	return ctx.Err()
}

func TestLoopStopsOnGameOver(t *testing.T) {
	game := &stubGame{endAfter: 3}
	sink := &recordingSink{}
	clock := &fakeClock{}

	loop := New(game, &scriptedInput{}, sink, Options{Interval: 50 * time.Millisecond, Clock: clock})
	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if res.Ticks != 3 || !res.State.GameOver || res.Quit {
		t.Errorf("Result = %+v, expected 3 ticks ending in game over", res)
	}
	// The final tick ends the loop before drawing or sleeping
	if len(sink.frames) != 2 {
		t.Errorf("Drew %d frames, expected 2", len(sink.frames))
	}
	if len(clock.sleeps) != 2 {
		t.Fatalf("Slept %d times, expected 2", len(clock.sleeps))
	}
	for _, d := range clock.sleeps {
		if d != 50*time.Millisecond {
			t.Errorf("Slept %v, expected 50ms", d)
		}
	}
}

func TestLoopOneActionPerTick(t *testing.T) {
	game := &stubGame{endAfter: 4}
	input := &scriptedInput{actions: []core.Action{core.ActionUp, core.ActionLeft}}

	loop := New(game, input, &recordingSink{}, Options{Clock: &fakeClock{}})
	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	want := []core.Action{core.ActionUp, core.ActionLeft, core.ActionNone, core.ActionNone}
	if len(game.inputs) != len(want) {
		t.Fatalf("Game saw %d inputs, expected %d", len(game.inputs), len(want))
	}
	for i := range want {
		if game.inputs[i] != want[i] {
			t.Errorf("input %d = %v, expected %v", i, game.inputs[i], want[i])
		}
	}
}

func TestLoopQuit(t *testing.T) {
	game := &stubGame{endAfter: 100}
	input := &scriptedInput{actions: []core.Action{core.ActionNone, core.ActionQuit}}

	loop := New(game, input, &recordingSink{}, Options{Clock: &fakeClock{}})
	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !res.Quit || res.Ticks != 1 || game.steps != 1 {
		t.Errorf("Result = %+v after %d steps, expected quit after 1 tick", res, game.steps)
	}
}

func TestLoopCustomStop(t *testing.T) {
	game := &stubGame{endAfter: 100}
	stop := func(s core.GameState) bool { return s.Score >= 5 }

	loop := New(game, &scriptedInput{}, &recordingSink{}, Options{Clock: &fakeClock{}, Stop: stop})
	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Ticks != 5 {
		t.Errorf("Ticks = %d, expected 5", res.Ticks)
	}
}

func TestLoopContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	game := &stubGame{endAfter: 100}
	clock := &fakeClock{onSleep: func(n int) {
		if n == 2 {
			cancel()
		}
	}}

	loop := New(game, &scriptedInput{}, &recordingSink{}, Options{Clock: clock})
	res, err := loop.Run(ctx)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if res.Ticks != 2 {
		t.Errorf("Ticks = %d, expected 2", res.Ticks)
	}
}

func TestLoopDrawError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	sink := &recordingSink{err: errBroken}

	loop := New(&stubGame{endAfter: 10}, &scriptedInput{}, sink, Options{Clock: &fakeClock{}})
	_, err := loop.Run(context.Background())

	if !errors.Is(err, errBroken) {
		t.Errorf("Run() error = %v, expected wrapped draw error", err)
	}
}

func TestLoopWithSnake(t *testing.T) {
	game := snake.New()
	game.Reset(core.RuntimeConfig{Seed: 3})
	sink := &recordingSink{}
	clock := &fakeClock{}

	// Heading right with no input the snake must reach the right wall
	loop := New(game, &scriptedInput{}, sink, Options{Clock: clock})
	res, err := loop.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	if !res.State.GameOver || game.Status() != snake.StatusGameOver {
		t.Fatalf("Expected game over, got %+v", res.State)
	}
	if res.Ticks != uint64(core.BoardWidth/2-1) {
		t.Errorf("Ticks = %d, expected %d", res.Ticks, core.BoardWidth/2-1)
	}
	if len(sink.frames) != int(res.Ticks)-1 {
		t.Errorf("Drew %d frames, expected %d", len(sink.frames), res.Ticks-1)
	}
	if res.State.Score != game.Score() {
		t.Errorf("Result score %d differs from game score %d", res.State.Score, game.Score())
	}
}

func TestLoopLogsFinalState(t *testing.T) {
	game := snake.New()
	game.Reset(core.RuntimeConfig{Seed: 3})

	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	loop := New(game, &scriptedInput{}, &recordingSink{}, Options{Clock: &fakeClock{}, Logger: logger})
	if _, err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "game ended") || !strings.Contains(out, "Status: game_over") {
		t.Errorf("Expected final state in debug log, got:\n%s", out)
	}
}

func TestRealClockCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := RealClock{}.Sleep(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Sleep() error = %v, expected context.Canceled", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Sleep() should return immediately on a cancelled context")
	}
}

func TestRealClockSleeps(t *testing.T) {
	if err := (RealClock{}).Sleep(context.Background(), time.Millisecond); err != nil {
		t.Errorf("Sleep() error = %v", err)
	}
}
