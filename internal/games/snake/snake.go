package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MaxLength is the body capacity assumed for any board the game runs on.
const MaxLength = 1000

// ErrCapacity is returned when the snake body could outgrow its capacity
// on a board. Filling the board takes one segment per interior cell plus
// the tail copy added by the last Grow.
var ErrCapacity = errors.New("snake: capacity smaller than interior cell count plus one")

// Snake is the ordered body of the player, head at index 0.
type Snake struct {
	bounds    core.Bounds
	body      []core.Point
	direction core.Direction
	capacity  int
}

// NewSnake creates a snake of length 1 at start, facing dir.
// The capacity must exceed the interior cell count of b so the body can
// never outgrow it during play.
func NewSnake(b core.Bounds, start core.Point, dir core.Direction, capacity int) (*Snake, error) {
	if need := b.InteriorCells() + 1; capacity < need {
		return nil, fmt.Errorf("%w: capacity %d, need %d", ErrCapacity, capacity, need)
	}
	if !b.IsInterior(start) {
		return nil, fmt.Errorf("snake: start %v is not an interior cell", start)
	}

	body := make([]core.Point, 1, min(capacity, 64))
	body[0] = start
	return &Snake{
		bounds:    b,
		body:      body,
		direction: dir,
		capacity:  capacity,
	}, nil
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current movement direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// ChangeDirection turns the snake. A request for the exact reverse of the
// current direction is ignored.
func (s *Snake) ChangeDirection(d core.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Move shifts every segment into its predecessor's cell and advances the
// head one step. It reports false when the new head lands on the wall ring
// or on another segment. The cell the tail leaves this step counts as free.
func (s *Snake) Move() bool {
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	head := s.body[0].Add(s.direction.Delta())
	s.body[0] = head

	if !s.bounds.IsInterior(head) {
		return false
	}
	for _, seg := range s.body[1:] {
		if seg == head {
			return false
		}
	}
	return true
}

// Grow duplicates the tail segment. The copy separates from the tail on
// the next move.
func (s *Snake) Grow() {
	if len(s.body) >= s.capacity {
		panic(fmt.Sprintf("snake: grow beyond capacity %d", s.capacity))
	}
	s.body = append(s.body, s.body[len(s.body)-1])
}

// Occupies returns true if any segment is on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}
