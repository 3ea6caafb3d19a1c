package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRespawnAvoidsSnake(t *testing.T) {
	b := core.DefaultBounds()
	rng := rand.New(rand.NewSource(999))

	// A long snake covering two full interior rows
	var body []core.Point
	for _, y := range []int{5, 6} {
		for x := 1; x < b.W-1; x++ {
			body = append(body, core.Point{X: x, Y: y})
		}
	}
	s := newTestSnake(core.DirRight, body...)

	for range 200 {
		p, ok := Respawn(s, b, rng)
		if !ok {
			t.Fatal("Respawn() should find a free cell")
		}
		if s.Occupies(p) {
			t.Errorf("Food spawned on snake at %v", p)
		}
		if !b.IsInterior(p) {
			t.Errorf("Food spawned outside the interior at %v", p)
		}
	}
}

func TestRespawnSingleFreeCell(t *testing.T) {
	b := core.NewBounds(4, 4)
	s := &Snake{
		bounds:    b,
		body:      []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}},
		direction: core.DirLeft,
		capacity:  MaxLength,
	}

	for seed := range int64(20) {
		p, ok := Respawn(s, b, rand.New(rand.NewSource(seed)))
		if !ok || p != (core.Point{X: 1, Y: 2}) {
			t.Errorf("seed %d: Respawn() = (%v, %v), expected ((1, 2), true)", seed, p, ok)
		}
	}
}

func TestRespawnFullBoard(t *testing.T) {
	b := core.NewBounds(4, 3)
	s := &Snake{
		bounds:    b,
		body:      []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}},
		direction: core.DirLeft,
		capacity:  MaxLength,
	}

	if _, ok := Respawn(s, b, rand.New(rand.NewSource(1))); ok {
		t.Error("Respawn() on a full board should report false")
	}
}
