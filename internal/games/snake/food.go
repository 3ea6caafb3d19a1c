package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// respawnAttemptsPerCell bounds random sampling before falling back to a scan.
const respawnAttemptsPerCell = 4

// Respawn picks a uniformly random interior cell the snake does not occupy.
// Random sampling is capped; once the cap is hit the free cells are
// enumerated and one is chosen among them. It reports false when no
// interior cell is free.
func Respawn(s *Snake, b core.Bounds, rng *rand.Rand) (core.Point, bool) {
	cells := b.InteriorCells()
	if cells == 0 {
		return core.Point{}, false
	}

	for range cells * respawnAttemptsPerCell {
		p := b.RandomInterior(rng)
		if !s.Occupies(p) {
			return p, true
		}
	}

	// Collect all empty cells
	var free []core.Point
	for y := 1; y < b.H-1; y++ {
		for x := 1; x < b.W-1; x++ {
			p := core.Point{X: x, Y: y}
			if !s.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
