// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math/rand"

// Board dimensions, wall ring included.
const (
	BoardWidth  = 40
	BoardHeight = 20
)

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Add returns the point offset by the given delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction represents a movement direction on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{X: 0, Y: -1}
	case DirDown:
		return Point{X: 0, Y: 1}
	case DirLeft:
		return Point{X: -1, Y: 0}
	case DirRight:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Bounds describes a playfield of W x H cells. The outermost ring of cells
// is wall; everything inside it is interior.
type Bounds struct {
	W, H int
}

// NewBounds creates playfield bounds with the given dimensions.
func NewBounds(w, h int) Bounds {
	return Bounds{W: w, H: h}
}

// DefaultBounds returns the fixed board used by the game.
func DefaultBounds() Bounds {
	return Bounds{W: BoardWidth, H: BoardHeight}
}

// Contains returns true if p lies anywhere on the board, walls included.
func (b Bounds) Contains(p Point) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// IsWall returns true if p lies on the boundary ring.
func (b Bounds) IsWall(p Point) bool {
	return b.Contains(p) && !b.IsInterior(p)
}

// IsInterior returns true if p is strictly inside the wall ring.
func (b Bounds) IsInterior(p Point) bool {
	return p.X > 0 && p.X < b.W-1 && p.Y > 0 && p.Y < b.H-1
}

// InteriorCells returns the number of interior cells.
func (b Bounds) InteriorCells() int {
	if b.W < 3 || b.H < 3 {
		return 0
	}
	return (b.W - 2) * (b.H - 2)
}

// Center returns the center cell of the board.
func (b Bounds) Center() Point {
	return Point{X: b.W / 2, Y: b.H / 2}
}

// RandomInterior returns a uniformly random interior cell.
// The board must have at least one interior cell.
func (b Bounds) RandomInterior(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(b.W-2) + 1,
		Y: rng.Intn(b.H-2) + 1,
	}
}
