package config

import (
	"errors"
	"fmt"
	"time"
)

// SpeedPreset represents a named game speed.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
)

// ErrUnknownPreset is returned for a speed name that is not a preset.
var ErrUnknownPreset = errors.New("config: unknown speed preset")

// ParseSpeed validates a preset name. Empty means normal.
func ParseSpeed(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(s); p {
	case "":
		return SpeedNormal, nil
	case SpeedEasy, SpeedNormal, SpeedHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal or hard)", ErrUnknownPreset, s)
	}
}

// factor returns the tick interval multiplier as a ratio.
func (p SpeedPreset) factor() (num, den time.Duration) {
	switch p {
	case SpeedEasy:
		return 3, 2
	case SpeedHard:
		return 3, 5
	default:
		return 1, 1
	}
}

// Scale applies the preset to a base tick interval.
func (p SpeedPreset) Scale(base time.Duration) time.Duration {
	num, den := p.factor()
	return base * num / den
}
