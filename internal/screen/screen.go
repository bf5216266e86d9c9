// Package screen expands a workout into the ordered, timed screens a
// session steps through.
package screen

import (
	"fmt"
	"time"
)

// Fixed screen lengths. The warm-up length comes from the workout.
const (
	ExerciseLength = 20 * time.Second
	RestLength     = 60 * time.Second
	CooldownLength = 10 * time.Minute
)

type Kind int

const (
	WarmUp Kind = iota
	Rest
	Exercise
	Cooldown
)

func (k Kind) String() string {
	switch k {
	case WarmUp:
		return "WarmUp"
	case Rest:
		return "Rest"
	case Exercise:
		return "Exercise"
	case Cooldown:
		return "Cooldown"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Screen struct {
	Body     string
	Kind     Kind
	Slot     int // 1..3 for Exercise screens, 0 otherwise
	Duration time.Duration
}

// Label is the heading shown above the body.
func (s Screen) Label() string {
	switch s.Kind {
	case WarmUp:
		return "WARMING UP!"
	case Rest:
		return "REST!"
	case Exercise:
		return fmt.Sprintf("SET %d", s.Slot)
	default:
		return "Aah - Feel better?"
	}
}

// Offsets returns the start offset of every screen and the total length.
func Offsets(screens []Screen) ([]time.Duration, time.Duration) {
	starts := make([]time.Duration, len(screens))
	var total time.Duration
	for i, s := range screens {
		starts[i] = total
		total += s.Duration
	}
	return starts, total
}
