// Package audio decides which sound cues a playback tick triggers and plays
// them from a registry of named clips.
package audio

import (
	"time"

	"workout_tui/internal/screen"
)

type Cue string

const (
	Tick    Cue = "tick"
	Bell    Cue = "bell"
	Whistle Cue = "whistle"
)

// Names lists every cue a registry is expected to hold.
var Names = []Cue{Tick, Bell, Whistle}

// TickAt is the remaining time on a screen at which the forewarning tick
// plays.
const TickAt = 7 * time.Second

// Cues returns the cues for one tick, in play order. remaining and elapsed
// are for the current screen; last reports whether it is the final screen.
func Cues(kind screen.Kind, remaining, elapsed time.Duration, last bool) []Cue {
	var cues []Cue
	if remaining == TickAt && !last {
		cues = append(cues, Tick)
	}
	if elapsed == 0 {
		switch kind {
		case screen.Rest, screen.Cooldown:
			cues = append(cues, Whistle)
		case screen.Exercise:
			cues = append(cues, Bell)
		}
	}
	return cues
}
