package history

import (
	"fmt"
	"time"
)

// Entry is one finished playback session.
type Entry struct {
	ID        string
	Workout   string
	StartedAt time.Time
	StoppedAt time.Time
	Spent     time.Duration
	Furthest  int // index of the furthest screen reached
	Screens   int
	Completed bool
}

// Progress is the furthest screen as "n/total", counting from 1.
func (e Entry) Progress() string {
	if e.Screens == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", e.Furthest+1, e.Screens)
}
