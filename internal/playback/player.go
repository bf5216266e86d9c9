// Package playback runs a workout: it renders the current screen once a
// second, plays cues, and steps through screens on a timer or on keys.
package playback

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"workout_tui/internal/audio"
	"workout_tui/internal/input"
	"workout_tui/internal/screen"
	"workout_tui/internal/timer"
	"workout_tui/internal/workout"
)

// Sounds plays a cue without waiting for it.
type Sounds interface {
	Play(name audio.Cue)
}

type Options struct {
	Out       io.Writer
	Events    <-chan input.Event
	Sounds    Sounds
	Sleeper   timer.Sleeper
	Sequencer *screen.Sequencer
	Logger    *slog.Logger
}

type nopSounds struct{}

func (nopSounds) Play(audio.Cue) {}

// Duration is the total length of w.
func Duration(w *workout.Workout) (time.Duration, error) { return screen.Duration(w) }

// Screens is the screen sequence Run steps through for w.
func Screens(w *workout.Workout) ([]screen.Screen, error) { return screen.Screens(w) }

// Run plays w until the user presses q, a render or key read fails, or ctx
// is cancelled. The Result is valid in every case.
func Run(ctx context.Context, w *workout.Workout, opts Options) (Result, error) {
	if opts.Out == nil {
		return Result{}, errors.New("playback needs an output")
	}
	seq := opts.Sequencer
	if seq == nil {
		seq = screen.NewSequencer(screen.DefaultNarrative())
	}
	sounds := opts.Sounds
	if sounds == nil {
		sounds = nopSounds{}
	}
	sleeper := opts.Sleeper
	if sleeper == nil {
		sleeper = timer.RealSleeper{}
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	screens, err := seq.Screens(w)
	if err != nil {
		return Result{}, err
	}
	s := NewSession(screens, seq.Fallback())
	events := opts.Events

	log.Info("playback started", "workout", w.Title, "screens", len(screens), "duration", s.Total())

	for {
		frame := s.Frame()
		for _, c := range s.Cues() {
			sounds.Play(c)
		}
		if err := render(opts.Out, w.Title, frame); err != nil {
			return s.Result(), fmt.Errorf("rendering screen %d: %w", frame.Index, err)
		}

		navigated := false
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				break
			}
			if ev.Err != nil {
				return s.Result(), ev.Err
			}
			switch s.Handle(ev.Key) {
			case Quit:
				log.Info("playback quit", "screen", s.Index(), "elapsed", s.Elapsed())
				return s.Result(), nil
			case Navigated:
				log.Debug("navigated", "key", ev.Key, "screen", s.Index())
				navigated = true
			}
		default:
		}
		if navigated {
			continue
		}

		if err := sleeper.Sleep(ctx, time.Second); err != nil {
			return s.Result(), err
		}
		before := s.Index()
		s.Tick()
		if s.Index() != before {
			log.Debug("screen finished", "from", before, "to", s.Index())
		}
	}
}
