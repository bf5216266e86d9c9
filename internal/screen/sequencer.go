package screen

import (
	"errors"
	"fmt"
	"time"

	"workout_tui/internal/workout"
)

// rounds is how many times each set is repeated.
const rounds = 3

// Narrative is the fixed text shown on warm-up, rest and cooldown screens.
type Narrative struct {
	WarmUp   workout.Exercise
	Rest     workout.Exercise
	Cooldown workout.Exercise
}

func DefaultNarrative() Narrative {
	return Narrative{
		WarmUp: workout.NewExercise("Warmup",
			"Run in place, jumping-jacks, or anything to get your heart rate up."),
		Rest: workout.NewExercise("REST",
			"Take a break, get a drink of water, take it easy!"),
		Cooldown: workout.NewExercise("Cooldown", "Great Job!"),
	}
}

type Sequencer struct {
	narrative Narrative
}

func NewSequencer(n Narrative) *Sequencer {
	return &Sequencer{narrative: n}
}

var defaultSequencer = NewSequencer(DefaultNarrative())

// Screens expands w with the default narrative.
func Screens(w *workout.Workout) ([]Screen, error) {
	return defaultSequencer.Screens(w)
}

// Duration is the total session length of w with the default narrative.
func Duration(w *workout.Workout) (time.Duration, error) {
	return defaultSequencer.Duration(w)
}

func (s *Sequencer) Narrative() Narrative { return s.narrative }

// Screens returns the lead-in, three rounds of the three exercise slots with
// rests between rounds for every set, and a trailing cooldown.
func (s *Sequencer) Screens(w *workout.Workout) ([]Screen, error) {
	if w == nil {
		return nil, errors.New("no workout to sequence")
	}

	out := make([]Screen, 0, 12*len(w.Sets)+1)
	for i, set := range w.Sets {
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("sequencing %q set %d: %w", w.Title, i+1, err)
		}
		final := i == len(w.Sets)-1

		if i == 0 {
			out = append(out, s.warmUp(set, w.WarmUp))
		} else {
			out = append(out, s.rest(set))
		}

		for round := 1; round <= rounds; round++ {
			for slot := 1; slot <= workout.SetSize; slot++ {
				out = append(out, s.exercise(set, slot, final && round == rounds))
			}
			if round < rounds {
				out = append(out, s.rest(set))
			}
		}
	}
	out = append(out, s.Fallback())
	return out, nil
}

func (s *Sequencer) Duration(w *workout.Workout) (time.Duration, error) {
	screens, err := s.Screens(w)
	if err != nil {
		return 0, err
	}
	_, total := Offsets(screens)
	return total, nil
}

// Fallback is the cooldown screen, used for the end of the sequence and for
// any index outside it.
func (s *Sequencer) Fallback() Screen {
	return Screen{
		Body:     renderExercise(s.narrative.Cooldown, false),
		Kind:     Cooldown,
		Duration: CooldownLength,
	}
}

func (s *Sequencer) warmUp(set workout.ExerciseSet, d time.Duration) Screen {
	return Screen{
		Body:     renderExercise(s.narrative.WarmUp, false) + upNext() + renderSet(set, 0),
		Kind:     WarmUp,
		Duration: d,
	}
}

func (s *Sequencer) rest(next workout.ExerciseSet) Screen {
	return Screen{
		Body:     renderExercise(s.narrative.Rest, false) + upNext() + renderSet(next, 0),
		Kind:     Rest,
		Duration: RestLength,
	}
}

// exercise shows the whole set with slot marked, followed by whatever comes
// next: the following slot, a rest, or the cooldown after the very last one.
func (s *Sequencer) exercise(set workout.ExerciseSet, slot int, closing bool) Screen {
	var next workout.Exercise
	switch {
	case slot < workout.SetSize:
		next = set.Exercises[slot]
	case closing:
		next = s.narrative.Cooldown
	default:
		next = s.narrative.Rest
	}
	return Screen{
		Body:     renderSet(set, slot) + upNext() + renderExercise(next, false),
		Kind:     Exercise,
		Slot:     slot,
		Duration: ExerciseLength,
	}
}
