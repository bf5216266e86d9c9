package workout

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// SetSize is the number of exercises in every ExerciseSet.
const SetSize = 3

var ErrSetSize = errors.New("exercise set must contain exactly 3 exercises")

type Exercise struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	// Highlighted is owned by the selection UI. Playback only reads it.
	Highlighted bool `yaml:"-"`
}

func NewExercise(name, description string) Exercise {
	return Exercise{Name: name, Description: description}
}

// ExerciseSet groups the three exercises performed as one circuit.
type ExerciseSet struct {
	Category  Category
	Exercises [SetSize]Exercise
}

// NewExerciseSet fails with ErrSetSize unless exactly three exercises are given.
func NewExerciseSet(category Category, exercises ...Exercise) (ExerciseSet, error) {
	if len(exercises) != SetSize {
		return ExerciseSet{}, fmt.Errorf("%w (got %d)", ErrSetSize, len(exercises))
	}
	set := ExerciseSet{Category: category}
	copy(set.Exercises[:], exercises)
	return set, set.Validate()
}

// Validate reports ErrSetSize when a slot has no exercise in it, as in a
// zero ExerciseSet.
func (s ExerciseSet) Validate() error {
	named := 0
	for _, e := range s.Exercises {
		if e.Name != "" {
			named++
		}
	}
	if named != SetSize {
		return fmt.Errorf("%w (got %d)", ErrSetSize, named)
	}
	return nil
}

type Workout struct {
	Title    string
	Link     string
	Day      DayOfWeek
	WarmUp   time.Duration
	Category Category
	Sets     []ExerciseSet
}

// DefaultWarmUp is used when a workout file leaves warmup_length unset.
const DefaultWarmUp = 5 * time.Minute

func New(title, link string, day DayOfWeek, category Category, sets ...ExerciseSet) *Workout {
	return &Workout{
		Title:    title,
		Link:     link,
		Day:      day,
		WarmUp:   DefaultWarmUp,
		Category: category,
		Sets:     sets,
	}
}

func (w *Workout) Validate() error {
	if w.Title == "" {
		return errors.New("workout title is required")
	}
	if len(w.Sets) == 0 {
		return fmt.Errorf("workout %q has no exercise sets", w.Title)
	}
	for i, s := range w.Sets {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("workout %q set %d: %w", w.Title, i+1, err)
		}
	}
	return nil
}

// workoutFile is the on-disk shape. warmup_length is in minutes.
type workoutFile struct {
	Title        string    `yaml:"title"`
	Link         string    `yaml:"link,omitempty"`
	Day          DayOfWeek `yaml:"day"`
	WarmupLength *int      `yaml:"warmup_length,omitempty"`
	Category     Category  `yaml:"category"`
	Sets         []setFile `yaml:"sets"`
}

type setFile struct {
	Category  *Category  `yaml:"category,omitempty"`
	Exercises []Exercise `yaml:"exercises"`
}

func (w *Workout) UnmarshalYAML(value *yaml.Node) error {
	var f workoutFile
	if err := value.Decode(&f); err != nil {
		return err
	}

	out := Workout{
		Title:    f.Title,
		Link:     f.Link,
		Day:      f.Day,
		WarmUp:   DefaultWarmUp,
		Category: f.Category,
	}
	if f.WarmupLength != nil {
		if *f.WarmupLength < 0 {
			return fmt.Errorf("line %d: warmup_length must not be negative", value.Line)
		}
		out.WarmUp = time.Duration(*f.WarmupLength) * time.Minute
	}
	for i, sf := range f.Sets {
		category := f.Category
		if sf.Category != nil {
			category = *sf.Category
		}
		set, err := NewExerciseSet(category, sf.Exercises...)
		if err != nil {
			return fmt.Errorf("set %d: %w", i+1, err)
		}
		out.Sets = append(out.Sets, set)
	}

	*w = out
	return nil
}

func (w Workout) MarshalYAML() (interface{}, error) {
	minutes := int(w.WarmUp / time.Minute)
	f := workoutFile{
		Title:        w.Title,
		Link:         w.Link,
		Day:          w.Day,
		WarmupLength: &minutes,
		Category:     w.Category,
	}
	for _, s := range w.Sets {
		sf := setFile{Exercises: s.Exercises[:]}
		if s.Category != w.Category {
			c := s.Category
			sf.Category = &c
		}
		f.Sets = append(f.Sets, sf)
	}
	return f, nil
}
