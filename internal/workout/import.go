package workout

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Import is the hand-written authoring format. Each exercise is a list whose
// first item is the name and whose remaining items are joined into the
// description:
//
//	sets:
//	  - - [Squats, Feet shoulder width, sit back]
//	    - [Lunges, Alternate legs]
//	    - [Plank, Hold it]
type Import struct {
	Title        string       `yaml:"title"`
	Link         string       `yaml:"link"`
	Day          DayOfWeek    `yaml:"day"`
	WarmupLength int          `yaml:"warmup_length"`
	Category     Category     `yaml:"workout_type"`
	Sets         [][][]string `yaml:"sets"`
}

func LoadImport(path string) (*Import, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var imp Import
	if err := yaml.Unmarshal(data, &imp); err != nil {
		return nil, fmt.Errorf("parsing import file %s: %w", path, err)
	}
	return &imp, nil
}

// Upgrade converts the import into a Workout, enforcing set cardinality.
func (imp *Import) Upgrade() (*Workout, error) {
	w := &Workout{
		Title:    imp.Title,
		Link:     imp.Link,
		Day:      imp.Day,
		WarmUp:   time.Duration(imp.WarmupLength) * time.Minute,
		Category: imp.Category,
	}
	for i, raw := range imp.Sets {
		exercises := make([]Exercise, 0, len(raw))
		for j, fields := range raw {
			if len(fields) == 0 || strings.TrimSpace(fields[0]) == "" {
				return nil, fmt.Errorf("set %d exercise %d: missing name", i+1, j+1)
			}
			exercises = append(exercises, NewExercise(fields[0], strings.Join(fields[1:], " ")))
		}
		set, err := NewExerciseSet(imp.Category, exercises...)
		if err != nil {
			return nil, fmt.Errorf("set %d: %w", i+1, err)
		}
		w.Sets = append(w.Sets, set)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// ImportDir loads every import file in dir. Files that fail are reported.
func ImportDir(dir string) (List, []FileError, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	var (
		out List
		bad []FileError
	)
	for _, p := range paths {
		imp, err := LoadImport(p)
		if err != nil {
			bad = append(bad, FileError{Path: p, Err: err})
			continue
		}
		w, err := imp.Upgrade()
		if err != nil {
			bad = append(bad, FileError{Path: p, Err: err})
			continue
		}
		out = append(out, w)
	}
	return out, bad, nil
}
