package workout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileError records a workout file that could not be loaded.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

func Load(path string) (*Workout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workout file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Workout, error) {
	var w Workout
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing workout: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

// LoadDir loads every .yml/.yaml file in dir in path order. Files that fail
// to load are skipped and reported. A missing dir yields no workouts.
func LoadDir(dir string) (List, []FileError, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	var (
		workouts List
		bad      []FileError
	)
	for _, p := range paths {
		w, err := Load(p)
		if err != nil {
			bad = append(bad, FileError{Path: p, Err: err})
			continue
		}
		workouts = append(workouts, w)
	}
	return workouts, bad, nil
}

// Save writes w to dir/<title>.yml and returns the path.
func Save(dir string, w *Workout) (string, error) {
	if err := w.Validate(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data dir %s: %w", dir, err)
	}

	data, err := yaml.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encoding workout %q: %w", w.Title, err)
	}

	path := filepath.Join(dir, FileName(w.Title))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing workout file: %w", err)
	}
	return path, nil
}

// FileName is the data file name used for a workout title.
func FileName(title string) string {
	r := strings.NewReplacer("/", "-", "\\", "-", ":", "-")
	return r.Replace(strings.TrimSpace(title)) + ".yml"
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yml", ".yaml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
