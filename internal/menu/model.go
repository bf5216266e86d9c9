// Package menu is the workout picker shown before playback.
package menu

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"workout_tui/internal/history"
	"workout_tui/internal/screen"
	"workout_tui/internal/workout"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgReload asks the picker to read the workouts again.
type MsgReload struct{}

// Loader returns every workout available to pick from.
type Loader func() (workout.List, []workout.FileError, error)

// History looks up past sessions of a workout.
type History interface {
	ByWorkout(title string) ([]history.Entry, error)
}

type Options struct {
	Load      Loader
	History   History
	Sequencer *screen.Sequencer
	DataDir   string
	Logger    *slog.Logger
}

type Model struct {
	Workouts       workout.List
	Visible        workout.List
	SelectedIndex  int
	HighlightIndex int // flat index over the selected workout's exercises, -1 for none
	DayFilter      *workout.DayOfWeek
	CategoryFilter *workout.Category
	Problems       []workout.FileError
	Err            error

	// Chosen is set when the user picks a workout.
	Chosen *workout.Workout

	// pinned is the title last moved to with up/down. Filters that hide it
	// do not forget it.
	pinned string

	opts  Options
	keys  keyMap
	help  help.Model
	width int
}

func NewModel(opts Options) (*Model, error) {
	if opts.Load == nil {
		return nil, fmt.Errorf("menu needs a workout loader")
	}
	if opts.Sequencer == nil {
		opts.Sequencer = screen.NewSequencer(screen.DefaultNarrative())
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Model{
		HighlightIndex: -1,
		opts:           opts,
		keys:           defaultKeyMap(),
		help:           help.New(),
		width:          80,
	}
	if err := m.reload(); err != nil {
		return nil, fmt.Errorf("failed to load workouts: %w", err)
	}
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgReload:
		if err := m.reload(); err != nil {
			m.Err = err
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if len(m.Workouts) == 0 {
		return m.emptyStateView()
	}
	return m.mainView()
}

func (m *Model) SelectedWorkout() *workout.Workout {
	if m.SelectedIndex >= 0 && m.SelectedIndex < len(m.Visible) {
		return m.Visible[m.SelectedIndex]
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.clearHighlight()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.SelectedIndex > 0 {
			m.clearHighlight()
			m.SelectedIndex--
			m.pin()
		}
	case key.Matches(msg, m.keys.Down):
		if m.SelectedIndex < len(m.Visible)-1 {
			m.clearHighlight()
			m.SelectedIndex++
			m.pin()
		}
	case key.Matches(msg, m.keys.Prev):
		m.moveHighlight(-1)
	case key.Matches(msg, m.keys.Next):
		m.moveHighlight(1)
	case key.Matches(msg, m.keys.Day):
		m.DayFilter = nextDay(m.DayFilter)
		m.applyFilters()
	case key.Matches(msg, m.keys.Category):
		m.CategoryFilter = nextCategory(m.CategoryFilter)
		m.applyFilters()
	case key.Matches(msg, m.keys.Clear):
		m.DayFilter = nil
		m.CategoryFilter = nil
		m.applyFilters()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Choose):
		w := m.SelectedWorkout()
		if w == nil {
			return m, nil
		}
		if _, err := m.opts.Sequencer.Screens(w); err != nil {
			m.Err = err
			return m, nil
		}
		m.clearHighlight()
		m.Chosen = w
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) reload() error {
	list, problems, err := m.opts.Load()
	if err != nil {
		return err
	}
	for _, p := range problems {
		m.opts.Logger.Warn("skipping workout file", "path", p.Path, "err", p.Err)
	}
	list.SortByDay()

	m.clearHighlight()
	m.Workouts = list
	m.Problems = problems
	m.Err = nil
	m.applyFilters()
	return nil
}

func (m *Model) pin() {
	if w := m.SelectedWorkout(); w != nil {
		m.pinned = w.Title
	}
}

// applyFilters rebuilds Visible and selects the pinned workout whenever the
// filters let it through.
func (m *Model) applyFilters() {
	keep := m.pinned
	if w := m.SelectedWorkout(); keep == "" && w != nil {
		keep = w.Title
	}
	m.clearHighlight()

	visible := m.Workouts
	if m.DayFilter != nil {
		visible = visible.FilterByDay(*m.DayFilter)
	}
	if m.CategoryFilter != nil {
		visible = visible.FilterByCategory(*m.CategoryFilter)
	}
	m.Visible = visible

	m.SelectedIndex = 0
	for i, w := range visible {
		if w.Title == keep {
			m.SelectedIndex = i
			break
		}
	}
}

// exerciseAt returns the i-th exercise of w counting across sets.
func exerciseAt(w *workout.Workout, i int) *workout.Exercise {
	for s := range w.Sets {
		if i < len(w.Sets[s].Exercises) {
			return &w.Sets[s].Exercises[i]
		}
		i -= len(w.Sets[s].Exercises)
	}
	return nil
}

func exerciseCount(w *workout.Workout) int {
	n := 0
	for _, s := range w.Sets {
		n += len(s.Exercises)
	}
	return n
}

func (m *Model) moveHighlight(delta int) {
	w := m.SelectedWorkout()
	if w == nil {
		return
	}
	n := exerciseCount(w)
	if n == 0 {
		return
	}
	next := m.HighlightIndex + delta
	if m.HighlightIndex < 0 {
		next = 0
	}
	next = max(0, min(next, n-1))

	m.clearHighlight()
	exerciseAt(w, next).Highlighted = true
	m.HighlightIndex = next
}

func (m *Model) clearHighlight() {
	if m.HighlightIndex < 0 {
		return
	}
	if w := m.SelectedWorkout(); w != nil {
		if e := exerciseAt(w, m.HighlightIndex); e != nil {
			e.Highlighted = false
		}
	}
	m.HighlightIndex = -1
}

func nextDay(d *workout.DayOfWeek) *workout.DayOfWeek {
	i := 0
	if d != nil {
		i = int(*d) + 1
	}
	if i >= len(workout.Days) {
		return nil
	}
	next := workout.Days[i]
	return &next
}

func nextCategory(c *workout.Category) *workout.Category {
	i := 0
	if c != nil {
		i = int(*c) + 1
	}
	if i >= len(workout.Categories) {
		return nil
	}
	next := workout.Categories[i]
	return &next
}

// Pick runs the picker on the terminal and returns the chosen workout, or
// nil when the user quit without choosing. The picker reloads whenever a
// workout file in DataDir changes.
func Pick(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) (*workout.Workout, error) {
	m, err := NewModel(opts)
	if err != nil {
		return nil, err
	}

	p := tea.NewProgram(m, append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)...)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if opts.DataDir != "" {
		if err := Watch(ctx, opts.DataDir, p, m.opts.Logger); err != nil {
			m.opts.Logger.Warn("not watching workout dir", "dir", opts.DataDir, "err", err)
		}
	}

	if _, err := p.Run(); err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}
	return m.Chosen, nil
}
