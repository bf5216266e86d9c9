package menu

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"workout_tui/internal/history"
	"workout_tui/internal/workout"

	tea "github.com/charmbracelet/bubbletea"
)

func makeWorkout(t *testing.T, title string, day workout.DayOfWeek, c workout.Category) *workout.Workout {
	t.Helper()
	set, err := workout.NewExerciseSet(c,
		workout.NewExercise(title+" A", ""),
		workout.NewExercise(title+" B", ""),
		workout.NewExercise(title+" C", ""),
	)
	if err != nil {
		t.Fatal(err)
	}
	return workout.New(title, "", day, c, set)
}

func fixedLoader(list workout.List) Loader {
	return func() (workout.List, []workout.FileError, error) {
		out := make(workout.List, len(list))
		copy(out, list)
		return out, nil, nil
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(Options{Load: fixedLoader(workout.List{
		makeWorkout(t, "Legs", workout.Wednesday, workout.LowerBodyAbs),
		makeWorkout(t, "Arms", workout.Monday, workout.UpperBodyAbs),
		makeWorkout(t, "Core", workout.Monday, workout.LowerBodyAbs),
	})})
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModelSortsByDay(t *testing.T) {
	m := newTestModel(t)
	var got []string
	for _, w := range m.Visible {
		got = append(got, w.Title)
	}
	if strings.Join(got, ",") != "Arms,Core,Legs" {
		t.Errorf("order = %v", got)
	}
	if m.SelectedWorkout().Title != "Arms" {
		t.Errorf("selected = %q", m.SelectedWorkout().Title)
	}
}

func TestNavigationStaysInRange(t *testing.T) {
	m := newTestModel(t)
	press(m, "up")
	if m.SelectedIndex != 0 {
		t.Errorf("up at top: index %d", m.SelectedIndex)
	}
	press(m, "down", "down", "down", "j")
	if m.SelectedIndex != 2 {
		t.Errorf("down past bottom: index %d", m.SelectedIndex)
	}
	press(m, "k")
	if m.SelectedIndex != 1 {
		t.Errorf("k: index %d", m.SelectedIndex)
	}
}

func TestDayFilterCycles(t *testing.T) {
	m := newTestModel(t)
	press(m, "down", "down") // Legs

	press(m, "d")
	if m.DayFilter == nil || *m.DayFilter != workout.Monday {
		t.Fatalf("DayFilter = %v, want Monday", m.DayFilter)
	}
	if len(m.Visible) != 2 || m.SelectedIndex != 0 {
		t.Errorf("Monday filter: %d visible, index %d", len(m.Visible), m.SelectedIndex)
	}

	press(m, "d", "d")
	if *m.DayFilter != workout.Wednesday || len(m.Visible) != 1 || m.SelectedWorkout().Title != "Legs" {
		t.Errorf("Wednesday filter: %v visible", len(m.Visible))
	}

	press(m, "d", "d", "d", "d", "d")
	if m.DayFilter != nil || len(m.Visible) != 3 {
		t.Errorf("filter should cycle back to none, got %v", m.DayFilter)
	}
	if m.SelectedWorkout().Title != "Legs" {
		t.Errorf("selection not kept: %q", m.SelectedWorkout().Title)
	}
}

func TestSelectionSurvivesHidingFilter(t *testing.T) {
	m := newTestModel(t)
	press(m, "down", "down") // Legs

	press(m, "c", "c")
	if got := m.SelectedWorkout().Title; got != "Arms" {
		t.Fatalf("upper body filter selected %q, want Arms", got)
	}
	press(m, "x")
	if got := m.SelectedWorkout().Title; got != "Legs" {
		t.Errorf("after clearing filters selected %q, want Legs", got)
	}

	// Moving under a filter pins the new workout.
	press(m, "d", "down")
	if got := m.SelectedWorkout().Title; got != "Core" {
		t.Fatalf("Monday filter selected %q, want Core", got)
	}
	press(m, "x")
	if got := m.SelectedWorkout().Title; got != "Core" || m.SelectedIndex != 1 {
		t.Errorf("after clearing filters selected %q at %d, want Core at 1", got, m.SelectedIndex)
	}
}

func TestCategoryFilterAndClear(t *testing.T) {
	m := newTestModel(t)
	press(m, "c", "c")
	if m.CategoryFilter == nil || *m.CategoryFilter != workout.UpperBodyAbs {
		t.Fatalf("CategoryFilter = %v", m.CategoryFilter)
	}
	if len(m.Visible) != 1 || m.Visible[0].Title != "Arms" {
		t.Errorf("visible = %d", len(m.Visible))
	}
	press(m, "d", "x")
	if m.DayFilter != nil || m.CategoryFilter != nil || len(m.Visible) != 3 {
		t.Error("x should clear both filters")
	}
}

func TestChooseQuitsWithWorkout(t *testing.T) {
	m := newTestModel(t)
	cmd := press(m, "down", "enter")
	if !isQuit(cmd) {
		t.Error("enter should quit the picker")
	}
	if m.Chosen == nil || m.Chosen.Title != "Core" {
		t.Errorf("Chosen = %v", m.Chosen)
	}
}

func TestQuitWithoutChoice(t *testing.T) {
	m := newTestModel(t)
	if !isQuit(press(m, "q")) {
		t.Error("q should quit")
	}
	if m.Chosen != nil {
		t.Error("q should not choose")
	}
}

func TestChooseRejectsInvalidWorkout(t *testing.T) {
	bad := makeWorkout(t, "Broken", workout.Monday, workout.LowerBodyAbs)
	bad.Sets[0].Exercises[2] = workout.Exercise{}
	m, err := NewModel(Options{Load: fixedLoader(workout.List{bad})})
	if err != nil {
		t.Fatal(err)
	}
	if isQuit(press(m, "enter")) {
		t.Error("invalid workout should not quit")
	}
	if !errors.Is(m.Err, workout.ErrSetSize) || m.Chosen != nil {
		t.Errorf("Err = %v, Chosen = %v", m.Err, m.Chosen)
	}
}

func TestHighlightMovesAndClears(t *testing.T) {
	m := newTestModel(t)
	w := m.SelectedWorkout()

	press(m, "right", "l")
	if m.HighlightIndex != 1 || !w.Sets[0].Exercises[1].Highlighted || w.Sets[0].Exercises[0].Highlighted {
		t.Fatalf("highlight index %d, flags %+v", m.HighlightIndex, w.Sets[0].Exercises)
	}
	press(m, "right", "right", "right")
	if m.HighlightIndex != 2 {
		t.Errorf("highlight should stop at the last exercise, got %d", m.HighlightIndex)
	}
	if !strings.Contains(m.View(), " --> Arms C") {
		t.Errorf("view does not mark highlighted exercise:\n%s", m.View())
	}

	press(m, "down")
	for _, e := range w.Sets[0].Exercises {
		if e.Highlighted {
			t.Errorf("%q still highlighted after moving selection", e.Name)
		}
	}

	press(m, "left")
	press(m, "enter")
	for _, e := range m.Chosen.Sets[0].Exercises {
		if e.Highlighted {
			t.Errorf("%q highlighted in chosen workout", e.Name)
		}
	}
}

func TestReloadKeepsSelection(t *testing.T) {
	list := workout.List{
		makeWorkout(t, "Arms", workout.Monday, workout.UpperBodyAbs),
		makeWorkout(t, "Legs", workout.Tuesday, workout.LowerBodyAbs),
	}
	m, err := NewModel(Options{Load: func() (workout.List, []workout.FileError, error) {
		return list, nil, nil
	}})
	if err != nil {
		t.Fatal(err)
	}
	press(m, "down")

	list = append(workout.List{makeWorkout(t, "Abs", workout.Monday, workout.LowerBodyAbs)}, list...)
	m.Update(MsgReload{})

	if len(m.Workouts) != 3 || m.SelectedWorkout().Title != "Legs" {
		t.Errorf("after reload: %d workouts, selected %q", len(m.Workouts), m.SelectedWorkout().Title)
	}
}

func TestReloadErrorIsShown(t *testing.T) {
	fail := false
	m, err := NewModel(Options{Load: func() (workout.List, []workout.FileError, error) {
		if fail {
			return nil, nil, errors.New("permission denied")
		}
		return workout.List{makeWorkout(t, "Arms", workout.Monday, workout.UpperBodyAbs)}, nil, nil
	}})
	if err != nil {
		t.Fatal(err)
	}
	fail = true
	m.Update(MsgReload{})
	if m.Err == nil || len(m.Workouts) != 1 {
		t.Errorf("Err = %v, workouts = %d", m.Err, len(m.Workouts))
	}
	if !strings.Contains(m.View(), "permission denied") {
		t.Error("view should show the reload error")
	}
}

type fakeHistory map[string][]history.Entry

func (f fakeHistory) ByWorkout(title string) ([]history.Entry, error) { return f[title], nil }

func TestViewShowsDetails(t *testing.T) {
	m, err := NewModel(Options{
		Load: fixedLoader(workout.List{makeWorkout(t, "Arms", workout.Monday, workout.UpperBodyAbs)}),
		History: fakeHistory{"Arms": {{
			Workout:   "Arms",
			StoppedAt: time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local),
			Spent:     90 * time.Second,
			Completed: true,
		}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	v := m.View()
	// 5m warm-up + 9*20s + 2*60s + 10m
	for _, want := range []string{"Arms", "Monday", "Upper Body & Abs", "00:20:00", "Set 1", "Recent Sessions", "00:01:30", "done"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q:\n%s", want, v)
		}
	}
}

func TestEmptyView(t *testing.T) {
	m, err := NewModel(Options{Load: fixedLoader(nil), DataDir: "/data"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.View(), "No workouts yet") {
		t.Errorf("empty view:\n%s", m.View())
	}
	if isQuit(press(m, "enter")) {
		t.Error("enter with no workouts should not quit")
	}
}

func TestNewModelLoaderError(t *testing.T) {
	_, err := NewModel(Options{Load: func() (workout.List, []workout.FileError, error) {
		return nil, nil, errors.New("boom")
	}})
	if err == nil {
		t.Error("expected loader error")
	}
}

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func TestWatchSendsReload(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msgs := make(chanSender, 8)
	if err := Watch(ctx, dir, msgs, nil); err != nil {
		t.Fatalf("Watch: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "legs.yml"), []byte("title: Legs\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-msgs:
		if _, ok := msg.(MsgReload); !ok {
			t.Errorf("got %T, want MsgReload", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no reload after writing a workout file")
	}
}

func TestWatchMissingDir(t *testing.T) {
	if err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope"), make(chanSender, 1), nil); err == nil {
		t.Error("expected error watching a missing dir")
	}
}
