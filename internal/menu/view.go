package menu

import (
	"fmt"
	"strings"

	"workout_tui/internal/history"
	"workout_tui/internal/timer"
	"workout_tui/internal/workout"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			Align(lipgloss.Center)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("170")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 0)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	logHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	logTimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

const (
	listWidth   = 30
	detailWidth = 48
	boxHeight   = 20
	recentLogs  = 3
)

func (m *Model) emptyStateView() string {
	msg := "No workouts yet."
	if m.opts.DataDir != "" {
		msg += fmt.Sprintf("\nAdd workout files to %s\nor run 'workouts import'.", m.opts.DataDir)
	}
	return lipgloss.Place(
		80, 24,
		lipgloss.Center, lipgloss.Center,
		titleStyle.Render("Workouts")+"\n\n"+
			inactiveStyle.Render(msg)+"\n\n"+
			helpStyle.Render("Quit: q"),
	)
}

func (m *Model) mainView() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Width(listWidth + detailWidth + 6).Render("Workouts"))
	sb.WriteString("\n")
	sb.WriteString(m.filterView())
	sb.WriteString("\n\n")

	boxes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.listView(),
		"  ",
		m.detailView(),
	)
	sb.WriteString(boxes)
	sb.WriteString("\n")

	if m.Err != nil {
		sb.WriteString(errorStyle.Render(m.Err.Error()))
		sb.WriteString("\n")
	}
	if n := len(m.Problems); n > 0 {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("%d workout file(s) could not be loaded", n)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

func (m *Model) filterView() string {
	day, category := "any", "any"
	if m.DayFilter != nil {
		day = m.DayFilter.String()
	}
	if m.CategoryFilter != nil {
		category = m.CategoryFilter.String()
	}
	return helpStyle.Render("Day: ") + filterStyle.Render(day) +
		helpStyle.Render("  Type: ") + filterStyle.Render(category)
}

func (m *Model) listView() string {
	var sb strings.Builder

	if len(m.Visible) == 0 {
		sb.WriteString(inactiveStyle.Render("Nothing matches the filters."))
		return boxStyle.Width(listWidth).Height(boxHeight).Render(sb.String())
	}

	for i, w := range m.Visible {
		line := fmt.Sprintf("%s %s", w.Day.String()[:3], w.Title)
		if i == m.SelectedIndex {
			sb.WriteString(itemSelectedStyle.Render(line))
		} else {
			sb.WriteString(itemStyle.Render(inactiveStyle.Render(line)))
		}
		sb.WriteString("\n")
	}

	return boxStyle.Width(listWidth).Height(boxHeight).Render(sb.String())
}

func (m *Model) detailView() string {
	w := m.SelectedWorkout()
	if w == nil {
		return boxStyle.Width(detailWidth).Height(boxHeight).Render("Select a workout")
	}

	total := inactiveStyle.Render("invalid workout")
	if d, err := m.opts.Sequencer.Duration(w); err == nil {
		total = durationStyle.Render(timer.Format(d))
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", w.Title))
	sb.WriteString(fmt.Sprintf("%s | %s\n", w.Day, w.Category))
	if w.Link != "" {
		sb.WriteString(inactiveStyle.Render(w.Link))
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nWarm-up %s  Total %s\n", timer.Format(w.WarmUp), total))

	for i, set := range w.Sets {
		sb.WriteString(fmt.Sprintf("\nSet %d\n", i+1))
		for _, e := range set.Exercises {
			sb.WriteString(exerciseLine(e))
			sb.WriteString("\n")
		}
	}

	if m.opts.History != nil {
		entries, err := m.opts.History.ByWorkout(w.Title)
		if err == nil && len(entries) > 0 {
			sb.WriteString("\n")
			sb.WriteString(logHeaderStyle.Render("Recent Sessions"))
			sb.WriteString("\n")
			for _, e := range entries[:min(len(entries), recentLogs)] {
				sb.WriteString(formatEntry(e))
				sb.WriteString("\n")
			}
		}
	}

	return boxStyle.Width(detailWidth).Height(boxHeight).Render(sb.String())
}

func exerciseLine(e workout.Exercise) string {
	if e.Highlighted {
		return highlightStyle.Render(" --> " + e.Name)
	}
	return "     " + e.Name
}

func formatEntry(e history.Entry) string {
	timeStr := logTimeStyle.Render(e.StoppedAt.Local().Format("Jan 02 15:04"))
	status := e.Progress()
	if e.Completed {
		status = "done"
	}
	return fmt.Sprintf("  %s  %s  %s", timeStr, timer.Format(e.Spent), status)
}
