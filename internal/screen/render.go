package screen

import (
	"strings"

	"workout_tui/internal/workout"

	"github.com/charmbracelet/lipgloss"
)

var (
	exerciseNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9")).
				Bold(true)

	descriptionStyle = lipgloss.NewStyle().
				PaddingLeft(5)

	upNextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

const (
	markerActive = " --> "
	markerIdle   = "     "
)

func upNext() string {
	return upNextStyle.Render("UP NEXT:") + "\n"
}

func renderExercise(e workout.Exercise, active bool) string {
	marker := markerIdle
	if active || e.Highlighted {
		marker = markerActive
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(exerciseNameStyle.Render(marker + e.Name))
	sb.WriteString("\n")
	if e.Description != "" {
		sb.WriteString(descriptionStyle.Render(e.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String()
}

// renderSet lists the three exercises, marking slot (1-based) when non-zero.
func renderSet(set workout.ExerciseSet, slot int) string {
	var sb strings.Builder
	for i, e := range set.Exercises {
		sb.WriteString(renderExercise(e, i+1 == slot))
	}
	return sb.String()
}
