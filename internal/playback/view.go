package playback

import (
	"fmt"
	"io"
	"strings"

	"workout_tui/internal/timer"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	clockLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(20)

	clockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("69")).
			Bold(true)

	overtimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

const helpText = "q: quit | up/left: back | down/right: next | home: start | end: cooldown"

func countdown(remaining string, over bool) string {
	if over {
		return overtimeStyle.Render(timer.Overtime)
	}
	return clockStyle.Render(remaining)
}

func clockRow(label string, value string) string {
	return clockLabelStyle.Render(label) + value
}

func view(title string, f Frame) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(title))
	sb.WriteString(helpStyle.Render(fmt.Sprintf("  (%d/%d)", f.Index+1, f.Count)))
	sb.WriteString("\n\n")

	sb.WriteString(clockRow("Total Elapsed:", clockStyle.Render(timer.Format(f.TotalElapsed))))
	sb.WriteString("\n")
	sb.WriteString(clockRow("Total Remaining:", countdown(timer.Format(f.TotalRemaining), f.TotalOvertime)))
	sb.WriteString("\n")
	sb.WriteString(clockRow("Current Elapsed:", clockStyle.Render(timer.Format(f.Elapsed))))
	sb.WriteString("\n")
	sb.WriteString(clockRow("Current Remaining:", countdown(timer.Format(f.Remaining), f.Overtime)))
	sb.WriteString("\n\n")

	sb.WriteString(labelStyle.Render(f.Screen.Label()))
	sb.WriteString("\n")
	sb.WriteString(f.Screen.Body)
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render(helpText))
	sb.WriteString("\n")

	return sb.String()
}

// render redraws the whole terminal in one write. Raw mode needs explicit
// carriage returns.
func render(w io.Writer, title string, f Frame) error {
	body := strings.ReplaceAll(view(title, f), "\n", "\r\n")
	_, err := io.WriteString(w, ansi.EraseEntireDisplay+ansi.MoveCursorOrigin+body)
	return err
}
