// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ltask/internal/service"
)

// statusWidth fits the widest status ("in-progress").
const statusWidth = 11

// timeLayout is the display layout for --long timestamps.
const timeLayout = "2006-01-02 15:04"

var statusStyles = map[service.Status]lipgloss.Style{
	service.StatusTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	service.StatusInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	service.StatusDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

// Formatter writes task lines. Color is off for --no-color and in tests.
type Formatter struct {
	color bool
	long  bool
}

// NewFormatter creates a Formatter.
func NewFormatter(color, long bool) *Formatter {
	return &Formatter{color: color, long: long}
}

// Task writes one task line.
// Format: "{ID:>4}  {STATUS:<11}  {DESCRIPTION}\n", with timestamps
// appended in long mode.
func (f *Formatter) Task(w io.Writer, t service.Task) {
	desc := normalizeDescription(t.Description)
	if f.long {
		fmt.Fprintf(w, "%4d  %s  %s  (created %s, updated %s)\n",
			t.ID, f.status(t.Status), desc,
			t.CreatedAt.UTC().Format(timeLayout),
			t.UpdatedAt.UTC().Format(timeLayout))
		return
	}
	fmt.Fprintf(w, "%4d  %s  %s\n", t.ID, f.status(t.Status), desc)
}

// status pads before styling so ANSI codes don't skew the column width.
func (f *Formatter) status(s service.Status) string {
	padded := fmt.Sprintf("%-*s", statusWidth, string(s))
	if !f.color {
		return padded
	}
	if style, ok := statusStyles[s]; ok {
		return style.Render(padded)
	}
	return padded
}

// normalizeDescription normalizes a description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
