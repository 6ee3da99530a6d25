package presentation

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"camroll/internal/app"
	"camroll/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E8A87C"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF")).Width(14)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	skipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E85D75"))
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

// PrintMapping writes one unstyled "source -> destination" line.
func (p Printer) PrintMapping(task domain.FileTask) {
	fmt.Fprintf(p.Writer, "%s -> %s\n", task.SourcePath, task.Destination)
}

// PrintSummary is a no-op unless Verbose is set.
func (p Printer) PrintSummary(summary app.Summary, dryRun bool) {
	if !p.Verbose {
		return
	}
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, headerStyle.Render("Summary"))
	for _, line := range summaryLines(summary, dryRun) {
		fmt.Fprintln(p.Writer, line)
	}
}

func summaryLines(summary app.Summary, dryRun bool) []string {
	doneLabel, done := "Copied:", summary.Copied
	if dryRun {
		doneLabel, done = "Would copy:", summary.Planned
	}
	lines := []string{
		row("Files:", valueStyle.Render(fmt.Sprint(summary.Files))),
		row(doneLabel, valueStyle.Render(fmt.Sprint(done))),
		row("From EXIF:", fmt.Sprint(summary.FromExif)),
		row("From mtime:", fmt.Sprint(summary.FromModTime)),
	}
	if summary.Skipped > 0 {
		lines = append(lines, row("Skipped:", skipStyle.Render(fmt.Sprint(summary.Skipped))))
	}
	return lines
}

func row(label, value string) string {
	return "  " + labelStyle.Render(label) + value
}
