package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"camroll/internal/app"
	"camroll/internal/domain"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseScanning Phase = iota
	PhaseProcessing
	PhaseDone
	PhaseError
)

const recentLimit = 4

// Messages for the TUI
type (
	ScanDoneMsg struct {
		Paths []string
	}
	FileDoneMsg struct {
		Outcome app.Outcome
	}
	ErrorMsg struct {
		Err error
	}
)

// Runner is the part of app.Driver the view drives.
type Runner interface {
	Scan(ctx context.Context, sourceDir string) ([]string, error)
	Process(ctx context.Context, path, targetDir string) app.Outcome
}

type Config struct {
	Context   context.Context
	SourceDir string
	TargetDir string
	DryRun    bool
	Runner    Runner
}

// Model processes one file per command; the next command is only issued once
// the previous FileDoneMsg arrived, so files are handled strictly in order.
type Model struct {
	config   Config
	Phase    Phase
	Summary  app.Summary
	Err      error
	Quitting bool

	paths    []string
	next     int
	recent   []app.Outcome
	spinner  spinner.Model
	progress progress.Model
}

func NewModel(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseScanning,
		spinner:  s,
		progress: p,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scanCmd())
}

func (m Model) scanCmd() tea.Cmd {
	return func() tea.Msg {
		paths, err := m.config.Runner.Scan(m.config.Context, m.config.SourceDir)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ScanDoneMsg{Paths: paths}
	}
}

func (m Model) processCmd(path string) tea.Cmd {
	return func() tea.Msg {
		return FileDoneMsg{Outcome: m.config.Runner.Process(m.config.Context, path, m.config.TargetDir)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case ScanDoneMsg:
		m.paths = msg.Paths
		if len(m.paths) == 0 {
			m.Phase = PhaseDone
			return m, nil
		}
		m.Phase = PhaseProcessing
		return m, m.processCmd(m.paths[0])

	case FileDoneMsg:
		m.Summary.Record(msg.Outcome, m.config.DryRun)
		m.recent = append(m.recent, msg.Outcome)
		if len(m.recent) > recentLimit {
			m.recent = m.recent[len(m.recent)-recentLimit:]
		}
		m.next++
		percent := m.progress.SetPercent(float64(m.next) / float64(len(m.paths)))
		if m.next >= len(m.paths) {
			m.Phase = PhaseDone
			return m, percent
		}
		return m, tea.Batch(percent, m.processCmd(m.paths[m.next]))

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseScanning || m.Phase == PhaseProcessing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseScanning:
		b.WriteString(fmt.Sprintf("%s Scanning source tree...", m.spinner.View()))
	case PhaseProcessing:
		b.WriteString(m.renderProcessing())
	case PhaseDone:
		b.WriteString(m.renderRecent())
		b.WriteString(m.renderSummary())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("📷 camroll"),
		subtitleStyle.Render("Timestamped copies, one folder per year"),
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Target: %s", iconFolder, shortenPath(m.config.TargetDir))),
	)
}

func (m Model) renderProcessing() string {
	var b strings.Builder
	verb := "Copying"
	if m.config.DryRun {
		verb = "Planning"
	}
	b.WriteString(sectionStyle.Render(verb + " Files"))
	b.WriteString("\n\n")

	total := len(m.paths)
	percent := 0.0
	if total > 0 {
		percent = float64(m.next) / float64(total)
	}
	b.WriteString(fmt.Sprintf("  %s %s...\n\n", m.spinner.View(), verb))
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(percent)))
	b.WriteString(fmt.Sprintf("  %s %s\n\n",
		exifStyle.Render(fmt.Sprintf("%d/%d files", m.next, total)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	))
	b.WriteString(m.renderRecent())
	return b.String()
}

func (m Model) renderRecent() string {
	var b strings.Builder
	for _, outcome := range m.recent {
		b.WriteString("  ")
		b.WriteString(formatOutcome(outcome))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")

	doneLabel, done := "Copied:", m.Summary.Copied
	if m.config.DryRun {
		doneLabel, done = "Would copy:", m.Summary.Planned
	}
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render(doneLabel), statValueStyle.Render(fmt.Sprintf("%s %d", iconSuccess, done))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("From EXIF:"), exifStyle.Render(fmt.Sprintf("%s %d", iconExif, m.Summary.FromExif))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("From mtime:"), mtimeStyle.Render(fmt.Sprintf("%s %d", iconMtime, m.Summary.FromModTime))))
	if m.Summary.Skipped > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Skipped:"), warningStyle.Render(fmt.Sprintf("%s %d", iconSkipped, m.Summary.Skipped))))
	}
	if m.config.DryRun {
		b.WriteString("\n")
		b.WriteString(highlightBoxStyle.Render("🔍 Dry Run - No files were copied"))
		b.WriteString("\n")
	} else if m.Summary.Files > 0 {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(iconSuccess + " Copy completed"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderError() string {
	msg := errorStyle.Render(fmt.Sprintf("%s Error: %s", iconError, m.Err.Error()))
	return highlightBoxStyle.Copy().
		BorderForeground(errorColor).
		Render(msg)
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseScanning, PhaseProcessing:
		help = "Press q to quit"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func formatOutcome(o app.Outcome) string {
	name := fileNameStyle.Render(filepath.Base(o.Task.SourcePath))
	if o.Err != nil {
		return fmt.Sprintf("%s %s  %s", warningStyle.Render(iconSkipped), name, dimStyle.Render("skipped"))
	}
	icon, style := iconMtime, mtimeStyle
	if o.Task.TimeSource == domain.SourceExif {
		icon, style = iconExif, exifStyle
	}
	return fmt.Sprintf("%s %s %s %s", style.Render(icon), name, iconArrow, dimStyle.Render(o.Task.Destination))
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
