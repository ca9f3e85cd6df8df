package commands

import (
	"io"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/dohr-michael/tli/internal/config"
	"github.com/dohr-michael/tli/internal/tasks"
)

var (
	colorDone    = lipgloss.Color("#10B981")
	colorPending = lipgloss.Color("#F59E0B")
	colorID      = lipgloss.Color("#7C3AED")
	colorMuted   = lipgloss.Color("#6B7280")
	colorHigh    = lipgloss.Color("#EF4444")
	colorLow     = lipgloss.Color("#79C0FF")
)

// theme styles console output. With colour off every style is a no-op.
type theme struct {
	enabled bool
	width   int

	done     lipgloss.Style
	pending  lipgloss.Style
	id       lipgloss.Style
	header   lipgloss.Style
	muted    lipgloss.Style
	priority map[tasks.Priority]lipgloss.Style
}

func newTheme(enabled bool) theme {
	return theme{
		enabled: enabled,
		width:   terminalWidth(),
		done:    lipgloss.NewStyle().Foreground(colorDone).Bold(true),
		pending: lipgloss.NewStyle().Foreground(colorPending),
		id:      lipgloss.NewStyle().Foreground(colorID),
		header:  lipgloss.NewStyle().Bold(true),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
		priority: map[tasks.Priority]lipgloss.Style{
			tasks.PriorityLow:    lipgloss.NewStyle().Foreground(colorLow),
			tasks.PriorityMedium: lipgloss.NewStyle(),
			tasks.PriorityHigh:   lipgloss.NewStyle().Foreground(colorHigh).Bold(true),
		},
	}
}

func (th theme) paint(s lipgloss.Style, text string) string {
	if !th.enabled {
		return text
	}
	return s.Render(text)
}

func (th theme) Done(s string) string    { return th.paint(th.done, s) }
func (th theme) Pending(s string) string { return th.paint(th.pending, s) }
func (th theme) ID(s string) string      { return th.paint(th.id, s) }
func (th theme) Header(s string) string  { return th.paint(th.header, s) }
func (th theme) Muted(s string) string   { return th.paint(th.muted, s) }

func (th theme) Priority(p tasks.Priority) string {
	return th.paint(th.priority[p], p.String())
}

// Markdown renders a description for the terminal; plain text when colour is off.
func (th theme) Markdown(s string) string {
	if !th.enabled || s == "" {
		return s
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(th.width),
	)
	if err != nil {
		return s
	}
	rendered, err := r.Render(s)
	if err != nil {
		return s
	}
	return strings.Trim(rendered, "\n")
}

// colorEnabled resolves the colour mode against the --no-color flag and
// whether out is a terminal.
func colorEnabled(mode string, noColor bool, out io.Writer) bool {
	if noColor {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
