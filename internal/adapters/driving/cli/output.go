package cli

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
)

// Ensure consoleReporter implements the interface.
var _ driving.Reporter = (*consoleReporter)(nil)

// Output colours.
var (
	colourSuccess = lipgloss.Color("#A6E3A1")
	colourWarning = lipgloss.Color("#F9E2AF")
	colourError   = lipgloss.Color("#F38BA8")
	colourMuted   = lipgloss.Color("#6C7086")
)

// consoleReporter writes progress lines, coloured when out is a terminal.
// It is safe for concurrent use by indexing workers.
type consoleReporter struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool
	info   lipgloss.Style
	warn   lipgloss.Style
}

func newReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{
		out:    out,
		styled: isTerminal(out),
		info:   lipgloss.NewStyle().Foreground(colourSuccess),
		warn:   lipgloss.NewStyle().Foreground(colourWarning),
	}
}

// Info implements driving.Reporter.
func (r *consoleReporter) Info(format string, args ...any) {
	r.line(r.info, format, args...)
}

// Warn implements driving.Reporter.
func (r *consoleReporter) Warn(format string, args ...any) {
	r.line(r.warn, format, args...)
}

// Error prints a failure line.
func (r *consoleReporter) Error(format string, args ...any) {
	r.line(lipgloss.NewStyle().Foreground(colourError).Bold(true), format, args...)
}

// Muted prints a low-emphasis line.
func (r *consoleReporter) Muted(format string, args ...any) {
	r.line(lipgloss.NewStyle().Foreground(colourMuted), format, args...)
}

func (r *consoleReporter) line(style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.styled {
		msg = style.Render(msg)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
