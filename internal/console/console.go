// Package console provides the verbose-gated, colored diagnostic logger used
// by the CLI paths. Components receive a *Logger explicitly; there is no
// package-level mutable state.
package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle = lipgloss.NewStyle().Faint(true)

	infoGlyph     = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Render("ℹ")
	successGlyph  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("✓")
	warningGlyph  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render("⚠")
	errorGlyph    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("✗")
	progressGlyph = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render("⟳")
)

// Logger prints timestamped diagnostic lines. Info, Success, Warning,
// Progress and Error are suppressed unless verbose is set; Critical always
// prints. Error and Critical go to the error writer.
type Logger struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
	now     func() time.Time
}

// New returns a Logger writing to the given writers.
func New(out, errOut io.Writer, verbose bool) *Logger {
	return &Logger{
		verbose: verbose,
		out:     out,
		errOut:  errOut,
		now:     time.Now,
	}
}

// Nop returns a Logger that discards everything. Handy for tests and for
// callers that only want critical errors on a real logger.
func Nop() *Logger {
	return New(io.Discard, io.Discard, false)
}

// Verbose reports whether diagnostic narration is enabled.
func (l *Logger) Verbose() bool { return l.verbose }

// Infof prints an informational diagnostic when verbose.
func (l *Logger) Infof(format string, args ...any) {
	if l.verbose {
		l.emit(l.out, infoGlyph, format, args...)
	}
}

// Successf prints a success diagnostic when verbose.
func (l *Logger) Successf(format string, args ...any) {
	if l.verbose {
		l.emit(l.out, successGlyph, format, args...)
	}
}

// Warningf prints a warning diagnostic when verbose.
func (l *Logger) Warningf(format string, args ...any) {
	if l.verbose {
		l.emit(l.out, warningGlyph, format, args...)
	}
}

// Progressf prints a progress diagnostic when verbose.
func (l *Logger) Progressf(format string, args ...any) {
	if l.verbose {
		l.emit(l.out, progressGlyph, format, args...)
	}
}

// Errorf prints an error diagnostic to the error writer when verbose.
func (l *Logger) Errorf(format string, args ...any) {
	if l.verbose {
		l.emit(l.errOut, errorGlyph, format, args...)
	}
}

// Criticalf prints an error to the error writer regardless of verbosity.
func (l *Logger) Criticalf(format string, args ...any) {
	l.emit(l.errOut, errorGlyph, format, args...)
}

func (l *Logger) emit(w io.Writer, glyph, format string, args ...any) {
	stamp := dimStyle.Render("[" + l.now().Format("15:04:05") + "]")
	fmt.Fprintf(w, "%s %s %s\n", stamp, glyph, fmt.Sprintf(format, args...))
}
