// Package render prints the reconciled status view as colored terminal text.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rick-stevens-ai/Sophia-tools/pkg/models"
)

var (
	boldStyle = lipgloss.NewStyle().Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)

	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	startingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	queuedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	stoppedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Presenter renders a StatusReport. It holds no state beyond display options.
type Presenter struct {
	out      io.Writer
	liveOnly bool
}

// New creates a Presenter. When liveOnly is set, Stopped entries are
// suppressed from the listing.
func New(out io.Writer, liveOnly bool) *Presenter {
	return &Presenter{out: out, liveOnly: liveOnly}
}

// Summary prints the consolidated view: headline counts, the per-model
// listing, and the activity breakdown.
func (p *Presenter) Summary(report models.StatusReport) {
	fmt.Fprintf(p.out, "\n%s\n", boldStyle.Render("=== SUMMARY ==="))
	fmt.Fprintf(p.out, "📊 Available models (configured): %s\n",
		activeStyle.Render(fmt.Sprintf("%d", report.Configured)))
	fmt.Fprintf(p.out, "🚀 Active models: %s\n",
		activeStyle.Render(fmt.Sprintf("%d", report.TotalActive)))

	if len(report.Models) > 0 {
		header := "All Models:"
		if p.liveOnly {
			header = "Live Models:"
		}
		fmt.Fprintf(p.out, "\n%s\n", boldStyle.Render(header))

		for _, entry := range report.Models {
			p.listEntry(entry)
		}

		p.breakdown(report)
	}

	fmt.Fprintf(p.out, "\n%s\n", dimStyle.Render(
		"Analysis completed at "+time.Now().Format("2006-01-02 15:04:05")))
}

func (p *Presenter) listEntry(entry models.ModelEntry) {
	switch entry.Status {
	case models.StatusActive:
		fmt.Fprintf(p.out, "  %s\n", activeStyle.Render("● "+entry.Name))
	case models.StatusStarting:
		fmt.Fprintf(p.out, "  %s\n", startingStyle.Render("● "+entry.Name))
	case models.StatusQueued:
		fmt.Fprintf(p.out, "  %s\n", queuedStyle.Render("● "+entry.Name+" (Queued)"))
	default:
		if !p.liveOnly {
			fmt.Fprintf(p.out, "  %s\n", stoppedStyle.Render("● "+entry.Name+" (Stopped)"))
		}
	}
}

func (p *Presenter) breakdown(report models.StatusReport) {
	totalLive := report.RunningCount + report.StartingCount + report.QueuedCount
	if totalLive == 0 {
		return
	}

	var parts []string
	if report.RunningCount > 0 {
		parts = append(parts, activeStyle.Render(fmt.Sprintf("%d running", report.RunningCount)))
	}
	if report.StartingCount > 0 {
		parts = append(parts, startingStyle.Render(fmt.Sprintf("%d starting", report.StartingCount)))
	}
	if report.QueuedCount > 0 {
		parts = append(parts, queuedStyle.Render(fmt.Sprintf("%d queued", report.QueuedCount)))
	}

	if len(parts) > 1 {
		fmt.Fprintf(p.out, "\n  %s = %d models active / %d total configured\n",
			strings.Join(parts, " + "), totalLive, report.Configured)
	} else {
		fmt.Fprintf(p.out, "\n  %s / %d total configured\n", parts[0], report.Configured)
	}
}
