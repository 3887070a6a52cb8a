package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wahlandcase/attuned.commitlint/internal/commit"
	"github.com/wahlandcase/attuned.commitlint/internal/models"
)

func statusName(s models.LintStatus) string {
	switch {
	case models.IsStatusPassed(s):
		return "passed"
	case models.IsStatusFailed(s):
		return "failed"
	case models.IsStatusSkipped(s):
		return "skipped"
	default:
		return "unknown"
	}
}

// ResultLine renders one commit's lint outcome
// Example: "  ✓ 1a2b3c4 feat(parser): add arrays"
func ResultLine(res models.LintResult) string {
	icon, color := StatusIcon(statusName(res.Status))
	iconStyle := lipgloss.NewStyle().Foreground(color)
	hashStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	line := fmt.Sprintf("  %s %s %s",
		iconStyle.Render(icon),
		hashStyle.Render(res.Commit.Hash),
		res.Commit.Subject,
	)

	if reason := models.GetStatusReason(res.Status); reason != "" {
		reasonStyle := lipgloss.NewStyle().Foreground(color)
		line += "\n" + "      " + reasonStyle.Render(reason)
	}

	return line
}

// Report renders the full lint report for a commit range
func Report(repoName, base, head string, results []models.LintResult, summary models.Summary) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s..%s", repoName, base, head)
	b.WriteString(SectionHeader(title, ColorCyan))
	b.WriteString("\n\n")

	if len(results) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(ColorDarkGray).Render("  no commits in range"))
		b.WriteString("\n")
		return b.String()
	}

	for _, res := range results {
		b.WriteString(ResultLine(res))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(SummaryLine(summary))
	b.WriteString("\n")

	return b.String()
}

// SummaryLine renders the pass/fail/skip tally
func SummaryLine(s models.Summary) string {
	passStyle := lipgloss.NewStyle().Foreground(ColorGreen)
	failStyle := lipgloss.NewStyle().Foreground(ColorRed)
	skipStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	dimStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)

	parts := []string{passStyle.Render(fmt.Sprintf("%d passed", s.Passed))}
	if s.Failed > 0 {
		parts = append(parts, failStyle.Render(fmt.Sprintf("%d failed", s.Failed)))
	}
	if s.Skipped > 0 {
		parts = append(parts, skipStyle.Render(fmt.Sprintf("%d skipped", s.Skipped)))
	}

	return "  " + strings.Join(parts, dimStyle.Render(" · ")) +
		dimStyle.Render(fmt.Sprintf("  (%d commits)", s.Total()))
}

// ValidMessage renders the confirmation for a single valid message
func ValidMessage(msg *commit.Message) string {
	icon, color := StatusIcon("passed")
	iconStyle := lipgloss.NewStyle().Foreground(color)
	typeStyle := lipgloss.NewStyle().Foreground(TypeColor(msg.Type)).Bold(true)

	line := fmt.Sprintf("%s %s", iconStyle.Render(icon), typeStyle.Render(msg.Token))
	if msg.Scope != "" {
		line += lipgloss.NewStyle().Foreground(ColorCyan).Render("(" + msg.Scope + ")")
	}
	if msg.Breaking {
		line += lipgloss.NewStyle().Foreground(ColorRed).Bold(true).Render(" BREAKING")
	}
	line += ": " + msg.Description

	return line
}

// InvalidMessage renders the rejection for a single invalid message
func InvalidMessage(reason string) string {
	icon, color := StatusIcon("failed")
	style := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %s", style.Render(icon), style.Render(reason))
}
