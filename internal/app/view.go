package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.commitlint/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current screen
func (m Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(ui.SectionHeader("COMPOSE COMMIT", ui.ColorCyan))
	b.WriteString("\n\n")

	switch m.screen {
	case ScreenTypeSelect:
		b.WriteString(m.viewTypeSelect())
	case ScreenScopeInput:
		b.WriteString(m.viewInput("Scope (optional)", m.scope, "lowercase, digits and hyphens"))
	case ScreenDescriptionInput:
		b.WriteString(m.viewInput("Description", m.description, "imperative, no trailing period"))
	case ScreenBodyInput:
		b.WriteString(m.viewBody())
	case ScreenBreakingConfirm:
		b.WriteString(m.viewBreakingConfirm())
	case ScreenPreview:
		b.WriteString(m.viewPreview())
	case ScreenCommitting:
		b.WriteString("  " + ui.Spinner(m.spinnerFrame) + " Committing...\n")
	case ScreenDone:
		b.WriteString(m.viewDone())
	case ScreenError:
		b.WriteString(m.viewError())
	}

	return b.String()
}

func (m Model) viewTypeSelect() string {
	var b strings.Builder
	b.WriteString("  What kind of change is this?\n\n")

	for i, opt := range m.typeOptions {
		selected := i == m.typeIndex
		tokenStyle := lipgloss.NewStyle().Foreground(ui.TypeColor(opt.typ))
		if selected {
			tokenStyle = tokenStyle.Bold(true)
		}
		descStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

		b.WriteString(fmt.Sprintf("  %s%-10s %s\n",
			ui.Arrow(selected),
			tokenStyle.Render(opt.token),
			descStyle.Render(opt.desc),
		))
	}

	b.WriteString("\n")
	b.WriteString(m.keyHints("↑/↓ select", "enter next", "q quit"))
	return b.String()
}

func (m Model) viewInput(title, value, hint string) string {
	var b strings.Builder
	b.WriteString("  " + title + "\n\n")

	cursor := lipgloss.NewStyle().Foreground(ui.ColorYellow).Render("█")
	display := lipgloss.NewStyle().Foreground(ui.ColorYellow).Render(value)
	b.WriteString("  " + ui.Box(display+cursor, ui.ColorCyan) + "\n")

	hintStyle := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	b.WriteString("  " + hintStyle.Render(hint) + "\n\n")
	b.WriteString(m.keyHints("enter next", "esc back"))
	return b.String()
}

func (m Model) viewBody() string {
	var b strings.Builder
	b.WriteString("  Body (optional)\n\n")

	cursor := lipgloss.NewStyle().Foreground(ui.ColorYellow).Render("█")
	content := strings.Join(m.bodyLines, "\n") + cursor
	b.WriteString("  " + ui.Box(content, ui.ColorCyan) + "\n\n")
	b.WriteString(m.keyHints("enter on empty line next", "esc back"))
	return b.String()
}

func (m Model) viewBreakingConfirm() string {
	var b strings.Builder
	b.WriteString("  Is this a breaking change?\n\n")

	style := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	if m.breakingSelection == 1 {
		style = lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)
	}
	b.WriteString("  " + style.Render(ui.Checkbox(m.breakingSelection == 1)+" breaking change") + "\n\n")
	b.WriteString(m.keyHints("space toggle", "enter next", "esc back"))
	return b.String()
}

func (m Model) viewPreview() string {
	var b strings.Builder
	b.WriteString("  Preview\n\n")

	msg := m.buildMessage()
	headerStyle := lipgloss.NewStyle().Foreground(ui.TypeColor(msg.Type)).Bold(true)
	lines := strings.Split(msg.Format(), "\n")
	lines[0] = headerStyle.Render(lines[0])
	b.WriteString("  " + ui.Box(strings.Join(lines, "\n"), ui.ColorCyan) + "\n\n")

	if reason := m.validationError(); reason != "" {
		b.WriteString("  " + ui.InvalidMessage(reason) + "\n\n")
		b.WriteString(m.keyHints("e edit", "esc back", "q quit"))
		return b.String()
	}

	b.WriteString("  " + ui.ValidMessage(msg) + "\n\n")
	action := "enter commit"
	if m.dryRun {
		action = "enter finish (dry run)"
	}
	b.WriteString(m.keyHints(action, "e edit", "esc back", "q quit"))
	return b.String()
}

func (m Model) viewDone() string {
	var b strings.Builder
	if m.dryRun {
		b.WriteString("  Dry run - message not committed:\n\n")
		b.WriteString("  " + ui.Box(m.Message(), ui.ColorGreen) + "\n")
	} else {
		okStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen).Bold(true)
		b.WriteString("  " + okStyle.Render(fmt.Sprintf("Committed %s", m.commitHash)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.keyHints("any key exit"))
	return b.String()
}

func (m Model) viewError() string {
	errStyle := lipgloss.NewStyle().Foreground(ui.ColorRed)
	return "  " + errStyle.Render(m.errorMessage) + "\n\n" + m.keyHints("any key exit")
}

func (m Model) keyHints(hints ...string) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		key, desc, found := strings.Cut(h, " ")
		if !found {
			desc = ""
		}
		parts[i] = ui.KeyBinding(key, desc, ui.ColorCyan)
	}
	dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	return "  " + strings.Join(parts, dim.Render("  ·  "))
}
