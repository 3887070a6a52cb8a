package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and key input
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinnerTickMsg:
		if m.screen == ScreenCommitting {
			m.spinnerFrame++
			return m, spinnerTick()
		}
		return m, nil

	case commitDoneMsg:
		if msg.err != nil {
			m.errorMessage = msg.err.Error()
			m.screen = ScreenError
			return m, nil
		}
		m.commitHash = msg.hash
		m.screen = ScreenDone
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenTypeSelect:
		return m.handleTypeSelect(msg)
	case ScreenScopeInput:
		return m.handleScopeInput(msg)
	case ScreenDescriptionInput:
		return m.handleDescriptionInput(msg)
	case ScreenBodyInput:
		return m.handleBodyInput(msg)
	case ScreenBreakingConfirm:
		return m.handleBreakingConfirm(msg)
	case ScreenPreview:
		return m.handlePreview(msg)
	case ScreenCommitting:
		return m, nil
	case ScreenDone, ScreenError:
		m.shouldQuit = m.screen == ScreenError
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleTypeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.typeIndex > 0 {
			m.typeIndex--
		}
	case "down", "j":
		if m.typeIndex < len(m.typeOptions)-1 {
			m.typeIndex++
		}
	case "enter":
		m.screen = ScreenScopeInput
	case "q", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleScopeInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.screen = ScreenDescriptionInput
	case tea.KeyEsc:
		m.screen = ScreenTypeSelect
	case tea.KeyBackspace:
		if len(m.scope) > 0 {
			m.scope = m.scope[:len(m.scope)-1]
		}
	case tea.KeyRunes:
		m.scope += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleDescriptionInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if m.description != "" {
			m.screen = ScreenBodyInput
		}
	case tea.KeyEsc:
		m.screen = ScreenScopeInput
	case tea.KeyBackspace:
		if len(m.description) > 0 {
			m.description = m.description[:len(m.description)-1]
		}
	case tea.KeySpace:
		m.description += " "
	case tea.KeyRunes:
		m.description += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleBodyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	last := len(m.bodyLines) - 1
	switch msg.Type {
	case tea.KeyEnter:
		// Enter on an empty line finishes the body
		if m.bodyLines[last] == "" {
			m.screen = ScreenBreakingConfirm
		} else {
			m.bodyLines = append(m.bodyLines, "")
		}
	case tea.KeyEsc:
		m.screen = ScreenDescriptionInput
	case tea.KeyBackspace:
		if m.bodyLines[last] != "" {
			m.bodyLines[last] = m.bodyLines[last][:len(m.bodyLines[last])-1]
		} else if last > 0 {
			m.bodyLines = m.bodyLines[:last]
		}
	case tea.KeySpace:
		m.bodyLines[last] += " "
	case tea.KeyRunes:
		m.bodyLines[last] += string(msg.Runes)
	}
	return m, nil
}

func (m Model) handleBreakingConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "left", "right", "h", "l", "tab":
		m.breakingSelection = 1 - m.breakingSelection
	case "y":
		m.breakingSelection = 1
	case "n":
		m.breakingSelection = 0
	case "enter":
		m.breaking = m.breakingSelection == 1
		m.screen = ScreenPreview
	case "esc":
		m.screen = ScreenBodyInput
	}
	return m, nil
}

func (m Model) handlePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if m.validationError() != "" {
			// Stay on the preview until the message lints clean
			return m, nil
		}
		if m.dryRun {
			m.screen = ScreenDone
			return m, nil
		}
		m.screen = ScreenCommitting
		return m, tea.Batch(commitCmd(m.repoPath, m.Message()), spinnerTick())
	case "e":
		m.screen = ScreenDescriptionInput
	case "esc":
		m.screen = ScreenBreakingConfirm
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

// Completed reports whether the wizard reached the done screen
func (m Model) Completed() bool {
	return m.screen == ScreenDone
}

// Aborted reports whether the author backed out
func (m Model) Aborted() bool {
	return m.shouldQuit
}

// CommitHash returns the short hash of the created commit, empty on dry run
func (m Model) CommitHash() string {
	return m.commitHash
}
