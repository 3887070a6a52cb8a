package app

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// commitDoneMsg is sent when the git commit finishes
type commitDoneMsg struct {
	hash string
	err  error
}

// spinnerTickMsg advances the committing spinner
type spinnerTickMsg struct{}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return spinnerTickMsg{}
	})
}

// commitCmd runs git commit with the composed message via the git CLI
// (inherits hooks, signing and author config the way a terminal commit would)
func commitCmd(repoPath, message string) tea.Cmd {
	return func() tea.Msg {
		cmd := exec.Command("git", "commit", "-F", "-")
		cmd.Dir = repoPath
		cmd.Stdin = strings.NewReader(message)

		if output, err := cmd.CombinedOutput(); err != nil {
			outputStr := strings.TrimSpace(string(output))
			if outputStr == "" {
				outputStr = err.Error()
			}
			return commitDoneMsg{err: fmt.Errorf("git commit: %s", outputStr)}
		}

		rev := exec.Command("git", "rev-parse", "--short", "HEAD")
		rev.Dir = repoPath
		output, err := rev.Output()
		if err != nil {
			// Commit landed; missing hash is not worth an error screen
			return commitDoneMsg{hash: "HEAD"}
		}
		return commitDoneMsg{hash: strings.TrimSpace(string(output))}
	}
}
