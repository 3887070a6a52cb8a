// Package hook manages the commit-msg hook that routes messages through attcl.
package hook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/attuned.commitlint/internal/git"
)

// marker identifies hooks written by attcl; uninstall refuses anything else
const marker = "# installed by attcl"

const script = `#!/bin/sh
` + marker + `
# Remove with: attcl hook uninstall
exec attcl lint --message-file "$1"
`

// ErrForeignHook is returned when a commit-msg hook exists that attcl did not write
var ErrForeignHook = errors.New("existing commit-msg hook was not installed by attcl")

// Status describes the state of the commit-msg hook in a repository
type Status int

const (
	StatusMissing Status = iota
	StatusInstalled
	StatusForeign
)

func (s Status) String() string {
	switch s {
	case StatusMissing:
		return "not installed"
	case StatusInstalled:
		return "installed"
	case StatusForeign:
		return "foreign hook present"
	default:
		return "unknown"
	}
}

func hookPath(repoPath string) (string, error) {
	gitDir, err := git.GitDir(repoPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "commit-msg"), nil
}

// Check reports the state of the commit-msg hook
func Check(repoPath string) (Status, error) {
	path, err := hookPath(repoPath)
	if err != nil {
		return StatusMissing, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return StatusMissing, nil
		}
		return StatusMissing, err
	}

	if strings.Contains(string(data), marker) {
		return StatusInstalled, nil
	}
	return StatusForeign, nil
}

// Install writes the commit-msg hook script. An existing foreign hook is only
// overwritten with force
func Install(repoPath string, force bool) error {
	status, err := Check(repoPath)
	if err != nil {
		return err
	}
	if status == StatusForeign && !force {
		return ErrForeignHook
	}

	path, err := hookPath(repoPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Write next to the target then rename, so a crashed install never
	// leaves a half-written executable hook
	tmp, err := os.CreateTemp(filepath.Dir(path), "commit-msg-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(script); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	tmp.Close()

	if err := os.Chmod(tmpPath, 0755); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}

	return nil
}

// Uninstall removes the commit-msg hook if attcl wrote it
func Uninstall(repoPath string) error {
	status, err := Check(repoPath)
	if err != nil {
		return err
	}

	switch status {
	case StatusMissing:
		return nil
	case StatusForeign:
		return ErrForeignHook
	}

	path, err := hookPath(repoPath)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing hook: %w", err)
	}
	return nil
}
