package git

import (
	"os"
	"strings"
)

const scissors = " ------------------------ >8 ------------------------"

// CleanMessage applies COMMIT_EDITMSG semantics to raw hook input: everything
// at and after the scissors line is dropped, comment lines are stripped, and
// trailing blank lines are trimmed
func CleanMessage(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "#") {
			if strings.HasSuffix(line, scissors) {
				break
			}
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimRight(strings.Join(kept, "\n"), "\n")
}

// ReadMessageFile reads a commit message file (COMMIT_EDITMSG or the path git
// passes to the commit-msg hook) and returns the cleaned message
func ReadMessageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return CleanMessage(string(data)), nil
}
