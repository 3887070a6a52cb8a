package models

// CommitInfo contains information about a git commit
type CommitInfo struct {
	// Hash is the short commit hash (7 characters)
	Hash string
	// Subject is the first line of the commit message
	Subject string
	// Message is the full commit message text
	Message string
	// Merge is true when the commit has more than one parent
	Merge bool
}

// NewCommitInfo creates a new CommitInfo
func NewCommitInfo(hash, message string, merge bool) CommitInfo {
	subject := message
	for i := 0; i < len(message); i++ {
		if message[i] == '\n' {
			subject = message[:i]
			break
		}
	}
	return CommitInfo{
		Hash:    hash,
		Subject: subject,
		Message: message,
		Merge:   merge,
	}
}
