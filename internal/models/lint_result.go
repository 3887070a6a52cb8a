package models

// LintStatus represents the outcome of linting a single commit message
type LintStatus interface {
	isLintStatus()
}

type lintStatusPassed struct{}
type lintStatusFailed struct{ Reason string }
type lintStatusSkipped struct{ Reason string }

func (lintStatusPassed) isLintStatus()  {}
func (lintStatusFailed) isLintStatus()  {}
func (lintStatusSkipped) isLintStatus() {}

// Passed indicates the message conforms to the grammar and configured rules
var Passed LintStatus = lintStatusPassed{}

// Failed creates a LintStatus for a rejected message with a reason
func Failed(reason string) LintStatus {
	return lintStatusFailed{Reason: reason}
}

// Skipped creates a LintStatus for a commit the linter does not judge
// (merge commits, reverts)
func Skipped(reason string) LintStatus {
	return lintStatusSkipped{Reason: reason}
}

// LintResult represents the outcome for a single commit
type LintResult struct {
	// Commit is the commit that was checked
	Commit CommitInfo
	// Status of the check
	Status LintStatus
}

// IsStatusPassed returns true if status is Passed
func IsStatusPassed(s LintStatus) bool {
	_, ok := s.(lintStatusPassed)
	return ok
}

// IsStatusFailed returns true if status is Failed
func IsStatusFailed(s LintStatus) bool {
	_, ok := s.(lintStatusFailed)
	return ok
}

// IsStatusSkipped returns true if status is Skipped
func IsStatusSkipped(s LintStatus) bool {
	_, ok := s.(lintStatusSkipped)
	return ok
}

// GetStatusReason returns the reason string for Failed or Skipped statuses
func GetStatusReason(s LintStatus) string {
	if failed, ok := s.(lintStatusFailed); ok {
		return failed.Reason
	}
	if skipped, ok := s.(lintStatusSkipped); ok {
		return skipped.Reason
	}
	return ""
}

// Summary counts lint outcomes across a batch of commits
type Summary struct {
	Passed  int
	Failed  int
	Skipped int
}

// Total returns the number of commits checked
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Clean returns true when no commit failed
func (s Summary) Clean() bool {
	return s.Failed == 0
}

// Summarize tallies a slice of results
func Summarize(results []LintResult) Summary {
	var s Summary
	for _, r := range results {
		switch {
		case IsStatusPassed(r.Status):
			s.Passed++
		case IsStatusFailed(r.Status):
			s.Failed++
		case IsStatusSkipped(r.Status):
			s.Skipped++
		}
	}
	return s
}
