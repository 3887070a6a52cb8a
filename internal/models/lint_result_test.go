package models

import "testing"

func TestLintStatusPredicates(t *testing.T) {
	if !IsStatusPassed(Passed) || IsStatusFailed(Passed) || IsStatusSkipped(Passed) {
		t.Error("Passed predicates wrong")
	}

	failed := Failed("unknown type")
	if !IsStatusFailed(failed) || IsStatusPassed(failed) {
		t.Error("Failed predicates wrong")
	}
	if GetStatusReason(failed) != "unknown type" {
		t.Errorf("reason = %q", GetStatusReason(failed))
	}

	skipped := Skipped("merge commit")
	if !IsStatusSkipped(skipped) {
		t.Error("Skipped predicate wrong")
	}
	if GetStatusReason(skipped) != "merge commit" {
		t.Errorf("reason = %q", GetStatusReason(skipped))
	}

	if GetStatusReason(Passed) != "" {
		t.Error("Passed has a reason")
	}
}

func TestNewCommitInfoSubject(t *testing.T) {
	c := NewCommitInfo("1a2b3c4", "feat: add arrays\n\nbody text", false)
	if c.Subject != "feat: add arrays" {
		t.Errorf("Subject = %q", c.Subject)
	}
	if c.Message != "feat: add arrays\n\nbody text" {
		t.Errorf("Message = %q", c.Message)
	}

	single := NewCommitInfo("1a2b3c4", "fix: one liner", false)
	if single.Subject != "fix: one liner" {
		t.Errorf("Subject = %q", single.Subject)
	}
}

func TestSummarize(t *testing.T) {
	results := []LintResult{
		{Status: Passed},
		{Status: Passed},
		{Status: Failed("x")},
		{Status: Skipped("merge commit")},
	}
	s := Summarize(results)
	if s.Passed != 2 || s.Failed != 1 || s.Skipped != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Total() != 4 {
		t.Errorf("Total = %d", s.Total())
	}
	if s.Clean() {
		t.Error("Clean with failures")
	}
	if !(Summary{Passed: 2}).Clean() {
		t.Error("Clean without failures reported dirty")
	}
}
