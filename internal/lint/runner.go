// Package lint applies the commit grammar plus configured rules to one
// message or a batch of commits.
package lint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wahlandcase/attuned.commitlint/internal/commit"
	"github.com/wahlandcase/attuned.commitlint/internal/config"
	"github.com/wahlandcase/attuned.commitlint/internal/models"
)

// RuleError reports a configured-rule violation (as opposed to a grammar one)
type RuleError struct {
	Rule   string
	Detail string
}

func (e *RuleError) Error() string {
	return e.Rule + ": " + e.Detail
}

// Runner checks messages against the grammar and a loaded configuration.
// A Runner is read-only after construction and safe for concurrent use.
type Runner struct {
	cfg *config.Config
}

// NewRunner creates a Runner bound to cfg
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg}
}

// CheckMessage validates a single full message. On success the parsed message
// is returned; on failure the error is a *commit.ParseError or *RuleError.
func (r *Runner) CheckMessage(text string) (*commit.Message, error) {
	msg, err := commit.ParseWith(text, r.cfg.Types.Extra)
	if err != nil {
		return nil, err
	}

	if msg.Scope == "" && r.cfg.Scopes.Require {
		return nil, &RuleError{"scope required", "configuration requires a (scope) in the header"}
	}
	if msg.Scope != "" && len(r.cfg.Scopes.Allowed) > 0 && !contains(r.cfg.Scopes.Allowed, msg.Scope) {
		return nil, &RuleError{
			"scope not allowed",
			fmt.Sprintf("%q is not in scopes.allowed (%s)", msg.Scope, strings.Join(r.cfg.Scopes.Allowed, ", ")),
		}
	}

	if limit := r.cfg.Rules.MaxHeaderLength; limit > 0 {
		if n := len([]rune(msg.Header())); n > limit {
			return nil, &RuleError{
				"header too long",
				fmt.Sprintf("header is %d characters, limit is %d", n, limit),
			}
		}
	}

	if r.cfg.Rules.RequireBreakingFooter {
		if headerBang(text) && !footerBreaking(msg) {
			return nil, &commit.ParseError{
				Reason: commit.InconsistentBreakingMarker,
				Detail: "header has \"!\" but no BREAKING CHANGE footer",
			}
		}
	}

	return msg, nil
}

// CheckCommits lints a batch of commits, skipping merges and (per config)
// git-generated reverts
func (r *Runner) CheckCommits(commits []models.CommitInfo) []models.LintResult {
	results := make([]models.LintResult, 0, len(commits))
	for _, c := range commits {
		results = append(results, models.LintResult{Commit: c, Status: r.checkOne(c)})
	}
	return results
}

func (r *Runner) checkOne(c models.CommitInfo) models.LintStatus {
	if c.Merge {
		return models.Skipped("merge commit")
	}
	if r.cfg.Rules.AllowReverts && strings.HasPrefix(c.Subject, `Revert "`) {
		return models.Skipped("revert commit")
	}

	if _, err := r.CheckMessage(c.Message); err != nil {
		return models.Failed(reasonText(err))
	}
	return models.Passed
}

// reasonText flattens a lint error into a display string
func reasonText(err error) string {
	var perr *commit.ParseError
	if errors.As(err, &perr) {
		return perr.Error()
	}
	var rerr *RuleError
	if errors.As(err, &rerr) {
		return rerr.Error()
	}
	return err.Error()
}

// headerBang reports whether the first line carries the "!" marker.
// The parsed Message folds footer-declared breaks into the same flag, so the
// strict consistency check has to look at the raw header.
func headerBang(text string) bool {
	header := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		header = text[:i]
	}
	colon := strings.IndexByte(header, ':')
	return colon > 0 && header[colon-1] == '!'
}

func footerBreaking(msg *commit.Message) bool {
	for _, f := range msg.Footers {
		if f.IsBreaking() {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
