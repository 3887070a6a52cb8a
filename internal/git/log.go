package git

import (
	"github.com/wahlandcase/attuned.commitlint/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// resolveRevision resolves a revision, falling back from the literal spec to
// remote-tracking and local branch refs
func resolveRevision(repo *git.Repository, rev string) (*plumbing.Hash, error) {
	candidates := []string{
		rev,
		"refs/remotes/origin/" + rev,
		"refs/heads/" + rev,
	}
	for _, c := range candidates {
		if hash, err := repo.ResolveRevision(plumbing.Revision(c)); err == nil {
			return hash, nil
		}
	}
	return nil, &RevisionNotFoundError{Revision: rev}
}

// CommitsBetween returns commits reachable from head but not from base,
// newest first, with full message text
func CommitsBetween(repoPath, base, head string) ([]models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	baseHash, err := resolveRevision(repo, base)
	if err != nil {
		return nil, err
	}

	headHash, err := resolveRevision(repo, head)
	if err != nil {
		return nil, err
	}

	// Build set of commits reachable from base
	baseCommits := make(map[plumbing.Hash]bool)
	baseIter, err := repo.Log(&git.LogOptions{From: *baseHash})
	if err != nil {
		return nil, err
	}
	baseIter.ForEach(func(c *object.Commit) error {
		baseCommits[c.Hash] = true
		return nil
	})

	headIter, err := repo.Log(&git.LogOptions{From: *headHash})
	if err != nil {
		return nil, err
	}

	var commits []models.CommitInfo
	seen := make(map[plumbing.Hash]bool)
	err = headIter.ForEach(func(c *object.Commit) error {
		// Skip if already processed or reachable from base.
		// Don't stop iteration - merge commits have multiple parents
		// and we need to traverse all paths to find feature commits.
		if seen[c.Hash] || baseCommits[c.Hash] {
			return nil
		}
		seen[c.Hash] = true

		hash := c.Hash.String()[:7]
		commits = append(commits, models.NewCommitInfo(hash, c.Message, c.NumParents() > 1))
		return nil
	})

	if err != nil {
		return nil, err
	}

	return commits, nil
}

// HeadCommit returns the commit HEAD points at
func HeadCommit(repoPath string) (*models.CommitInfo, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}

	ref, err := repo.Head()
	if err != nil {
		return nil, err
	}

	c, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}

	info := models.NewCommitInfo(c.Hash.String()[:7], c.Message, c.NumParents() > 1)
	return &info, nil
}
