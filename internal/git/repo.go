package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/attuned.commitlint/internal/models"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// IsGitRepo checks if the path is a git repository
func IsGitRepo(path string) bool {
	_, err := git.PlainOpen(path)
	return err == nil
}

// GetRepoInfo opens a repository and gets basic info
func GetRepoInfo(path string) (*models.RepoInfo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, err
	}

	mainBranch, err := DetectMainBranch(repo)
	if err != nil {
		return nil, err
	}

	info := models.NewRepoInfo(path, filepath.Base(path), mainBranch)
	return &info, nil
}

// GetCurrentRepoInfo gets info for the repository containing the working directory
func GetCurrentRepoInfo() (*models.RepoInfo, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	// Walk up to find git root
	path := cwd
	for {
		if IsGitRepo(path) {
			break
		}
		parent := filepath.Dir(path)
		if parent == path {
			return nil, os.ErrNotExist
		}
		path = parent
	}

	return GetRepoInfo(path)
}

// DetectMainBranch determines if the repo uses "main" or "master"
func DetectMainBranch(repo *git.Repository) (string, error) {
	refs, err := repo.References()
	if err != nil {
		return "main", nil
	}

	hasRemoteMain := false
	hasRemoteMaster := false
	hasLocalMain := false
	hasLocalMaster := false

	refs.ForEach(func(ref *plumbing.Reference) error {
		switch ref.Name().String() {
		case "refs/remotes/origin/main":
			hasRemoteMain = true
		case "refs/remotes/origin/master":
			hasRemoteMaster = true
		case "refs/heads/main":
			hasLocalMain = true
		case "refs/heads/master":
			hasLocalMaster = true
		}
		return nil
	})

	// Prefer remote refs
	if hasRemoteMain {
		return "main", nil
	}
	if hasRemoteMaster {
		return "master", nil
	}
	if hasLocalMain {
		return "main", nil
	}
	if hasLocalMaster {
		return "master", nil
	}

	return "main", nil
}

// RevisionNotFoundError indicates a revision could not be resolved
type RevisionNotFoundError struct {
	Revision string
}

func (e *RevisionNotFoundError) Error() string {
	return "revision not found: " + e.Revision
}

// GitDir resolves the repository's .git directory, following the gitdir
// pointer of worktree checkouts to the common directory
func GitDir(repoPath string) (string, error) {
	gitPath := filepath.Join(repoPath, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return gitPath, nil
	}

	// Worktree: .git is a file "gitdir: /path/to/base.git/worktrees/name"
	content, err := os.ReadFile(gitPath)
	if err != nil {
		return "", err
	}
	line := strings.TrimSpace(string(content))
	gitdir := strings.TrimPrefix(line, "gitdir: ")
	if gitdir == line {
		return "", fmt.Errorf("invalid .git file format in %s", repoPath)
	}
	if idx := strings.Index(gitdir, string(filepath.Separator)+"worktrees"+string(filepath.Separator)); idx >= 0 {
		return gitdir[:idx], nil
	}
	return gitdir, nil
}
