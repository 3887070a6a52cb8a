package models

// RepoInfo contains information about a git repository
type RepoInfo struct {
	// Path to the repository root
	Path string
	// DisplayName (directory base name)
	DisplayName string
	// MainBranch name ("main" or "master")
	MainBranch string
}

// NewRepoInfo creates a new RepoInfo
func NewRepoInfo(path, displayName, mainBranch string) RepoInfo {
	return RepoInfo{
		Path:        path,
		DisplayName: displayName,
		MainBranch:  mainBranch,
	}
}
