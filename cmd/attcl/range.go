package main

import (
	"errors"
	"fmt"

	"github.com/wahlandcase/attuned.commitlint/internal/config"
	"github.com/wahlandcase/attuned.commitlint/internal/git"
	"github.com/wahlandcase/attuned.commitlint/internal/lint"
	"github.com/wahlandcase/attuned.commitlint/internal/models"
	"github.com/wahlandcase/attuned.commitlint/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range [base] [head]",
		Short: "Validate every commit in base..head",
		Long: "Validate all commits reachable from head but not from base.\n" +
			"base defaults to the detected main branch, head to HEAD.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := git.GetCurrentRepoInfo()
			if err != nil {
				return errors.New("not inside a git repository")
			}

			base := repo.MainBranch
			head := "HEAD"
			if len(args) > 0 {
				base = args[0]
			}
			if len(args) > 1 {
				head = args[1]
			}

			cfg, err := config.LoadForRepo(repo.Path)
			if err != nil {
				return err
			}

			log.Debug("linting range", "repo", repo.Path, "base", base, "head", head)

			commits, err := git.CommitsBetween(repo.Path, base, head)
			if err != nil {
				return err
			}

			runner := lint.NewRunner(cfg)
			results := runner.CheckCommits(commits)
			summary := models.Summarize(results)

			fmt.Print(ui.Report(repo.DisplayName, base, head, results, summary))

			if !summary.Clean() {
				return fmt.Errorf("%d of %d commits failed validation", summary.Failed, summary.Total())
			}
			return nil
		},
	}
}
