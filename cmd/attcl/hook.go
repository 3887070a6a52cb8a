package main

import (
	"errors"
	"fmt"

	"github.com/wahlandcase/attuned.commitlint/internal/git"
	"github.com/wahlandcase/attuned.commitlint/internal/hook"
	"github.com/wahlandcase/attuned.commitlint/internal/models"

	"github.com/spf13/cobra"
)

func newHookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Manage the commit-msg hook",
	}

	var force bool
	install := &cobra.Command{
		Use:   "install",
		Short: "Install the commit-msg hook in the current repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := currentRepo()
			if err != nil {
				return err
			}
			if err := hook.Install(repo.Path, force); err != nil {
				if errors.Is(err, hook.ErrForeignHook) {
					return fmt.Errorf("%w (rerun with --force to replace it)", err)
				}
				return err
			}
			fmt.Printf("commit-msg hook installed in %s\n", repo.DisplayName)
			return nil
		},
	}
	install.Flags().BoolVar(&force, "force", false, "Replace an existing hook not written by attcl")

	uninstall := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the commit-msg hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := currentRepo()
			if err != nil {
				return err
			}
			if err := hook.Uninstall(repo.Path); err != nil {
				return err
			}
			fmt.Printf("commit-msg hook removed from %s\n", repo.DisplayName)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the commit-msg hook",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := currentRepo()
			if err != nil {
				return err
			}
			s, err := hook.Check(repo.Path)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", repo.DisplayName, s)
			return nil
		},
	}

	cmd.AddCommand(install, uninstall, status)
	return cmd
}

func currentRepo() (*models.RepoInfo, error) {
	repo, err := git.GetCurrentRepoInfo()
	if err != nil {
		return nil, errors.New("not inside a git repository")
	}
	return repo, nil
}
