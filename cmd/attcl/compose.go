package main

import (
	"errors"
	"fmt"

	"github.com/wahlandcase/attuned.commitlint/internal/app"
	"github.com/wahlandcase/attuned.commitlint/internal/config"
	"github.com/wahlandcase/attuned.commitlint/internal/git"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newComposeCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Build a commit message interactively and commit it",
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			var cfg *config.Config

			repo, err := git.GetCurrentRepoInfo()
			if err != nil {
				if !dryRun {
					return errors.New("not inside a git repository (use --dry-run to compose without committing)")
				}
				cfg, err = config.Load()
				if err != nil {
					return err
				}
			} else {
				repoPath = repo.Path
				cfg, err = config.LoadForRepo(repo.Path)
				if err != nil {
					return err
				}
			}

			model := app.New(cfg, repoPath, dryRun)
			p := tea.NewProgram(model, tea.WithAltScreen())

			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("error running program: %w", err)
			}

			m := final.(app.Model)
			if !m.Completed() {
				if m.Aborted() {
					fmt.Println("aborted")
				}
				return nil
			}

			// The alt screen is gone; repeat the outcome on the plain terminal
			if dryRun {
				fmt.Println(m.Message())
			} else {
				fmt.Printf("committed %s\n", m.CommitHash())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compose and print the message without committing")

	return cmd
}
