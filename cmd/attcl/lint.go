package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wahlandcase/attuned.commitlint/internal/config"
	"github.com/wahlandcase/attuned.commitlint/internal/git"
	"github.com/wahlandcase/attuned.commitlint/internal/lint"
	"github.com/wahlandcase/attuned.commitlint/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var messageFile string
	var fromHead bool

	cmd := &cobra.Command{
		Use:   "lint [message]",
		Short: "Validate a single commit message",
		Long: "Validate a commit message against the Conventional Commits grammar.\n" +
			"The message is taken from the argument, --message-file, --head, or stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			var err error
			if fromHead {
				text, err = headMessage()
			} else {
				text, err = lintInput(args, messageFile)
			}
			if err != nil {
				return err
			}
			if text == "" {
				return errors.New("empty commit message")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			runner := lint.NewRunner(cfg)
			msg, err := runner.CheckMessage(text)
			if err != nil {
				fmt.Println(ui.InvalidMessage(err.Error()))
				return errors.New("commit message rejected")
			}

			fmt.Println(ui.ValidMessage(msg))
			return nil
		},
	}

	cmd.Flags().StringVar(&messageFile, "message-file", "", "Read the message from a file (how the commit-msg hook calls attcl)")
	cmd.Flags().BoolVar(&fromHead, "head", false, "Lint the HEAD commit of the current repository")

	return cmd
}

// headMessage reads the message of the commit HEAD points at
func headMessage() (string, error) {
	repo, err := git.GetCurrentRepoInfo()
	if err != nil {
		return "", errors.New("not inside a git repository")
	}
	c, err := git.HeadCommit(repo.Path)
	if err != nil {
		return "", err
	}
	return git.CleanMessage(c.Message), nil
}

// lintInput resolves the message from argument, file or stdin, applying
// COMMIT_EDITMSG cleanup in all cases
func lintInput(args []string, messageFile string) (string, error) {
	if messageFile != "" {
		log.Debug("reading message file", "path", messageFile)
		return git.ReadMessageFile(messageFile)
	}
	if len(args) > 0 {
		return git.CleanMessage(args[0]), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return git.CleanMessage(string(data)), nil
}

// loadConfig loads the user config, overlaid with the repo-local file when
// run inside a repository
func loadConfig() (*config.Config, error) {
	if repo, err := git.GetCurrentRepoInfo(); err == nil {
		log.Debug("using repo config", "repo", repo.Path)
		return config.LoadForRepo(repo.Path)
	}
	return config.Load()
}
