package main

import (
	"fmt"

	"github.com/wahlandcase/attuned.commitlint/internal/config"
	"github.com/wahlandcase/attuned.commitlint/internal/update"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the attcl version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("attcl", update.VersionDisplay(version))

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Without --check, only poke GitHub when the daily throttle allows
			if !check && !cfg.ShouldCheckForUpdate() {
				return nil
			}

			release, err := update.CheckForUpdate(version, cfg.Update.Repo)
			if err != nil {
				if check {
					return fmt.Errorf("update check failed: %w", err)
				}
				log.Debug("update check failed", "err", err)
				return nil
			}
			cfg.RecordUpdateCheck()
			if err := cfg.Save(); err != nil {
				log.Debug("could not record update check", "err", err)
			}

			if release == nil {
				fmt.Println("up to date")
			} else {
				fmt.Printf("update available: %s (run 'attcl update')\n", update.VersionDisplay(release.TagName))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub releases for a newer version")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Download and install the latest release",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			release, err := update.CheckForUpdate(version, cfg.Update.Repo)
			if err != nil {
				return fmt.Errorf("update check failed: %w", err)
			}
			if release == nil {
				fmt.Println("already up to date")
				return nil
			}

			fmt.Printf("updating to %s...\n", update.VersionDisplay(release.TagName))
			if err := update.DownloadAndInstall(release, cfg.Update.Repo); err != nil {
				return err
			}

			cfg.RecordUpdateCheck()
			cfg.Update.SkippedVersion = ""
			if err := cfg.Save(); err != nil {
				log.Debug("could not record update", "err", err)
			}

			fmt.Println("updated")
			return nil
		},
	}
}
