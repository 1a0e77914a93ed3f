package cli

import (
	"fmt"

	"github.com/hjps/approvalctl/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	var checkUpdate bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "ℹ️  Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.GetVersion())

			if checkUpdate {
				latest, hasUpdate, err := version.CheckForUpdate()
				if err != nil {
					return fmt.Errorf("failed to check for updates: %w", err)
				}
				if hasUpdate {
					fmt.Printf("Update available: %s\n", latest)
				} else {
					fmt.Println("You are on the latest version")
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkUpdate, "check-update", false, "Check for a newer release")
	return cmd
}
