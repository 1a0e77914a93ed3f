package cli

import (
	"github.com/hjps/approvalctl/internal/config"
	"github.com/spf13/cobra"
)

func Execute(cfg *config.Config) error {
	rootCmd := &cobra.Command{
		Use:   "approvalctl",
		Short: "🧾 Approval CLI - Timesheet approval context and billing tooling",
		Long: `Welcome to approvalctl! 👋

A tool for resolving timesheet approval contexts from the HubSpot record
store and generating billing numbers for approved timesheets.
Use 'approvalctl --help' to see all available commands.

Quick Start:
  • Resolve a context:   approvalctl resolve --url "https://app.example.com/approve?approval_request_id=AR-1"
  • Generate an invoice: approvalctl billing invoice 1001
  • Generate a bill:     approvalctl billing bill 1001

Need help? Check the project README.`,
		Example: `  # Resolve from an approval link
  approvalctl resolve --url "https://app.example.com/approve?approval_request_id=AR-1"

  # Resolve from explicit identifiers
  approvalctl resolve --approval-request-id AR-1 --project-id P-9

  # Generate billing numbers
  approvalctl billing invoice 1001
  approvalctl billing bill 1001`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(
		newResolveCommand(cfg),
		newApprovalCommand(cfg),
		newBillingCommand(cfg),
		newVersionCommand(),
	)

	return rootCmd.Execute()
}
