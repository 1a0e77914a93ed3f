package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/hjps/approvalctl/internal/config"
	"github.com/hjps/approvalctl/internal/hubspot"
	"github.com/hjps/approvalctl/internal/style"
	"github.com/spf13/cobra"
)

func newApprovalCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "approval",
		Aliases: []string{"approvals"},
		Short:   "📄 Inspect and update approval records",
	}

	cmd.AddCommand(
		newGetApprovalCommand(cfg),
		newUpdateApprovalCommand(cfg),
	)

	return cmd
}

func newGetApprovalCommand(cfg *config.Config) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "get [approval-id]",
		Short:   "Fetch an approval by object ID or request ID",
		Args:    cobra.ExactArgs(1),
		Example: "  approvalctl approval get 1001\n  approvalctl approval get AR-1 --output json",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := hubspot.NewClient(cfg)
			approval, err := client.GetApproval(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get approval: %w", err)
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(approval)
			case "text":
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				p := approval.Properties
				fmt.Fprintf(w, "%s\t%s\n", style.DimStyle.Render("Object ID"), approval.ID)
				fmt.Fprintf(w, "%s\t%s\n", style.DimStyle.Render("Request ID"), p.RequestID)
				fmt.Fprintf(w, "%s\t%s\n", style.DimStyle.Render("Project ID"), p.ProjectID)
				fmt.Fprintf(w, "%s\t%s\n", style.DimStyle.Render("Consultant"), p.ConsultantName)
				fmt.Fprintf(w, "%s\t%s\n", style.DimStyle.Render("From"), p.ResponseFromDate)
				fmt.Fprintf(w, "%s\t%s\n", style.DimStyle.Render("Until"), p.ResponseUntilDate)
				return w.Flush()
			default:
				return fmt.Errorf("unknown output format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")
	return cmd
}

func newUpdateApprovalCommand(cfg *config.Config) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "update [approval-object-id]",
		Short: "Patch properties on an approval record",
		Args:  cobra.ExactArgs(1),
		Example: `  # Mark an approval as processed
  approvalctl approval update 1001 --set approval_status=processed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(sets) == 0 {
				return fmt.Errorf("provide at least one --set key=value")
			}

			properties := make(map[string]string, len(sets))
			for _, kv := range sets {
				key, value, ok := strings.Cut(kv, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid --set %q, expected key=value", kv)
				}
				properties[key] = value
			}

			client := hubspot.NewClient(cfg)
			approval, err := client.UpdateApproval(cmd.Context(), args[0], properties)
			if err != nil {
				return fmt.Errorf("failed to update approval: %w", err)
			}

			fmt.Printf("%s approval %s updated (%d property(ies))\n",
				style.SuccessStyle.Render("✓"), approval.ID, len(properties))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Property to set, key=value (repeatable)")
	return cmd
}
