package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hjps/approvalctl/internal/billing"
	"github.com/hjps/approvalctl/internal/config"
	"github.com/hjps/approvalctl/internal/hubspot"
	"github.com/hjps/approvalctl/internal/output"
	"github.com/hjps/approvalctl/internal/style"
	"github.com/spf13/cobra"
)

func newBillingCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "💰 Generate billing numbers",
		Long: `Generate invoice and bill numbers for an approved timesheet batch.
The number is derived from the approval's billing anchors and written
to every timesheet in the batch.`,
	}

	cmd.AddCommand(
		newBillingGenerateCommand(cfg, billing.NumberTypeInvoice),
		newBillingGenerateCommand(cfg, billing.NumberTypeBill),
	)

	return cmd
}

func newBillingGenerateCommand(cfg *config.Config, numberType billing.NumberType) *cobra.Command {
	var (
		outputFormat string
		withNote     bool
	)

	noun := "invoice"
	if numberType == billing.NumberTypeBill {
		noun = "bill"
	}

	cmd := &cobra.Command{
		Use:     fmt.Sprintf("%s [approval-id]", noun),
		Short:   fmt.Sprintf("Generate a %s number for an approval", noun),
		Args:    cobra.ExactArgs(1),
		Example: fmt.Sprintf("  approvalctl billing %s 1001\n  approvalctl billing %s 1001 --output json", noun, noun),
		RunE: func(cmd *cobra.Command, args []string) error {
			approvalID := args[0]
			client := hubspot.NewClient(cfg)

			pm := output.NewProgressManager()
			spinner := pm.Spinner(fmt.Sprintf("Generating %s number", noun))
			spinner.Start()

			result, err := billing.NewService(client).Generate(cmd.Context(), approvalID, numberType)
			if err != nil {
				spinner.Fail("Generation failed")
				return err
			}
			spinner.Success(fmt.Sprintf("Generated %s number %s", noun, result.Number))

			if withNote {
				if err := recordBillingNote(cmd, client, approvalID, noun, result.Number); err != nil {
					// The number is already stamped on the timesheets, so a
					// failed audit note is reported but not fatal.
					fmt.Fprintf(os.Stderr, "%s failed to record audit note: %v\n",
						style.WarningStyle.Render("⚠"), err)
				}
			}

			switch outputFormat {
			case "json":
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			case "text":
				fmt.Printf("%s number: %s\n", noun, style.HighlightStyle.Render(result.Number))
				fmt.Printf("Timesheets updated: %d of %d\n", result.UpdatedCount, len(result.TimesheetIDs))
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&withNote, "note", false, "Record an audit note on the approval")

	return cmd
}

func recordBillingNote(cmd *cobra.Command, client *hubspot.Client, approvalID, noun, number string) error {
	_, err := client.CreateNote(cmd.Context(), hubspot.NoteInput{
		Properties: map[string]string{
			"hs_note_body": fmt.Sprintf("Generated %s number %s", noun, number),
			"hs_timestamp": time.Now().UTC().Format(time.RFC3339),
		},
		Associations: []hubspot.NoteAssociation{{
			To: hubspot.NoteAssociationTarget{ID: approvalID},
			Types: []hubspot.NoteAssociationType{{
				AssociationCategory: "HUBSPOT_DEFINED",
				AssociationTypeID:   hubspot.NoteToObjectAssociationTypeID,
			}},
		}},
	})
	return err
}
