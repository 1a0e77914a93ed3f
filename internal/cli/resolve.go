package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/hjps/approvalctl/internal/config"
	clierrors "github.com/hjps/approvalctl/internal/errors"
	"github.com/hjps/approvalctl/internal/hubspot"
	"github.com/hjps/approvalctl/internal/output"
	"github.com/hjps/approvalctl/internal/resolve"
	"github.com/hjps/approvalctl/internal/style"
	"github.com/spf13/cobra"
)

func newResolveCommand(cfg *config.Config) *cobra.Command {
	var (
		locatorURL   string
		overrides    resolve.Overrides
		outputFormat string
		skipValidate bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "🔍 Resolve an approval context",
		Long: `Resolve a complete approval context from an approval link and/or
explicit identifiers. The resolver walks the approval, its timesheets,
the owning project, the customer contact, the sales deal, and the
customer company, filling each context field from the first source
that provides it.`,
		Example: `  # Resolve from an approval link
  approvalctl resolve --url "https://app.example.com/approve?approval_request_id=AR-1"

  # Resolve from explicit identifiers
  approvalctl resolve --approval-request-id AR-1 --project-id P-9

  # Manual overrides win over URL parameters
  approvalctl resolve --url "https://..." --consultant-id 78 --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if locatorURL == "" && overrides == (resolve.Overrides{}) {
				return fmt.Errorf("provide --url or at least one identifier flag")
			}

			seed, err := resolve.NewNormalizer(cfg).Seed(locatorURL, overrides)
			if err != nil {
				var locErr *resolve.InvalidLocatorError
				if errors.As(err, &locErr) {
					return clierrors.ValidationError(err, "The --url value must be an absolute approval link.")
				}
				return err
			}

			pm := output.NewProgressManager()
			spinner := pm.Spinner("Resolving approval context")
			spinner.Start()

			resolver := resolve.NewResolver(hubspot.NewClient(cfg), cfg)
			resolved, err := resolver.Resolve(cmd.Context(), seed)
			if err != nil {
				spinner.Fail("Resolution failed")
				return err
			}
			spinner.Success("Context resolved")

			var validation *resolve.ValidationResult
			if !skipValidate {
				v := resolve.Validate(resolved)
				validation = &v
			}

			switch outputFormat {
			case "json":
				payload := struct {
					Context    *resolve.Context          `json:"context"`
					Validation *resolve.ValidationResult `json:"validation,omitempty"`
				}{resolved, validation}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "text":
				printContext(resolved)
				if validation != nil {
					printValidation(*validation)
				}
				return nil
			default:
				return fmt.Errorf("unknown output format: %s", outputFormat)
			}
		},
	}

	cmd.Flags().StringVarP(&locatorURL, "url", "u", "", "Approval link to resolve")
	cmd.Flags().StringVar(&overrides.ApprovalObjectID, "approval-object-id", "", "Approval record object ID")
	cmd.Flags().StringVar(&overrides.ApprovalRequestID, "approval-request-id", "", "Business approval request ID")
	cmd.Flags().StringVar(&overrides.ProjectID, "project-id", "", "Project ID override")
	cmd.Flags().StringVar(&overrides.ConsultantID, "consultant-id", "", "Consultant ID override")
	cmd.Flags().StringVar(&overrides.CustomerEmail, "customer-email", "", "Customer email override")
	cmd.Flags().StringVar(&overrides.SalesDealID, "sales-deal-id", "", "Sales deal ID override")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVar(&skipValidate, "skip-validation", false, "Skip the required-field validation report")

	return cmd
}

func printContext(c *resolve.Context) {
	fmt.Println(style.TitleStyle.Render(" 📋 Approval Context "))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value string
	}{
		{"Approval Request ID", c.ApprovalRequestID},
		{"Approval Object ID", c.ApprovalObjectID},
		{"Project ID", c.ProjectID},
		{"Project Name", c.ProjectName},
		{"Consultant ID", c.ConsultantID},
		{"Consultant Name", c.ConsultantName},
		{"Consultant Email", c.ConsultantEmail},
		{"Customer Email", c.CustomerEmail},
		{"Approver Name", c.ApproverName},
		{"Approver Email", c.ApproverEmail},
		{"Approver Type", c.ApproverType},
		{"Sales Deal ID", c.SalesDealID},
		{"Deal Amount", c.DealAmount},
		{"Company", c.CustomerCompanyName},
		{"Company Domain", c.CustomerCompanyDomain},
		{"Operator", c.OperatorName},
		{"Wells", c.WellNames},
		{"Period From", c.ResponseFromDate},
		{"Period Until", c.ResponseUntilDate},
	}
	for _, row := range rows {
		if row.value == "" {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", style.DimStyle.Render(row.label), row.value)
	}
	if len(c.ApprovalTimesheetIDs) > 0 {
		fmt.Fprintf(w, "%s\t%d linked\n", style.DimStyle.Render("Timesheets"), len(c.ApprovalTimesheetIDs))
	}
	w.Flush()

	if len(c.SourceNotes) > 0 {
		fmt.Println()
		fmt.Println(style.SubtitleStyle.Render("Resolution notes:"))
		for _, note := range c.SourceNotes {
			fmt.Printf("  • %s\n", note)
		}
	}
}

func printValidation(v resolve.ValidationResult) {
	fmt.Println()
	if v.Valid {
		fmt.Println(style.SuccessStyle.Render("✓ Context is valid"))
	} else {
		fmt.Println(style.ErrorStyle.Render("✗ Context is missing required fields"))
		for _, field := range v.MissingRequired {
			fmt.Printf("  missing: %s\n", field)
		}
	}
	for _, warning := range v.Warnings {
		fmt.Printf("  %s %s\n", style.WarningStyle.Render("⚠"), warning)
	}
}
