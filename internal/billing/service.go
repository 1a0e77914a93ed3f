package billing

import (
	"context"
	"fmt"
	"strings"

	"github.com/hjps/approvalctl/internal/hubspot"
)

// NumberType selects which timesheet property a generated number is written to.
type NumberType string

const (
	NumberTypeInvoice NumberType = "invoice"
	NumberTypeBill    NumberType = "bill"
)

func (t NumberType) property() string {
	if t == NumberTypeBill {
		return "bill_number"
	}
	return "invoice_number"
}

// Gateway is the record-store surface billing needs: the approval for its
// billing anchors, the timesheets for the sequential counter, and the batch
// update to stamp the generated number.
type Gateway interface {
	GetApproval(ctx context.Context, identifier string) (*hubspot.Approval, error)
	GetTimesheetsBatch(ctx context.Context, ids []string) ([]hubspot.Timesheet, error)
	UpdateTimesheetsBatch(ctx context.Context, updates []hubspot.TimesheetUpdate) ([]hubspot.Timesheet, error)
}

// Result reports one generated number and the timesheets it was written to.
type Result struct {
	Type         NumberType `json:"type"`
	Number       string     `json:"number"`
	TimesheetIDs []string   `json:"timesheetIds"`
	UpdatedCount int        `json:"updatedCount"`
}

// Service generates invoice and bill numbers for an approved timesheet batch.
type Service struct {
	gateway Gateway
}

func NewService(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// Generate builds the number for one approval and writes it to every
// timesheet in the approval's batch.
func (s *Service) Generate(ctx context.Context, approvalID string, numberType NumberType) (*Result, error) {
	approval, err := s.gateway.GetApproval(ctx, approvalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load approval %s: %w", approvalID, err)
	}

	p := approval.Properties
	if p.ResponseTimesheetIDs == "" {
		return nil, fmt.Errorf("approval %s has no response timesheet IDs", approvalID)
	}
	if p.ResponseFromDate == "" || p.ResponseUntilDate == "" {
		return nil, fmt.Errorf("approval %s is missing the response date range", approvalID)
	}
	if p.PrimaryContactID == "" {
		return nil, fmt.Errorf("approval %s is missing the customer primary contact ID", approvalID)
	}

	timesheetIDs := splitIDs(p.ResponseTimesheetIDs)
	if len(timesheetIDs) == 0 {
		return nil, fmt.Errorf("approval %s has no valid timesheet IDs", approvalID)
	}

	timesheets, err := s.gateway.GetTimesheetsBatch(ctx, timesheetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load timesheets for approval %s: %w", approvalID, err)
	}
	if len(timesheets) == 0 {
		return nil, fmt.Errorf("no timesheet records found for approval %s", approvalID)
	}

	// The sequential counter lives on the timesheets, one value per batch.
	counter := timesheets[0].Properties.InvoiceCounter
	if counter == "" {
		return nil, fmt.Errorf("timesheet %s is missing the invoice counter", timesheets[0].ID)
	}

	number, err := FormatNumber(counter, p.PrimaryContactID, p.ResponseFromDate, p.ResponseUntilDate)
	if err != nil {
		return nil, fmt.Errorf("failed to format %s number for approval %s: %w", numberType, approvalID, err)
	}

	updates := make([]hubspot.TimesheetUpdate, 0, len(timesheetIDs))
	for _, id := range timesheetIDs {
		updates = append(updates, hubspot.TimesheetUpdate{
			ID:         id,
			Properties: map[string]string{numberType.property(): number},
		})
	}

	updated, err := s.gateway.UpdateTimesheetsBatch(ctx, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s number to timesheets: %w", numberType, err)
	}

	return &Result{
		Type:         numberType,
		Number:       number,
		TimesheetIDs: timesheetIDs,
		UpdatedCount: len(updated),
	}, nil
}

func splitIDs(raw string) []string {
	var ids []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			ids = append(ids, token)
		}
	}
	return ids
}
