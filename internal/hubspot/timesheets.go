package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
)

var timesheetPropertyNames = []string{
	"timesheet_project_name",
	"timesheet_customer",
	"timesheet_operator",
	"timesheet_consultant_id",
	"timesheet_consultant_email",
	"timesheet_consultant_full_name",
	"timesheet_well",
	"timesheet_role",
	"timesheet_job_service",
	"timesheet_billing_frequency",
	"timesheet_hj_price",
	"timesheet_price",
	"timesheet_quantity",
	"timesheet_hj_total_price",
	"timesheet_total_price",
	"timesheet_start_date",
	"timesheet_end_date",
	"timesheet_start_time",
	"timesheet_end_time",
	"timesheet_ordinal_number",
	"timesheet_payment_deal_id",
	"timesheet_project_id",
	"timesheet_approval_request_id",
	"invoice_number_second_part",
}

type batchReadInput struct {
	ID string `json:"id"`
}

type batchReadRequest struct {
	Properties []string         `json:"properties"`
	Inputs     []batchReadInput `json:"inputs"`
}

type timesheetBatchResponse struct {
	Status  string      `json:"status"`
	Results []Timesheet `json:"results"`
}

// GetTimesheetsBatch reads timesheet records in one batch call. Entries that
// fail individually are dropped from the result rather than failing the batch.
func (c *Client) GetTimesheetsBatch(ctx context.Context, ids []string) ([]Timesheet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	inputs := make([]batchReadInput, 0, len(ids))
	for _, id := range ids {
		inputs = append(inputs, batchReadInput{ID: id})
	}

	var resp timesheetBatchResponse
	err := c.postJSON(ctx, c.objectPath(c.cfg.TimesheetObjectType)+"/batch/read",
		batchReadRequest{Properties: timesheetPropertyNames, Inputs: inputs}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to batch-read timesheets: %w", err)
	}

	// Entries without an ID are error placeholders from a partial batch.
	timesheets := make([]Timesheet, 0, len(resp.Results))
	for _, ts := range resp.Results {
		if ts.ID != "" {
			timesheets = append(timesheets, ts)
		}
	}

	c.debugf("batch-read timesheets: requested %d, returned %d", len(ids), len(timesheets))
	return timesheets, nil
}

// SearchTimesheetsByApprovalRequestID returns the IDs of timesheets whose own
// approval-request property matches the given ID. Search failures are logged
// and reported as an empty result; absence is a sentinel here, not an error.
func (c *Client) SearchTimesheetsByApprovalRequestID(ctx context.Context, approvalRequestID string) []string {
	if approvalRequestID == "" {
		return nil
	}

	resp, err := c.searchObjects(ctx, c.cfg.TimesheetObjectType,
		equalitySearch("timesheet_approval_request_id", approvalRequestID, []string{"hs_object_id"}, 100))
	if err != nil {
		c.debugf("timesheet search by approval request %q failed: %v", approvalRequestID, err)
		return nil
	}

	ids := make([]string, 0, len(resp.Results))
	for _, raw := range resp.Results {
		var record struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(raw, &record); err != nil {
			continue
		}
		if record.ID != "" {
			ids = append(ids, record.ID)
		}
	}

	c.debugf("timesheet search by approval request %q returned %d ID(s)", approvalRequestID, len(ids))
	return ids
}

type batchUpdateRequest struct {
	Inputs []TimesheetUpdate `json:"inputs"`
}

// UpdateTimesheetsBatch patches properties on multiple timesheets in one call.
func (c *Client) UpdateTimesheetsBatch(ctx context.Context, updates []TimesheetUpdate) ([]Timesheet, error) {
	if len(updates) == 0 {
		return nil, nil
	}

	var resp timesheetBatchResponse
	err := c.postJSON(ctx, c.objectPath(c.cfg.TimesheetObjectType)+"/batch/update",
		batchUpdateRequest{Inputs: updates}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to batch-update timesheets: %w", err)
	}

	updated := make([]Timesheet, 0, len(resp.Results))
	for _, ts := range resp.Results {
		if ts.ID != "" {
			updated = append(updated, ts)
		}
	}

	c.debugf("batch-updated timesheets: requested %d, updated %d", len(updates), len(updated))
	return updated, nil
}
