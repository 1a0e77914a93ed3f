package hubspot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var approvalPropertyNames = []string{
	"approval_request_id",
	"approval_project_id",
	"project_name",
	"approval_customer",
	"approval_operator",
	"approval_wells",
	"approval_consultant_name",
	"approval_consultant_id",
	"approval_consultant_email",
	"approval_approver_name",
	"approval_approver_email",
	"approval_approver_is_",
	"approval_from_date",
	"approval_until_date",
	"approval_approval_from",
	"approval_approval_until",
	"approval_hj_task_id",
	"approval_timesheet_ids_array",
	"response_approval_timesheet_ids_array",
	"quote_customer_primary_contact_id",
	"response_approval_sales_deal_id",
	"signature_new",
	"consultant_timesheet_approval_url",
	"response_approval_from_date",
	"response_approval_until_date",
}

// GetApproval retrieves an approval by its record ID. When the direct lookup
// misses, it falls back to a secondary-index search treating the identifier as
// the business-facing approval_request_id. Returns ErrNotFound when both paths
// miss.
func (c *Client) GetApproval(ctx context.Context, identifier string) (*Approval, error) {
	params := url.Values{}
	params.Set("properties", strings.Join(approvalPropertyNames, ","))

	var approval Approval
	err := c.getJSON(ctx, c.objectPath(c.cfg.ApprovalObjectType)+"/"+url.PathEscape(identifier), params, &approval)
	if err == nil {
		c.debugf("retrieved approval %s by record ID", approval.ID)
		return &approval, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	c.debugf("approval %q not found by record ID, searching by approval_request_id", identifier)

	resp, err := c.searchObjects(ctx, c.cfg.ApprovalObjectType,
		equalitySearch("approval_request_id", identifier, approvalPropertyNames, 1))
	if err != nil {
		return nil, fmt.Errorf("approval search by request ID %q: %w", identifier, err)
	}
	if len(resp.Results) == 0 {
		return nil, ErrNotFound
	}

	if err := json.Unmarshal(resp.Results[0], &approval); err != nil {
		return nil, fmt.Errorf("failed to decode approval search result: %w", err)
	}

	c.debugf("approval %s found via request-ID search", approval.ID)
	return &approval, nil
}

// UpdateApproval patches properties on an approval record.
func (c *Client) UpdateApproval(ctx context.Context, id string, properties map[string]string) (*Approval, error) {
	payload := struct {
		Properties map[string]string `json:"properties"`
	}{Properties: properties}

	var approval Approval
	if err := c.patchJSON(ctx, c.objectPath(c.cfg.ApprovalObjectType)+"/"+url.PathEscape(id), payload, &approval); err != nil {
		return nil, fmt.Errorf("failed to update approval %s: %w", id, err)
	}

	c.debugf("updated approval %s (%d properties)", id, len(properties))
	return &approval, nil
}
