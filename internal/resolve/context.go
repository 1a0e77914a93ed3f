package resolve

import "strings"

// Context is the single mutable aggregate produced by one resolution. Every
// relationship is flattened to plain string IDs or copied scalars; nothing in
// here points back into the record store.
type Context struct {
	ApprovalURL       string `json:"approvalUrl,omitempty"`
	ApprovalObjectID  string `json:"approvalObjectId,omitempty"`
	ApprovalRequestID string `json:"approvalRequestId,omitempty"`

	ProjectID   string `json:"projectId,omitempty"`
	ProjectName string `json:"projectName,omitempty"`

	ConsultantID          string `json:"consultantId,omitempty"`
	ConsultantIDEncrypted string `json:"consultantIdEncrypted,omitempty"`
	ConsultantName        string `json:"consultantName,omitempty"`
	ConsultantEmail       string `json:"consultantEmail,omitempty"`

	ContactID          string `json:"contactId,omitempty"`
	ApproverContactID  string `json:"approverContactId,omitempty"`
	ApproverEmail      string `json:"approverEmail,omitempty"`
	ApproverName       string `json:"approverName,omitempty"`
	ApproverType       string `json:"approverType,omitempty"`
	CustomerEmail      string `json:"customerEmail,omitempty"`

	SalesDealID        string `json:"salesDealId,omitempty"`
	DealAmount         string `json:"dealAmount,omitempty"`
	SalesDealOwnerName string `json:"salesDealOwnerName,omitempty"`
	SalesDealOwnerEmail string `json:"salesDealOwnerEmail,omitempty"`

	CustomerCompanyID     string `json:"customerCompanyId,omitempty"`
	CustomerCompanyName   string `json:"customerCompanyName,omitempty"`
	CustomerCompanyDomain string `json:"customerCompanyDomain,omitempty"`

	OperatorName string `json:"operatorName,omitempty"`
	WellNames    string `json:"wellNames,omitempty"`

	ApprovalTimesheetIDs []string `json:"approvalTimesheetIds,omitempty"`

	ResponseFromDate  string `json:"responseFromDate,omitempty"`
	ResponseUntilDate string `json:"responseUntilDate,omitempty"`
	// Legacy aliases kept in step with the response dates; older templates
	// still read these names.
	ApprovalFromDate  string `json:"approvalFromDate,omitempty"`
	ApprovalUntilDate string `json:"approvalUntilDate,omitempty"`

	QuoteCustomerPrimaryContactID string `json:"quoteCustomerPrimaryContactId,omitempty"`
	Signature                     string `json:"signature,omitempty"`
	ConsultantApprovalURL         string `json:"consultantApprovalUrl,omitempty"`

	// SourceNotes is an append-only audit trail of which fallback paths fired.
	SourceNotes []string `json:"sourceNotes,omitempty"`
}

// setIfAbsent writes value into target only when target is still empty.
// Every enrichment step goes through this one combinator so the
// first-non-empty-wins invariant holds everywhere.
func setIfAbsent(target *string, value string) {
	if *target == "" && value != "" {
		*target = value
	}
}

// AddNote appends a diagnostic note recording a fallback path.
func (c *Context) AddNote(note string) {
	c.SourceNotes = append(c.SourceNotes, note)
}

// SetTimesheetIDs parses a delimited ID string into trimmed, non-empty tokens
// and adopts them only when no list has been set yet. Re-parsing an
// already-set list is a no-op.
func (c *Context) SetTimesheetIDs(raw string) {
	if len(c.ApprovalTimesheetIDs) > 0 || raw == "" {
		return
	}
	c.ApprovalTimesheetIDs = splitIDList(raw)
}

func splitIDList(raw string) []string {
	var ids []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			ids = append(ids, token)
		}
	}
	return ids
}
