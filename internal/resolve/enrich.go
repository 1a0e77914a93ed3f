package resolve

import (
	"strconv"
	"strings"

	"github.com/hjps/approvalctl/internal/hubspot"
)

// fieldAssignment maps one source property value onto one or more context
// fields. A single property may fan out, e.g. the approval-from property
// feeds both the response date and its legacy alias.
type fieldAssignment struct {
	value   string
	targets []*string
}

func applyAssignments(assignments []fieldAssignment) {
	for _, a := range assignments {
		for _, target := range a.targets {
			setIfAbsent(target, a.value)
		}
	}
}

// enrichFromApproval copies approval properties into the context under the
// first-non-empty-wins rule.
func enrichFromApproval(c *Context, approval *hubspot.Approval) {
	p := approval.Properties

	applyAssignments([]fieldAssignment{
		{p.RequestID, []*string{&c.ApprovalRequestID}},
		{p.ProjectID, []*string{&c.ProjectID}},
		{p.ProjectName, []*string{&c.ProjectName}},
		{p.Customer, []*string{&c.CustomerCompanyName}},
		{p.Operator, []*string{&c.OperatorName}},
		{p.ConsultantName, []*string{&c.ConsultantName}},
		{p.ConsultantID, []*string{&c.ConsultantID}},
		{p.ConsultantEmail, []*string{&c.ConsultantEmail}},
		{p.ApproverEmail, []*string{&c.ApproverEmail}},
		{p.ApproverName, []*string{&c.ApproverName}},
		{p.ApproverIs, []*string{&c.ApproverType}},
		{p.SalesDealID, []*string{&c.SalesDealID}},
		{p.Wells, []*string{&c.WellNames}},
		{p.ApprovalFrom, []*string{&c.ResponseFromDate, &c.ApprovalFromDate}},
		{p.ApprovalUntil, []*string{&c.ResponseUntilDate, &c.ApprovalUntilDate}},
		{p.PrimaryContactID, []*string{&c.ContactID, &c.QuoteCustomerPrimaryContactID}},
		{p.Signature, []*string{&c.Signature}},
		{p.ConsultantApprovalURL, []*string{&c.ConsultantApprovalURL}},
	})

	c.SetTimesheetIDs(p.TimesheetIDs)
	c.SetTimesheetIDs(p.ResponseTimesheetIDs)
}

// enrichFromTimesheets opportunistically fills still-empty fields from each
// timesheet, and aggregates the well-name list and the min/max date range
// across the whole batch. Non-numeric dates are skipped.
func enrichFromTimesheets(c *Context, timesheets []hubspot.Timesheet) {
	if len(timesheets) == 0 {
		return
	}

	var wells []string
	seen := make(map[string]bool)
	var minStart, maxEnd int64
	haveStart, haveEnd := false, false

	for _, ts := range timesheets {
		p := ts.Properties

		if well := strings.TrimSpace(p.Well); well != "" && !seen[well] {
			seen[well] = true
			wells = append(wells, well)
		}

		applyAssignments([]fieldAssignment{
			{p.ProjectName, []*string{&c.ProjectName}},
			{p.ProjectID, []*string{&c.ProjectID}},
			{p.ConsultantFullName, []*string{&c.ConsultantName}},
			{p.ConsultantEmail, []*string{&c.ConsultantEmail}},
			{p.ConsultantID, []*string{&c.ConsultantID}},
			{p.Customer, []*string{&c.CustomerCompanyName}},
			{p.Operator, []*string{&c.OperatorName}},
			{p.PaymentDealID, []*string{&c.SalesDealID}},
		})

		if start, err := strconv.ParseInt(p.StartDate, 10, 64); err == nil {
			if !haveStart || start < minStart {
				minStart = start
			}
			haveStart = true
		}
		if end, err := strconv.ParseInt(p.EndDate, 10, 64); err == nil {
			if !haveEnd || end > maxEnd {
				maxEnd = end
			}
			haveEnd = true
		}
	}

	if len(wells) > 0 {
		setIfAbsent(&c.WellNames, strings.Join(wells, ", "))
	}
	if haveStart {
		setIfAbsent(&c.ResponseFromDate, strconv.FormatInt(minStart, 10))
	}
	if haveEnd {
		setIfAbsent(&c.ResponseUntilDate, strconv.FormatInt(maxEnd, 10))
	}
}

// enrichFromProject copies project properties and resolves the approver
// contact, preferring the project-level approver reference over the primary
// contact when both exist.
func enrichFromProject(c *Context, project *hubspot.Project) {
	p := project.Properties

	applyAssignments([]fieldAssignment{
		{p.ProjectName, []*string{&c.ProjectName}},
		{p.SalesDealRecordID, []*string{&c.SalesDealID}},
		{p.SalesDealOwnerName, []*string{&c.SalesDealOwnerName}},
		{p.SalesDealOwnerEmail, []*string{&c.SalesDealOwnerEmail}},
		{p.CustomerCompanyID, []*string{&c.CustomerCompanyID}},
		{p.OperatorName, []*string{&c.OperatorName}},
		{p.PrimaryContactID, []*string{&c.ContactID}},
		{p.ApproverEmail, []*string{&c.ApproverEmail}},
		{p.ApproverName, []*string{&c.ApproverName}},
		{p.ApproverIs, []*string{&c.ApproverType}},
	})

	approverContactID := p.ApproverID
	if approverContactID == "" {
		approverContactID = p.PrimaryContactID
	}
	setIfAbsent(&c.ApproverContactID, approverContactID)
}

// enrichFromContact fills customer-facing fields. The contact also fills
// approver-prefixed fields when it is, or may still become, the designated
// approver.
func enrichFromContact(c *Context, contact *hubspot.Contact) {
	p := contact.Properties

	setIfAbsent(&c.CustomerEmail, p.Email)
	if p.FirstName != "" && p.LastName != "" {
		setIfAbsent(&c.OperatorName, p.FirstName+" "+p.LastName)
	}

	isDesignatedApprover := c.ApproverContactID == "" || c.ApproverContactID == contact.ID
	if !isDesignatedApprover {
		return
	}

	setIfAbsent(&c.ApproverEmail, p.Email)

	fullName := strings.TrimSpace(strings.Join(nonEmpty(p.FirstName, p.LastName), " "))
	setIfAbsent(&c.ApproverName, fullName)
	setIfAbsent(&c.ApproverContactID, contact.ID)
}

// enrichFromDeal copies deal name/amount fields and scans contact association
// edges for one flagged as approver, by category, by label, or by one of the
// configured association type IDs.
func enrichFromDeal(c *Context, deal *hubspot.Deal, approverTypeIDs []string) {
	p := deal.Properties

	applyAssignments([]fieldAssignment{
		{p.Name, []*string{&c.ProjectName}},
		{p.ProjectUniqueID, []*string{&c.ProjectID}},
		{p.Amount, []*string{&c.DealAmount}},
	})

	approverContactID := findApproverAssociation(deal.Associations.Contacts.Results, approverTypeIDs)
	if approverContactID != "" {
		setIfAbsent(&c.ApproverContactID, approverContactID)
		setIfAbsent(&c.ContactID, approverContactID)
	}
}

func findApproverAssociation(edges []hubspot.AssociationEdge, approverTypeIDs []string) string {
	for _, edge := range edges {
		if strings.EqualFold(edge.Type, "approver") || strings.EqualFold(edge.Label, "approver") {
			return edge.ID
		}
		typeID := strconv.FormatInt(edge.AssociationTypeID, 10)
		for _, configured := range approverTypeIDs {
			if configured == typeID {
				return edge.ID
			}
		}
	}
	return ""
}

// enrichFromCompany copies company name/domain.
func enrichFromCompany(c *Context, company *hubspot.Company) {
	p := company.Properties
	setIfAbsent(&c.CustomerCompanyName, p.Name)
	setIfAbsent(&c.CustomerCompanyDomain, p.Domain)
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
