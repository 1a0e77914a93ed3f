package hubspot

// Approval is the root business object of a timesheet-approval workflow.
type Approval struct {
	ID         string             `json:"id"`
	Properties ApprovalProperties `json:"properties"`
}

type ApprovalProperties struct {
	RequestID             string `json:"approval_request_id"`
	ProjectID             string `json:"approval_project_id"`
	ProjectName           string `json:"project_name"`
	Customer              string `json:"approval_customer"`
	Operator              string `json:"approval_operator"`
	Wells                 string `json:"approval_wells"`
	ConsultantName        string `json:"approval_consultant_name"`
	ConsultantID          string `json:"approval_consultant_id"`
	ConsultantEmail       string `json:"approval_consultant_email"`
	ApproverName          string `json:"approval_approver_name"`
	ApproverEmail         string `json:"approval_approver_email"`
	ApproverIs            string `json:"approval_approver_is_"`
	FromDate              string `json:"approval_from_date"`
	UntilDate             string `json:"approval_until_date"`
	ApprovalFrom          string `json:"approval_approval_from"`
	ApprovalUntil         string `json:"approval_approval_until"`
	TaskID                string `json:"approval_hj_task_id"`
	TimesheetIDs          string `json:"approval_timesheet_ids_array"`
	ResponseTimesheetIDs  string `json:"response_approval_timesheet_ids_array"`
	PrimaryContactID      string `json:"quote_customer_primary_contact_id"`
	SalesDealID           string `json:"response_approval_sales_deal_id"`
	Signature             string `json:"signature_new"`
	ConsultantApprovalURL string `json:"consultant_timesheet_approval_url"`
	ResponseFromDate      string `json:"response_approval_from_date"`
	ResponseUntilDate     string `json:"response_approval_until_date"`
}

// Timesheet is one billable line item belonging to an approval.
type Timesheet struct {
	ID         string              `json:"id"`
	Properties TimesheetProperties `json:"properties"`
}

type TimesheetProperties struct {
	ProjectName        string `json:"timesheet_project_name"`
	Customer           string `json:"timesheet_customer"`
	Operator           string `json:"timesheet_operator"`
	ConsultantID       string `json:"timesheet_consultant_id"`
	ConsultantEmail    string `json:"timesheet_consultant_email"`
	ConsultantFullName string `json:"timesheet_consultant_full_name"`
	Well               string `json:"timesheet_well"`
	Role               string `json:"timesheet_role"`
	JobService         string `json:"timesheet_job_service"`
	BillingFrequency   string `json:"timesheet_billing_frequency"`
	HJPrice            string `json:"timesheet_hj_price"`
	Price              string `json:"timesheet_price"`
	Quantity           string `json:"timesheet_quantity"`
	HJTotalPrice       string `json:"timesheet_hj_total_price"`
	TotalPrice         string `json:"timesheet_total_price"`
	StartDate          string `json:"timesheet_start_date"`
	EndDate            string `json:"timesheet_end_date"`
	StartTime          string `json:"timesheet_start_time"`
	EndTime            string `json:"timesheet_end_time"`
	OrdinalNumber      string `json:"timesheet_ordinal_number"`
	PaymentDealID      string `json:"timesheet_payment_deal_id"`
	ProjectID          string `json:"timesheet_project_id"`
	ApprovalRequestID  string `json:"timesheet_approval_request_id"`
	InvoiceCounter     string `json:"invoice_number_second_part"`
}

// TimesheetUpdate is one entry of a batch timesheet update.
type TimesheetUpdate struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// Project is the record owning a timesheet-approval workflow's commercial context.
type Project struct {
	ID         string            `json:"id"`
	Properties ProjectProperties `json:"properties"`
}

type ProjectProperties struct {
	ProjectID              string `json:"hj_project_id"`
	ProjectName            string `json:"hj_project_name"`
	IsLocked               string `json:"hj_project_is_locked"`
	Class                  string `json:"hj_class"`
	Terms                  string `json:"hj_terms"`
	Taxable                string `json:"hj_taxable"`
	Customer               string `json:"hj_customer"`
	CustomerID             string `json:"hj_customer_id"`
	Operator               string `json:"hj_operator"`
	OperatorID             string `json:"hj_operator_id"`
	PrimaryContactID       string `json:"hj_primary_contact_id"`
	PrimaryContactEmail    string `json:"hj_primary_contact_email"`
	PrimaryContactName     string `json:"hj_primary_contact_name"`
	ApproverID             string `json:"hj_approver_id"`
	ApproverEmail          string `json:"hj_approver_email"`
	ApproverName           string `json:"hj_approver_name"`
	ApproverIs             string `json:"hj_approver_is"`
	SalesDealOwnerContact  string `json:"hj_sales_deal_owner_contact_id"`
	SalesDealOwnerEmail    string `json:"hj_sales_deal_owner_email"`
	SalesDealOwnerName     string `json:"hj_sales_deal_owner_name"`
	SalesDealRecordID      string `json:"hj_sales_deal_record_id"`
	CustomerCompanyID      string `json:"hj_customer_company_id"`
	OperatorName           string `json:"hj_operator_name"`
}

// Contact is a CRM person record; may or may not be the designated approver.
type Contact struct {
	ID         string            `json:"id"`
	Properties ContactProperties `json:"properties"`
}

type ContactProperties struct {
	Email     string `json:"email"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	OwnerID   string `json:"hubspot_owner_id"`
}

// Deal is the commercial sales deal linked to a project.
type Deal struct {
	ID           string           `json:"id"`
	Properties   DealProperties   `json:"properties"`
	Associations DealAssociations `json:"associations"`
}

type DealProperties struct {
	Name            string `json:"dealname"`
	Amount          string `json:"amount"`
	Stage           string `json:"dealstage"`
	CloseDate       string `json:"closedate"`
	Owner           string `json:"owner"`
	ProjectUniqueID string `json:"project_unique_id"`
}

type DealAssociations struct {
	Contacts AssociationList `json:"contacts"`
}

type AssociationList struct {
	Results []AssociationEdge `json:"results"`
}

// AssociationEdge is one deal-to-contact link. Type and Label carry the
// association category; AssociationTypeID is the numeric form used by
// portal-specific custom labels.
type AssociationEdge struct {
	ID                string `json:"id"`
	Type              string `json:"type"`
	Label             string `json:"label"`
	AssociationTypeID int64  `json:"associationTypeId"`
}

// Company is the customer company record.
type Company struct {
	ID         string            `json:"id"`
	Properties CompanyProperties `json:"properties"`
}

type CompanyProperties struct {
	Name     string `json:"name"`
	Domain   string `json:"domain"`
	Industry string `json:"industry"`
	Phone    string `json:"phone"`
}

// Note is an engagement record attached to other objects for audit purposes.
type Note struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// NoteInput is the payload for creating a note.
type NoteInput struct {
	Properties   map[string]string `json:"properties"`
	Associations []NoteAssociation `json:"associations,omitempty"`
}

type NoteAssociation struct {
	To    NoteAssociationTarget `json:"to"`
	Types []NoteAssociationType `json:"types"`
}

type NoteAssociationTarget struct {
	ID string `json:"id"`
}

type NoteAssociationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int64  `json:"associationTypeId"`
}
