package resolve

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hjps/approvalctl/internal/config"
	"github.com/hjps/approvalctl/internal/hubspot"
)

// fakeGateway is a configurable Gateway double that counts calls per method.
type fakeGateway struct {
	approval  *hubspot.Approval
	approvalErr error

	timesheets    []hubspot.Timesheet
	timesheetsErr error

	searchIDs []string

	project    *hubspot.Project
	projectErr error

	contacts   map[string]*hubspot.Contact
	contactErr error

	deal    *hubspot.Deal
	dealErr error

	company    *hubspot.Company
	companyErr error

	calls map[string]int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{calls: make(map[string]int), contacts: make(map[string]*hubspot.Contact)}
}

func (f *fakeGateway) GetApproval(ctx context.Context, identifier string) (*hubspot.Approval, error) {
	f.calls["GetApproval"]++
	if f.approvalErr != nil {
		return nil, f.approvalErr
	}
	if f.approval == nil {
		return nil, hubspot.ErrNotFound
	}
	return f.approval, nil
}

func (f *fakeGateway) GetTimesheetsBatch(ctx context.Context, ids []string) ([]hubspot.Timesheet, error) {
	f.calls["GetTimesheetsBatch"]++
	if f.timesheetsErr != nil {
		return nil, f.timesheetsErr
	}
	return f.timesheets, nil
}

func (f *fakeGateway) SearchTimesheetsByApprovalRequestID(ctx context.Context, approvalRequestID string) []string {
	f.calls["SearchTimesheets"]++
	return f.searchIDs
}

func (f *fakeGateway) GetProject(ctx context.Context, projectID string) (*hubspot.Project, error) {
	f.calls["GetProject"]++
	if f.projectErr != nil {
		return nil, f.projectErr
	}
	if f.project == nil {
		return nil, hubspot.ErrNotFound
	}
	return f.project, nil
}

func (f *fakeGateway) GetContact(ctx context.Context, contactID string) (*hubspot.Contact, error) {
	f.calls["GetContact"]++
	if f.contactErr != nil {
		return nil, f.contactErr
	}
	if contact, ok := f.contacts[contactID]; ok {
		return contact, nil
	}
	return nil, hubspot.ErrNotFound
}

func (f *fakeGateway) GetDeal(ctx context.Context, dealID string) (*hubspot.Deal, error) {
	f.calls["GetDeal"]++
	if f.dealErr != nil {
		return nil, f.dealErr
	}
	if f.deal == nil {
		return nil, hubspot.ErrNotFound
	}
	return f.deal, nil
}

func (f *fakeGateway) GetCompany(ctx context.Context, companyID string) (*hubspot.Company, error) {
	f.calls["GetCompany"]++
	if f.companyErr != nil {
		return nil, f.companyErr
	}
	if f.company == nil {
		return nil, hubspot.ErrNotFound
	}
	return f.company, nil
}

func testResolver(gw Gateway) *Resolver {
	return NewResolver(gw, &config.Config{
		ConsultantIDOffset:  config.DefaultConsultantIDOffset,
		ProjectIDProperties: []string{"hj_project_id", "project_unique_id"},
	})
}

func TestResolveFullPipeline(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID: "ap-1",
		Properties: hubspot.ApprovalProperties{
			RequestID:    "REQ-77",
			ProjectID:    "HJP-0042",
			TimesheetIDs: "ts-1,ts-2",
		},
	}
	gw.timesheets = []hubspot.Timesheet{
		{ID: "ts-1", Properties: hubspot.TimesheetProperties{
			Well:      "Well A",
			StartDate: "100",
			EndDate:   "200",
		}},
	}
	gw.project = &hubspot.Project{
		ID: "pr-1",
		Properties: hubspot.ProjectProperties{
			ProjectName:       "North Ridge",
			ApproverID:        "ct-approver",
			SalesDealRecordID: "deal-1",
			CustomerCompanyID: "co-1",
		},
	}
	gw.contacts["ct-approver"] = &hubspot.Contact{
		ID: "ct-approver",
		Properties: hubspot.ContactProperties{
			Email:     "approver@acme.com",
			FirstName: "Jane",
			LastName:  "Doe",
		},
	}
	gw.deal = &hubspot.Deal{
		ID:         "deal-1",
		Properties: hubspot.DealProperties{Amount: "125000"},
	}
	gw.company = &hubspot.Company{
		ID:         "co-1",
		Properties: hubspot.CompanyProperties{Name: "Acme Energy", Domain: "acme.com"},
	}

	resolved, err := testResolver(gw).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})
	require.NoError(t, err)

	assert.Equal(t, "ap-1", resolved.ApprovalObjectID)
	assert.Equal(t, []string{"ts-1", "ts-2"}, resolved.ApprovalTimesheetIDs)
	assert.Equal(t, "Well A", resolved.WellNames)
	assert.Equal(t, "North Ridge", resolved.ProjectName)
	assert.Equal(t, "deal-1", resolved.SalesDealID)
	assert.Equal(t, "125000", resolved.DealAmount)
	assert.Equal(t, "approver@acme.com", resolved.ApproverEmail)
	assert.Equal(t, "Jane Doe", resolved.ApproverName)
	assert.Equal(t, "Acme Energy", resolved.CustomerCompanyName)
	assert.Equal(t, "acme.com", resolved.CustomerCompanyDomain)

	// Forward reference present, so the discovery search never fires.
	assert.Zero(t, gw.calls["SearchTimesheets"])
}

func TestResolveTimesheetDiscoveryFallback(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID:         "ap-1",
		Properties: hubspot.ApprovalProperties{RequestID: "REQ-77"},
	}
	gw.searchIDs = []string{"ts1", "ts2"}
	gw.timesheets = []hubspot.Timesheet{{ID: "ts1"}, {ID: "ts2"}}

	resolved, err := testResolver(gw).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})
	require.NoError(t, err)

	assert.Equal(t, []string{"ts1", "ts2"}, resolved.ApprovalTimesheetIDs)
	require.Len(t, resolved.SourceNotes, 1)
	assert.Equal(t, "Timesheet IDs discovered via approval request search", resolved.SourceNotes[0])
	assert.Equal(t, 1, gw.calls["SearchTimesheets"])
}

func TestResolveConditionalProjectFetchElision(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID:         "ap-1",
		Properties: hubspot.ApprovalProperties{RequestID: "REQ-77"},
	}

	seed := &Context{
		ApprovalRequestID: "REQ-77",
		ProjectID:         "HJP-0042",
		ApproverEmail:     "approver@acme.com",
		ApproverName:      "Jane Doe",
		ApproverType:      "PrimaryContact",
		SalesDealID:       "deal-1",
	}

	_, err := testResolver(gw).Resolve(context.Background(), seed)
	require.NoError(t, err)

	assert.Zero(t, gw.calls["GetProject"], "project fetch should be elided when nothing is missing")
}

func TestResolvePrecedenceInvariant(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID: "ap-1",
		Properties: hubspot.ApprovalProperties{
			RequestID:   "REQ-77",
			ProjectName: "Approval Project Name",
			ProjectID:   "HJP-0042",
		},
	}
	gw.project = &hubspot.Project{
		ID:         "pr-1",
		Properties: hubspot.ProjectProperties{ProjectName: "Project Record Name"},
	}

	seed := &Context{ApprovalRequestID: "REQ-77", ProjectName: "Seed Project Name"}
	resolved, err := testResolver(gw).Resolve(context.Background(), seed)
	require.NoError(t, err)

	assert.Equal(t, "Seed Project Name", resolved.ProjectName)
}

func TestResolveIdempotent(t *testing.T) {
	makeGateway := func() *fakeGateway {
		gw := newFakeGateway()
		gw.approval = &hubspot.Approval{
			ID: "ap-1",
			Properties: hubspot.ApprovalProperties{
				RequestID:    "REQ-77",
				ProjectID:    "HJP-0042",
				TimesheetIDs: "ts-1",
			},
		}
		gw.timesheets = []hubspot.Timesheet{
			{ID: "ts-1", Properties: hubspot.TimesheetProperties{Well: "Well A", PaymentDealID: "deal-1"}},
		}
		gw.deal = &hubspot.Deal{ID: "deal-1", Properties: hubspot.DealProperties{Amount: "9000"}}
		return gw
	}

	first, err := testResolver(makeGateway()).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})
	require.NoError(t, err)
	second, err := testResolver(makeGateway()).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveNotFoundTolerance(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID: "ap-1",
		Properties: hubspot.ApprovalProperties{
			RequestID: "REQ-77",
			ProjectID: "HJP-0042",
			SalesDealID: "deal-1",
		},
	}
	// Project, deal and company lookups all miss.
	gw.project = nil
	gw.deal = nil
	gw.companyErr = hubspot.ErrNotFound

	seed := &Context{ApprovalRequestID: "REQ-77", CustomerCompanyID: "co-404"}
	resolved, err := testResolver(gw).Resolve(context.Background(), seed)
	require.NoError(t, err)

	assert.Empty(t, resolved.CustomerCompanyName)
	assert.Empty(t, resolved.CustomerCompanyDomain)
}

func TestResolveUpstreamFailureAborts(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID:         "ap-1",
		Properties: hubspot.ApprovalProperties{RequestID: "REQ-77", ProjectID: "HJP-0042"},
	}
	gw.projectErr = fmt.Errorf("authentication failed (status 401): invalid token")

	_, err := testResolver(gw).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, "project", stageErr.Stage)
	assert.Equal(t, "REQ-77", stageErr.ApprovalRequestID)
	assert.Equal(t, "HJP-0042", stageErr.ProjectID)
}

func TestResolveApprovalNotFoundContinues(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = nil
	gw.searchIDs = []string{"ts-1"}
	gw.timesheets = []hubspot.Timesheet{
		{ID: "ts-1", Properties: hubspot.TimesheetProperties{ProjectName: "Recovered Project"}},
	}

	resolved, err := testResolver(gw).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})
	require.NoError(t, err)

	assert.Equal(t, "Recovered Project", resolved.ProjectName)
	assert.Equal(t, []string{"ts-1"}, resolved.ApprovalTimesheetIDs)
}

func TestResolveDealApproverContactNotRefetched(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID: "ap-1",
		Properties: hubspot.ApprovalProperties{
			RequestID:        "REQ-77",
			SalesDealID:      "deal-1",
			PrimaryContactID: "ct-1",
		},
	}
	gw.contacts["ct-1"] = &hubspot.Contact{
		ID:         "ct-1",
		Properties: hubspot.ContactProperties{Email: "jane@acme.com", FirstName: "Jane", LastName: "Doe"},
	}
	gw.deal = &hubspot.Deal{
		ID: "deal-1",
		Associations: hubspot.DealAssociations{
			Contacts: hubspot.AssociationList{Results: []hubspot.AssociationEdge{
				{ID: "ct-1", Label: "Approver"},
			}},
		},
	}

	_, err := testResolver(gw).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})
	require.NoError(t, err)

	// Contact stage loaded ct-1; the deal stage must not fetch it again.
	assert.Equal(t, 1, gw.calls["GetContact"])
}

func TestResolveDealApproverContactFetchedWhenMissing(t *testing.T) {
	gw := newFakeGateway()
	gw.approval = &hubspot.Approval{
		ID:         "ap-1",
		Properties: hubspot.ApprovalProperties{RequestID: "REQ-77", SalesDealID: "deal-1"},
	}
	gw.deal = &hubspot.Deal{
		ID: "deal-1",
		Associations: hubspot.DealAssociations{
			Contacts: hubspot.AssociationList{Results: []hubspot.AssociationEdge{
				{ID: "ct-9", Label: "Approver"},
			}},
		},
	}
	gw.contacts["ct-9"] = &hubspot.Contact{
		ID:         "ct-9",
		Properties: hubspot.ContactProperties{Email: "approver@acme.com", FirstName: "Sam", LastName: "Lee"},
	}

	resolved, err := testResolver(gw).Resolve(context.Background(), &Context{ApprovalRequestID: "REQ-77"})
	require.NoError(t, err)

	assert.Equal(t, "ct-9", resolved.ApproverContactID)
	assert.Equal(t, "approver@acme.com", resolved.ApproverEmail)
	assert.Equal(t, "Sam Lee", resolved.ApproverName)
}

func TestResolveSkipsEverythingWithoutIdentifiers(t *testing.T) {
	gw := newFakeGateway()
	resolved, err := testResolver(gw).Resolve(context.Background(), &Context{})
	require.NoError(t, err)

	assert.Empty(t, gw.calls)
	assert.Empty(t, resolved.ApprovalObjectID)
}
