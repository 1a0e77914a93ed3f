package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hjps/approvalctl/internal/config"
	"github.com/hjps/approvalctl/internal/hubspot"
	appsentry "github.com/hjps/approvalctl/internal/sentry"
)

// Gateway is the record-store surface the engine consumes. Retries, timeouts
// and the lookup-then-fallback-search behavior of individual getters belong
// to the implementation behind this interface.
type Gateway interface {
	GetApproval(ctx context.Context, identifier string) (*hubspot.Approval, error)
	GetTimesheetsBatch(ctx context.Context, ids []string) ([]hubspot.Timesheet, error)
	SearchTimesheetsByApprovalRequestID(ctx context.Context, approvalRequestID string) []string
	GetProject(ctx context.Context, projectID string) (*hubspot.Project, error)
	GetContact(ctx context.Context, contactID string) (*hubspot.Contact, error)
	GetDeal(ctx context.Context, dealID string) (*hubspot.Deal, error)
	GetCompany(ctx context.Context, companyID string) (*hubspot.Company, error)
}

// StageError reports which resolution stage failed, carrying the identifiers
// that were being resolved for diagnosis.
type StageError struct {
	Stage             string
	ApprovalRequestID string
	ProjectID         string
	Err               error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("resolution stage %q failed (approvalRequestId=%q, projectId=%q): %v",
		e.Stage, e.ApprovalRequestID, e.ProjectID, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Resolver assembles a complete approval context from the record store.
type Resolver struct {
	gateway Gateway
	cfg     *config.Config
}

func NewResolver(gateway Gateway, cfg *config.Config) *Resolver {
	return &Resolver{gateway: gateway, cfg: cfg}
}

func (r *Resolver) debugf(resolutionID, format string, args ...interface{}) {
	if r.cfg.Debug {
		fmt.Printf("[resolve %s] "+format+"\n", append([]interface{}{resolutionID}, args...)...)
	}
}

// stage is one named step of the resolution pipeline. A stage whose skip
// guard returns true costs no network round trip at all.
type stage struct {
	name string
	skip func(*resolution) bool
	run  func(context.Context, *resolution) error
}

// resolution is the per-invocation state: the context under construction plus
// bookkeeping the deal stage needs to avoid refetching a contact.
type resolution struct {
	ctx             *Context
	loadedContactID string
}

// Resolve runs the fixed stage sequence against the seed context and returns
// the enriched context. Stages are strictly sequential; later guards depend
// on fields earlier stages populate. Not-found conditions in enrichment
// stages degrade to no-ops; any other gateway failure aborts with a
// StageError naming the failing stage.
func (r *Resolver) Resolve(ctx context.Context, seed *Context) (*Context, error) {
	res := &resolution{ctx: seed}
	resolutionID := uuid.NewString()

	r.debugf(resolutionID, "resolving approval context (requestId=%q, projectId=%q, consultantId=%q)",
		seed.ApprovalRequestID, seed.ProjectID, seed.ConsultantID)
	appsentry.AddBreadcrumb("resolve", "resolution "+resolutionID+" started")

	for _, s := range r.stages() {
		if s.skip != nil && s.skip(res) {
			r.debugf(resolutionID, "stage %s skipped", s.name)
			continue
		}
		if err := s.run(ctx, res); err != nil {
			return nil, &StageError{
				Stage:             s.name,
				ApprovalRequestID: res.ctx.ApprovalRequestID,
				ProjectID:         res.ctx.ProjectID,
				Err:               err,
			}
		}
		r.debugf(resolutionID, "stage %s complete", s.name)
	}

	return res.ctx, nil
}

func (r *Resolver) stages() []stage {
	return []stage{
		{
			name: "approval",
			skip: func(res *resolution) bool {
				return res.ctx.ApprovalObjectID == "" && res.ctx.ApprovalRequestID == ""
			},
			run: r.runApproval,
		},
		{
			name: "timesheet-discovery",
			skip: func(res *resolution) bool {
				return len(res.ctx.ApprovalTimesheetIDs) > 0 || res.ctx.ApprovalRequestID == ""
			},
			run: r.runTimesheetDiscovery,
		},
		{
			name: "timesheets",
			skip: func(res *resolution) bool {
				return len(res.ctx.ApprovalTimesheetIDs) == 0
			},
			run: r.runTimesheets,
		},
		{
			name: "project",
			skip: func(res *resolution) bool {
				c := res.ctx
				if c.ProjectID == "" {
					return true
				}
				// Skip the round trip when earlier stages already supplied
				// everything the project could add.
				return c.ApproverEmail != "" && c.ApproverName != "" && c.ApproverType != "" && c.SalesDealID != ""
			},
			run: r.runProject,
		},
		{
			name: "contact",
			skip: func(res *resolution) bool { return res.ctx.ContactID == "" },
			run:  r.runContact,
		},
		{
			name: "deal",
			skip: func(res *resolution) bool { return res.ctx.SalesDealID == "" },
			run:  r.runDeal,
		},
		{
			name: "company",
			skip: func(res *resolution) bool { return res.ctx.CustomerCompanyID == "" },
			run:  r.runCompany,
		},
	}
}

func (r *Resolver) runApproval(ctx context.Context, res *resolution) error {
	identifier := res.ctx.ApprovalObjectID
	if identifier == "" {
		identifier = res.ctx.ApprovalRequestID
	}

	approval, err := r.gateway.GetApproval(ctx, identifier)
	if err != nil {
		if errors.Is(err, hubspot.ErrNotFound) {
			return nil
		}
		return err
	}

	res.ctx.ApprovalObjectID = approval.ID
	enrichFromApproval(res.ctx, approval)
	return nil
}

func (r *Resolver) runTimesheetDiscovery(ctx context.Context, res *resolution) error {
	ids := r.gateway.SearchTimesheetsByApprovalRequestID(ctx, res.ctx.ApprovalRequestID)
	if len(ids) > 0 {
		res.ctx.ApprovalTimesheetIDs = ids
		res.ctx.AddNote("Timesheet IDs discovered via approval request search")
	}
	return nil
}

func (r *Resolver) runTimesheets(ctx context.Context, res *resolution) error {
	timesheets, err := r.gateway.GetTimesheetsBatch(ctx, res.ctx.ApprovalTimesheetIDs)
	if err != nil {
		return err
	}
	enrichFromTimesheets(res.ctx, timesheets)
	return nil
}

func (r *Resolver) runProject(ctx context.Context, res *resolution) error {
	project, err := r.gateway.GetProject(ctx, res.ctx.ProjectID)
	if err != nil {
		if errors.Is(err, hubspot.ErrNotFound) {
			return nil
		}
		return err
	}
	enrichFromProject(res.ctx, project)
	return nil
}

func (r *Resolver) runContact(ctx context.Context, res *resolution) error {
	contact, err := r.gateway.GetContact(ctx, res.ctx.ContactID)
	if err != nil {
		if errors.Is(err, hubspot.ErrNotFound) {
			return nil
		}
		return err
	}
	res.loadedContactID = contact.ID
	enrichFromContact(res.ctx, contact)
	return nil
}

func (r *Resolver) runDeal(ctx context.Context, res *resolution) error {
	deal, err := r.gateway.GetDeal(ctx, res.ctx.SalesDealID)
	if err != nil {
		if errors.Is(err, hubspot.ErrNotFound) {
			return nil
		}
		return err
	}
	enrichFromDeal(res.ctx, deal, r.cfg.ApproverAssociationTypes)

	// Fetch the approver contact only when the deal pointed at someone we
	// have not loaded yet and approver details are still missing.
	approverContactID := res.ctx.ApproverContactID
	if approverContactID == "" {
		approverContactID = res.ctx.ContactID
	}
	if approverContactID == "" || approverContactID == res.loadedContactID {
		return nil
	}
	if res.ctx.ApproverEmail != "" && res.ctx.ApproverName != "" {
		return nil
	}

	contact, err := r.gateway.GetContact(ctx, approverContactID)
	if err != nil {
		if errors.Is(err, hubspot.ErrNotFound) {
			return nil
		}
		return err
	}
	enrichFromContact(res.ctx, contact)
	return nil
}

func (r *Resolver) runCompany(ctx context.Context, res *resolution) error {
	company, err := r.gateway.GetCompany(ctx, res.ctx.CustomerCompanyID)
	if err != nil {
		if errors.Is(err, hubspot.ErrNotFound) {
			return nil
		}
		return err
	}
	enrichFromCompany(res.ctx, company)
	return nil
}
