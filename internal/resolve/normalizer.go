package resolve

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/hjps/approvalctl/internal/config"
)

// InvalidLocatorError indicates the locator string could not be parsed as a
// URL. All other malformed or absent normalizer inputs are tolerated.
type InvalidLocatorError struct {
	Locator string
	Err     error
}

func (e *InvalidLocatorError) Error() string {
	return fmt.Sprintf("invalid approval URL %q: %v", e.Locator, e.Err)
}

func (e *InvalidLocatorError) Unwrap() error {
	return e.Err
}

// Overrides are caller-supplied manual fields. They pre-seed the context
// before any URL parameter or record fetch and are therefore authoritative.
type Overrides struct {
	ApprovalObjectID  string
	ApprovalRequestID string
	ProjectID         string
	ConsultantID      string
	CustomerEmail     string
	SalesDealID       string
}

// Normalizer builds a seed Context from a locator URL and manual overrides.
type Normalizer struct {
	offset int
}

func NewNormalizer(cfg *config.Config) *Normalizer {
	return &Normalizer{offset: cfg.ConsultantIDOffset}
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Seed produces the seed Context. Manual overrides are applied first; locator
// query parameters fill in whatever is still empty.
func (n *Normalizer) Seed(locator string, overrides Overrides) (*Context, error) {
	ctx := &Context{}

	setIfAbsent(&ctx.ApprovalObjectID, overrides.ApprovalObjectID)
	setIfAbsent(&ctx.ApprovalRequestID, overrides.ApprovalRequestID)
	setIfAbsent(&ctx.ProjectID, overrides.ProjectID)
	setIfAbsent(&ctx.ConsultantID, overrides.ConsultantID)
	setIfAbsent(&ctx.CustomerEmail, overrides.CustomerEmail)
	setIfAbsent(&ctx.SalesDealID, overrides.SalesDealID)

	if locator == "" {
		return ctx, nil
	}

	u, err := url.Parse(locator)
	if err != nil {
		return nil, &InvalidLocatorError{Locator: locator, Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &InvalidLocatorError{Locator: locator, Err: fmt.Errorf("not an absolute URL")}
	}

	ctx.ApprovalURL = locator
	query := u.Query()

	setIfAbsent(&ctx.ProjectID, query.Get("project_id"))
	setIfAbsent(&ctx.ApprovalRequestID, query.Get("approval_request_id"))
	setIfAbsent(&ctx.CustomerEmail, query.Get("customer_email"))
	setIfAbsent(&ctx.SalesDealID, query.Get("sales_deal_id"))
	setIfAbsent(&ctx.ApproverType, query.Get("approver_is"))

	n.applyConsultantID(ctx, query.Get("consultant_id"))

	return ctx, nil
}

// applyConsultantID handles the offset obfuscation applied to consultant IDs
// in externally-shared links. Purely numeric values above the offset are
// decrypted by subtraction; everything else passes through verbatim. The
// encrypted form is retained for audit.
func (n *Normalizer) applyConsultantID(ctx *Context, value string) {
	if value == "" {
		return
	}

	if !digitsOnly.MatchString(value) {
		setIfAbsent(&ctx.ConsultantID, value)
		return
	}

	setIfAbsent(&ctx.ConsultantIDEncrypted, value)

	numeric, err := strconv.Atoi(value)
	if err != nil || numeric <= n.offset {
		setIfAbsent(&ctx.ConsultantID, value)
		return
	}

	decrypted := strconv.Itoa(numeric - n.offset)
	if ctx.ConsultantID == "" {
		ctx.ConsultantID = decrypted
		ctx.AddNote(fmt.Sprintf("Consultant ID decrypted from URL by subtracting offset %d.", n.offset))
	}
}
