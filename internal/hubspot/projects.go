package hubspot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var projectPropertyNames = []string{
	"hj_project_id",
	"hj_project_name",
	"hj_project_is_locked",
	"hj_class",
	"hj_terms",
	"hj_taxable",
	"hj_customer",
	"hj_customer_id",
	"hj_operator",
	"hj_operator_id",
	"hj_primary_contact_id",
	"hj_primary_contact_email",
	"hj_primary_contact_name",
	"hj_approver_id",
	"hj_approver_email",
	"hj_approver_name",
	"hj_approver_is",
	"hj_sales_deal_owner_contact_id",
	"hj_sales_deal_owner_email",
	"hj_sales_deal_owner_name",
	"hj_sales_deal_record_id",
	"hj_customer_company_id",
	"hj_operator_name",
}

var numericID = regexp.MustCompile(`^\d+$`)

// GetProject retrieves a project by record ID, falling back through alternate
// ID-property lookups, exact-match searches on each candidate property, and
// finally a free-text query search. Returns ErrNotFound when every path
// misses.
func (c *Client) GetProject(ctx context.Context, projectID string) (*Project, error) {
	if projectID == "" {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("properties", strings.Join(projectPropertyNames, ","))

	basePath := c.objectPath(c.cfg.ProjectObjectType) + "/" + url.PathEscape(projectID)

	var project Project
	err := c.getJSON(ctx, basePath, params, &project)
	if err == nil {
		c.debugf("retrieved project %s by record ID", project.ID)
		return &project, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	// The identifier may be a business-facing project ID rather than a
	// record ID; retry the direct read against each alternate idProperty.
	for _, idProperty := range c.cfg.ProjectIDProperties {
		altParams := url.Values{}
		altParams.Set("properties", strings.Join(projectPropertyNames, ","))
		altParams.Set("idProperty", idProperty)

		var alt Project
		altErr := c.getJSON(ctx, basePath, altParams, &alt)
		if altErr == nil {
			c.debugf("retrieved project %s via idProperty %s", alt.ID, idProperty)
			return &alt, nil
		}
		c.debugf("project lookup via idProperty %s failed for %q: %v", idProperty, projectID, altErr)
	}

	candidates := append([]string(nil), c.cfg.ProjectIDProperties...)
	if numericID.MatchString(projectID) {
		candidates = append(candidates, "hj_project_record_id")
	}

	raw := c.findFirstByProperties(ctx, c.cfg.ProjectObjectType, projectID, candidates, projectPropertyNames, true)
	if raw == nil {
		c.debugf("project %q not found after all fallbacks", projectID)
		return nil, ErrNotFound
	}

	if err := json.Unmarshal(raw, &project); err != nil {
		return nil, fmt.Errorf("failed to decode project search result: %w", err)
	}

	c.debugf("retrieved project %s via search fallback", project.ID)
	return &project, nil
}
