package hubspot

import (
	"context"
	"net/url"
)

const companyObjectType = "companies"

var companyPropertyNames = []string{
	"name",
	"domain",
	"industry",
	"phone",
}

// GetCompany retrieves a company by record ID. Returns ErrNotFound on a miss.
func (c *Client) GetCompany(ctx context.Context, companyID string) (*Company, error) {
	if companyID == "" {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("properties", joinProperties(companyPropertyNames))

	var company Company
	if err := c.getJSON(ctx, c.objectPath(companyObjectType)+"/"+url.PathEscape(companyID), params, &company); err != nil {
		return nil, err
	}

	c.debugf("retrieved company %s", company.ID)
	return &company, nil
}
