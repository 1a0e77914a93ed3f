package hubspot

import (
	"context"
	"net/url"
	"strings"
)

const dealObjectType = "deals"

var dealPropertyNames = []string{
	"dealname",
	"amount",
	"dealstage",
	"closedate",
	"owner",
	"project_unique_id",
}

// GetDeal retrieves a deal by record ID, including its contact association
// edges. Returns ErrNotFound on a miss.
func (c *Client) GetDeal(ctx context.Context, dealID string) (*Deal, error) {
	if dealID == "" {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("properties", strings.Join(dealPropertyNames, ","))
	params.Set("associations", "contacts")

	var deal Deal
	if err := c.getJSON(ctx, c.objectPath(dealObjectType)+"/"+url.PathEscape(dealID), params, &deal); err != nil {
		return nil, err
	}

	c.debugf("retrieved deal %s with %d contact association(s)", deal.ID, len(deal.Associations.Contacts.Results))
	return &deal, nil
}

func joinProperties(names []string) string {
	return strings.Join(names, ",")
}
