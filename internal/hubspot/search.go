package hubspot

import (
	"context"
	"encoding/json"
)

type searchFilter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchFilterGroup struct {
	Filters []searchFilter `json:"filters"`
}

type searchRequest struct {
	FilterGroups []searchFilterGroup `json:"filterGroups,omitempty"`
	Query        string              `json:"query,omitempty"`
	Properties   []string            `json:"properties,omitempty"`
	Limit        int                 `json:"limit,omitempty"`
}

type searchResponse struct {
	Total   int               `json:"total"`
	Results []json.RawMessage `json:"results"`
}

// searchObjects runs a secondary-index search against one object type.
func (c *Client) searchObjects(ctx context.Context, objectType string, req searchRequest) (*searchResponse, error) {
	var resp searchResponse
	if err := c.postJSON(ctx, c.objectPath(objectType)+"/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func equalitySearch(property, value string, properties []string, limit int) searchRequest {
	return searchRequest{
		FilterGroups: []searchFilterGroup{{
			Filters: []searchFilter{{
				PropertyName: property,
				Operator:     "EQ",
				Value:        value,
			}},
		}},
		Properties: properties,
		Limit:      limit,
	}
}
