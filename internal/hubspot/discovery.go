package hubspot

import (
	"context"
	"encoding/json"
)

// findFirstByProperties attempts an exact-match search on each candidate
// property in turn and returns the first hit. When every candidate is
// exhausted and withQueryFallback is set, a free-text query search runs as a
// last resort. Returns nil (not an error) when every path misses; individual
// attempt failures are logged and skipped so one unfilterable property cannot
// sink the whole lookup.
func (c *Client) findFirstByProperties(ctx context.Context, objectType, value string, candidates, properties []string, withQueryFallback bool) json.RawMessage {
	for _, property := range candidates {
		resp, err := c.searchObjects(ctx, objectType, equalitySearch(property, value, properties, 1))
		if err != nil {
			c.debugf("search fallback via %s failed for %s %q: %v", property, objectType, value, err)
			continue
		}

		c.debugf("search fallback via %s for %s %q returned %d result(s)", property, objectType, value, len(resp.Results))
		if len(resp.Results) > 0 {
			return resp.Results[0]
		}
	}

	if !withQueryFallback {
		return nil
	}

	resp, err := c.searchObjects(ctx, objectType, searchRequest{
		Query:      value,
		Properties: properties,
		Limit:      1,
	})
	if err != nil {
		c.debugf("query search fallback failed for %s %q: %v", objectType, value, err)
		return nil
	}

	c.debugf("query search fallback for %s %q returned %d result(s)", objectType, value, len(resp.Results))
	if len(resp.Results) > 0 {
		return resp.Results[0]
	}
	return nil
}
