package hubspot

import (
	"context"
	"net/url"
)

const contactObjectType = "contacts"

var contactPropertyNames = []string{
	"email",
	"firstname",
	"lastname",
	"company",
	"phone",
	"hubspot_owner_id",
}

// GetContact retrieves a contact by record ID. Returns ErrNotFound on a miss.
func (c *Client) GetContact(ctx context.Context, contactID string) (*Contact, error) {
	if contactID == "" {
		return nil, ErrNotFound
	}

	params := url.Values{}
	params.Set("properties", joinProperties(contactPropertyNames))

	var contact Contact
	if err := c.getJSON(ctx, c.objectPath(contactObjectType)+"/"+url.PathEscape(contactID), params, &contact); err != nil {
		return nil, err
	}

	c.debugf("retrieved contact %s", contact.ID)
	return &contact, nil
}
