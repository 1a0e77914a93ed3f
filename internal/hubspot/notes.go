package hubspot

import (
	"context"
	"fmt"
)

const noteObjectType = "notes"

// NoteToObjectAssociationTypeID is the HubSpot-defined association between a
// note engagement and the record it annotates.
const NoteToObjectAssociationTypeID = 190

// CreateNote creates an engagement note, optionally associated to other
// records. Used by downstream billing/notification steps for audit trails.
func (c *Client) CreateNote(ctx context.Context, input NoteInput) (*Note, error) {
	var note Note
	if err := c.postJSON(ctx, c.objectPath(noteObjectType), input, &note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	c.debugf("created note %s with %d association(s)", note.ID, len(input.Associations))
	return &note, nil
}
