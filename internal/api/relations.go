package api

import (
	"context"
	"fmt"

	"github.com/tgienger/vcli/internal/models"
)

// CreateRelation relates taskID to otherTaskID. The server creates the
// inverse relation on the other task itself.
func (c *Client) CreateRelation(ctx context.Context, taskID, otherTaskID int64, kind models.RelationKind) (*models.TaskRelation, error) {
	path := fmt.Sprintf("/tasks/%d/relations", taskID)
	body, err := c.put(ctx, path, models.TaskRelation{
		TaskID:       taskID,
		OtherTaskID:  otherTaskID,
		RelationKind: kind,
	})
	return sendOne[models.TaskRelation](path, body, err)
}

// DeleteRelation removes a relation between two tasks
func (c *Client) DeleteRelation(ctx context.Context, taskID, otherTaskID int64, kind models.RelationKind) error {
	_, err := c.delete(ctx, fmt.Sprintf("/tasks/%d/relations/%s/%d", taskID, kind, otherTaskID))
	return err
}
