package api

import (
	"context"
	"fmt"

	"github.com/tgienger/vcli/internal/models"
)

// TaskComments retrieves all comments for a task, oldest first
func (c *Client) TaskComments(ctx context.Context, taskID int64) ([]models.Comment, error) {
	return getList[models.Comment](ctx, c, fmt.Sprintf("/tasks/%d/comments", taskID))
}

// CreateComment creates a new comment on a task
func (c *Client) CreateComment(ctx context.Context, taskID int64, text string) (*models.Comment, error) {
	path := fmt.Sprintf("/tasks/%d/comments", taskID)
	body, err := c.put(ctx, path, map[string]string{"comment": text})
	return sendOne[models.Comment](path, body, err)
}
