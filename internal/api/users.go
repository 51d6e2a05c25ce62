package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tgienger/vcli/internal/models"
)

// SearchUsers finds users whose name or username matches query
func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	return getList[models.User](ctx, c, "/users?s="+url.QueryEscape(query))
}

// ResolveUser returns the first user matching query
func (c *Client) ResolveUser(ctx context.Context, query string) (*models.User, error) {
	users, err := c.SearchUsers(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &NotFoundError{Kind: "user", Query: query}
	}
	return &users[0], nil
}

// AssignUser adds a user to a task's assignees
func (c *Client) AssignUser(ctx context.Context, taskID, userID int64) error {
	_, err := c.put(ctx, fmt.Sprintf("/tasks/%d/assignees", taskID), map[string]int64{"user_id": userID})
	return err
}

// UnassignUser removes a user from a task's assignees
func (c *Client) UnassignUser(ctx context.Context, taskID, userID int64) error {
	_, err := c.delete(ctx, fmt.Sprintf("/tasks/%d/assignees/%d", taskID, userID))
	return err
}
