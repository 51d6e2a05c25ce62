package api

import (
	"context"
	"fmt"

	"github.com/tgienger/vcli/internal/models"
)

// NewLabel is the payload for creating a label
type NewLabel struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	HexColor    string `json:"hex_color,omitempty"`
}

// LabelsPage returns one page of labels
func (c *Client) LabelsPage(ctx context.Context, page int) ([]models.Label, error) {
	return getList[models.Label](ctx, c, fmt.Sprintf("/labels?page=%d", page))
}

// Labels returns all labels
func (c *Client) Labels(ctx context.Context) ([]models.Label, error) {
	return FetchAll(func(page int) ([]models.Label, error) {
		return c.LabelsPage(ctx, page)
	})
}

// CreateLabel creates a new label
func (c *Client) CreateLabel(ctx context.Context, label NewLabel) (*models.Label, error) {
	body, err := c.put(ctx, "/labels", label)
	return sendOne[models.Label]("/labels", body, err)
}

// DeleteLabel deletes a label
func (c *Client) DeleteLabel(ctx context.Context, id int64) error {
	_, err := c.delete(ctx, fmt.Sprintf("/labels/%d", id))
	return err
}

// AddLabelToTask attaches a label to a task
func (c *Client) AddLabelToTask(ctx context.Context, taskID, labelID int64) error {
	_, err := c.put(ctx, fmt.Sprintf("/tasks/%d/labels", taskID), map[string]int64{"label_id": labelID})
	return err
}

// RemoveLabelFromTask detaches a label from a task
func (c *Client) RemoveLabelFromTask(ctx context.Context, taskID, labelID int64) error {
	_, err := c.delete(ctx, fmt.Sprintf("/tasks/%d/labels/%d", taskID, labelID))
	return err
}
