package api

import (
	"context"
	"fmt"
	"time"

	"github.com/tgienger/vcli/internal/models"
)

// LatestTasksLimit is how many tasks the default listing asks for
const LatestTasksLimit = 60

// NewTask is the payload for creating a task. Label is resolved by name and
// attached once the task exists.
type NewTask struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsFavorite  bool       `json:"is_favorite,omitempty"`
	Priority    int        `json:"priority,omitempty"`
	Label       string     `json:"-"`
}

type doneUpdate struct {
	Done   bool       `json:"done"`
	DoneAt *time.Time `json:"done_at"`
}

type favoriteUpdate struct {
	IsFavorite bool `json:"is_favorite"`
}

// TasksPage returns one page of all tasks across projects
func (c *Client) TasksPage(ctx context.Context, page int) ([]models.Task, error) {
	return getList[models.Task](ctx, c, fmt.Sprintf("/tasks/all?page=%d", page))
}

// Tasks returns every task across projects
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	return FetchAll(func(page int) ([]models.Task, error) {
		return c.TasksPage(ctx, page)
	})
}

// LatestTasks returns the most recently created tasks, newest first
func (c *Client) LatestTasks(ctx context.Context) ([]models.Task, error) {
	path := fmt.Sprintf("/tasks/all?per_page=%d&sort_by=created&order_by=desc", LatestTasksLimit)
	return getList[models.Task](ctx, c, path)
}

// Task retrieves a task by ID
func (c *Client) Task(ctx context.Context, id int64) (*models.Task, error) {
	return getOne[models.Task](ctx, c, fmt.Sprintf("/tasks/%d", id))
}

// CreateTask creates a task in a project and attaches the requested label
func (c *Client) CreateTask(ctx context.Context, projectID int64, task NewTask) (*models.Task, error) {
	path := fmt.Sprintf("/projects/%d/tasks", projectID)
	body, err := c.put(ctx, path, task)
	created, err := sendOne[models.Task](path, body, err)
	if err != nil {
		return nil, err
	}

	if task.Label != "" {
		label, err := c.ResolveLabel(ctx, task.Label)
		if err != nil {
			return created, err
		}
		if err := c.AddLabelToTask(ctx, created.ID, label.ID); err != nil {
			return created, err
		}
		created.Labels = append(created.Labels, *label)
	}
	return created, nil
}

// DeleteTask deletes a task
func (c *Client) DeleteTask(ctx context.Context, id int64) error {
	_, err := c.delete(ctx, fmt.Sprintf("/tasks/%d", id))
	return err
}

// SetTaskDone marks a task done at the given time, or not done
func (c *Client) SetTaskDone(ctx context.Context, id int64, done bool, at time.Time) (*models.Task, error) {
	update := doneUpdate{Done: done}
	if done {
		at = at.UTC()
		update.DoneAt = &at
	}
	path := fmt.Sprintf("/tasks/%d", id)
	body, err := c.post(ctx, path, update)
	return sendOne[models.Task](path, body, err)
}

// SetTaskFavorite adds or removes a task from favorites
func (c *Client) SetTaskFavorite(ctx context.Context, id int64, favorite bool) (*models.Task, error) {
	path := fmt.Sprintf("/tasks/%d", id)
	body, err := c.post(ctx, path, favoriteUpdate{IsFavorite: favorite})
	return sendOne[models.Task](path, body, err)
}
