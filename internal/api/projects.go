package api

import (
	"context"
	"fmt"

	"github.com/tgienger/vcli/internal/models"
)

// NewProject is the payload for creating a project
type NewProject struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	HexColor        string `json:"hex_color,omitempty"`
	ParentProjectID int64  `json:"parent_project_id,omitempty"`
}

// ProjectsPage returns one page of projects
func (c *Client) ProjectsPage(ctx context.Context, page int) ([]models.Project, error) {
	return getList[models.Project](ctx, c, fmt.Sprintf("/projects?page=%d", page))
}

// Projects returns every project the user can see
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	return FetchAll(func(page int) ([]models.Project, error) {
		return c.ProjectsPage(ctx, page)
	})
}

// Project retrieves a project by ID
func (c *Client) Project(ctx context.Context, id int64) (*models.Project, error) {
	return getOne[models.Project](ctx, c, fmt.Sprintf("/projects/%d", id))
}

// ProjectByID finds a project in the full project list
func (c *Client) ProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	projects, err := c.Projects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "project", Query: fmt.Sprintf("#%d", id)}
}

// CreateProject creates a new project
func (c *Client) CreateProject(ctx context.Context, project NewProject) (*models.Project, error) {
	body, err := c.put(ctx, "/projects", project)
	return sendOne[models.Project]("/projects", body, err)
}

// DeleteProject deletes a project and all its tasks
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	_, err := c.delete(ctx, fmt.Sprintf("/projects/%d", id))
	return err
}
