package api

import (
	"context"
	"strconv"
	"strings"

	"github.com/tgienger/vcli/internal/models"
)

// ResolveProject turns "12", "#12" or part of a title into a project ID.
// Titles match case-insensitively and the first match wins.
func (c *Client) ResolveProject(ctx context.Context, ref string) (int64, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id, nil
	}

	projects, err := c.Projects(ctx)
	if err != nil {
		return 0, err
	}
	needle := strings.ToLower(ref)
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			return p.ID, nil
		}
	}
	return 0, &NotFoundError{Kind: "project", Query: ref}
}

// ResolveLabel turns an ID or a title into a label. An exact title match is
// preferred, then the first title containing ref.
func (c *Client) ResolveLabel(ctx context.Context, ref string) (*models.Label, error) {
	ref = strings.TrimPrefix(strings.TrimSpace(ref), "#")

	labels, err := c.Labels(ctx)
	if err != nil {
		return nil, err
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		for i := range labels {
			if labels[i].ID == id {
				return &labels[i], nil
			}
		}
		return &models.Label{ID: id}, nil
	}

	for i := range labels {
		if strings.TrimSpace(labels[i].Title) == ref {
			return &labels[i], nil
		}
	}
	needle := strings.ToLower(ref)
	for i := range labels {
		if strings.Contains(strings.ToLower(labels[i].Title), needle) {
			return &labels[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "label", Query: ref}
}
