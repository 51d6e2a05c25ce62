package views

import (
	"fmt"

	"github.com/tgienger/vcli/internal/models"
)

// ProjectNode is a top level project with its direct children
type ProjectNode struct {
	Project  models.Project
	Children []models.Project
}

// ProjectTree groups projects by parent. Roots and children keep the order
// they had in projects. Only one level of nesting is kept; deeper projects
// and projects whose parent is missing are left out.
func ProjectTree(projects []models.Project) []ProjectNode {
	children := make(map[int64][]models.Project)
	for _, p := range projects {
		if p.ParentProjectID != 0 {
			children[p.ParentProjectID] = append(children[p.ParentProjectID], p)
		}
	}

	var roots []ProjectNode
	for _, p := range projects {
		if p.ParentProjectID == 0 {
			roots = append(roots, ProjectNode{Project: p, Children: children[p.ID]})
		}
	}
	return roots
}

// Projects prints the project hierarchy, each project in its own color
func (r *Renderer) Projects(projects []models.Project) {
	s := r.styles
	for _, node := range ProjectTree(projects) {
		r.println(s.Colored(node.Project.HexColor, node.Project.Title) + s.Muted.Render(fmt.Sprintf(" [%d]", node.Project.ID)))
		for _, child := range node.Children {
			r.println(s.Colored(child.HexColor, "  - "+child.Title) + s.Muted.Render(fmt.Sprintf(" [%d]", child.ID)))
		}
	}
}
