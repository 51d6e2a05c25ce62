package views

import (
	"fmt"
	"strings"

	"github.com/tgienger/vcli/internal/models"
)

// TaskList prints one line per task. projects is used to show the title of
// each task's project.
func (r *Renderer) TaskList(tasks []models.Task, projects []models.Project) {
	byID := make(map[int64]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	for _, task := range tasks {
		r.println(r.taskLine(task, byID))
	}
}

func (r *Renderer) taskLine(task models.Task, projects map[int64]models.Project) string {
	s := r.styles
	var b strings.Builder

	b.WriteString(s.ID.Render(fmt.Sprintf("(%d) ", task.ID)))
	if task.IsFavorite {
		b.WriteString(s.Favorite.Render("⭐ "))
	}
	b.WriteString(s.Title.Render(task.Title))

	if project, ok := projects[task.ProjectID]; ok {
		b.WriteString(s.Colored(project.HexColor, fmt.Sprintf(" [%s]", project.Title)))
	} else {
		b.WriteString(s.Muted.Render(fmt.Sprintf(" [#%d]", task.ProjectID)))
	}

	if task.Done {
		b.WriteString(s.Done.Render(" [✓]"))
	}

	if len(task.Labels) > 0 {
		b.WriteString(" ")
		b.WriteString(r.chips(task.Labels))
	}
	return b.String()
}

func (r *Renderer) chips(labels []models.Label) string {
	chips := make([]string, 0, len(labels))
	for _, l := range labels {
		chips = append(chips, r.styles.Chip(l.HexColor, strings.TrimSpace(l.Title)))
	}
	return strings.Join(chips, " ")
}

// TaskDetail prints everything known about a single task
func (r *Renderer) TaskDetail(task models.Task, projectTitle string) {
	s := r.styles

	var header strings.Builder
	if task.Done {
		done := "✓ "
		if task.DoneAt.Valid {
			done = r.relative(task.DoneAt.Time) + " ✓ "
		}
		header.WriteString(s.Done.Render(done))
	}
	if task.IsFavorite {
		header.WriteString(s.Favorite.Render("⭐ "))
	}
	header.WriteString(s.Title.Render(task.Title))
	header.WriteString(s.ID.Render(fmt.Sprintf(" (%d)", task.ID)))
	header.WriteString(s.Project.Render(fmt.Sprintf(" [%s]", projectTitle)))
	r.println(header.String())

	if task.CreatedBy != nil {
		r.printf("Created by %s\n", task.CreatedBy.Username)
	}

	var stamps []string
	if task.Created.Valid {
		stamps = append(stamps, "Created: "+r.relative(task.Created.Time))
	}
	if task.Updated.Valid {
		stamps = append(stamps, "Updated: "+r.relative(task.Updated.Time))
	}
	if len(stamps) > 0 {
		r.println(strings.Join(stamps, " | "))
	}

	if task.DueDate.Valid {
		due := "Due " + r.relative(task.DueDate.Time)
		if task.DueDate.Time.Before(r.now()) {
			due = s.Overdue.Render(due)
		}
		r.println(due)
	}

	if task.Priority != 0 {
		r.printf("Priority: %d\n", task.Priority)
	}

	if task.PercentDone > 0 {
		r.printf("Progress: %.0f%%\n", task.PercentDone*100)
	}

	if task.StartDate.Valid && task.EndDate.Valid {
		r.printf("%s -> %s\n", formatDate(task.StartDate.Time), formatDate(task.EndDate.Time))
	}

	if len(task.Labels) > 0 {
		r.println("Labels: " + r.chips(task.Labels))
	}

	if len(task.Assignees) > 0 {
		names := make([]string, 0, len(task.Assignees))
		for _, u := range task.Assignees {
			names = append(names, u.Username)
		}
		r.println("Assigned to: " + strings.Join(names, " "))
	}

	for _, kind := range models.RelationKinds() {
		related := task.RelatedTasks[kind]
		if len(related) == 0 {
			continue
		}
		parts := make([]string, 0, len(related))
		for _, t := range related {
			entry := s.Title.Render(t.Title) + s.ID.Render(fmt.Sprintf(" (%d)", t.ID))
			if t.Done {
				entry += s.Done.Render(" ✓")
			}
			parts = append(parts, entry)
		}
		r.println(s.Relation.Render(kind.Label()+": ") + strings.Join(parts, " "))
	}

	if task.Description.Valid {
		r.println("---")
		r.println(HTMLToText(task.Description.Source, r.width))
	}
}
