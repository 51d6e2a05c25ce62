package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tgienger/vcli/internal/api"
	"github.com/tgienger/vcli/internal/models"
)

// DefaultProject receives new tasks when no project is given
const DefaultProject = "Inbox"

const dateLayout = "2006-01-02"

// parseDue accepts RFC 3339 or a bare date, which is taken as midnight in loc
func parseDue(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: use YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

func newTaskCommand(app *App) *cobra.Command {
	var (
		project string
		task    api.NewTask
		due     string
	)

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task.Title = args[0]
			if due != "" {
				at, err := parseDue(due, app.env.Now().Location())
				if err != nil {
					return err
				}
				task.DueDate = &at
			}

			client, err := app.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			projectID, err := client.ResolveProject(ctx, project)
			if err != nil {
				return err
			}

			created, err := client.CreateTask(ctx, projectID, task)
			if err != nil {
				return err
			}
			app.renderer().Success("Created task (%d) %s", created.ID, created.Title)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&project, "project", "p", DefaultProject, "Project name or ID")
	f.StringVarP(&task.Description, "description", "d", "", "Task description")
	f.StringVar(&due, "due", "", "Due date, YYYY-MM-DD or RFC 3339")
	f.BoolVar(&task.IsFavorite, "favorite", false, "Mark as favorite")
	f.StringVarP(&task.Label, "label", "l", "", "Attach this label")
	f.IntVar(&task.Priority, "priority", 0, "Priority from 1 (low) to 5 (do now)")
	return cmd
}

func newDoneCommand(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "done <task_id>",
		Short: "Mark a task as done, or open again with -u",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}
			client, err := app.api()
			if err != nil {
				return err
			}
			task, err := client.SetTaskDone(cmd.Context(), id, !undo, app.env.Now())
			if err != nil {
				return err
			}
			if undo {
				app.renderer().Success("Reopened task (%d) %s", task.ID, task.Title)
			} else {
				app.renderer().Success("Done: (%d) %s", task.ID, task.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&undo, "undo", "u", false, "Mark as not done")
	return cmd
}

func newFavoriteCommand(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:     "fav <task_id>",
		Aliases: []string{"favorite"},
		Short:   "Mark a task as favorite, or unmark with -u",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}
			client, err := app.api()
			if err != nil {
				return err
			}
			task, err := client.SetTaskFavorite(cmd.Context(), id, !undo)
			if err != nil {
				return err
			}
			if undo {
				app.renderer().Success("Unfavorited (%d) %s", task.ID, task.Title)
			} else {
				app.renderer().Success("Favorited (%d) %s", task.ID, task.Title)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&undo, "undo", "u", false, "Remove from favorites")
	return cmd
}

func newRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task_id>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}
			client, err := app.api()
			if err != nil {
				return err
			}
			if err := client.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}
			app.renderer().Success("Deleted task %d", id)
			return nil
		},
	}
}

func newAssignCommand(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "assign <user> <task_id>",
		Short: "Assign a user to a task, or unassign with -u",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID("task", args[1])
			if err != nil {
				return err
			}
			client, err := app.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			user, err := client.ResolveUser(ctx, args[0])
			if err != nil {
				return err
			}

			if undo {
				if err := client.UnassignUser(ctx, taskID, user.ID); err != nil {
					return err
				}
				app.renderer().Success("Unassigned %s from task %d", user.DisplayName(), taskID)
				return nil
			}
			if err := client.AssignUser(ctx, taskID, user.ID); err != nil {
				return err
			}
			app.renderer().Success("Assigned %s to task %d", user.DisplayName(), taskID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&undo, "undo", "u", false, "Unassign instead")
	return cmd
}

func newRelateCommand(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "relate <task_id> <kind> <other_task_id>",
		Short: "Relate two tasks, or remove the relation with -u",
		Long:  "Relate two tasks. Kinds: " + relationKindList(),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseID("task", args[0])
			if err != nil {
				return err
			}
			kind, err := models.ParseRelationKind(args[1])
			if err != nil {
				return err
			}
			otherID, err := parseID("task", args[2])
			if err != nil {
				return err
			}
			client, err := app.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if undo {
				if err := client.DeleteRelation(ctx, taskID, otherID, kind); err != nil {
					return err
				}
				app.renderer().Success("Removed relation: %d %s %d", taskID, kind, otherID)
				return nil
			}
			if _, err := client.CreateRelation(ctx, taskID, otherID, kind); err != nil {
				return err
			}
			app.renderer().Success("Related: %d %s %d", taskID, kind, otherID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&undo, "undo", "u", false, "Remove the relation instead")
	return cmd
}

func relationKindList() string {
	var tokens []string
	for _, k := range models.RelationKinds() {
		if k != models.RelationUnknown {
			tokens = append(tokens, k.String())
		}
	}
	return strings.Join(tokens, ", ")
}
