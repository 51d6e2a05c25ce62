package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgienger/vcli/internal/api"
)

func newInfoCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info <task_id>",
		Short: "Show detailed information about a task",
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
			ctx := cmd.Context()

			task, err := client.Task(ctx, id)
			if err != nil {
				return err
			}

			projectTitle := fmt.Sprintf("#%d", task.ProjectID)
			project, err := client.ProjectByID(ctx, task.ProjectID)
			var notFound *api.NotFoundError
			switch {
			case err == nil:
				projectTitle = project.Title
			case errors.As(err, &notFound):
				app.log.WithField("project_id", task.ProjectID).Debug("project of task not listed")
			default:
				return err
			}

			app.renderer().TaskDetail(*task, projectTitle)
			return nil
		},
	}
}

func newCommentsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <task_id>",
		Short: "Show the comments of a task",
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
			comments, err := client.TaskComments(cmd.Context(), id)
			if err != nil {
				return err
			}
			app.renderer().Comments(comments)
			return nil
		},
	}
}

func newCommentCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comment <task_id> <text>...",
		Short: "Add a comment to a task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("task", args[0])
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if text == "" {
				return errors.New("comment is empty")
			}
			client, err := app.api()
			if err != nil {
				return err
			}
			comment, err := client.CreateComment(cmd.Context(), id, text)
			if err != nil {
				return err
			}
			app.renderer().Success("Added comment %d to task %d", comment.ID, id)
			return nil
		},
	}
}
