package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/tgienger/vcli/internal/api"
	"github.com/tgienger/vcli/internal/ui/styles"
)

func newLabelsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage labels",
	}
	cmd.AddCommand(
		newLabelsListCommand(app),
		newLabelsNewCommand(app),
		newLabelsRemoveCommand(app),
	)
	return cmd
}

func newLabelsListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List labels",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.api()
			if err != nil {
				return err
			}
			labels, err := client.Labels(cmd.Context())
			if err != nil {
				return err
			}
			app.renderer().Labels(labels)
			return nil
		},
	}
}

func newLabelsNewCommand(app *App) *cobra.Command {
	var color, description string

	cmd := &cobra.Command{
		Use:     "new <title>",
		Aliases: []string{"add"},
		Short:   "Create a label",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := api.NewLabel{Title: args[0], Description: description}
			if color != "" {
				hex, err := styles.NormalizeHex(color)
				if err != nil {
					return err
				}
				label.HexColor = hex
			}

			client, err := app.api()
			if err != nil {
				return err
			}
			created, err := client.CreateLabel(cmd.Context(), label)
			if err != nil {
				return err
			}
			app.renderer().Success("Created label %s [%d]", strings.TrimSpace(created.Title), created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "Hex color, e.g. #e8e8e8")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Label description")
	return cmd
}

func newLabelsRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <label>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a label",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			label, err := client.ResolveLabel(ctx, args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteLabel(ctx, label.ID); err != nil {
				return err
			}
			app.renderer().Success("Deleted label %d", label.ID)
			return nil
		},
	}
}

func newLabelCommand(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "label <label> <task_id>",
		Short: "Attach a label to a task, or detach it with -u",
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
			label, err := client.ResolveLabel(ctx, args[0])
			if err != nil {
				return err
			}

			if undo {
				if err := client.RemoveLabelFromTask(ctx, taskID, label.ID); err != nil {
					return err
				}
				app.renderer().Success("Removed label %d from task %d", label.ID, taskID)
				return nil
			}
			if err := client.AddLabelToTask(ctx, taskID, label.ID); err != nil {
				return err
			}
			app.renderer().Success("Added label %d to task %d", label.ID, taskID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&undo, "undo", "u", false, "Remove the label instead")
	return cmd
}
