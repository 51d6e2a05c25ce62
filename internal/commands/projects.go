package commands

import (
	"github.com/spf13/cobra"
	"github.com/tgienger/vcli/internal/api"
	"github.com/tgienger/vcli/internal/ui/styles"
)

func newProjectCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prj",
		Aliases: []string{"project", "projects"},
		Short:   "Manage projects",
	}
	cmd.AddCommand(
		newProjectListCommand(app),
		newProjectAddCommand(app),
		newProjectRemoveCommand(app),
	)
	return cmd
}

func newProjectListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List projects as a tree",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.api()
			if err != nil {
				return err
			}
			projects, err := client.Projects(cmd.Context())
			if err != nil {
				return err
			}
			app.renderer().Projects(projects)
			return nil
		},
	}
}

func newProjectAddCommand(app *App) *cobra.Command {
	var color, description, parent string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			project := api.NewProject{Title: args[0], Description: description}
			if color != "" {
				hex, err := styles.NormalizeHex(color)
				if err != nil {
					return err
				}
				project.HexColor = hex
			}

			client, err := app.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if parent != "" {
				project.ParentProjectID, err = client.ResolveProject(ctx, parent)
				if err != nil {
					return err
				}
			}

			created, err := client.CreateProject(ctx, project)
			if err != nil {
				return err
			}
			app.renderer().Success("Created project %s [%d]", created.Title, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "Hex color, e.g. #1973ff")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().StringVarP(&parent, "parent", "p", "", "Parent project name or ID")
	return cmd
}

func newProjectRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <project>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a project and its tasks",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.api()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			id, err := client.ResolveProject(ctx, args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteProject(ctx, id); err != nil {
				return err
			}
			app.renderer().Success("Deleted project %d", id)
			return nil
		},
	}
}
