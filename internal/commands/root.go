package commands

import (
	"github.com/spf13/cobra"
	"github.com/tgienger/vcli/internal/config"
	"github.com/tgienger/vcli/internal/models"
)

type listOptions struct {
	done     bool
	favorite bool
	from     string
	label    string
	all      bool
}

// NewRootCommand builds the full command tree. Without a subcommand it lists
// tasks.
func NewRootCommand(env Env, version string) *cobra.Command {
	app := newApp(env)
	var list listOptions

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "CLI tool for Vikunja",
		Long:          `List and manage Vikunja tasks, projects and labels from the terminal.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.listTasks(cmd, list)
		},
	}
	root.SetIn(app.env.In)
	root.SetOut(app.env.Out)
	root.SetErr(app.env.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&app.opts.configPath, "config", "", "Credential file (default $XDG_CONFIG_HOME/vcli/config.yaml)")
	pf.BoolVarP(&app.opts.verbose, "verbose", "v", false, "Log requests to stderr")
	pf.StringVar(&app.opts.logFile, "log-file", "", "Write the log to this file instead of stderr")
	pf.BoolVar(&app.opts.noColor, "no-color", false, "Disable colored output")

	f := root.Flags()
	f.BoolVarP(&list.done, "done", "d", false, "Show done tasks too")
	f.BoolVarP(&list.favorite, "favorite", "f", false, "Show only favorites")
	f.StringVar(&list.from, "from", "", "Show only tasks from project")
	f.StringVarP(&list.label, "label", "l", "", "Show only tasks with label")
	f.BoolVar(&list.all, "all", false, "Look through all tasks instead of the latest ones")

	root.AddCommand(
		newInfoCommand(app),
		newCommentsCommand(app),
		newCommentCommand(app),
		newProjectCommand(app),
		newLabelsCommand(app),
		newLabelCommand(app),
		newTaskCommand(app),
		newDoneCommand(app),
		newFavoriteCommand(app),
		newRemoveCommand(app),
		newAssignCommand(app),
		newRelateCommand(app),
		newLoginCommand(app),
	)
	return root
}

// TaskFilter selects tasks for the listing
type TaskFilter struct {
	IncludeDone   bool
	FavoritesOnly bool
	// ProjectID keeps only tasks of this project when nonzero
	ProjectID int64
	// Label keeps only tasks carrying a label with this title when set
	Label string
}

// FilterTasks applies f, keeping the input order
func FilterTasks(tasks []models.Task, f TaskFilter) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if t.Done && !f.IncludeDone {
			continue
		}
		if f.FavoritesOnly && !t.IsFavorite {
			continue
		}
		if f.ProjectID != 0 && t.ProjectID != f.ProjectID {
			continue
		}
		if f.Label != "" && !t.HasLabel(f.Label) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (a *App) listTasks(cmd *cobra.Command, opts listOptions) error {
	client, err := a.api()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	filter := TaskFilter{
		IncludeDone:   opts.done,
		FavoritesOnly: opts.favorite,
		Label:         opts.label,
	}
	if opts.from != "" {
		filter.ProjectID, err = client.ResolveProject(ctx, opts.from)
		if err != nil {
			return err
		}
	}

	var tasks []models.Task
	if opts.all || opts.from != "" || opts.label != "" {
		tasks, err = client.Tasks(ctx)
	} else {
		tasks, err = client.LatestTasks(ctx)
	}
	if err != nil {
		return err
	}

	projects, err := client.Projects(ctx)
	if err != nil {
		return err
	}

	a.renderer().TaskList(FilterTasks(tasks, filter), projects)
	return nil
}
