package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/tgienger/vcli/internal/commands"
	"github.com/tgienger/vcli/internal/config"
	"github.com/tgienger/vcli/internal/ui/styles"
)

// Version information set via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	errStyle := styles.NewStyles(styles.NewRenderer(os.Stderr, false)).Error

	if err := config.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "%s reading .env: %v\n", errStyle.Render("Error:"), err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := commands.NewRootCommand(commands.DefaultEnv(), fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date))
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errStyle.Render("Error:"), err)
		stop()
		os.Exit(1)
	}
}
