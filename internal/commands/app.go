package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tgienger/vcli/internal/api"
	"github.com/tgienger/vcli/internal/config"
	"github.com/tgienger/vcli/internal/logging"
	"github.com/tgienger/vcli/internal/ui/styles"
	"github.com/tgienger/vcli/internal/ui/views"
)

// Env is the outside world a command runs against
type Env struct {
	In    io.Reader
	Out   io.Writer
	Err   io.Writer
	Width int
	Now   func() time.Time

	// Logger and HTTPClient replace the defaults when set
	Logger     *logrus.Logger
	HTTPClient *http.Client
}

// DefaultEnv wires commands to the process's standard streams
func DefaultEnv() Env {
	return Env{
		In:    os.Stdin,
		Out:   os.Stdout,
		Err:   os.Stderr,
		Width: styles.TerminalWidth(os.Stdout),
		Now:   time.Now,
	}
}

type globalOptions struct {
	configPath string
	verbose    bool
	logFile    string
	noColor    bool
}

// App holds the state of one invocation: parsed global flags, the logger and
// the API client, created on first use
type App struct {
	env    Env
	opts   globalOptions
	log    *logrus.Logger
	client *api.Client
}

func newApp(env Env) *App {
	if env.Now == nil {
		env.Now = time.Now
	}
	if env.Out == nil {
		env.Out = os.Stdout
	}
	if env.Err == nil {
		env.Err = os.Stderr
	}
	if env.In == nil {
		env.In = os.Stdin
	}
	return &App{env: env}
}

func (a *App) setup() {
	if a.env.Logger != nil {
		a.log = a.env.Logger
		return
	}
	a.log = logging.New(logging.Options{Verbose: a.opts.verbose, File: a.opts.logFile})
}

func (a *App) configPath() (string, error) {
	if a.opts.configPath != "" {
		return a.opts.configPath, nil
	}
	return config.DefaultPath()
}

func (a *App) clientOptions() []api.Option {
	opts := []api.Option{api.WithLogger(a.log)}
	if a.env.HTTPClient != nil {
		opts = append(opts, api.WithHTTPClient(a.env.HTTPClient))
	}
	return opts
}

// api returns the client for the configured instance, loading the
// credential file the first time
func (a *App) api() (*api.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	path, err := a.configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.WithField("host", cfg.Host).Debug("loaded config")
	a.client = api.NewClient(cfg, a.clientOptions()...)
	return a.client, nil
}

func (a *App) renderer() *views.Renderer {
	s := styles.NewStyles(styles.NewRenderer(a.env.Out, a.opts.noColor))
	return views.NewRenderer(a.env.Out, s, a.env.Width, a.env.Now)
}

// parseID accepts "12" or "#12"
func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", kind, s)
	}
	return id, nil
}
