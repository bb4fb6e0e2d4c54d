// Package ui provides the slotcheck command line interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotcheck/internal/config"
	"github.com/javiermolinar/slotcheck/internal/conflict"
	"github.com/javiermolinar/slotcheck/internal/db"
	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/logging"
	"github.com/javiermolinar/slotcheck/internal/scheduler"
	"github.com/javiermolinar/slotcheck/internal/session"
	"github.com/javiermolinar/slotcheck/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	logger     *zap.Logger
	root       *cobra.Command
	debug      bool // Enable debug logging
}

// NewApp creates a new CLI application. A nil config is loaded from
// --config (or the default path) before any command runs.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg, logger: zap.NewNop()}

	a.root = &cobra.Command{
		Use:   "slotcheck",
		Short: "Find overlapping events and suggest new slots",
		Long: `Slotcheck records named time intervals for a single day, reports
the ones that overlap, and suggests a replacement slot within working hours
for each conflicting event.

Run without a subcommand to open the interactive form.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(cmd.Context(), sessionFlags{})
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()
			return tui.Run(cmd.Context(), s, a.config, a.logger)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to the configured log path)")
	a.root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file path (default: ~/.config/slotcheck/config.toml)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.suggestCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slotcheck %s (commit: %s)\n", Version, Commit)
		},
	}
}

// setup loads configuration and builds the logger.
func (a *App) setup() error {
	if a.config == nil {
		path := a.configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		cfg, err := config.LoadFrom(path)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		a.config = cfg
	}

	logger, err := logging.New(a.config.Log, a.debug)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// SetOutput redirects command output, used by tests.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// SetArgs overrides os.Args, used by tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Close flushes the logger.
func (a *App) Close() error {
	_ = a.logger.Sync()
	return nil
}

// sessionFlags are per-command overrides of the configured session.
type sessionFlags struct {
	mode     string
	dayStart string
	dayEnd   string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mode, "mode", "", "Detection mode: adjacent or sweep (default from config)")
	cmd.Flags().StringVar(&f.dayStart, "day-start", "", "Working hours start (HH:MM, default from config)")
	cmd.Flags().StringVar(&f.dayEnd, "day-end", "", "Working hours end (HH:MM, default from config)")
}

// newSession builds a session on the configured storage backend.
func (a *App) newSession(ctx context.Context, f sessionFlags) (*session.Session, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	mode, err := conflict.ParseMode(coalesce(f.mode, a.config.Detect.Mode))
	if err != nil {
		return nil, err
	}

	hours, err := scheduler.ParseWorkingHours(
		coalesce(f.dayStart, a.config.Schedule.DayStart),
		coalesce(f.dayEnd, a.config.Schedule.DayEnd),
	)
	if err != nil {
		return nil, fmt.Errorf("working hours: %w", err)
	}

	var repo event.Repository
	switch strings.ToLower(a.config.Storage.Backend) {
	case config.BackendSQLite:
		sqlite, err := db.Open(ctx)
		if err != nil {
			return nil, fmt.Errorf("initializing database: %w", err)
		}
		repo = sqlite
	default:
		repo = event.NewStore()
	}

	a.logger.Debug("session started",
		zap.String("backend", a.config.Storage.Backend),
		zap.String("mode", string(mode)),
		zap.Stringer("hours", hours),
	)

	return session.New(repo,
		session.WithMode(mode),
		session.WithWorkingHours(hours),
		session.WithLogger(a.logger),
	), nil
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
