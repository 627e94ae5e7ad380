package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/dotori/internal/cli/formatter"
	"github.com/alexanderramin/dotori/internal/config"
	"github.com/alexanderramin/dotori/internal/logger"
	"github.com/alexanderramin/dotori/internal/service"
)

// App holds what the commands share. Fields left nil are filled from the
// loaded configuration before the first command runs. Config, Log and
// Advisor are then the settings of the running command: global flags
// apply to one invocation and are dropped by restore.
type App struct {
	Config  *config.Config
	Log     logger.Logger
	Advisor *service.Advisor

	// Clock, when set, replaces the wall clock for every advisor and for
	// date defaults.
	Clock func() time.Time

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	base          *settings
	colorResolved bool
}

// settings is what commands fall back to when no global flag is given.
type settings struct {
	cfg     *config.Config
	log     logger.Logger
	advisor *service.Advisor
}

type globalFlags struct {
	configPath string
	output     string
	logLevel   string
	color      string
}

// NewRootCmd creates the top-level "dotori" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "dotori",
		Short:         "Childcare facility assistant: intents, next actions, reports and checklists",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd, flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Log != nil {
				_ = app.Log.Sync()
			}
		},
	}

	root.PersistentFlags().AddFlagSet(globalFlagSet(&flags))

	root.AddCommand(
		newClassifyCmd(app),
		newContextCmd(app),
		newRegionCmd(app),
		newAgeCmd(app),
		newNBACmd(app),
		newReportCmd(app),
		newChecklistCmd(app),
		newInsightsCmd(app),
		newReasonsCmd(app),
		newShellCmd(app),
	)

	return root
}

// globalFlagSet holds the flags every command accepts. Empty values leave
// the configured setting alone.
func globalFlagSet(flags *globalFlags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.StringVar(&flags.configPath, "config", "", "Config file (default ./dotori.yaml or ~/.dotori/dotori.yaml)")
	fs.StringVarP(&flags.output, "output", "o", "", "Output format: text or json")
	fs.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&flags.color, "color", "", "Color mode: auto, always or never")
	return fs
}

// prepare resolves the settings of one invocation. Flags are applied to a
// copy of the base config; --config and log changes get their own logger
// and advisor.
func (app *App) prepare(cmd *cobra.Command, flags globalFlags) error {
	if err := app.captureBase(); err != nil {
		return err
	}

	base := app.base.cfg
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		base = loaded
	}

	run := *base
	if flags.output != "" {
		run.Output.Format = flags.output
	}
	if flags.logLevel != "" {
		run.Log.Level = flags.logLevel
	}
	if flags.color != "" {
		run.Output.Color = flags.color
	}
	if err := run.Validate(); err != nil {
		return err
	}

	app.Config = &run
	app.Log, app.Advisor = app.base.log, app.base.advisor
	if run.Log != app.base.cfg.Log {
		log, err := logger.NewStructured(run.Log.Level, run.Log.Format)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		app.Log = log
	}
	if flags.configPath != "" || app.Log != app.base.log {
		app.Advisor = app.newAdvisor(app.Config, app.Log)
	}

	// Commands run from the shell write to a buffer; keep the first decision.
	if !app.colorResolved || flags.color != "" {
		formatter.SetColor(colorEnabled(app.Config.Output.Color, cmd.OutOrStdout()))
		app.colorResolved = true
	}
	return nil
}

// captureBase records the settings the App was built with, loading the
// default config and building what is missing. It runs once.
func (app *App) captureBase() error {
	if app.base != nil {
		return nil
	}
	cfg := app.Config
	if cfg == nil {
		loaded, err := config.Load("")
		if err != nil {
			return err
		}
		cfg = loaded
	} else if err := cfg.Validate(); err != nil {
		return err
	}

	log := app.Log
	if log == nil {
		l, err := logger.NewStructured(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		log = l
	}
	advisor := app.Advisor
	if advisor == nil {
		advisor = app.newAdvisor(cfg, log)
	}
	app.base = &settings{cfg: cfg, log: log, advisor: advisor}
	app.restore()
	return nil
}

// rebase makes the running command's settings the base for every later
// command, so `dotori shell --config f` keeps f for its subcommands.
func (app *App) rebase() {
	app.base = &settings{cfg: app.Config, log: app.Log, advisor: app.Advisor}
}

// restore drops the overrides of the last command.
func (app *App) restore() {
	if app.base == nil {
		return
	}
	app.Config, app.Log, app.Advisor = app.base.cfg, app.base.log, app.base.advisor
}

func (app *App) newAdvisor(cfg *config.Config, log logger.Logger) *service.Advisor {
	opts := []service.Option{
		service.WithLogger(log),
		service.WithObserver(service.NewLogUseCaseObserver(log)),
	}
	if app.Clock != nil {
		opts = append(opts, service.WithClock(app.Clock))
	}
	return service.NewAdvisor(cfg, opts...)
}

// now is the current time in the configured zone.
func (app *App) now() time.Time {
	if app.Clock != nil {
		return app.Clock().In(app.Config.Location())
	}
	return app.Config.Now()
}

// colorEnabled resolves a color mode against the writer output goes to.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render writes v as indented JSON when the output format is json, and the
// text rendering otherwise.
func (app *App) render(cmd *cobra.Command, v any, text func() string) error {
	out := cmd.OutOrStdout()
	if app.Config.Output.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprint(out, text())
	return err
}
