package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/config"
	"github.com/zephyrtronium/deskcalc/internal/logging"
	"github.com/zephyrtronium/deskcalc/internal/metrics"
	"github.com/zephyrtronium/deskcalc/internal/session"
	"github.com/zephyrtronium/deskcalc/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{in: stdin, out: stdout, errOut: stderr, getenv: os.LookupEnv}
	cmd := a.rootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if ferr := a.finish(); err == nil {
		err = ferr
	}
	if err != nil {
		fmt.Fprintln(stderr, "deskcalc:", err)
		return 1
	}
	return 0
}

// app is the state shared by every command in one run.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	getenv func(string) (string, bool)

	cfgPath     string
	debug       bool
	dumpMetrics bool

	cfg      config.Config
	log      *slog.Logger
	closeLog func() error
	metrics  *metrics.Recorder
	sess     *session.Session
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "deskcalc",
		Short:         "Desk calculator for single operations",
		Long:          "deskcalc evaluates one operation at a time: a function of a number, like sin30, or two numbers and an operator, like 12+7.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.setup()
		},
		RunE: func(*cobra.Command, []string) error {
			if a.interactive() {
				return a.runTUI()
			}
			return a.repl().run(a.in)
		},
	}
	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "log at debug level")
	cmd.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "print evaluation metrics to stderr on exit")

	cmd.AddCommand(a.evalCmd(), a.replCmd(), a.opsCmd(), a.versionCmd())
	return cmd
}

// setup loads configuration, then creates the logger, metrics and session.
// It fails if the evaluator does not compute known values correctly.
func (a *app) setup() error {
	path, optional := a.cfgPath, false
	if path == "" {
		path, optional = config.DefaultPath(), true
	}
	cfg, err := config.Load(path, optional, a.getenv)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.debug {
		level = slog.LevelDebug
	}
	if cfg.Log.File != "" {
		l, closer, err := logging.Open(cfg.Log.File, level)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		a.log, a.closeLog = l, closer
	} else {
		a.log = logging.NewText(a.errOut, level)
	}

	if err := deskcalc.CheckEvaluator(deskcalc.Standard); err != nil {
		a.log.Error("startup.evaluator", "error", err)
		return fmt.Errorf("evaluator self-check failed: %w", err)
	}

	a.metrics = metrics.New()
	a.sess = session.New(session.Options{
		Evaluator: deskcalc.Standard,
		Format:    cfg.Format(),
		Recent:    cfg.History.Recent,
		Logger:    a.log,
		Metrics:   a.metrics,
	})
	a.log.Debug("startup.ready", "config", path, "format", cfg.Format(), "recent", cfg.History.Recent)
	return nil
}

// finish writes metrics if requested and closes the log file. It runs even
// when the command failed.
func (a *app) finish() error {
	var errs []error
	if a.dumpMetrics && a.metrics != nil {
		errs = append(errs, a.metrics.WriteText(a.errOut))
	}
	if a.closeLog != nil {
		errs = append(errs, a.closeLog())
		a.closeLog = nil
	}
	return errors.Join(errs...)
}

// interactive returns whether both stdin and stdout are terminals.
func (a *app) interactive() bool {
	in, ok := a.in.(*os.File)
	if !ok {
		return false
	}
	out, ok := a.out.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

func (a *app) runTUI() error {
	render := a.renderer()
	theme := tui.NewTheme(a.cfg.Theme.Accent, a.cfg.Theme.Error)
	return tui.Run(tui.Deps{
		Session: a.sess,
		Theme:   &theme,
		Render:  render,
		Logger:  a.log,
	})
}

// renderer returns the markdown renderer, or nil to show markdown as is when
// glamour cannot be set up.
func (a *app) renderer() func(string) (string, error) {
	r, err := tui.NewRenderer(76)
	if err != nil {
		a.log.Warn("startup.renderer", "error", err)
		return nil
	}
	return r
}
