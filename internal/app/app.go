// Package app wires configuration, operations and the terminal front end
// into the numcalc application.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/numcalc/internal/cli"
	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/ui"
)

// Application represents the numcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   numeric.OperationFactory
	ErrWriter io.Writer
	// In is read for "--input -" and by the REPL.
	In io.Reader

	logger logging.Logger
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom OperationFactory for the application.
func WithFactory(f numeric.OperationFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader used for standard input.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = numeric.NewDefaultFactory()
	}

	programName := "numcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application in the configured mode and returns the
// process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	// Validate has already accepted the level name.
	level, _ := logging.ParseLevel(a.Config.LogLevel)
	zerolog.SetGlobalLevel(level)
	a.logger = logging.NewLogger(a.ErrWriter, "numcalc")
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	if a.Config.Interactive {
		return a.runREPL(ctx, out)
	}
	return a.runCalculate(ctx, out)
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session. The timeout applies to each
// command rather than to the session.
func (a *Application) runREPL(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	recorder := metrics.NewRecorder()
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		Timeout:  a.Config.Timeout,
		Strict:   a.Config.Strict,
		Verbose:  a.Config.Verbose,
		Recorder: recorder,
		Logger:   a.logger,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start(ctx)

	return a.writeMetrics(recorder)
}

// writeMetrics dumps recorder to the configured metrics file, if any.
func (a *Application) writeMetrics(recorder *metrics.Recorder) int {
	if a.Config.MetricsFile == "" {
		return apperrors.ExitSuccess
	}
	if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
		a.logger.Error("writing metrics file", err, logging.String("path", a.Config.MetricsFile))
		fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
