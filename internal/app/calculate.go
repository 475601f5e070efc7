package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/numcalc/internal/cli"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/sysmon"
)

// runCalculate runs the selected operations once over the positional and
// --input values.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	values, err := a.gatherValues()
	if err != nil {
		return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
	}

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ops := orchestration.GetOperationsToRun(a.Config.Op, a.Factory)

	var progressReporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
	} else {
		names := make([]string, 0, len(ops))
		for _, op := range ops {
			names = append(names, op.Name())
		}
		cli.PrintExecutionConfig(out, names, len(values), a.Config.Strict, a.Config.Timeout)
		progressReporter = cli.CLIProgressReporter{}
	}

	a.logger.Info("run started", logging.String("op", a.Config.Op), logging.Int("count", len(values)))
	recorder := metrics.NewRecorder()
	results := orchestration.ExecuteOperations(ctx, ops, values, orchestration.ExecutionOptions{
		Numeric:  numeric.Options{RejectNonFinite: a.Config.Strict},
		Timeout:  a.Config.Timeout,
		Recorder: recorder,
		Logger:   a.logger,
	}, progressReporter, progressOut)

	presOpts := orchestration.PresentationOptions{
		InputCount: len(values),
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
		Quiet:      a.Config.Quiet,
	}
	exitCode := orchestration.AnalyzeResults(results, presOpts, cli.CLIResultPresenter{}, cli.CLIResultPresenter{}, out)

	if a.Config.Details && !a.Config.Quiet {
		cli.DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
		cli.DisplaySystemStats(sampleHost(), out)
	}

	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet, Verbose: a.Config.Verbose}
	if err := cli.WriteResultsToFile(results, len(values), outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving results: %v\n", err)
		if exitCode == apperrors.ExitSuccess {
			exitCode = apperrors.ExitErrorGeneric
		}
	} else if outputCfg.OutputFile != "" && !outputCfg.Quiet {
		cli.DisplayResultsSaved(out, outputCfg.OutputFile)
	}

	if code := a.writeMetrics(recorder); code != apperrors.ExitSuccess && exitCode == apperrors.ExitSuccess {
		exitCode = code
	}
	return exitCode
}

// hostSampleTimeout bounds the host readings of the details report.
const hostSampleTimeout = time.Second

// sampleHost samples the host on its own context, so the report survives
// a run that ended by timeout or interruption.
func sampleHost() sysmon.Stats {
	ctx, cancel := context.WithTimeout(context.Background(), hostSampleTimeout)
	defer cancel()
	return sysmon.Sample(ctx)
}

// gatherValues parses the positional values followed by those read from
// --input ("-" reads standard input).
func (a *Application) gatherValues() ([]float64, error) {
	values, err := numeric.ParseValues(a.Config.Args)
	if err != nil {
		return nil, err
	}
	if a.Config.Input == "" {
		return values, nil
	}

	var r io.Reader = a.In
	if a.Config.Input != "-" {
		f, err := os.Open(a.Config.Input)
		if err != nil {
			return nil, apperrors.NewConfigError("cannot open input: %v", err)
		}
		defer f.Close()
		r = f
	}
	more, err := numeric.ReadValues(r)
	if err != nil {
		return nil, err
	}
	return append(values, more...), nil
}
