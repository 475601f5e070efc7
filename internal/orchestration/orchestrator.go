package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/numeric"
)

// updatesPerOperation is the number of progress updates each operation
// sends (start and finish); the progress channel is sized so that sends
// never block.
const updatesPerOperation = 2

var tracer = otel.Tracer("github.com/agbru/numcalc/internal/orchestration")

// ExecutionOptions carries the collaborators of ExecuteOperations.
// Recorder and Logger may be nil.
type ExecutionOptions struct {
	Numeric numeric.Options
	// Timeout is the limit reported when the context deadline expires.
	Timeout  time.Duration
	Recorder *metrics.Recorder
	Logger   logging.Logger
}

// ExecuteOperations runs every operation over values concurrently and
// returns their results in the order of ops.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - ops: The operations to execute.
//   - values: The shared, read-only input.
//   - opts: Numeric options plus optional metrics recorder and logger.
//   - progressReporter: Displays progress (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []OperationResult: One result per operation.
func ExecuteOperations(ctx context.Context, ops []numeric.Operation, values []float64, opts ExecutionOptions, progressReporter ProgressReporter, out io.Writer) []OperationResult {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}
	opts.Recorder.ObserveInput(len(values))

	g, ctx := errgroup.WithContext(ctx)
	results := make([]OperationResult, len(ops))
	progressChan := make(chan ProgressUpdate, len(ops)*updatesPerOperation)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(ops), out)

	for i, op := range ops {
		i, op := i, op
		g.Go(func() error {
			results[i] = runOperation(ctx, i, op, values, opts, logger, progressChan)
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runOperation(ctx context.Context, idx int, op numeric.Operation, values []float64, opts ExecutionOptions, logger logging.Logger, progressChan chan<- ProgressUpdate) OperationResult {
	name := op.Name()
	ctx, span := tracer.Start(ctx, "numcalc."+name, trace.WithAttributes(
		attribute.String("numcalc.operation", name),
		attribute.Int("numcalc.input_count", len(values)),
		attribute.Bool("numcalc.strict", opts.Numeric.RejectNonFinite),
	))
	defer span.End()

	progressChan <- ProgressUpdate{OperationIndex: idx, Value: 0}
	start := time.Now()
	res, err := op.Apply(ctx, values, opts.Numeric)
	elapsed := time.Since(start)
	progressChan <- ProgressUpdate{OperationIndex: idx, Value: 1}

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = apperrors.TimeoutError{Operation: name, Limit: opts.Timeout}
		}
		err = apperrors.OperationError{Op: name, Cause: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error("operation failed", err, logging.String("op", name), logging.Duration("elapsed", elapsed))
	} else {
		logger.Debug("operation completed", logging.String("op", name), logging.Int("count", len(values)),
			logging.Float64("total", res.Total), logging.Duration("elapsed", elapsed))
	}
	opts.Recorder.ObserveOperation(name, elapsed, err)

	return OperationResult{Name: name, Result: res, Duration: elapsed, Err: err}
}

// AnalyzeResults presents the results of a run and derives the exit code.
//
// Outside quiet mode the summary table comes first. Every successful result
// is then presented in order. If any operation failed, the exit code is the
// one the error handler assigns to the first failure.
//
// Parameters:
//   - results: The results returned by ExecuteOperations.
//   - opts: Presentation options.
//   - presenter: Formats the table and individual results.
//   - errHandler: Reports the first failure and maps it to an exit code.
//   - out: The io.Writer for the report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeResults(results []OperationResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	if len(results) == 0 {
		return errHandler.HandleError(fmt.Errorf("no operation selected"), 0, out)
	}

	if !opts.Quiet {
		presenter.PresentComparisonTable(results, out)
	}

	var firstFailure *OperationResult
	for i := range results {
		if results[i].Err != nil {
			if firstFailure == nil {
				firstFailure = &results[i]
			}
			continue
		}
		presenter.PresentResult(results[i], opts, out)
	}

	if firstFailure != nil {
		return errHandler.HandleError(firstFailure.Err, firstFailure.Duration, out)
	}
	return apperrors.ExitSuccess
}
