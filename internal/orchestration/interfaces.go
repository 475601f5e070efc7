//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/numcalc/internal/numeric"
)

// OperationResult encapsulates the outcome of a single operation.
// It serves as the shared domain type between orchestration and presentation layers.
type OperationResult struct {
	// Name is the operation identifier (e.g., "sort").
	Name string
	// Result is the computed value. It is the zero Result if Err is set.
	Result numeric.Result
	// Duration is the time taken to complete the operation.
	Duration time.Duration
	// Err contains any error that occurred during the operation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	InputCount int
	Verbose    bool
	Details    bool
	Quiet      bool
}

// ProgressUpdate reports the completion fraction of one operation.
type ProgressUpdate struct {
	// OperationIndex is the position of the operation in the executed slice.
	OperationIndex int
	// Value is the completion fraction, from 0.0 to 1.0.
	Value float64
}

// ProgressReporter defines the interface for displaying execution progress.
// Implementations handle the visual representation (spinners, bars) while the
// orchestration layer focuses on coordinating operations.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numOperations int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numOperations int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numOperations int, out io.Writer) {
	f(wg, progressChan, numOperations, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting operation results.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-operation summary table.
	PresentComparisonTable(results []OperationResult, out io.Writer)

	// PresentResult displays a single successful result.
	PresentResult(result OperationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles operation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
