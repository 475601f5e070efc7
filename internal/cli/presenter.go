package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/sysmon"
	"github.com/agbru/numcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for running operations.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numOperations int, out io.Writer) {
	DisplayProgress(wg, progressChan, numOperations, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable prints one row per operation with its duration and
// status. Padding is computed on the raw text so colour codes do not skew
// alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.OperationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Operation Summary ---\n")

	maxNameLen := len("Operation")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, len(displayDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sOperation%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Operation")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%sOK%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%sFailed (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := displayDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorCyan(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
	fmt.Fprintln(out)
}

func displayDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult prints a single successful result.
func (CLIResultPresenter) PresentResult(result orchestration.OperationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result.Result)
		return
	}
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorBold(), FormatResult(result.Name, result.Result, opts.Verbose), ui.ColorReset())
	if opts.Details {
		fmt.Fprintf(out, "  values: %d, duration: %s\n", opts.InputCount, displayDuration(result.Duration))
	}
}

// HandleError reports err and maps it to an exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	code := apperrors.ExitCodeFor(err)
	switch code {
	case apperrors.ExitErrorTimeout:
		fmt.Fprintf(out, "%sOperation timed out", ui.ColorRed())
		if duration > 0 {
			fmt.Fprintf(out, " after %s", format.FormatExecutionDuration(duration))
		}
		fmt.Fprintf(out, ": %v%s\n", err, ui.ColorReset())
	case apperrors.ExitErrorCanceled:
		fmt.Fprintf(out, "%sOperation canceled: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return code
}

// DisplayMemoryStats prints a runtime memory snapshot.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:  %d bytes\n", snap.HeapAlloc)
	fmt.Fprintf(out, "  Heap objects: %d\n", snap.HeapObjects)
	fmt.Fprintf(out, "  GC cycles:    %d\n", snap.NumGC)
}

// DisplaySystemStats prints host CPU and memory usage. Nothing is printed
// when no reading succeeded.
func DisplaySystemStats(stats sysmon.Stats, out io.Writer) {
	if !stats.Available {
		return
	}
	fmt.Fprintf(out, "  Host CPU:     %.1f%%\n", stats.CPUPercent)
	fmt.Fprintf(out, "  Host memory:  %.1f%%\n", stats.MemPercent)
}
