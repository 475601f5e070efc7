// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a formatted string without performing I/O.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the results (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything but the bare results.
	Quiet bool
	// Verbose prints sorted sequences in full.
	Verbose bool
}

// FormatResult renders a result as "name = value". Sequences longer than
// TruncationLimit are shortened unless verbose is set.
func FormatResult(name string, res numeric.Result, verbose bool) string {
	switch res.Kind {
	case numeric.KindSequence:
		if verbose {
			return fmt.Sprintf("%s = %s", name, format.FormatValues(res.Sorted))
		}
		return fmt.Sprintf("%s = %s", name, format.FormatValuesTruncated(res.Sorted, TruncationLimit, DisplayEdges))
	default:
		return fmt.Sprintf("%s = %s", name, format.FormatNumber(res.Total))
	}
}

// FormatQuietResult renders a result as a bare value: a number for scalar
// results, space separated values for sequences.
func FormatQuietResult(res numeric.Result) string {
	if res.Kind == numeric.KindSequence {
		return format.JoinValues(res.Sorted)
	}
	return format.FormatNumber(res.Total)
}

// DisplayQuietResult writes the bare value of a result on its own line.
func DisplayQuietResult(out io.Writer, res numeric.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// PrintExecutionConfig prints what is about to run.
func PrintExecutionConfig(out io.Writer, opNames []string, inputCount int, strict bool, timeout time.Duration) {
	fmt.Fprintf(out, "%s\n", ui.Heading("numcalc"))
	mode := "permissive"
	if strict {
		mode = "strict"
	}
	fmt.Fprintf(out, "Operations: %s%s%s | Values: %s%d%s | Mode: %s | Timeout: %s\n",
		ui.ColorCyan(), strings.Join(opNames, ", "), ui.ColorReset(),
		ui.ColorYellow(), inputCount, ui.ColorReset(),
		mode, timeout)
}

// WriteResultsToFile writes the successful results of a run to
// config.OutputFile, creating parent directories as needed. Sequences are
// always written in full.
//
// Parameters:
//   - results: The results of the run.
//   - inputCount: The number of input values.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultsToFile(results []orchestration.OperationResult, inputCount int, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	names := make([]string, 0, len(results))
	for _, res := range results {
		names = append(names, res.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&b, "# Operation: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(&b, "# Count: %d\n\n", inputCount)
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(&b, "%s: error: %v\n", res.Name, res.Err)
			continue
		}
		b.WriteString(FormatResult(res.Name, res.Result, true))
		b.WriteByte('\n')
	}

	if _, err := file.WriteString(b.String()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// DisplayResultsSaved confirms where the results were written.
func DisplayResultsSaved(out io.Writer, path string) {
	fmt.Fprintf(out, "%s✓ Results saved to: %s%s%s\n", ui.ColorGreen(), ui.ColorCyan(), path, ui.ColorReset())
}
