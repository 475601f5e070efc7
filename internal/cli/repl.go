package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/agbru/numcalc/internal/config"
	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/metrics"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/orchestration"
	"github.com/agbru/numcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout is the maximum duration of each command.
	Timeout time.Duration
	// Strict rejects NaN and infinite values.
	Strict bool
	// Verbose prints sorted sequences in full.
	Verbose bool
	// Recorder receives metrics for every command; may be nil.
	Recorder *metrics.Recorder
	// Logger receives diagnostics; may be nil.
	Logger logging.Logger
}

// REPL is an interactive numcalc session.
type REPL struct {
	config  REPLConfig
	factory numeric.OperationFactory
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a REPL over the operations of factory, reading from
// stdin and writing to stdout.
func NewREPL(factory numeric.OperationFactory, config REPLConfig) *REPL {
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}
	return &REPL{
		config:  config,
		factory: factory,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// SetInput sets a custom input reader.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until "exit", EOF or cancellation of ctx.
// Cancellation ends the session even while it waits for input.
func (r *REPL) Start(ctx context.Context) {
	fmt.Fprintln(r.out, ui.Banner("numcalc - interactive mode"))
	r.printHelp()
	fmt.Fprintln(r.out)

	done := make(chan struct{})
	defer close(done)
	lines := r.readLines(done)

	for {
		if ctx.Err() != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
		fmt.Fprint(r.out, ui.ColorGreen()+"numcalc> "+ui.ColorReset())

		var line inputLine
		select {
		case <-ctx.Done():
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		case line = <-lines:
		}

		input := strings.TrimSpace(line.text)
		if input != "" && !r.processCommand(ctx, input) {
			return
		}
		if line.err != nil {
			if !errors.Is(line.err, io.EOF) {
				fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), line.err, ui.ColorReset())
			}
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

type inputLine struct {
	text string
	err  error
}

// readLines reads r.in line by line on its own goroutine until a read
// error or until done is closed. A goroutine blocked in a read outlives
// the session; it exits on the next line or at EOF.
func (r *REPL) readLines(done <-chan struct{}) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		reader := bufio.NewReader(r.in)
		for {
			text, err := reader.ReadString('\n')
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return lines
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%s\n", ui.Heading("Commands"))
	fmt.Fprintf(r.out, "  %ssum%s <values...>   Add the values\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssort%s <values...>  Sort the values in ascending order\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sall%s <values...>   Run every operation\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<values...>%s       Shortcut for all\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s              List operations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstrict%s            Toggle rejection of NaN and infinite values\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s            Show the session settings\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s              Show this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s              Quit\n", ui.ColorYellow(), ui.ColorReset())
}

// processCommand executes one input line. It returns false when the
// session should end.
func (r *REPL) processCommand(ctx context.Context, input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "all":
		r.run(ctx, config.OpAll, args)
	case "list", "ls":
		r.cmdList()
	case "strict":
		r.config.Strict = !r.config.Strict
		fmt.Fprintf(r.out, "Strict mode: %s%s%s\n", ui.ColorGreen(), onOff(r.config.Strict), ui.ColorReset())
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		switch {
		case numeric.IsNumber(cmd):
			r.run(ctx, config.OpAll, parts)
		case r.hasOperation(cmd):
			r.run(ctx, cmd, args)
		default:
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}
	return true
}

func (r *REPL) hasOperation(name string) bool {
	_, err := r.factory.Get(name)
	return err == nil
}

// run executes the selected operations over the value tokens and prints
// one line per operation.
func (r *REPL) run(ctx context.Context, selection string, tokens []string) {
	values, err := numeric.ParseValues(tokens)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	ops := orchestration.GetOperationsToRun(selection, r.factory)
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	results := orchestration.ExecuteOperations(ctx, ops, values, orchestration.ExecutionOptions{
		Numeric:  numeric.Options{RejectNonFinite: r.config.Strict},
		Timeout:  r.config.Timeout,
		Recorder: r.config.Recorder,
		Logger:   r.config.Logger,
	}, orchestration.NullProgressReporter{}, r.out)

	for _, res := range results {
		if res.Err != nil {
			r.printError(res)
			continue
		}
		fmt.Fprintf(r.out, "%s%s%s\n", ui.ColorBold(), FormatResult(res.Name, res.Result, r.config.Verbose), ui.ColorReset())
	}
}

func (r *REPL) printError(res orchestration.OperationResult) {
	switch {
	case !apperrors.IsContextError(res.Err):
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), res.Err, ui.ColorReset())
	case errors.Is(res.Err, context.DeadlineExceeded):
		fmt.Fprintf(r.out, "%s%s timed out after %s%s\n", ui.ColorYellow(), res.Name, r.config.Timeout, ui.ColorReset())
	default:
		fmt.Fprintf(r.out, "%s%s canceled%s\n", ui.ColorYellow(), res.Name, ui.ColorReset())
	}
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable operations:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, op := range r.factory.GetAll() {
		fmt.Fprintf(r.out, "  %s%-6s%s %s\n", ui.ColorCyan(), op.Name(), ui.ColorReset(), op.Description())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:  %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintf(r.out, "  Strict:   %s%s%s\n", ui.ColorCyan(), onOff(r.config.Strict), ui.ColorReset())
	fmt.Fprintf(r.out, "  Verbose:  %s%s%s\n", ui.ColorCyan(), onOff(r.config.Verbose), ui.ColorReset())
	fmt.Fprintln(r.out)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
