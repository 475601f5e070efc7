// Package config parses command-line flags and environment variables into
// the application configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/numcalc/internal/errors"
	"github.com/agbru/numcalc/internal/logging"
	"github.com/agbru/numcalc/internal/numeric"
	"github.com/agbru/numcalc/internal/ui"
)

const (
	// EnvPrefix is prepended to every environment variable name read by
	// applyEnvOverrides.
	EnvPrefix = "NUMCALC_"
	// OpAll selects every registered operation.
	OpAll = "all"
	// DefaultTimeout bounds a batch run.
	DefaultTimeout = time.Minute
	// DefaultLogLevel keeps diagnostic output off the terminal unless asked.
	DefaultLogLevel = "warn"
	// DefaultTheme is the colour theme used unless --theme says otherwise.
	DefaultTheme = "dark"
)

// SupportedShells lists the shells accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Op is the operation to run ("sum", "sort" or "all").
	Op string
	// Args holds the positional value tokens, unparsed.
	Args []string
	// Input is a file to read additional values from ("-" for stdin).
	Input string
	// Strict rejects NaN and infinite values.
	Strict bool
	// Verbose prints sorted sequences in full.
	Verbose bool
	// Details prints timing and memory information.
	Details bool
	// Quiet prints bare results only, one line per operation.
	Quiet bool
	// OutputFile, when set, receives a copy of the results.
	OutputFile string
	// Timeout bounds the whole batch run.
	Timeout time.Duration
	// MetricsFile, when set, receives Prometheus metrics in text format.
	MetricsFile string
	// LogLevel is the zerolog level name.
	LogLevel string
	// NoColor disables ANSI colours.
	NoColor bool
	// Theme names the colour theme ("dark" or "light").
	Theme string
	// Interactive starts the REPL.
	Interactive bool
	// Completion names a shell to print a completion script for.
	Completion string
}

// Validate checks the configuration against the available operations.
func (c AppConfig) Validate(availableOps []string) error {
	if c.Op != OpAll && !slices.Contains(availableOps, c.Op) {
		return apperrors.NewConfigError("unknown operation %q (valid: %s, %s)", c.Op, strings.Join(availableOps, ", "), OpAll)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if _, ok := ui.ThemeByName(c.Theme); !ok {
		return apperrors.NewConfigError("unknown theme %q (valid: %s)", c.Theme, strings.Join(ui.ThemeNames, ", "))
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if c.Completion != "" && !slices.Contains(SupportedShells, c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (valid: %s)", c.Completion, strings.Join(SupportedShells, ", "))
	}
	return nil
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment overrides for flags that were not set explicitly.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The arguments without the program name.
//   - errorWriter: Destination for usage and parse errors.
//   - availableOps: Names of the registered operations.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableOps []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] [values...]\n\n", programName)
		fmt.Fprintf(errorWriter, "Sums and sorts numbers. Negative values may be given directly (e.g. -5).\n\nFlags:\n")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", OpAll, fmt.Sprintf("Operation to run (%s, %s).", strings.Join(availableOps, ", "), OpAll))
	fs.StringVar(&config.Input, "input", "", "Read additional values from a file ('-' for stdin).")
	fs.StringVar(&config.Input, "f", "", "Shorthand for --input.")
	fs.BoolVar(&config.Strict, "strict", false, "Reject NaN and infinite values.")
	fs.BoolVar(&config.Verbose, "v", false, "Print sorted sequences in full.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.Details, "d", false, "Print timing and memory details.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.Quiet, "q", false, "Print bare results only, for scripting.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Alias for -q.")
	fs.StringVar(&config.OutputFile, "o", "", "Write results to a file.")
	fs.StringVar(&config.OutputFile, "output", "", "Alias for -o.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus metrics to a file after the run.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level (debug, info, warn, error).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable coloured output.")
	fs.StringVar(&config.Theme, "theme", DefaultTheme, "Colour theme (dark, light).")
	fs.BoolVar(&config.Interactive, "i", false, "Start the interactive mode.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Alias for -i.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script (bash, zsh, fish).")

	flagArgs, valueArgs := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}
	config.Args = append(valueArgs, fs.Args()...)

	applyEnvOverrides(&config, fs)

	if err := config.Validate(availableOps); err != nil {
		fmt.Fprintln(errorWriter, "Error:", err)
		return AppConfig{}, err
	}
	return config, nil
}

// splitArgs separates flags (and the values of value-taking flags) from
// positional value tokens, so that negative numbers such as "-5" are not
// mistaken for flags. Everything after "--" is positional.
func splitArgs(fs *flag.FlagSet, args []string) (flags, values []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flags, append(values, args[i+1:]...)
		case numeric.IsNumber(arg):
			values = append(values, arg)
		case strings.HasPrefix(arg, "-"):
			flags = append(flags, arg)
			if takesValue(fs, arg) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			values = append(values, arg)
		}
	}
	return flags, values
}

// takesValue reports whether arg names a defined non-boolean flag written
// without an inline "=value".
func takesValue(fs *flag.FlagSet, arg string) bool {
	name := strings.TrimLeft(arg, "-")
	if strings.Contains(name, "=") {
		return false
	}
	f := fs.Lookup(name)
	if f == nil {
		return false
	}
	if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
		return false
	}
	return true
}
