package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/agbru/numcalc/internal/numeric"
)

func runREPL(t *testing.T, config REPLConfig, input string) string {
	t.Helper()
	r := NewREPL(numeric.NewDefaultFactory(), config)
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.Start(context.Background())
	return out.String()
}

func TestREPLCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"sum", "sum 1 2\nexit\n", []string{"sum = 3", "Goodbye!"}},
		{"sort negatives", "sort -5 -10 -1 -20\n", []string{"sort = [-20 -10 -5 -1]"}},
		{"bare numbers run all", "23 3 5\n", []string{"sort = [3 5 23]", "sum = 31"}},
		{"all", "all 1 2\n", []string{"sort = [1 2]", "sum = 3"}},
		{"empty sum", "sum\n", []string{"sum = 0"}},
		{"invalid value", "sum 1 x\n", []string{"Error:", `"values[1]"`}},
		{"unknown", "frobnicate\n", []string{"Unknown command: frobnicate"}},
		{"list", "list\n", []string{"Available operations", "sort", "sum"}},
		{"status", "status\n", []string{"Strict:   ", "off"}},
		{"strict toggles", "strict\nsum 1 Inf\n", []string{"Strict mode: ", "on", "non-finite value +Inf"}},
		{"no trailing newline", "sum 4 5", []string{"sum = 9"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := runREPL(t, REPLConfig{Timeout: time.Second}, tt.input)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestREPLPermissiveInfinity(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{}, "sum 1 Inf\n")
	if !strings.Contains(out, "sum = +Inf") {
		t.Errorf("expected +Inf to propagate:\n%s", out)
	}
}

func TestREPLStopsOnCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewREPL(numeric.NewDefaultFactory(), REPLConfig{})
	var out bytes.Buffer
	r.SetInput(strings.NewReader("sum 1 2\n"))
	r.SetOutput(&out)
	r.Start(ctx)

	if strings.Contains(out.String(), "sum = 3") {
		t.Errorf("no command should run after cancellation:\n%s", out.String())
	}
}

func TestREPLStopsWhileWaitingForInput(t *testing.T) {
	t.Parallel()
	pr, pw := io.Pipe()
	defer pw.Close()

	r := NewREPL(numeric.NewDefaultFactory(), REPLConfig{})
	var out bytes.Buffer
	r.SetInput(pr)
	r.SetOutput(&out)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(finished)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancellation while blocked on input")
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Errorf("expected goodbye message:\n%s", out.String())
	}
}

func TestREPLReportsTimeout(t *testing.T) {
	t.Parallel()
	factory := numeric.NewFactory()
	if err := factory.Register(blockingOperation{}); err != nil {
		t.Fatal(err)
	}
	r := NewREPL(factory, REPLConfig{Timeout: 10 * time.Millisecond})
	var out bytes.Buffer
	r.SetInput(strings.NewReader("wait 1\n"))
	r.SetOutput(&out)
	r.Start(context.Background())

	if !strings.Contains(out.String(), "wait timed out after 10ms") {
		t.Errorf("expected timeout message:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Error:") {
		t.Errorf("timeout should not be reported as a generic error:\n%s", out.String())
	}
}

// blockingOperation waits for its context to end.
type blockingOperation struct{}

func (blockingOperation) Name() string        { return "wait" }
func (blockingOperation) Description() string { return "blocks until canceled" }

func (blockingOperation) Apply(ctx context.Context, _ []float64, _ numeric.Options) (numeric.Result, error) {
	<-ctx.Done()
	return numeric.Result{}, ctx.Err()
}
