package apperrors

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("unknown operation %q for flag %s", "mean", "--op"),
			expected: `unknown operation "mean" for flag --op`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestOperationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		op          string
		cause       error
		expectedMsg string
		checkIs     error
	}{
		{
			name:        "Error prefixes operation name",
			op:          "sum",
			cause:       errors.New("boom"),
			expectedMsg: "sum: boom",
		},
		{
			name:        "errors.Is works with wrapped context error",
			op:          "sort",
			cause:       context.Canceled,
			expectedMsg: "sort: context canceled",
			checkIs:     context.Canceled,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := OperationError{Op: tt.op, Cause: tt.cause}

			if err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, err.Error())
			}
			if err.Unwrap() != tt.cause {
				t.Error("Unwrap should return the original cause")
			}
			if tt.checkIs != nil && !errors.Is(err, tt.checkIs) {
				t.Errorf("errors.Is should find %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	err := error(TimeoutError{Operation: "sort", Limit: 500 * time.Millisecond})
	if got, want := err.Error(), `operation "sort" timed out after 500ms`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	var timeoutErr TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatal("expected error to be TimeoutError type")
	}
	if timeoutErr.Operation != "sort" {
		t.Errorf("expected Operation %q, got %q", "sort", timeoutErr.Operation)
	}
}

func TestTimeoutError_IsDeadlineExceeded(t *testing.T) {
	t.Parallel()
	err := error(OperationError{Op: "sort", Cause: TimeoutError{Operation: "sort", Limit: time.Second}})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("TimeoutError should match context.DeadlineExceeded")
	}
	if !IsContextError(err) {
		t.Error("TimeoutError should be a context error")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name:     "Error returns formatted message",
			err:      ValidationError{Field: "values[2]", Message: "non-finite value +Inf"},
			expected: `validation error for "values[2]": non-finite value +Inf`,
		},
		{
			name:     "Error with different field",
			err:      ValidationError{Field: "input", Message: "not a number"},
			expected: `validation error for "input": not a number`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
		})
	}
}

func TestErrorsAsWithWrapping(t *testing.T) {
	t.Parallel()

	t.Run("ValidationError wrapped in OperationError", func(t *testing.T) {
		t.Parallel()
		err := OperationError{Op: "sum", Cause: ValidationError{Field: "values[0]", Message: "NaN"}}

		var validationErr ValidationError
		if !errors.As(err, &validationErr) {
			t.Error("errors.As should find ValidationError through OperationError")
		}
	})

	t.Run("ValidationError wrapped with WrapError", func(t *testing.T) {
		t.Parallel()
		err := WrapError(ValidationError{Field: "input", Message: "too large"}, "read failed")

		var validationErr ValidationError
		if !errors.As(err, &validationErr) {
			t.Error("errors.As should find ValidationError through WrapError")
		}
	})
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
		checkIs     error
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to read input",
			expectedMsg: "failed to read input: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "operation timed out",
			expectedMsg: "operation timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("permission denied"),
			format:      "failed to open %s",
			args:        []any{"values.txt"},
			expectedMsg: "failed to open values.txt: permission denied",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "operation canceled"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"deadline", OperationError{Op: "sort", Cause: context.DeadlineExceeded}, ExitErrorTimeout},
		{"timeout error", TimeoutError{Operation: "sum", Limit: time.Second}, ExitErrorTimeout},
		{"canceled", WrapError(context.Canceled, "interrupted"), ExitErrorCanceled},
		{"validation", OperationError{Op: "sum", Cause: ValidationError{Field: "values[1]", Message: "NaN"}}, ExitErrorValidation},
		{"config", NewConfigError("bad flag"), ExitErrorConfig},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":         ExitSuccess,
		"ExitErrorGeneric":    ExitErrorGeneric,
		"ExitErrorTimeout":    ExitErrorTimeout,
		"ExitErrorValidation": ExitErrorValidation,
		"ExitErrorConfig":     ExitErrorConfig,
		"ExitErrorCanceled":   ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
