package numeric

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"

	apperrors "github.com/agbru/numcalc/internal/errors"
)

func TestDefaultFactory(t *testing.T) {
	t.Parallel()
	factory := NewDefaultFactory()

	if got := factory.List(); !slices.Equal(got, []string{"sort", "sum"}) {
		t.Errorf("List() = %v, want [sort sum]", got)
	}

	all := factory.GetAll()
	if len(all) != 2 || all[0].Name() != "sort" || all[1].Name() != "sum" {
		t.Errorf("GetAll() returned unexpected operations: %v", all)
	}

	if _, err := factory.Get("median"); err == nil {
		t.Error("Get should fail for an unknown operation")
	} else if !strings.Contains(err.Error(), "sort, sum") {
		t.Errorf("error should list available operations, got %q", err)
	}

	if err := factory.Register(SumOperation{}); err == nil {
		t.Error("registering a duplicate name should fail")
	}
}

func TestSumOperation_Apply(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		values    []float64
		opts      Options
		want      float64
		wantValid bool
	}{
		{"permissive sum", []float64{1, 2, 3}, Options{}, 6, false},
		{"permissive infinity", []float64{1, math.Inf(1)}, Options{}, math.Inf(1), false},
		{"strict rejects infinity", []float64{1, math.Inf(1)}, Options{RejectNonFinite: true}, 0, true},
		{"strict accepts finite", []float64{-5, 10}, Options{RejectNonFinite: true}, 5, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := SumOperation{}.Apply(context.Background(), tt.values, tt.opts)
			if tt.wantValid {
				var validationErr apperrors.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
				if validationErr.Field != "values[1]" {
					t.Errorf("Field = %q, want values[1]", validationErr.Field)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Kind != KindScalar || res.Total != tt.want {
				t.Errorf("Apply = %+v, want scalar %v", res, tt.want)
			}
		})
	}
}

func TestSortOperation_Apply(t *testing.T) {
	t.Parallel()

	res, err := SortOperation{}.Apply(context.Background(), []float64{3, 1, 2}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Kind != KindSequence || !slices.Equal(res.Sorted, []float64{1, 2, 3}) {
		t.Errorf("Apply = %+v, want sequence [1 2 3]", res)
	}

	_, err = SortOperation{}.Apply(context.Background(), []float64{math.NaN()}, Options{RejectNonFinite: true})
	var validationErr apperrors.ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError for NaN in strict mode, got %v", err)
	}
}

func TestOperations_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (SumOperation{}).Apply(ctx, []float64{1}, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("sum: expected context.Canceled, got %v", err)
	}
}

func TestSortOperation_CanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := (SortOperation{}).Apply(ctx, []float64{2, 1}, Options{}); !errors.Is(err, context.Canceled) {
		t.Errorf("sort: expected context.Canceled, got %v", err)
	}
}
