package numeric

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAsync_Await(t *testing.T) {
	t.Parallel()
	f := Async(func() int { return 7 })

	got, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Errorf("Await = %d, want 7", got)
	}

	select {
	case <-f.Done():
	default:
		t.Error("Done should be closed after Await returned the value")
	}
}

func TestAsync_AwaitHonoursContext(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	defer close(release)

	f := Async(func() string {
		<-release
		return "late"
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	got, err := f.Await(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if got != "" {
		t.Errorf("expected zero value on timeout, got %q", got)
	}
}

func TestSortAsync_SnapshotsInput(t *testing.T) {
	t.Parallel()
	input := []float64{3, 2, 1}
	f := SortAsync(input...)
	input[0] = 100

	got, err := f.Await(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("SortAsync should sort the values seen at call time, got %v", got)
	}
}
