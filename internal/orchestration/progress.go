package orchestration

import "github.com/agbru/numcalc/internal/format"

// ProgressAggregator folds per-operation updates into an overall average.
type ProgressAggregator struct {
	state         *format.ProgressState
	numOperations int
}

// NewProgressAggregator creates an aggregator for numOperations operations.
// Returns nil if numOperations <= 0.
func NewProgressAggregator(numOperations int) *ProgressAggregator {
	if numOperations <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:         format.NewProgressState(numOperations),
		numOperations: numOperations,
	}
}

// Update applies an update and returns the new average progress.
func (a *ProgressAggregator) Update(update ProgressUpdate) float64 {
	a.state.Update(update.OperationIndex, update.Value)
	return a.state.CalculateAverage()
}

// NumOperations returns the number of operations being tracked.
func (a *ProgressAggregator) NumOperations() int {
	return a.numOperations
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
