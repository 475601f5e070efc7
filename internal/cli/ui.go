package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/numcalc/internal/format"
	"github.com/agbru/numcalc/internal/orchestration"
)

const (
	// TruncationLimit is the sequence length from which a sorted result is
	// truncated in standard output.
	TruncationLimit = 20
	// DisplayEdges is the number of values kept at each end of a truncated
	// sequence.
	DisplayEdges = 5
	// ProgressRefreshRate is the spinner animation interval.
	ProgressRefreshRate = 100 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 20
)

// Spinner abstracts a terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

// UpdateSuffix sets the text displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	return &realSpinner{spinner.New(spinner.CharSets[14], ProgressRefreshRate, options...)}
}

// DisplayProgress shows a spinner with an aggregated progress bar until
// progressChan is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numOperations int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numOperations)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(0, numOperations))
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		s.UpdateSuffix(progressSuffix(agg.Update(update), numOperations))
	}
}

func progressSuffix(progress float64, numOperations int) string {
	label := "operation"
	if numOperations > 1 {
		label = "operations"
	}
	return fmt.Sprintf(" %d %s %s %3.0f%%", numOperations, label, format.ProgressBar(progress, ProgressBarWidth), progress*100)
}
