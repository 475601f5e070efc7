package format

import "strings"

// ProgressState tracks the progress of several concurrent operations and
// exposes their average.
type ProgressState struct {
	progresses []float64
}

// NewProgressState creates a tracker for n operations, all at 0.
func NewProgressState(n int) *ProgressState {
	return &ProgressState{progresses: make([]float64, n)}
}

// Update records the progress of operation index. Out-of-range indices are
// ignored.
func (p *ProgressState) Update(index int, value float64) {
	if index >= 0 && index < len(p.progresses) {
		p.progresses[index] = value
	}
}

// CalculateAverage returns the mean progress, 0 when nothing is tracked.
func (p *ProgressState) CalculateAverage() float64 {
	if len(p.progresses) == 0 {
		return 0
	}
	var total float64
	for _, v := range p.progresses {
		total += v
	}
	return total / float64(len(p.progresses))
}

// ProgressBar renders progress (clamped to [0, 1]) as a bar of length runes.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}
