// Package sysmon samples host-wide CPU and memory usage for the details
// report.
package sysmon

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is a single snapshot of host resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	// Available reports whether at least one reading succeeded.
	Available bool
}

// Sample collects a host snapshot. CPU usage is the delta since the
// previous call (interval 0), so the first sample of a process may read 0.
// Readings that fail leave their field at zero.
func Sample(ctx context.Context) Stats {
	var s Stats
	if pcts, err := cpu.PercentWithContext(ctx, 0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
		s.Available = true
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
		s.Available = true
	}
	return s
}
