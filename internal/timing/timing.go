// Package timing provides a best-effort, in-process wall-clock and peak-RSS
// sampler around a planner run, producing a core.ExecutionStatus for every
// solver-invoking CLI command to report.
package timing

import (
	"syscall"
	"time"

	"github.com/podheal/healbatch/core"
)

// Run executes fn, timing its wall-clock duration and sampling the
// process's peak resident set size afterward, and returns a populated
// core.ExecutionStatus alongside fn's own error.
func Run(fn func() error) (core.ExecutionStatus, error) {
	start := time.Now()
	err := fn()
	status := core.NewExecutionStatus()
	status.WallTime = time.Since(start)
	status.PeakRSSKiB = peakRSSKiB()
	return status, err
}

// peakRSSKiB reads the process's maximum resident set size via
// getrusage(RUSAGE_SELF). On Linux, syscall.Rusage.Maxrss is already
// reported in KiB. Any error sampling it yields 0 rather than failing the
// caller's run.
func peakRSSKiB() int64 {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return int64(ru.Maxrss)
}
