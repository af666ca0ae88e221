// Package sysinfo resolves the default worker count and tunes the Go
// runtime (GOMAXPROCS, GOMEMLIMIT) to reflect container cgroup quotas,
// rather than the host machine's. None of this affects the core search
// algorithms; it is pure ambient process startup behavior.
package sysinfo

import (
	"runtime"

	"github.com/KimMachineGun/automemlimit/memlimit"
	"github.com/pbnjay/memory"
	"go.uber.org/automaxprocs/maxprocs"
)

// Tune adjusts GOMAXPROCS and GOMEMLIMIT for the current cgroup, if any.
// logf receives human-readable diagnostic messages (it may be nil); it is
// never fatal, since the tool runs correctly at the host's raw resource
// limits too.
func Tune(logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	if _, err := maxprocs.Set(maxprocs.Logger(logf)); err != nil {
		logf("sysinfo: GOMAXPROCS tuning skipped: %v", err)
	}

	if _, err := memlimit.SetGoMemLimitWithOpts(); err != nil {
		logf("sysinfo: GOMEMLIMIT tuning skipped: %v", err)
	}
}

// WorkerCount returns the default number of search workers: the number of
// logical CPUs available to this process. Always >= 1.
func WorkerCount() int {
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}

// TotalMemory reports total system memory in bytes, for diagnostic logging
// only.
func TotalMemory() uint64 {
	return memory.TotalMemory()
}
