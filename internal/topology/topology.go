// File: internal/topology/topology.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cross-platform logical-processor counting. The platform-specific count
// lives in topology_<GOOS>.go; this file provides the shared fallback chain
// used when the native query is unavailable or fails.

package topology

import (
	"runtime"

	"github.com/klauspost/cpuid"
)

// LogicalCount returns the number of logical processors enabled for the
// calling process. The platform query is tried first; on failure the count
// degrades to CPUID detection and finally to the Go runtime's view.
// The result is always at least 1.
func LogicalCount() int {
	if n := platformLogicalCount(); n > 0 {
		return n
	}
	return fallbackCount()
}

// fallbackCount returns the logical core count reported by the CPUID leaves
// when present, else runtime.NumCPU.
func fallbackCount() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	if n := runtime.NumCPU(); n > 0 {
		return n
	}
	return 1
}
