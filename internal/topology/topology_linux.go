//go:build linux
// +build linux

// File: internal/topology/topology_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux logical-processor count based on the calling thread's affinity mask.

package topology

import (
	"golang.org/x/sys/unix"
)

// platformLogicalCount counts the CPUs the calling thread may run on.
// Issues a single syscall. Returns 0 on error so the caller falls back.
func platformLogicalCount() int {
	var set unix.CPUSet
	// pid 0 targets the calling thread.
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return 0
	}
	return set.Count()
}
