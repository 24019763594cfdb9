//go:build windows
// +build windows

// File: internal/topology/topology_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows logical-processor count from the process affinity mask.
// Every processor available to the process has one bit set in the mask.

package topology

import (
	"math/bits"

	"golang.org/x/sys/windows"
)

// platformLogicalCount counts the set bits of the process affinity mask.
// Returns 0 on error so the caller falls back.
func platformLogicalCount() int {
	var processMask, systemMask uintptr
	err := windows.GetProcessAffinityMask(windows.CurrentProcess(), &processMask, &systemMask)
	if err != nil {
		return 0
	}
	return bits.OnesCount64(uint64(processMask))
}
