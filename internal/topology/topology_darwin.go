//go:build darwin
// +build darwin

// File: internal/topology/topology_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin logical-processor count via sysctl. hw.activecpu reflects the CPUs
// currently enabled by the power manager, hw.ncpu the configured total.

package topology

import (
	"golang.org/x/sys/unix"
)

// platformLogicalCount queries hw.activecpu, then hw.ncpu.
// Returns 0 on error so the caller falls back.
func platformLogicalCount() int {
	if n, err := unix.SysctlUint32("hw.activecpu"); err == nil && n > 0 {
		return int(n)
	}
	if n, err := unix.SysctlUint32("hw.ncpu"); err == nil && n > 0 {
		return int(n)
	}
	return 0
}
