//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

// File: internal/topology/topology_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without a dedicated count query.

package topology

// platformLogicalCount reports no native count; LogicalCount falls back to
// CPUID and the Go runtime.
func platformLogicalCount() int {
	return 0
}
