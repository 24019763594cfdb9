//go:build !linux && !darwin && !freebsd && !windows
// +build !linux,!darwin,!freebsd,!windows

// File: internal/sched/sched_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub for platforms without an affinity backend. Both operations report
// unsupported so callers can degrade instead of crash.

package sched

import (
	"fmt"

	"github.com/momentics/coreaffinity/api"
)

func coreIDs() ([]api.CoreID, error) {
	return nil, fmt.Errorf("%w: no affinity backend for this platform", api.ErrNotSupported)
}

func pinCurrent(core api.CoreID) error {
	return fmt.Errorf("%w: no affinity backend for this platform", api.ErrNotSupported)
}

func pinSupported() bool { return false }
