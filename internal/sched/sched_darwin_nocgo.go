//go:build darwin && !cgo
// +build darwin,!cgo

// File: internal/sched/sched_darwin_nocgo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin fallback for builds with CGO disabled. Enumeration still works
// through sysctl, but the Mach thread-policy call is unreachable without
// cgo, so pinning reports unsupported instead of pretending success.

package sched

import (
	"fmt"

	"github.com/momentics/coreaffinity/api"
	"github.com/momentics/coreaffinity/internal/topology"
)

func coreIDs() ([]api.CoreID, error) {
	n := topology.LogicalCount()
	if n <= 0 {
		return nil, fmt.Errorf("%w: no active cpu count", api.ErrQueryFailed)
	}
	ids := make([]api.CoreID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, api.NewCoreID(i))
	}
	return ids, nil
}

func pinCurrent(core api.CoreID) error {
	return fmt.Errorf("%w: mach thread policy requires cgo", api.ErrNotSupported)
}

func pinSupported() bool { return false }
