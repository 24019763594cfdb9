//go:build freebsd && !cgo
// +build freebsd,!cgo

// File: internal/sched/sched_freebsd_nocgo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FreeBSD fallback for builds with CGO disabled. Enumeration degrades to
// the topology count; pinning reports unsupported.

package sched

import (
	"fmt"

	"github.com/momentics/coreaffinity/api"
	"github.com/momentics/coreaffinity/internal/topology"
)

func coreIDs() ([]api.CoreID, error) {
	n := topology.LogicalCount()
	if n <= 0 {
		return nil, fmt.Errorf("%w: no cpu count available", api.ErrQueryFailed)
	}
	ids := make([]api.CoreID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, api.NewCoreID(i))
	}
	return ids, nil
}

func pinCurrent(core api.CoreID) error {
	return fmt.Errorf("%w: cpuset pinning requires cgo", api.ErrNotSupported)
}

func pinSupported() bool { return false }
