//go:build linux
// +build linux

// File: internal/sched/sched_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/momentics/coreaffinity/api"
)

func TestCoreIDsMatchesAffinityMask(t *testing.T) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		t.Fatalf("sched_getaffinity: %v", err)
	}
	ids, err := coreIDs()
	if err != nil {
		t.Fatalf("coreIDs: %v", err)
	}
	if len(ids) != set.Count() {
		t.Errorf("enumerated %d cores, mask holds %d", len(ids), set.Count())
	}
	for _, id := range ids {
		if !set.IsSet(id.ID()) {
			t.Errorf("%v enumerated but absent from mask", id)
		}
	}
}

func TestPinCurrentBoundsChecks(t *testing.T) {
	if err := pinCurrent(api.NewCoreID(-1)); !errors.Is(err, api.ErrInvalidCoreID) {
		t.Errorf("pinCurrent(-1) = %v, want ErrInvalidCoreID", err)
	}
	if err := pinCurrent(api.NewCoreID(cpuSetCapacity)); !errors.Is(err, api.ErrCapacityExceeded) {
		t.Errorf("pinCurrent(%d) = %v, want ErrCapacityExceeded", cpuSetCapacity, err)
	}
}

func TestPinSupported(t *testing.T) {
	if !pinSupported() {
		t.Error("linux backend must support pinning")
	}
}
