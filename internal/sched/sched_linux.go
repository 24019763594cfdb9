//go:build linux
// +build linux

// File: internal/sched/sched_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux/Android backend on top of the sched_getaffinity/sched_setaffinity
// syscalls. Pure Go via golang.org/x/sys; pid 0 targets the calling thread.

package sched

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/momentics/coreaffinity/api"
)

// cpuSetCapacity is the number of processor indices a unix.CPUSet can hold,
// matching the kernel's CPU_SETSIZE.
const cpuSetCapacity = 1024

// coreIDs walks the calling thread's affinity mask and collects every set
// index in ascending order.
func coreIDs() ([]api.CoreID, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, fmt.Errorf("%w: sched_getaffinity: %v", api.ErrQueryFailed, err)
	}
	ids := make([]api.CoreID, 0, set.Count())
	for i := 0; i < cpuSetCapacity; i++ {
		if set.IsSet(i) {
			ids = append(ids, api.NewCoreID(i))
		}
	}
	return ids, nil
}

// pinCurrent applies a single-bit cpu set to the calling thread.
func pinCurrent(core api.CoreID) error {
	id := core.ID()
	if id < 0 {
		return fmt.Errorf("%w: %v", api.ErrInvalidCoreID, core)
	}
	if id >= cpuSetCapacity {
		return fmt.Errorf("%w: core %d, cpu set holds %d indices", api.ErrCapacityExceeded, id, cpuSetCapacity)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(id)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("%w: sched_setaffinity(%v): %v", api.ErrSetFailed, core, err)
	}
	return nil
}

func pinSupported() bool { return true }
