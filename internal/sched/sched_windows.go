//go:build windows
// +build windows

// File: internal/sched/sched_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows backend on top of the kernel32 affinity-mask API. The mask is one
// machine word, so at most 64 (or 32 on 32-bit builds) logical processors
// are representable; indices beyond that are rejected up front.
//
// Reference: https://learn.microsoft.com/en-us/windows/win32/api/winbase/nf-winbase-setthreadaffinitymask

package sched

import (
	"fmt"
	"math/bits"

	"golang.org/x/sys/windows"

	"github.com/momentics/coreaffinity/api"
)

// maskBits is the width of the native affinity mask word.
const maskBits = 32 << (^uintptr(0) >> 63)

var (
	modkernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetThreadAffinityMask = modkernel32.NewProc("SetThreadAffinityMask")
)

// coreIDs extracts the set bits of the process affinity mask in ascending
// bit-index order.
func coreIDs() ([]api.CoreID, error) {
	var processMask, systemMask uintptr
	err := windows.GetProcessAffinityMask(windows.CurrentProcess(), &processMask, &systemMask)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProcessAffinityMask: %v", api.ErrQueryFailed, err)
	}
	if processMask == 0 {
		// A live process always has at least one allowed processor, so an
		// empty mask can only mean the call itself failed.
		return nil, fmt.Errorf("%w: GetProcessAffinityMask returned empty mask", api.ErrQueryFailed)
	}
	ids := make([]api.CoreID, 0, bits.OnesCount64(uint64(processMask)))
	for i := 0; i < maskBits; i++ {
		if processMask&(uintptr(1)<<uint(i)) != 0 {
			ids = append(ids, api.NewCoreID(i))
		}
	}
	return ids, nil
}

// pinCurrent applies a single-bit mask to the calling thread.
func pinCurrent(core api.CoreID) error {
	id := core.ID()
	if id < 0 {
		return fmt.Errorf("%w: %v", api.ErrInvalidCoreID, core)
	}
	if id >= maskBits {
		return fmt.Errorf("%w: core %d, affinity mask holds %d bits", api.ErrCapacityExceeded, id, maskBits)
	}
	mask := uintptr(1) << uint(id)
	ret, _, callErr := procSetThreadAffinityMask.Call(uintptr(windows.CurrentThread()), mask)
	if ret == 0 {
		return fmt.Errorf("%w: SetThreadAffinityMask(%v): %v", api.ErrSetFailed, core, callErr)
	}
	return nil
}

func pinSupported() bool { return true }
