// File: internal/sched/backend.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral entry points. The coreIDs, pinCurrent and pinSupported
// symbols are provided by exactly one platform file selected at build time
// via build tags; no runtime dispatch is involved.

package sched

import "github.com/momentics/coreaffinity/api"

// CoreIDs returns the logical processors the calling process is currently
// allowed to run on, in ascending index order.
func CoreIDs() ([]api.CoreID, error) {
	return coreIDs()
}

// PinCurrent restricts the calling OS thread to the given processor.
// The caller is responsible for runtime.LockOSThread.
func PinCurrent(core api.CoreID) error {
	return pinCurrent(core)
}

// PinSupported reports whether this build can actually pin threads.
// False on builds where the native call is unreachable (no cgo on Darwin
// and FreeBSD, unlisted platforms).
func PinSupported() bool {
	return pinSupported()
}
