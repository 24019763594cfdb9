// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. The platform-specific work lives in
// internal/sched, with one backend per supported OS selected by build tags.

package affinity

import (
	"github.com/momentics/coreaffinity/api"
	"github.com/momentics/coreaffinity/internal/sched"
)

// GetCoreIDs returns the logical processors the calling process is currently
// allowed to run on, ascending by index and free of duplicates. The result
// reflects the allowed set at the instant of the call and is rebuilt on
// every invocation; environments that resize the set (containers, cpuset
// cgroups, hot-plug) can yield different results between calls.
//
// A successful query that yields zero processors returns an empty, non-nil
// slice. A nil slice is returned only together with a non-nil error, which
// wraps api.ErrQueryFailed or api.ErrNotSupported.
func GetCoreIDs() ([]api.CoreID, error) {
	return sched.CoreIDs()
}

// SetForCurrent restricts the calling OS thread to the given processor.
// Callers pinning a goroutine must hold runtime.LockOSThread for the
// pin to remain attached to it.
//
// The change affects only the invoking thread, takes effect immediately and
// lasts until the thread exits or pins again; the most recent successful
// call wins. On failure the thread's previous affinity is untouched — the
// single native call is the only mutation performed.
//
// On macOS this is a Mach affinity-tag hint (threads with equal tags prefer
// the same core), not a hard restriction; see internal/sched.
//
// Errors wrap api.ErrInvalidCoreID, api.ErrCapacityExceeded,
// api.ErrSetFailed or api.ErrNotSupported.
func SetForCurrent(core api.CoreID) error {
	return sched.PinCurrent(core)
}

// PinSupported reports whether SetForCurrent can succeed on this build.
// It is false where the native pinning call is unreachable, e.g. Darwin or
// FreeBSD compiled without cgo, or a platform with no backend.
func PinSupported() bool {
	return sched.PinSupported()
}
