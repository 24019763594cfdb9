//go:build darwin && cgo
// +build darwin,cgo

// File: internal/sched/sched_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Darwin backend. macOS has no thread-to-core pinning; the closest public
// mechanism is the Mach affinity tag: threads sharing a tag are hinted to
// co-schedule on the same core. Pinning here therefore sets the calling
// thread's tag to the core index, which is a placement hint rather than a
// hard restriction. Enumeration synthesizes sequential ids from the
// active-CPU count, which is how Darwin numbers its processors.

package sched

/*
#include <mach/mach.h>
#include <mach/thread_policy.h>
#include <mach/thread_act.h>
#include <pthread.h>

// Set the calling thread's Mach affinity tag.
static int set_affinity_tag(int tag) {
	thread_affinity_policy_data_t policy = { tag };
	mach_port_t port = pthread_mach_thread_np(pthread_self());
	return thread_policy_set(port, THREAD_AFFINITY_POLICY,
		(thread_policy_t)&policy, THREAD_AFFINITY_POLICY_COUNT);
}
*/
import "C"
import (
	"fmt"

	"github.com/momentics/coreaffinity/api"
	"github.com/momentics/coreaffinity/internal/topology"
)

// coreIDs synthesizes 0..n-1 from the active-CPU count.
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

// pinCurrent tags the calling thread with the core index. Affinity tags
// accept any integer, so out-of-range ids are rejected against the active
// set to keep failure behavior uniform with the other backends.
func pinCurrent(core api.CoreID) error {
	id := core.ID()
	if id < 0 {
		return fmt.Errorf("%w: %v", api.ErrInvalidCoreID, core)
	}
	if id >= topology.LogicalCount() {
		return fmt.Errorf("%w: %v not in active cpu set", api.ErrInvalidCoreID, core)
	}
	ret := C.set_affinity_tag(C.int(id))
	switch ret {
	case C.KERN_SUCCESS:
		return nil
	case C.KERN_NOT_SUPPORTED:
		// Apple Silicon rejects THREAD_AFFINITY_POLICY outright.
		return fmt.Errorf("%w: thread_policy_set: affinity tags unavailable", api.ErrNotSupported)
	default:
		return fmt.Errorf("%w: thread_policy_set(%v): kern return %d", api.ErrSetFailed, core, int(ret))
	}
}

func pinSupported() bool { return true }
