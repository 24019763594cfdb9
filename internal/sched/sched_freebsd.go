//go:build freebsd && cgo
// +build freebsd,cgo

// File: internal/sched/sched_freebsd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FreeBSD backend on top of pthread_getaffinity_np/pthread_setaffinity_np
// with cpuset_t, reached through cgo.

package sched

/*
#include <pthread_np.h>
#include <pthread.h>
#include <sys/_cpuset.h>
#include <sys/cpuset.h>

static int self_cpuset(cpuset_t *set) {
	return pthread_getaffinity_np(pthread_self(), sizeof(cpuset_t), set);
}

static int pin_self(int cpu) {
	cpuset_t set;
	CPU_ZERO(&set);
	CPU_SET(cpu, &set);
	return pthread_setaffinity_np(pthread_self(), sizeof(cpuset_t), &set);
}

static int cpuset_bit(cpuset_t *set, int cpu) {
	return CPU_ISSET(cpu, set);
}

static int cpuset_capacity(void) {
	return CPU_SETSIZE;
}
*/
import "C"
import (
	"fmt"

	"github.com/momentics/coreaffinity/api"
)

// coreIDs walks the calling thread's cpu set and collects every member
// index in ascending order.
func coreIDs() ([]api.CoreID, error) {
	var set C.cpuset_t
	if rc := C.self_cpuset(&set); rc != 0 {
		return nil, fmt.Errorf("%w: pthread_getaffinity_np: code %d", api.ErrQueryFailed, int(rc))
	}
	capacity := int(C.cpuset_capacity())
	var ids []api.CoreID
	for i := 0; i < capacity; i++ {
		if C.cpuset_bit(&set, C.int(i)) != 0 {
			ids = append(ids, api.NewCoreID(i))
		}
	}
	if ids == nil {
		ids = []api.CoreID{}
	}
	return ids, nil
}

// pinCurrent applies a single-member cpu set to the calling thread.
func pinCurrent(core api.CoreID) error {
	id := core.ID()
	if id < 0 {
		return fmt.Errorf("%w: %v", api.ErrInvalidCoreID, core)
	}
	if id >= int(C.cpuset_capacity()) {
		return fmt.Errorf("%w: core %d, cpu set holds %d indices", api.ErrCapacityExceeded, id, int(C.cpuset_capacity()))
	}
	if rc := C.pin_self(C.int(id)); rc != 0 {
		return fmt.Errorf("%w: pthread_setaffinity_np(%v): code %d", api.ErrSetFailed, core, int(rc))
	}
	return nil
}

func pinSupported() bool { return true }
