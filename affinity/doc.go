// File: affinity/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package affinity is the public façade of coreaffinity: enumerate the
// logical processors available to the calling process and pin the calling
// OS thread to one of them.
//
// Every operation is stateless and reentrant. Enumeration has no side
// effects; pinning touches only the calling thread's own scheduler record,
// so concurrent callers never interfere and no locking is used anywhere.
// Thread spawning, NUMA topology and physical-core counting are the
// caller's business.
package affinity
