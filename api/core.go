// File: api/core.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// CoreID identifies one logical processor as seen by the OS scheduler.

package api

import "fmt"

// CoreID is an opaque, copyable identifier for a single logical processor.
// The wrapped index lives in the platform's own numbering space and is only
// meaningful to the backend that produced it. Two CoreIDs are equal when
// their indices are equal; ordering follows the index.
type CoreID struct {
	id int
}

// NewCoreID wraps a logical processor index.
func NewCoreID(id int) CoreID {
	return CoreID{id: id}
}

// ID returns the logical processor index.
func (c CoreID) ID() int {
	return c.id
}

// Less reports whether c orders before other.
func (c CoreID) Less(other CoreID) bool {
	return c.id < other.id
}

// String implements fmt.Stringer.
func (c CoreID) String() string {
	return fmt.Sprintf("CoreID(%d)", c.id)
}
