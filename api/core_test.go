// File: api/core_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

import "testing"

func TestCoreIDEquality(t *testing.T) {
	if NewCoreID(3) != NewCoreID(3) {
		t.Error("equal indices must compare equal")
	}
	if NewCoreID(3) == NewCoreID(4) {
		t.Error("distinct indices must compare unequal")
	}
}

func TestCoreIDOrdering(t *testing.T) {
	if !NewCoreID(1).Less(NewCoreID(2)) {
		t.Error("CoreID(1) must order before CoreID(2)")
	}
	if NewCoreID(2).Less(NewCoreID(2)) {
		t.Error("Less must be strict")
	}
}

func TestCoreIDAccessors(t *testing.T) {
	c := NewCoreID(7)
	if c.ID() != 7 {
		t.Errorf("ID() = %d, want 7", c.ID())
	}
	if c.String() != "CoreID(7)" {
		t.Errorf("String() = %q", c.String())
	}
}
