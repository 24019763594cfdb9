//go:build windows
// +build windows

// File: affinity/affinity_windows_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package affinity_test

import (
	"errors"
	"testing"

	"github.com/momentics/coreaffinity/affinity"
	"github.com/momentics/coreaffinity/api"
)

// The Windows affinity mask is one machine word; the first index past the
// word width must be rejected without touching the API.
func TestWordWidthRejected(t *testing.T) {
	onPinnedThread(func() {
		err := affinity.SetForCurrent(api.NewCoreID(64))
		if !errors.Is(err, api.ErrCapacityExceeded) {
			t.Errorf("SetForCurrent(64) = %v, want ErrCapacityExceeded", err)
		}
	})
}
