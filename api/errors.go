// File: api/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Common error values for the coreaffinity library. Backends wrap the
// underlying OS error with %w around one of these sentinels, so callers can
// classify failures with errors.Is without depending on platform errnos.

package api

import "fmt"

var (
	// ErrQueryFailed reports that the native allowed-processor query failed.
	ErrQueryFailed = fmt.Errorf("core enumeration query failed")
	// ErrCapacityExceeded reports a core index beyond what the platform's
	// native affinity representation can express.
	ErrCapacityExceeded = fmt.Errorf("core index exceeds platform capacity")
	// ErrSetFailed reports that the native affinity-setting call failed.
	ErrSetFailed = fmt.Errorf("affinity set failed")
	// ErrInvalidCoreID reports a core id that cannot name any processor.
	ErrInvalidCoreID = fmt.Errorf("invalid core id")
	// ErrNotSupported reports a platform or build without affinity support.
	ErrNotSupported = fmt.Errorf("affinity not supported on this platform")
)
