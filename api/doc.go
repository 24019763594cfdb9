// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package api holds the types shared by the coreaffinity façade and its
// platform backends: the CoreID value type and the library error taxonomy.
package api
