// File: internal/sched/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package sched contains the per-platform affinity backends. Each supported
// GOOS contributes one build-tagged file implementing the same two
// operations: enumerate the logical processors the calling process may use,
// and pin the calling OS thread to one of them. The native mask, cpu-set and
// Mach-tag representations never leave this package.
package sched
