// Package testkit swaps package level seams such as producer constructors in tests
package testkit

import (
	"sync"
	"testing"
)

var seams sync.Mutex

// Swap sets *target to v until the test ends
func Swap[T any](t testing.TB, target *T, v T) {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
}

// Serial holds a process wide lock for the rest of the test
// tests that Swap a shared seam call it first so they never overlap
func Serial(t testing.TB) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}
