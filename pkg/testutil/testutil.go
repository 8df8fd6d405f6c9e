// Package testutil contains common test utilities.
package testutil

// Fataler wraps the Helper and Fatalf methods. It is a subset of
// [testing.TB], thus satisfied by [*testing.T] and [*testing.B].
type Fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}
